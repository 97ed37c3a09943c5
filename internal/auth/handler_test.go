package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("player-abc")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return JWTSecret, nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token failed to parse: %v", err)
	}

	sub, err := parsed.Claims.GetSubject()
	if err != nil {
		t.Fatalf("GetSubject: %v", err)
	}
	if sub != "player-abc" {
		t.Errorf("subject = %q, want player-abc", sub)
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		t.Fatalf("GetExpirationTime: %v", err)
	}
}
