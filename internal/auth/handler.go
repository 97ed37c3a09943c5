// Package auth issues anonymous player sessions. A session token carries
// only a random player id (no account, no email, no identifying data) and
// exists solely to key the streak record and game results server-side.
package auth

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/radosukala/worthle/internal/models"
)

// JWTSecret is the HMAC signing key for session tokens. It never leaves the
// backend.
var JWTSecret = []byte(signingKey())

func signingKey() string {
	if key := os.Getenv("JWT_SECRET"); key != "" {
		return key
	}
	return "worthle-staging-signing-key-2026"
}

// Session tokens live long: a streak is worth keeping for months.
const tokenTTL = 180 * 24 * time.Hour

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// CreateSession mints a fresh anonymous player id and its bearer token.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	playerID := uuid.NewString()

	token, err := GenerateToken(playerID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to generate token"})
		return
	}

	writeJSON(w, http.StatusCreated, models.SessionResponse{PlayerID: playerID, Token: token})
}

// GenerateToken signs a session token for the given player id.
func GenerateToken(playerID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": playerID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JWTSecret)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
