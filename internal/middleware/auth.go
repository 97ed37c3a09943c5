package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/radosukala/worthle/internal/auth"
	"github.com/radosukala/worthle/internal/models"
)

type contextKey string

const playerIDKey contextKey = "player_id"

// PlayerID extracts the authenticated player id from the request context.
func PlayerID(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(playerIDKey).(string)
	return id, ok
}

// AuthMiddleware validates the session bearer token and stores the player id
// on the request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "Missing session token")
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return auth.JWTSecret, nil
		})
		if err != nil || !token.Valid {
			writeError(w, http.StatusUnauthorized, "Invalid session token")
			return
		}

		playerID, err := token.Claims.GetSubject()
		if err != nil || playerID == "" {
			writeError(w, http.StatusUnauthorized, "Invalid session token")
			return
		}

		ctx := context.WithValue(r.Context(), playerIDKey, playerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminMiddleware guards operator-only routes with a bcrypt-hashed key from
// the environment. With no hash configured the routes are disabled outright.
func AdminMiddleware(next http.Handler) http.Handler {
	hash := os.Getenv("ADMIN_KEY_HASH")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hash == "" {
			writeError(w, http.StatusServiceUnavailable, "Admin routes are disabled")
			return
		}

		key := r.Header.Get("X-Admin-Key")
		if key == "" {
			writeError(w, http.StatusUnauthorized, "Missing admin key")
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)); err != nil {
			log.Printf("[middleware] rejected admin key from %s", r.URL.Path)
			writeError(w, http.StatusUnauthorized, "Invalid admin key")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.ErrorResponse{Error: msg})
}
