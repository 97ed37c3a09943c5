// Package analytics records the single anonymous event the product emits:
// how players feel about their salary reveal. Only the exact field set
// {track, experience, location, sentiment} is accepted: no IP, no user
// agent, no session id, no fingerprint.
package analytics

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/radosukala/worthle/internal/models"
)

type Handler struct {
	db *sql.DB
}

func NewHandler(db *sql.DB) *Handler {
	return &Handler{db: db}
}

func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	var req models.PingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.OKResponse{OK: false})
		return
	}

	if req.Track == "" || req.Experience == "" || req.Location == "" || req.Sentiment == "" {
		writeJSON(w, http.StatusBadRequest, models.OKResponse{OK: false})
		return
	}

	line, _ := json.Marshal(map[string]string{
		"type":       "sentiment",
		"track":      string(req.Track),
		"experience": string(req.Experience),
		"location":   req.Location,
		"sentiment":  string(req.Sentiment),
		"ts":         time.Now().UTC().Format(time.RFC3339),
	})
	log.Printf("[analytics] %s", line)

	// The log line is the event of record; the row is for ad-hoc queries.
	// A failed insert must not fail the ping.
	_, err := h.db.ExecContext(r.Context(),
		`INSERT INTO sentiment_events (track, experience, location, sentiment)
		 VALUES ($1, $2, $3, $4)`,
		req.Track, req.Experience, req.Location, req.Sentiment,
	)
	if err != nil {
		log.Printf("[analytics] sentiment insert failed: %v", err)
	}

	writeJSON(w, http.StatusOK, models.OKResponse{OK: true})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
