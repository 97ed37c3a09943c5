package play

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/radosukala/worthle/internal/middleware"
	"github.com/radosukala/worthle/internal/models"
	"github.com/radosukala/worthle/internal/salary"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetMeta serves the static selector tables so the client carries no
// hard-coded copy.
func (h *Handler) GetMeta(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"tracks":           models.Tracks,
		"languages":        models.Languages,
		"experience":       models.ExperienceLevels,
		"track_languages":  models.TrackLanguages,
		"track_categories": models.TrackCategories,
		"locations":        salary.Locations,
	})
}

func (h *Handler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	track := models.Track(query.Get("track"))
	if !models.ValidTracks[track] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "unknown track"})
		return
	}

	language := models.Language(query.Get("language"))
	if !models.ValidLanguages[language] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "unknown language"})
		return
	}

	mode := models.GameMode(query.Get("mode"))
	if mode == "" {
		mode = models.ModeFull
	}
	if mode != models.ModeDaily && mode != models.ModeFull {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "mode must be 'daily' or 'full'"})
		return
	}

	// Secondary language is accepted as a presentation hint for fullstack
	// identities; it does not change pool resolution.
	if secondary := query.Get("secondary"); secondary != "" && !models.ValidLanguages[models.Language(secondary)] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "unknown secondary language"})
		return
	}

	count := intQueryParam(query, "count", 0)

	questions, err := h.service.Questions(track, language, mode, count)
	if err != nil {
		log.Printf("[play] question selection failed: %v", err)
		writeJSON(w, http.StatusServiceUnavailable, models.ErrorResponse{Error: "no questions available"})
		return
	}

	writeJSON(w, http.StatusOK, models.QuestionsResponse{Mode: mode, Questions: questions})
}

func (h *Handler) CompleteGame(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.PlayerID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "session required"})
		return
	}

	var req models.CompleteGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.Mode != models.ModeDaily && req.Mode != models.ModeFull {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "mode must be 'daily' or 'full'"})
		return
	}
	if !models.ValidTracks[req.Identity.Track] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "unknown track"})
		return
	}
	if !models.ValidLanguages[req.Identity.Language] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "unknown language"})
		return
	}
	if len(req.Answers) == 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "no answers submitted"})
		return
	}

	resp, err := h.service.Complete(r.Context(), playerID, req)
	if err != nil {
		log.Printf("[play] complete game failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "failed to record game"})
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) ComputeSalary(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.PlayerID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "session required"})
		return
	}

	var req models.SalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.Location == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "location is required"})
		return
	}

	shareID := mux.Vars(r)["shareID"]
	salaryRange, err := h.service.Salary(r.Context(), playerID, shareID, req.Location)
	switch {
	case errors.Is(err, ErrNotFound):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "game not found"})
		return
	case errors.Is(err, ErrWrongMode):
		writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: "salary range requires a full assessment"})
		return
	case errors.Is(err, salary.ErrNoBand):
		writeJSON(w, http.StatusUnprocessableEntity, models.ErrorResponse{Error: "no salary data for this track"})
		return
	case err != nil:
		log.Printf("[play] salary computation failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "failed to compute salary"})
		return
	}

	writeJSON(w, http.StatusOK, salaryRange)
}

func (h *Handler) RecordSentiment(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.PlayerID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "session required"})
		return
	}

	var req models.SentimentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if !models.ValidSentiments[req.Sentiment] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "sentiment must be 'fair', 'below', or 'underpaid'"})
		return
	}

	shareID := mux.Vars(r)["shareID"]
	err := h.service.Sentiment(r.Context(), playerID, shareID, req.Sentiment)
	if errors.Is(err, ErrNotFound) {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "game not found"})
		return
	}
	if err != nil {
		log.Printf("[play] sentiment update failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "failed to record sentiment"})
		return
	}

	writeJSON(w, http.StatusOK, models.OKResponse{OK: true})
}

func (h *Handler) GetShared(w http.ResponseWriter, r *http.Request) {
	shareID := mux.Vars(r)["shareID"]

	result, err := h.service.Shared(r.Context(), shareID)
	if errors.Is(err, ErrNotFound) {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "result not found"})
		return
	}
	if err != nil {
		log.Printf("[play] share lookup failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load result"})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) GetStreak(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.PlayerID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "session required"})
		return
	}

	rec, err := h.service.Streak(r.Context(), playerID)
	if err != nil {
		log.Printf("[play] streak read failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load streak"})
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

func (h *Handler) GetDailyIdentity(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.PlayerID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "session required"})
		return
	}

	identity, found, err := h.service.DailyIdentity(r.Context(), playerID)
	if err != nil {
		log.Printf("[play] identity read failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load identity"})
		return
	}
	if !found {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "no cached identity"})
		return
	}

	writeJSON(w, http.StatusOK, identity)
}

func (h *Handler) PutDailyIdentity(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.PlayerID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "session required"})
		return
	}

	var identity models.Identity
	if err := json.NewDecoder(r.Body).Decode(&identity); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if !models.ValidTracks[identity.Track] || !models.ValidLanguages[identity.Language] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "unknown track or language"})
		return
	}

	if err := h.service.SaveDailyIdentity(r.Context(), playerID, identity); err != nil {
		log.Printf("[play] identity save failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "failed to save identity"})
		return
	}

	writeJSON(w, http.StatusOK, models.OKResponse{OK: true})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func intQueryParam(query url.Values, key string, defaultVal int) int {
	s := query.Get(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return defaultVal
	}
	return v
}
