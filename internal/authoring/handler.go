package authoring

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/radosukala/worthle/internal/models"
)

// Handler serves the operator-only question drafting route. Drafts are
// returned for review, never written into the shipped catalog.
type Handler struct {
	client LLMClient
	model  string
}

func NewHandler(client LLMClient, model string) *Handler {
	return &Handler{client: client, model: model}
}

type draftResponse struct {
	Model        string            `json:"model"`
	Drafts       []DraftedQuestion `json:"drafts"`
	PromptTokens int               `json:"promptTokens"`
	OutputTokens int               `json:"outputTokens"`
}

func (h *Handler) DraftQuestions(w http.ResponseWriter, r *http.Request) {
	var req DraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if !models.ValidTracks[req.Track] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "unknown track"})
		return
	}
	if !models.ValidLanguages[req.Language] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "unknown language"})
		return
	}
	if !categoryTracked(req.Track, req.Category) {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "category is not scored for this track"})
		return
	}
	if req.Difficulty < 1 || req.Difficulty > 5 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "difficulty must be 1-5"})
		return
	}
	if req.Count < 1 || req.Count > 10 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "count must be 1-10"})
		return
	}

	resp, err := h.client.Generate(r.Context(), systemPrompt, BuildPrompt(req))
	if err != nil {
		log.Printf("[authoring] draft generation failed: %v", err)
		writeJSON(w, http.StatusBadGateway, models.ErrorResponse{Error: "draft generation failed"})
		return
	}

	drafts, err := ParseResponse(resp.Content, req)
	var verr *ValidationError
	if errors.As(err, &verr) {
		log.Printf("[authoring] draft batch rejected: %v", verr)
		writeJSON(w, http.StatusUnprocessableEntity, models.ErrorResponse{Error: verr.Error()})
		return
	}
	if err != nil {
		log.Printf("[authoring] draft parse failed: %v", err)
		writeJSON(w, http.StatusBadGateway, models.ErrorResponse{Error: "model returned malformed drafts"})
		return
	}

	log.Printf("[authoring] drafted %d questions for %s/%s %s (tokens %d in, %d out)",
		len(drafts), req.Track, req.Language, req.Category, resp.PromptTokens, resp.OutputTokens)

	writeJSON(w, http.StatusOK, draftResponse{
		Model:        h.model,
		Drafts:       drafts,
		PromptTokens: resp.PromptTokens,
		OutputTokens: resp.OutputTokens,
	})
}

func categoryTracked(track models.Track, category models.SkillCategory) bool {
	for _, entry := range models.TrackCategories[track] {
		if entry.Category == category {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
