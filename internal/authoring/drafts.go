package authoring

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/radosukala/worthle/internal/models"
)

// DraftRequest describes a batch of questions to draft for one catalog pool.
type DraftRequest struct {
	Track      models.Track         `json:"track"`
	Language   models.Language      `json:"language"`
	Category   models.SkillCategory `json:"category"`
	Difficulty int                  `json:"difficulty"`
	Count      int                  `json:"count"`
}

// DraftedQuestion is the shape the model is asked to emit. It mirrors the
// catalog YAML entry minus the id, which the operator assigns on review.
type DraftedQuestion struct {
	Category    models.SkillCategory `json:"category"`
	Difficulty  int                  `json:"difficulty"`
	Type        models.QuestionType  `json:"type"`
	Prompt      string               `json:"prompt"`
	Code        string               `json:"code,omitempty"`
	Options     []string             `json:"options"`
	Correct     int                  `json:"correct"`
	TimeLimitMs int                  `json:"time_limit_ms"`
}

type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

const systemPrompt = `You are a senior engineer writing quick-fire trivia questions for a timed developer quiz. Each question is answered in under 20 seconds, has exactly 3 options, and tests practical working knowledge rather than trick edge cases. Respond ONLY with a JSON array, no prose.`

// BuildPrompt renders the user prompt for a draft request.
func BuildPrompt(req DraftRequest) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Write %d multiple-choice questions for %s developers working in %s.\n\n", req.Count, req.Track, req.Language)
	fmt.Fprintf(&sb, "Skill category: %q. Every question must belong to this category.\n", req.Category)
	fmt.Fprintf(&sb, "Difficulty: %d on a 1-5 scale. Hold every question at this level.\n\n", req.Difficulty)

	sb.WriteString(`Each array element must have exactly these fields:
  "category"      — the category given above
  "difficulty"    — the difficulty given above
  "type"          — one of "bug", "output", "scales", "slow", "diff"
  "prompt"        — the question text, one or two short sentences
  "code"          — an optional short code snippet, omit if not needed
  "options"       — exactly 3 answer strings, plausible and distinct
  "correct"       — index 0, 1, or 2 of the right option
  "time_limit_ms" — 15000 for difficulty 1-3, 20000 for 4-5

Rules:
- Wrong options must be believable mistakes a working developer makes, not jokes.
- Code snippets stay under 8 lines and must be valid in the stated language.
- Never reuse the same correct index for every question in the batch.`)

	return sb.String()
}

// ParseResponse extracts and validates drafted questions from a raw model
// response.
func ParseResponse(responseBody string, req DraftRequest) ([]DraftedQuestion, error) {
	cleaned := stripCodeFences(responseBody)

	var drafts []DraftedQuestion
	if err := json.Unmarshal([]byte(cleaned), &drafts); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if err := validateDrafts(drafts, req); err != nil {
		return nil, err
	}

	return drafts, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSpace(s)
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSpace(s)
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}

// validateDrafts enforces the same structural invariants the catalog loader
// enforces on shipped questions, so a passing draft can be pasted into a
// catalog file unchanged.
func validateDrafts(drafts []DraftedQuestion, req DraftRequest) error {
	var errs []string

	if len(drafts) == 0 {
		return &ValidationError{Errors: []string{"no questions in response"}}
	}

	for i, d := range drafts {
		qNum := i + 1

		if d.Category != req.Category {
			errs = append(errs, fmt.Sprintf("question %d: category %q, expected %q", qNum, d.Category, req.Category))
		}
		if d.Difficulty != req.Difficulty {
			errs = append(errs, fmt.Sprintf("question %d: difficulty %d, expected %d", qNum, d.Difficulty, req.Difficulty))
		}
		if !models.ValidQuestionTypes[d.Type] {
			errs = append(errs, fmt.Sprintf("question %d: unknown type %q", qNum, d.Type))
		}
		if strings.TrimSpace(d.Prompt) == "" {
			errs = append(errs, fmt.Sprintf("question %d: empty prompt", qNum))
		}
		if len(d.Options) != 3 {
			errs = append(errs, fmt.Sprintf("question %d: expected 3 options, got %d", qNum, len(d.Options)))
			continue
		}
		for j, opt := range d.Options {
			if strings.TrimSpace(opt) == "" {
				errs = append(errs, fmt.Sprintf("question %d: option %d is empty", qNum, j))
			}
		}
		if d.Options[0] == d.Options[1] || d.Options[0] == d.Options[2] || d.Options[1] == d.Options[2] {
			errs = append(errs, fmt.Sprintf("question %d: duplicate options", qNum))
		}
		if d.Correct < 0 || d.Correct > 2 {
			errs = append(errs, fmt.Sprintf("question %d: correct index %d out of range", qNum, d.Correct))
		}
		if d.TimeLimitMs <= 0 {
			errs = append(errs, fmt.Sprintf("question %d: time limit %d must be positive", qNum, d.TimeLimitMs))
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
