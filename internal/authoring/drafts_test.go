package authoring

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/radosukala/worthle/internal/models"
)

var testReq = DraftRequest{
	Track:      models.TrackBackend,
	Language:   models.LangGo,
	Category:   models.CategoryDebugging,
	Difficulty: 2,
	Count:      1,
}

const validDraftJSON = `[
  {
    "category": "debugging",
    "difficulty": 2,
    "type": "output",
    "prompt": "What does this print?",
    "code": "fmt.Println(len(\"go\"))",
    "options": ["2", "1", "3"],
    "correct": 0,
    "time_limit_ms": 15000
  }
]`

func TestParseResponseValid(t *testing.T) {
	drafts, err := ParseResponse(validDraftJSON, testReq)
	if err != nil {
		t.Fatalf("ParseResponse: %v", err)
	}
	if len(drafts) != 1 {
		t.Fatalf("got %d drafts, want 1", len(drafts))
	}
	if drafts[0].Correct != 0 || drafts[0].Options[0] != "2" {
		t.Errorf("unexpected draft: %+v", drafts[0])
	}
}

func TestParseResponseStripsCodeFences(t *testing.T) {
	fenced := "```json\n" + validDraftJSON + "\n```"
	if _, err := ParseResponse(fenced, testReq); err != nil {
		t.Errorf("fenced response rejected: %v", err)
	}

	bareFence := "```\n" + validDraftJSON + "\n```"
	if _, err := ParseResponse(bareFence, testReq); err != nil {
		t.Errorf("bare-fenced response rejected: %v", err)
	}
}

func TestParseResponseRejectsMalformedJSON(t *testing.T) {
	if _, err := ParseResponse("not json at all", testReq); err == nil {
		t.Error("malformed JSON accepted")
	}
}

func TestParseResponseValidation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(d *DraftedQuestion)
		wantHint string
	}{
		{"wrong category", func(d *DraftedQuestion) { d.Category = models.CategorySecurity }, "category"},
		{"wrong difficulty", func(d *DraftedQuestion) { d.Difficulty = 4 }, "difficulty"},
		{"unknown type", func(d *DraftedQuestion) { d.Type = "essay" }, "type"},
		{"empty prompt", func(d *DraftedQuestion) { d.Prompt = "  " }, "prompt"},
		{"two options", func(d *DraftedQuestion) { d.Options = d.Options[:2] }, "options"},
		{"duplicate options", func(d *DraftedQuestion) { d.Options = []string{"2", "2", "3"} }, "duplicate"},
		{"correct out of range", func(d *DraftedQuestion) { d.Correct = 3 }, "correct"},
		{"zero time limit", func(d *DraftedQuestion) { d.TimeLimitMs = 0 }, "time limit"},
	}

	for _, tt := range tests {
		draft := DraftedQuestion{
			Category:    models.CategoryDebugging,
			Difficulty:  2,
			Type:        models.TypeOutput,
			Prompt:      "What does this print?",
			Options:     []string{"2", "1", "3"},
			Correct:     0,
			TimeLimitMs: 15000,
		}
		tt.mutate(&draft)

		err := validateDrafts([]DraftedQuestion{draft}, testReq)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: got %v, want ValidationError", tt.name, err)
			continue
		}
		if !strings.Contains(verr.Error(), tt.wantHint) {
			t.Errorf("%s: error %q does not mention %q", tt.name, verr.Error(), tt.wantHint)
		}
	}
}

func TestParseResponseEmptyBatch(t *testing.T) {
	_, err := ParseResponse("[]", testReq)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("empty batch: got %v, want ValidationError", err)
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(DraftRequest{
		Track:      models.TrackFrontend,
		Language:   models.LangTypeScript,
		Category:   models.CategoryCSSLayout,
		Difficulty: 3,
		Count:      5,
	})

	for _, fragment := range []string{"5 multiple-choice", "frontend", "typescript", "css_layout", "Difficulty: 3"} {
		if !strings.Contains(prompt, fragment) {
			t.Errorf("prompt missing %q", fragment)
		}
	}
}

func TestMockClientDraftsValidate(t *testing.T) {
	resp, err := NewMockClient().Generate(context.Background(), systemPrompt, "")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	drafts, err := ParseResponse(resp.Content, DraftRequest{
		Track:      models.TrackBackend,
		Language:   models.LangJavaScript,
		Category:   models.CategoryDebugging,
		Difficulty: 2,
		Count:      2,
	})
	if err != nil {
		t.Fatalf("mock drafts failed validation: %v", err)
	}
	if len(drafts) != 2 {
		t.Errorf("got %d mock drafts, want 2", len(drafts))
	}
}
