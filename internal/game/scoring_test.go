package game

import (
	"testing"

	"github.com/radosukala/worthle/internal/models"
)

func intPtr(v int) *int { return &v }

func TestAnswerPoints(t *testing.T) {
	tests := []struct {
		name   string
		answer models.Answer
		want   int
	}{
		{"correct fast", models.Answer{Correct: true, Selected: intPtr(0), TimeMs: 5000}, 100},
		{"correct at half boundary", models.Answer{Correct: true, Selected: intPtr(0), TimeMs: 6000}, 90},
		{"correct medium", models.Answer{Correct: true, Selected: intPtr(1), TimeMs: 8000}, 90},
		{"correct slow", models.Answer{Correct: true, Selected: intPtr(2), TimeMs: 11000}, 80},
		{"correct very slow", models.Answer{Correct: true, Selected: intPtr(2), TimeMs: 19000}, 80},
		{"wrong but answered", models.Answer{Correct: false, Selected: intPtr(1), TimeMs: 4000}, 15},
		{"timeout", models.Answer{Correct: false, Selected: nil, TimeMs: 20000}, 0},
	}

	for _, tt := range tests {
		if got := answerPoints(tt.answer); got != tt.want {
			t.Errorf("%s: answerPoints = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestComputeFingerprintNeutralForUnseenCategories(t *testing.T) {
	identity := models.Identity{Track: models.TrackBackend, Language: models.LangGo, Experience: models.ExpMid}

	// One fast correct answer in debugging, nothing anywhere else.
	answers := []models.Answer{
		{QuestionID: "q1", Selected: intPtr(0), TimeMs: 4000, Correct: true, Category: models.CategoryDebugging},
	}

	fp := ComputeFingerprint(answers, identity)
	if len(fp.Categories) != 6 {
		t.Fatalf("got %d category scores, want 6", len(fp.Categories))
	}

	for _, cs := range fp.Categories {
		switch cs.Category {
		case models.CategoryDebugging:
			if cs.Score != 100 {
				t.Errorf("debugging score = %d, want 100", cs.Score)
			}
		default:
			if cs.Score != 50 {
				t.Errorf("%s score = %d, want neutral 50", cs.Category, cs.Score)
			}
		}
	}

	// Overall is the rounded mean: (100 + 5*50) / 6 = 58.33 → 58.
	if fp.Overall != 58 {
		t.Errorf("overall = %d, want 58", fp.Overall)
	}
}

func TestComputeFingerprintAllTimeouts(t *testing.T) {
	identity := models.Identity{Track: models.TrackBackend, Language: models.LangGo, Experience: models.ExpMid}

	var answers []models.Answer
	for _, cat := range models.TrackCategories[models.TrackBackend] {
		answers = append(answers, models.Answer{Selected: nil, TimeMs: 20000, Category: cat.Category})
	}

	fp := ComputeFingerprint(answers, identity)
	for _, cs := range fp.Categories {
		if cs.Score != 0 {
			t.Errorf("%s score = %d, want 0 for timeout", cs.Category, cs.Score)
		}
	}
	if fp.Overall != 0 {
		t.Errorf("overall = %d, want 0", fp.Overall)
	}
	if fp.Percentile < 1 {
		t.Errorf("percentile = %d, must not drop below 1", fp.Percentile)
	}
}

func TestComputeFingerprintIgnoresUntrackedCategory(t *testing.T) {
	identity := models.Identity{Track: models.TrackBackend, Language: models.LangGo, Experience: models.ExpMid}

	// css_layout is not scored for backend; the answer must not panic or
	// create an extra bucket.
	answers := []models.Answer{
		{Selected: intPtr(0), TimeMs: 4000, Correct: true, Category: models.CategoryCSSLayout},
	}

	fp := ComputeFingerprint(answers, identity)
	if len(fp.Categories) != 6 {
		t.Fatalf("got %d category scores, want 6", len(fp.Categories))
	}
	for _, cs := range fp.Categories {
		if cs.Score != 50 {
			t.Errorf("%s score = %d, want neutral 50", cs.Category, cs.Score)
		}
	}
}

func TestScoreToPercentile(t *testing.T) {
	tests := []struct {
		name       string
		score      int
		experience models.Experience
		want       int
	}{
		{"perfect junior", 100, models.ExpJunior, 98},
		{"perfect mid", 100, models.ExpMid, 98},
		{"perfect principal", 100, models.ExpPrincipal, 94},
		{"midpoint", 50, models.ExpMid, 50},
		{"zero", 0, models.ExpMid, 2},
		{"strong senior", 80, models.ExpSenior, 89},
		{"good junior boosted", 85, models.ExpJunior, 97},
		{"solid mid", 70, models.ExpMid, 83},
	}

	for _, tt := range tests {
		if got := ScoreToPercentile(tt.score, tt.experience); got != tt.want {
			t.Errorf("%s: ScoreToPercentile(%d, %s) = %d, want %d",
				tt.name, tt.score, tt.experience, got, tt.want)
		}
	}
}

func TestScoreToPercentileBounds(t *testing.T) {
	for score := 0; score <= 100; score += 5 {
		for exp := range experienceMultipliers {
			p := ScoreToPercentile(score, exp)
			if p < 1 || p > 99 {
				t.Errorf("ScoreToPercentile(%d, %s) = %d, outside [1, 99]", score, exp, p)
			}
		}
	}
}

func TestScoreToPercentileUnknownExperience(t *testing.T) {
	// An unrecognized bracket falls back to the neutral multiplier.
	if got, want := ScoreToPercentile(50, models.Experience("30+")), 50; got != want {
		t.Errorf("ScoreToPercentile(50, unknown) = %d, want %d", got, want)
	}
}
