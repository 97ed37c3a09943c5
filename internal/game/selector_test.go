package game

import (
	"fmt"
	"testing"

	"github.com/radosukala/worthle/internal/models"
)

type stubPool struct {
	questions []models.Question
}

func (s *stubPool) GetPool(track models.Track, language models.Language) []models.Question {
	return s.questions
}

func makePool(n int) *stubPool {
	questions := make([]models.Question, n)
	for i := range questions {
		questions[i] = models.Question{
			ID:       fmt.Sprintf("q-%03d", i),
			Track:    models.TrackBackend,
			Language: models.LangGo,
			Category: models.CategoryDebugging,
		}
	}
	return &stubPool{questions: questions}
}

func TestSelectDailyDeterministicPerDate(t *testing.T) {
	selector := NewSelector(makePool(30))

	a := selector.SelectDaily(models.TrackBackend, models.LangGo, "2024-01-15")
	b := selector.SelectDaily(models.TrackBackend, models.LangGo, "2024-01-15")

	if len(a) != models.DailyRoundCount {
		t.Fatalf("daily round has %d questions, want %d", len(a), models.DailyRoundCount)
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("same date produced different rounds: %v vs %v", ids(a), ids(b))
		}
	}

	c := selector.SelectDaily(models.TrackBackend, models.LangGo, "2024-01-16")
	if equalIDs(a, c) {
		t.Errorf("different dates produced identical rounds: %v", ids(a))
	}
}

func TestSelectDailyNoDuplicates(t *testing.T) {
	selector := NewSelector(makePool(30))

	round := selector.SelectDaily(models.TrackBackend, models.LangGo, "2025-06-30")
	seen := make(map[string]bool)
	for _, q := range round {
		if seen[q.ID] {
			t.Fatalf("duplicate question %s in round %v", q.ID, ids(round))
		}
		seen[q.ID] = true
	}
}

func TestSelectDailySmallPool(t *testing.T) {
	selector := NewSelector(makePool(3))

	round := selector.SelectDaily(models.TrackBackend, models.LangGo, "2024-01-15")
	if len(round) != 3 {
		t.Errorf("got %d questions from pool of 3, want 3", len(round))
	}
}

func TestSelectFullCounts(t *testing.T) {
	selector := NewSelector(makePool(30))

	if got := len(selector.SelectFull(models.TrackBackend, models.LangGo, 0)); got != models.FullRoundCount {
		t.Errorf("default count: got %d, want %d", got, models.FullRoundCount)
	}
	if got := len(selector.SelectFull(models.TrackBackend, models.LangGo, 10)); got != 10 {
		t.Errorf("explicit count: got %d, want 10", got)
	}
	if got := len(selector.SelectFull(models.TrackBackend, models.LangGo, 100)); got != 30 {
		t.Errorf("count beyond pool: got %d, want 30", got)
	}
}

func TestSelectQuestionsDispatch(t *testing.T) {
	selector := NewSelector(makePool(30))

	daily := selector.SelectQuestions(models.TrackBackend, models.LangGo, models.ModeDaily, 0)
	if len(daily) != models.DailyRoundCount {
		t.Errorf("daily mode: got %d questions, want %d", len(daily), models.DailyRoundCount)
	}

	full := selector.SelectQuestions(models.TrackBackend, models.LangGo, models.ModeFull, 0)
	if len(full) != models.FullRoundCount {
		t.Errorf("full mode: got %d questions, want %d", len(full), models.FullRoundCount)
	}
}

func ids(questions []models.Question) []string {
	out := make([]string, len(questions))
	for i, q := range questions {
		out[i] = q.ID
	}
	return out
}

func equalIDs(a, b []models.Question) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
