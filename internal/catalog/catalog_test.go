package catalog

import (
	"testing"

	"github.com/radosukala/worthle/internal/models"
)

func mustLoad(t *testing.T) *Repository {
	t.Helper()
	repo, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return repo
}

func TestLoadValidatesAllCatalogs(t *testing.T) {
	repo := mustLoad(t)

	if repo.Size() == 0 {
		t.Fatal("loaded zero questions")
	}
	if repo.PoolCount() == 0 {
		t.Fatal("loaded zero pools")
	}
}

func TestGetPoolExactMatch(t *testing.T) {
	repo := mustLoad(t)

	pool := repo.GetPool(models.TrackBackend, models.LangGo)
	if len(pool) == 0 {
		t.Fatal("backend/go pool is empty")
	}
	for _, q := range pool {
		if q.Track != models.TrackBackend || q.Language != models.LangGo {
			t.Errorf("question %s is %s/%s, want backend/go", q.ID, q.Track, q.Language)
		}
	}
}

func TestGetPoolFallbacks(t *testing.T) {
	repo := mustLoad(t)

	tests := []struct {
		name         string
		track        models.Track
		language     models.Language
		wantLanguage models.Language
	}{
		{"backend ruby reads typescript set", models.TrackBackend, models.LangRuby, models.LangTypeScript},
		{"mobile java reads kotlin set", models.TrackMobile, models.LangJava, models.LangKotlin},
		{"mobile typescript reads swift set", models.TrackMobile, models.LangTypeScript, models.LangSwift},
		{"data ruby reads python set", models.TrackData, models.LangRuby, models.LangPython},
		{"devops go reads typescript set", models.TrackDevops, models.LangGo, models.LangTypeScript},
	}

	for _, tt := range tests {
		pool := repo.GetPool(tt.track, tt.language)
		if len(pool) == 0 {
			t.Errorf("%s: empty pool", tt.name)
			continue
		}
		for _, q := range pool {
			if q.Language != tt.wantLanguage {
				t.Errorf("%s: question %s has language %s, want %s", tt.name, q.ID, q.Language, tt.wantLanguage)
				break
			}
		}
	}
}

func TestGetPoolFullstackJavaScriptMerged(t *testing.T) {
	repo := mustLoad(t)

	pool := repo.GetPool(models.TrackFullstack, models.LangJavaScript)
	if len(pool) == 0 {
		t.Fatal("fullstack/javascript pool is empty")
	}

	var hasBackend, hasFrontend bool
	for _, q := range pool {
		switch q.Track {
		case models.TrackBackend:
			hasBackend = true
		case models.TrackFrontend:
			hasFrontend = true
		}
	}
	if !hasBackend || !hasFrontend {
		t.Errorf("merged pool missing a side: backend=%v frontend=%v", hasBackend, hasFrontend)
	}
}

func TestGetPoolLastResortNeverEmpty(t *testing.T) {
	repo := mustLoad(t)

	// qa has no catalogs and no fallback entry; it must still get questions
	// from somewhere rather than an empty round.
	pool := repo.GetPool(models.TrackQA, models.LangPython)
	if len(pool) == 0 {
		t.Error("qa/python resolved to an empty pool")
	}
}

func TestLoadedQuestionsHaveTimeLimits(t *testing.T) {
	repo := mustLoad(t)

	for _, key := range repo.keys {
		for _, q := range repo.pools[key] {
			if q.TimeLimitMs <= 0 {
				t.Errorf("question %s has time limit %d", q.ID, q.TimeLimitMs)
			}
		}
	}
}
