// Package catalog holds the static question catalogs, partitioned by
// (track, language). Catalogs are embedded in the binary and loaded once at
// startup; no disk or network access happens at request time.
package catalog

import (
	"embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/radosukala/worthle/internal/models"
)

//go:embed data/*.yaml
var catalogFS embed.FS

// fallbackMap routes (track, language) pairs without a dedicated catalog to
// the nearest catalog with overlapping conceptual content. Any backend
// language without its own catalog reads the TypeScript backend set, any
// frontend language the JavaScript frontend set, mobile falls back to Swift
// except Java which reads Kotlin.
var fallbackMap = map[string]string{
	"backend:csharp": "backend:typescript",
	"backend:swift":  "backend:typescript",
	"backend:kotlin": "backend:typescript",
	"backend:php":    "backend:typescript",
	"backend:ruby":   "backend:typescript",

	"frontend:python": "frontend:javascript",
	"frontend:rust":   "frontend:javascript",
	"frontend:go":     "frontend:javascript",
	"frontend:java":   "frontend:javascript",
	"frontend:csharp": "frontend:javascript",
	"frontend:swift":  "frontend:javascript",
	"frontend:kotlin": "frontend:javascript",
	"frontend:php":    "frontend:javascript",
	"frontend:ruby":   "frontend:javascript",

	"fullstack:python": "fullstack:typescript",
	"fullstack:rust":   "fullstack:typescript",
	"fullstack:go":     "fullstack:typescript",
	"fullstack:java":   "fullstack:typescript",
	"fullstack:csharp": "fullstack:typescript",
	"fullstack:swift":  "fullstack:typescript",
	"fullstack:kotlin": "fullstack:typescript",
	"fullstack:php":    "fullstack:typescript",
	"fullstack:ruby":   "fullstack:typescript",

	"mobile:typescript": "mobile:swift",
	"mobile:javascript": "mobile:swift",
	"mobile:python":     "mobile:swift",
	"mobile:rust":       "mobile:swift",
	"mobile:go":         "mobile:swift",
	"mobile:java":       "mobile:kotlin",
	"mobile:csharp":     "mobile:swift",
	"mobile:php":        "mobile:swift",
	"mobile:ruby":       "mobile:swift",

	"devops:javascript": "devops:typescript",
	"devops:python":     "devops:typescript",
	"devops:rust":       "devops:typescript",
	"devops:go":         "devops:typescript",
	"devops:java":       "devops:typescript",
	"devops:csharp":     "devops:typescript",
	"devops:swift":      "devops:typescript",
	"devops:kotlin":     "devops:typescript",
	"devops:php":        "devops:typescript",
	"devops:ruby":       "devops:typescript",

	"data:typescript": "data:python",
	"data:javascript": "data:python",
	"data:rust":       "data:python",
	"data:go":         "data:python",
	"data:java":       "data:python",
	"data:csharp":     "data:python",
	"data:swift":      "data:python",
	"data:kotlin":     "data:python",
	"data:php":        "data:python",
	"data:ruby":       "data:python",
}

// Repository is the read-only in-memory catalog mapping. It is safe for
// concurrent use because it is never mutated after Load.
type Repository struct {
	pools map[string][]models.Question
	keys  []string // sorted pool keys, for deterministic last-resort iteration
}

func poolKey(track models.Track, language models.Language) string {
	return string(track) + ":" + string(language)
}

// Load parses every embedded catalog file, validates each entry, and builds
// the pool mapping. The fullstack:javascript pool is assembled from the
// backend and frontend JavaScript catalogs.
func Load() (*Repository, error) {
	entries, err := catalogFS.ReadDir("data")
	if err != nil {
		return nil, fmt.Errorf("read catalog dir: %w", err)
	}

	pools := make(map[string][]models.Question)
	seen := make(map[string]string)

	for _, entry := range entries {
		path := "data/" + entry.Name()
		raw, err := catalogFS.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		var questions []models.Question
		if err := yaml.Unmarshal(raw, &questions); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}

		for i := range questions {
			q := &questions[i]
			if q.TimeLimitMs == 0 {
				q.TimeLimitMs = models.DefaultTimeLimitMs
			}
			if err := validateQuestion(*q); err != nil {
				return nil, fmt.Errorf("%s: question %q: %w", path, q.ID, err)
			}
			if prev, dup := seen[q.ID]; dup {
				return nil, fmt.Errorf("%s: duplicate question id %q (also in %s)", path, q.ID, prev)
			}
			seen[q.ID] = path

			key := poolKey(q.Track, q.Language)
			pools[key] = append(pools[key], *q)
		}
	}

	// The fullstack JavaScript pool is the union of the backend and frontend
	// JavaScript catalogs.
	fsjs := poolKey(models.TrackFullstack, models.LangJavaScript)
	if _, ok := pools[fsjs]; !ok {
		merged := append([]models.Question{}, pools[poolKey(models.TrackBackend, models.LangJavaScript)]...)
		merged = append(merged, pools[poolKey(models.TrackFrontend, models.LangJavaScript)]...)
		if len(merged) > 0 {
			pools[fsjs] = merged
		}
	}

	keys := make([]string, 0, len(pools))
	for k := range pools {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return &Repository{pools: pools, keys: keys}, nil
}

func validateQuestion(q models.Question) error {
	if q.ID == "" {
		return fmt.Errorf("missing id")
	}
	if !models.ValidTracks[q.Track] {
		return fmt.Errorf("unknown track %q", q.Track)
	}
	if !models.ValidLanguages[q.Language] {
		return fmt.Errorf("unknown language %q", q.Language)
	}
	if len(q.Options) != 3 {
		return fmt.Errorf("want exactly 3 options, got %d", len(q.Options))
	}
	if q.Correct < 0 || q.Correct > 2 {
		return fmt.Errorf("correct index %d out of range", q.Correct)
	}
	if q.Difficulty < 1 || q.Difficulty > 5 {
		return fmt.Errorf("difficulty %d out of range", q.Difficulty)
	}
	if q.Prompt == "" {
		return fmt.Errorf("missing prompt")
	}
	tracked := false
	for _, cat := range models.TrackCategories[q.Track] {
		if cat.Category == q.Category {
			tracked = true
			break
		}
	}
	if !tracked {
		return fmt.Errorf("category %q is not scored for track %q", q.Category, q.Track)
	}
	return nil
}

// GetPool resolves the question pool for (track, language): the exact catalog
// if non-empty, then the fallback table, then the first non-empty catalog in
// sorted key order. It only returns an empty slice when no catalog anywhere
// has questions, which callers treat as a fatal configuration error.
func (r *Repository) GetPool(track models.Track, language models.Language) []models.Question {
	key := poolKey(track, language)

	if pool := r.pools[key]; len(pool) > 0 {
		return pool
	}

	if fallback, ok := fallbackMap[key]; ok {
		if pool := r.pools[fallback]; len(pool) > 0 {
			return pool
		}
	}

	for _, k := range r.keys {
		if pool := r.pools[k]; len(pool) > 0 {
			return pool
		}
	}
	return nil
}

// Size returns the total number of questions across all pools. The merged
// fullstack:javascript pool double-counts its members by construction.
func (r *Repository) Size() int {
	total := 0
	for _, pool := range r.pools {
		total += len(pool)
	}
	return total
}

// PoolCount returns the number of distinct (track, language) pools.
func (r *Repository) PoolCount() int {
	return len(r.pools)
}
