package game

import (
	"math/rand"

	"github.com/radosukala/worthle/internal/models"
)

// PoolProvider resolves the question pool for a (track, language) pair.
// Implementations must never return a nil-vs-empty distinction the selector
// cares about; an empty pool means the catalog system has no questions at
// all, which callers treat as a configuration error.
type PoolProvider interface {
	GetPool(track models.Track, language models.Language) []models.Question
}

// Selector produces ordered, deduplicated round sequences from a pool.
type Selector struct {
	pools PoolProvider
}

func NewSelector(pools PoolProvider) *Selector {
	return &Selector{pools: pools}
}

// SelectQuestions returns a round of min(count, pool size) questions for the
// given mode. Full mode draws a fresh session seed per call; daily mode is a
// pure function of (track, language, date) and yields the same round for
// every player on the same UTC day. The identity's secondary language is a
// presentation hint only and does not alter pool resolution.
func (s *Selector) SelectQuestions(track models.Track, language models.Language, mode models.GameMode, count int) []models.Question {
	if mode == models.ModeDaily {
		return s.SelectDaily(track, language, TodayUTC())
	}
	return s.SelectFull(track, language, count)
}

// SelectFull shuffles the pool with per-session entropy and takes the first
// count questions (default 20).
func (s *Selector) SelectFull(track models.Track, language models.Language, count int) []models.Question {
	if count <= 0 {
		count = models.FullRoundCount
	}
	pool := s.pools.GetPool(track, language)
	shuffled := SeededShuffle(pool, rand.Uint32())
	return shuffled[:min(count, len(shuffled))]
}

// SelectDaily shuffles the pool with the date-derived seed and takes the
// first 5 questions.
func (s *Selector) SelectDaily(track models.Track, language models.Language, date string) []models.Question {
	pool := s.pools.GetPool(track, language)
	shuffled := SeededShuffle(pool, DateSeed(date))
	return shuffled[:min(models.DailyRoundCount, len(shuffled))]
}
