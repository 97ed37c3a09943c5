package play

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/radosukala/worthle/internal/game"
	"github.com/radosukala/worthle/internal/models"
	"github.com/radosukala/worthle/internal/salary"
	"github.com/radosukala/worthle/internal/streak"
)

// ErrEmptyCatalog means no pool anywhere has questions. This is a
// configuration failure, not a runtime scoring error.
var ErrEmptyCatalog = errors.New("no questions available in any catalog")

// ErrWrongMode is returned when a salary range is requested for a game that
// did not unlock it (only full assessments do).
var ErrWrongMode = errors.New("salary range requires a full assessment")

// Service orchestrates the engine around one game: selection, scoring, share
// persistence, and the streak update for daily rounds.
type Service struct {
	selector *game.Selector
	tracker  *streak.Tracker
	store    *Store
}

func NewService(selector *game.Selector, tracker *streak.Tracker, store *Store) *Service {
	return &Service{selector: selector, tracker: tracker, store: store}
}

// Questions returns the ordered round for (track, language, mode).
func (s *Service) Questions(track models.Track, language models.Language, mode models.GameMode, count int) ([]models.Question, error) {
	questions := s.selector.SelectQuestions(track, language, mode, count)
	if len(questions) == 0 {
		return nil, ErrEmptyCatalog
	}
	return questions, nil
}

// Complete scores a finished game, stores the result under a fresh share id,
// and for daily mode advances the player's streak and caches the identity.
func (s *Service) Complete(ctx context.Context, playerID string, req models.CompleteGameRequest) (*models.CompleteGameResponse, error) {
	fingerprint := game.ComputeFingerprint(req.Answers, req.Identity)

	result := models.GameResult{
		ShareID:     uuid.NewString(),
		Mode:        req.Mode,
		Identity:    req.Identity,
		Fingerprint: fingerprint,
	}
	if err := s.store.SaveResult(ctx, playerID, result); err != nil {
		return nil, fmt.Errorf("save game result: %w", err)
	}

	resp := &models.CompleteGameResponse{
		ShareID:     result.ShareID,
		Fingerprint: fingerprint,
	}

	if req.Mode == models.ModeDaily {
		rec, err := s.tracker.CompleteDaily(ctx, playerID, game.TodayUTC())
		if err != nil {
			// The game is scored and saved; a streak write failure
			// should not fail the completion.
			log.Printf("[play] streak update failed for player %s: %v", playerID, err)
		} else {
			resp.Streak = &rec
		}
		if err := s.tracker.SaveIdentity(ctx, playerID, req.Identity); err != nil {
			log.Printf("[play] identity cache write failed for player %s: %v", playerID, err)
		}
	}

	return resp, nil
}

// Salary computes and attaches the salary range for a completed full
// assessment.
func (s *Service) Salary(ctx context.Context, playerID, shareID, location string) (*models.SalaryRange, error) {
	result, err := s.store.GetOwnedResult(ctx, shareID, playerID)
	if err != nil {
		return nil, err
	}
	if result.Mode != models.ModeFull {
		return nil, ErrWrongMode
	}

	salaryRange, err := salary.ComputeRange(
		result.Identity.Track,
		result.Identity.Experience,
		result.Fingerprint.Percentile,
		location,
	)
	if err != nil {
		return nil, err
	}

	if err := s.store.AttachSalary(ctx, shareID, playerID, salaryRange); err != nil {
		return nil, err
	}
	return &salaryRange, nil
}

// Sentiment records the player's reaction to the salary reveal on the stored
// result.
func (s *Service) Sentiment(ctx context.Context, playerID, shareID string, sentiment models.Sentiment) error {
	return s.store.AttachSentiment(ctx, shareID, playerID, sentiment)
}

// Shared returns the public share-card view of a result.
func (s *Service) Shared(ctx context.Context, shareID string) (*models.GameResult, error) {
	return s.store.GetResult(ctx, shareID)
}

// Streak returns the player's resolved streak for today.
func (s *Service) Streak(ctx context.Context, playerID string) (models.DailyStreak, error) {
	return s.tracker.Get(ctx, playerID, game.TodayUTC())
}

// DailyIdentity returns the cached identity, if any.
func (s *Service) DailyIdentity(ctx context.Context, playerID string) (models.Identity, bool, error) {
	return s.tracker.LoadIdentity(ctx, playerID)
}

// SaveDailyIdentity caches the player's daily identity.
func (s *Service) SaveDailyIdentity(ctx context.Context, playerID string, identity models.Identity) error {
	return s.tracker.SaveIdentity(ctx, playerID, identity)
}
