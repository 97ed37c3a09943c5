package play

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/radosukala/worthle/internal/models"
)

// ErrNotFound is returned when a share id does not exist (or, for owner-bound
// operations, does not belong to the requesting player).
var ErrNotFound = errors.New("game result not found")

// Store persists completed game results for share-card rendering.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) SaveResult(ctx context.Context, playerID string, result models.GameResult) error {
	identity, err := json.Marshal(result.Identity)
	if err != nil {
		return fmt.Errorf("marshal identity: %w", err)
	}
	fingerprint, err := json.Marshal(result.Fingerprint)
	if err != nil {
		return fmt.Errorf("marshal fingerprint: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO game_results (share_id, player_id, mode, identity, fingerprint)
		 VALUES ($1, $2, $3, $4, $5)`,
		result.ShareID, playerID, result.Mode, identity, fingerprint,
	)
	if err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	return nil
}

// GetResult loads a result by share id. It is the public share-card read; no
// player check applies.
func (s *Store) GetResult(ctx context.Context, shareID string) (*models.GameResult, error) {
	return s.getResult(ctx,
		`SELECT share_id, mode, identity, fingerprint, salary_range, sentiment, created_at
		 FROM game_results WHERE share_id = $1`,
		shareID,
	)
}

// GetOwnedResult loads a result only if it belongs to the given player.
func (s *Store) GetOwnedResult(ctx context.Context, shareID, playerID string) (*models.GameResult, error) {
	return s.getResult(ctx,
		`SELECT share_id, mode, identity, fingerprint, salary_range, sentiment, created_at
		 FROM game_results WHERE share_id = $1 AND player_id = $2`,
		shareID, playerID,
	)
}

func (s *Store) getResult(ctx context.Context, query string, args ...any) (*models.GameResult, error) {
	var (
		result      models.GameResult
		identity    []byte
		fingerprint []byte
		salaryRange []byte
		sentiment   sql.NullString
	)

	err := s.db.QueryRowContext(ctx, query, args...).Scan(
		&result.ShareID, &result.Mode, &identity, &fingerprint,
		&salaryRange, &sentiment, &result.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get result: %w", err)
	}

	if err := json.Unmarshal(identity, &result.Identity); err != nil {
		return nil, fmt.Errorf("unmarshal identity: %w", err)
	}
	if err := json.Unmarshal(fingerprint, &result.Fingerprint); err != nil {
		return nil, fmt.Errorf("unmarshal fingerprint: %w", err)
	}
	if len(salaryRange) > 0 {
		var sr models.SalaryRange
		if err := json.Unmarshal(salaryRange, &sr); err != nil {
			return nil, fmt.Errorf("unmarshal salary range: %w", err)
		}
		result.SalaryRange = &sr
	}
	if sentiment.Valid {
		s := models.Sentiment(sentiment.String)
		result.Sentiment = &s
	}

	return &result, nil
}

func (s *Store) AttachSalary(ctx context.Context, shareID, playerID string, salaryRange models.SalaryRange) error {
	raw, err := json.Marshal(salaryRange)
	if err != nil {
		return fmt.Errorf("marshal salary range: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE game_results SET salary_range = $1 WHERE share_id = $2 AND player_id = $3`,
		raw, shareID, playerID,
	)
	if err != nil {
		return fmt.Errorf("attach salary: %w", err)
	}
	return requireRow(res)
}

func (s *Store) AttachSentiment(ctx context.Context, shareID, playerID string, sentiment models.Sentiment) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE game_results SET sentiment = $1 WHERE share_id = $2 AND player_id = $3`,
		sentiment, shareID, playerID,
	)
	if err != nil {
		return fmt.Errorf("attach sentiment: %w", err)
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
