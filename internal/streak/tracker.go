// Package streak tracks daily-completion continuity per player. The
// transition rules are pure functions over (record, today); the Tracker wires
// them to an injected key-value store. The scoring engine never touches this
// package; streak data is passed around it, not reached for.
package streak

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/radosukala/worthle/internal/models"
)

const (
	streakKeyPrefix   = "streak:"
	identityKeyPrefix = "daily-identity:"
)

const dateLayout = "2006-01-02"

// Resolve applies the read-side rules to a stored record for the given UTC
// day: completion on the same day reports CompletedToday, a gap of more than
// one day resets the running streak while preserving the best.
func Resolve(rec models.DailyStreak, today string) models.DailyStreak {
	if rec.LastDate == today {
		rec.CompletedToday = true
		return rec
	}
	rec.CompletedToday = false

	gap, ok := daysBetween(rec.LastDate, today)
	if ok && gap > 1 {
		rec.Current = 0
	}
	return rec
}

// Advance applies a daily completion to a resolved record. A same-day replay
// is a no-op; otherwise the streak increments and the best follows.
func Advance(rec models.DailyStreak, today string) models.DailyStreak {
	if rec.CompletedToday {
		return rec
	}
	rec.Current++
	if rec.Current > rec.Best {
		rec.Best = rec.Current
	}
	rec.LastDate = today
	rec.CompletedToday = true
	return rec
}

func daysBetween(from, to string) (int, bool) {
	a, err := time.Parse(dateLayout, from)
	if err != nil {
		return 0, false
	}
	b, err := time.Parse(dateLayout, to)
	if err != nil {
		return 0, false
	}
	return int(b.Sub(a).Hours() / 24), true
}

// Tracker persists streak records and the daily identity cache, keyed per
// player.
type Tracker struct {
	kv KV
}

func NewTracker(kv KV) *Tracker {
	return &Tracker{kv: kv}
}

// Get loads and resolves the player's streak for the given day. Malformed or
// missing stored data reads as the zero record rather than an error, so a bad
// storage read never corrupts a session.
func (t *Tracker) Get(ctx context.Context, playerID, today string) (models.DailyStreak, error) {
	var rec models.DailyStreak

	raw, ok, err := t.kv.Get(ctx, streakKeyPrefix+playerID)
	if err != nil {
		return rec, err
	}
	if ok {
		if err := json.Unmarshal(raw, &rec); err != nil {
			log.Printf("[streak] discarding malformed record for player %s: %v", playerID, err)
			rec = models.DailyStreak{}
		}
	}
	return Resolve(rec, today), nil
}

// CompleteDaily records a daily-round completion and returns the updated
// record. Replays on the same day return the stored state unchanged.
func (t *Tracker) CompleteDaily(ctx context.Context, playerID, today string) (models.DailyStreak, error) {
	rec, err := t.Get(ctx, playerID, today)
	if err != nil {
		return rec, err
	}
	if rec.CompletedToday {
		return rec, nil
	}

	rec = Advance(rec, today)

	raw, err := json.Marshal(rec)
	if err != nil {
		return rec, err
	}
	if err := t.kv.Set(ctx, streakKeyPrefix+playerID, raw); err != nil {
		return rec, err
	}
	return rec, nil
}

// SaveIdentity caches the player's last-used daily identity so the client can
// skip re-selection.
func (t *Tracker) SaveIdentity(ctx context.Context, playerID string, identity models.Identity) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	return t.kv.Set(ctx, identityKeyPrefix+playerID, raw)
}

// LoadIdentity returns the cached daily identity, or false if none is stored
// or the stored value is unreadable.
func (t *Tracker) LoadIdentity(ctx context.Context, playerID string) (models.Identity, bool, error) {
	var identity models.Identity

	raw, ok, err := t.kv.Get(ctx, identityKeyPrefix+playerID)
	if err != nil || !ok {
		return identity, false, err
	}
	if err := json.Unmarshal(raw, &identity); err != nil {
		log.Printf("[streak] discarding malformed identity for player %s: %v", playerID, err)
		return identity, false, nil
	}
	return identity, true, nil
}
