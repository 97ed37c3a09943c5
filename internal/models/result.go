package models

import "time"

// CategoryScore is one axis of the skill radar, score clamped to [0,100].
type CategoryScore struct {
	Category SkillCategory `json:"category"`
	Label    string        `json:"label"`
	Score    int           `json:"score"`
}

// SkillFingerprint is computed once per completed game and never mutated.
// Percentile is always in [1,99]; the model never asserts absolute extremes.
type SkillFingerprint struct {
	Categories []CategoryScore `json:"categories"`
	Overall    int             `json:"overall"`
	Percentile int             `json:"percentile"`
}

// SalaryRange bounds are rounded to the nearest 1000 local currency units.
type SalaryRange struct {
	Location string `json:"location"`
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

type Sentiment string

const (
	SentimentFair      Sentiment = "fair"
	SentimentBelow     Sentiment = "below"
	SentimentUnderpaid Sentiment = "underpaid"
)

var ValidSentiments = map[Sentiment]bool{
	SentimentFair:      true,
	SentimentBelow:     true,
	SentimentUnderpaid: true,
}

// GameResult is the share-card aggregate. It carries no answer content.
type GameResult struct {
	ShareID     string           `json:"shareId"`
	Mode        GameMode         `json:"mode"`
	Identity    Identity         `json:"identity"`
	Fingerprint SkillFingerprint `json:"fingerprint"`
	SalaryRange *SalaryRange     `json:"salaryRange,omitempty"`
	Sentiment   *Sentiment       `json:"sentiment,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// DailyStreak is the persisted daily-completion record. LastDate is a UTC
// calendar day string (YYYY-MM-DD).
type DailyStreak struct {
	Current        int    `json:"current"`
	Best           int    `json:"best"`
	LastDate       string `json:"lastDate"`
	CompletedToday bool   `json:"completedToday"`
}
