package models

// ── Request Types ─────────────────────────────────────────

type CompleteGameRequest struct {
	Mode     GameMode `json:"mode"`
	Identity Identity `json:"identity"`
	Answers  []Answer `json:"answers"`
}

type SalaryRequest struct {
	Location string `json:"location"`
}

type SentimentRequest struct {
	Sentiment Sentiment `json:"sentiment"`
}

// PingRequest is the anonymous analytics event. Exactly these four fields are
// accepted; nothing identifying ever rides along.
type PingRequest struct {
	Track      Track      `json:"track"`
	Experience Experience `json:"experience"`
	Location   string     `json:"location"`
	Sentiment  Sentiment  `json:"sentiment"`
}

// ── Response Types ────────────────────────────────────────

type SessionResponse struct {
	PlayerID string `json:"player_id"`
	Token    string `json:"token"`
}

type CompleteGameResponse struct {
	ShareID     string           `json:"shareId"`
	Fingerprint SkillFingerprint `json:"fingerprint"`
	Streak      *DailyStreak     `json:"streak,omitempty"`
}

type QuestionsResponse struct {
	Mode      GameMode   `json:"mode"`
	Questions []Question `json:"questions"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}
