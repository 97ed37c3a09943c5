package game

import "time"

// LCG constants (Numerical Recipes). State advances mod 2^32; each draw is
// state / 2^32, uniform in [0,1).
const (
	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223
)

type lcg struct {
	state uint32
}

func newLCG(seed uint32) *lcg {
	return &lcg{state: seed}
}

func (r *lcg) next() float64 {
	r.state = r.state*lcgMultiplier + lcgIncrement
	return float64(r.state) / (1 << 32)
}

// SeededShuffle returns a new slice holding a seeded Fisher–Yates permutation
// of questions. The same seed and input always produce the same order, with
// exactly one draw consumed per swap position.
func SeededShuffle[T any](items []T, seed uint32) []T {
	shuffled := make([]T, len(items))
	copy(shuffled, items)

	r := newLCG(seed)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := int(r.next() * float64(i+1))
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// DateSeed hashes a UTC calendar day string (YYYY-MM-DD) into a shuffle seed
// with a 31x rolling hash over signed 32-bit arithmetic, sign-stripped. Every
// machine derives the identical seed for the same date string.
func DateSeed(date string) uint32 {
	var h int32
	for i := 0; i < len(date); i++ {
		h = h*31 + int32(date[i])
	}
	if h < 0 {
		h = -h
	}
	return uint32(h)
}

// TodayUTC returns the current UTC calendar day as YYYY-MM-DD.
func TodayUTC() string {
	return time.Now().UTC().Format("2006-01-02")
}

// DailySeed is the seed shared by every player on the current UTC day.
func DailySeed() uint32 {
	return DateSeed(TodayUTC())
}
