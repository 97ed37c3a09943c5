package game

import (
	"math"

	"github.com/radosukala/worthle/internal/models"
)

// Scoring constants. A correct answer earns the base plus a speed bonus, so
// correct answers land in 80–100. A wrong-but-answered round earns a flat 15
// and a timeout earns nothing: speed alone can never substitute for
// correctness.
const (
	correctBasePoints = 70
	attemptedPoints   = 15
	speedBonusRefMs   = 12000
	neutralScore      = 50
	percentileSteep   = 8.0
	percentileCenter  = 0.5
)

// experienceMultipliers discounts raw scores for senior brackets: the same
// raw score is competitively worth less among more experienced peers.
var experienceMultipliers = map[models.Experience]float64{
	models.ExpJunior:    1.10,
	models.ExpMid:       1.00,
	models.ExpSenior:    0.95,
	models.ExpStaff:     0.90,
	models.ExpPrincipal: 0.85,
}

// ComputeFingerprint aggregates a completed game's answers into per-category
// scores, an overall score, and a percentile for the given identity.
func ComputeFingerprint(answers []models.Answer, identity models.Identity) models.SkillFingerprint {
	categories := models.TrackCategories[identity.Track]

	type bucket struct {
		total int
		count int
	}
	buckets := make(map[models.SkillCategory]*bucket, len(categories))
	for _, cat := range categories {
		buckets[cat.Category] = &bucket{}
	}

	for _, answer := range answers {
		b, ok := buckets[answer.Category]
		if !ok {
			// Questions are pre-filtered by track, so an untracked
			// category should not occur. Skip rather than fail.
			continue
		}
		b.count++
		b.total += answerPoints(answer)
	}

	scores := make([]models.CategoryScore, 0, len(categories))
	for _, cat := range categories {
		b := buckets[cat.Category]
		score := neutralScore
		if b.count > 0 {
			score = int(math.Round(float64(b.total) / float64(b.count)))
		}
		scores = append(scores, models.CategoryScore{
			Category: cat.Category,
			Label:    cat.Label,
			Score:    clamp(score, 0, 100),
		})
	}

	overall := neutralScore
	if len(scores) > 0 {
		sum := 0
		for _, s := range scores {
			sum += s.Score
		}
		overall = int(math.Round(float64(sum) / float64(len(scores))))
	}

	return models.SkillFingerprint{
		Categories: scores,
		Overall:    overall,
		Percentile: ScoreToPercentile(overall, identity.Experience),
	}
}

func answerPoints(answer models.Answer) int {
	if answer.Correct {
		points := correctBasePoints
		timeRatio := float64(answer.TimeMs) / speedBonusRefMs
		switch {
		case timeRatio < 0.5:
			points += 30
		case timeRatio < 0.75:
			points += 20
		default:
			points += 10
		}
		return points
	}
	if answer.Selected != nil {
		return attemptedPoints
	}
	// Timeout
	return 0
}

// ScoreToPercentile maps an overall score to a modeled population percentile
// through a logistic curve centered on the midpoint, so scores cluster toward
// the middle percentiles and the extremes approach 1 and 99 asymptotically.
// Unrecognized experience brackets fall back to a neutral multiplier.
func ScoreToPercentile(score int, experience models.Experience) int {
	multiplier, ok := experienceMultipliers[experience]
	if !ok {
		multiplier = 1.0
	}

	adjusted := math.Min(100, float64(score)*multiplier)
	normalized := adjusted / 100
	percentile := int(math.Round(100 / (1 + math.Exp(-percentileSteep*(normalized-percentileCenter)))))

	return clamp(percentile, 1, 99)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
