// Package scoring implements the evidence-weighted health score engine.
// Formula: finalScore = clamp(0,100, round((50 + positive - negative) ×
// novaMultiplier × confidenceAdjustment)). The package is pure: no I/O,
// no shared mutable state, safe for concurrent use.
package scoring

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/futureissustainable/healthscore-2.0/internal/domain"
)

// Score routes a product analysis to the scorer for its category.
func Score(a *domain.ProductAnalysis) (*domain.ScoringResult, error) {
	if a == nil {
		return nil, domain.ErrInvalidRequest
	}
	if !a.IsConsumerProduct {
		if a.RejectionReason != "" {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotConsumerProduct, a.RejectionReason)
		}
		return nil, domain.ErrNotConsumerProduct
	}

	switch a.ProductCategory {
	case domain.CategoryFood:
		return scoreFood(a), nil
	case domain.CategoryBeverage:
		return scoreBeverage(a), nil
	case domain.CategoryPersonalCare:
		return scorePersonalCare(a), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedCategory, a.ProductCategory)
	}
}

// Categorize maps a clamped score to its label and grade.
func Categorize(score int) (category, grade string) {
	for _, c := range scoreCategories {
		if score >= c.Min {
			return c.Label, c.Grade
		}
	}
	last := scoreCategories[len(scoreCategories)-1]
	return last.Label, last.Grade
}

// clampScore rounds a raw score to the nearest integer and bounds it to
// [0,100]. Intermediate point totals can swing far outside the range.
func clampScore(raw float64) int {
	rounded := int(math.Round(raw))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}

var nonAlnumRegex = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeKey folds AI-extracted free text into a table lookup key:
// lowercase, non-alphanumeric runs collapsed to single underscores,
// trimmed. "Sodium Nitrite" and "sodium-nitrite" both become
// "sodium_nitrite"; "Polysorbate 80" becomes "polysorbate_80".
func NormalizeKey(s string) string {
	key := strings.ToLower(strings.TrimSpace(s))
	key = nonAlnumRegex.ReplaceAllString(key, "_")
	return strings.Trim(key, "_")
}

// evidenceWeightForTier maps a table entry's confidence tier to the
// GRADE weight applied at scoring time.
func evidenceWeightForTier(tier string) float64 {
	switch tier {
	case "HIGH":
		return WeightStrong
	case "MODERATE":
		return WeightModerate
	default:
		return WeightConflicting
	}
}

// novaMultiplier looks up the processing-level multiplier, defaulting to
// neutral for unknown levels.
func novaMultiplier(level domain.ProcessingLevel) float64 {
	if m, ok := novaMultipliers[level]; ok {
		return m
	}
	return 1.0
}
