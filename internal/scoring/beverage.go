package scoring

import (
	"fmt"

	"github.com/futureissustainable/healthscore-2.0/internal/domain"
)

const defaultBeverageBase = 50

// scoreBeverage anchors the score in the beverage type and applies a
// small set of nutrient modifiers. Beverages skip the confidence stage;
// the base table already encodes most of what matters.
func scoreBeverage(a *domain.ProductAnalysis) *domain.ScoringResult {
	var (
		adjustments    []domain.Adjustment
		warnings       []string
		positivePoints float64
		negativePoints float64
	)

	baseScore := float64(defaultBeverageBase)
	if a.BeverageType != "" {
		if base, ok := beverageBaseScores[a.BeverageType]; ok {
			baseScore = base
		}
	}

	nutrients := a.NutrientsPer100g
	if nutrients != nil {
		// Sugar dominates beverage quality.
		if sugar := domain.Value(nutrients.AddedSugar); sugar > 0 {
			sugarPenalty := minFloat(40, sugar*3)
			negativePoints += sugarPenalty
			adjustments = append(adjustments, domain.Adjustment{
				Category:       "Added Sugar",
				Reason:         fmt.Sprintf("%.1fg sugar per 100ml", sugar),
				Points:         -sugarPenalty,
				EvidenceWeight: WeightStrong,
			})
		}

		if len(a.Sweeteners) > 0 {
			warnings = append(warnings, warnArtificialSweeteners)
			penalty := 5 * WeightConflicting
			negativePoints += penalty
			adjustments = append(adjustments, domain.Adjustment{
				Category:       "Sweeteners",
				Reason:         "Contains artificial sweeteners",
				Points:         -penalty,
				EvidenceWeight: WeightConflicting,
			})
		}

		if potassium := domain.Value(nutrients.Potassium); potassium > 100 {
			positivePoints += 2
			adjustments = append(adjustments, domain.Adjustment{
				Category:       "Electrolytes",
				Reason:         "Contains potassium",
				Points:         2,
				EvidenceWeight: WeightModerate,
			})
		}
	}

	nova := novaMultiplier(a.ProcessingLevel)
	rawScore := (baseScore + positivePoints - negativePoints) * nova

	finalScore := clampScore(rawScore)
	category, grade := Categorize(finalScore)

	return &domain.ScoringResult{
		FinalScore:  finalScore,
		Category:    category,
		Grade:       grade,
		ProductName: a.ProductName,
		Breakdown: domain.Breakdown{
			BaseScore:            baseScore,
			PositivePoints:       positivePoints,
			NegativePoints:       negativePoints,
			NovaMultiplier:       nova,
			ConfidenceAdjustment: 1.0,
			Adjustments:          adjustments,
		},
		Confidence: domain.ConfidenceRating{
			Level:            domain.ConfidenceHigh,
			DataCompleteness: 80,
		},
		Warnings:             warnings,
		Nutrients:            a.NutrientsPer100g,
		HealthierAlternative: a.HealthierAlternative,
	}
}
