package scoring

import (
	"fmt"
	"strings"

	"github.com/futureissustainable/healthscore-2.0/internal/domain"
)

const foodBaseScore = 50

// scoreFood implements the NRF9.3 + NOVA hybrid model for food products.
func scoreFood(a *domain.ProductAnalysis) *domain.ScoringResult {
	var (
		adjustments    []domain.Adjustment
		warnings       []string
		positivePoints float64
		negativePoints float64
	)

	nutrients := a.NutrientsPer100g

	// Completeness tracks the six core fields the negative/positive model
	// leans on. A supplied zero counts as present; only a missing field
	// is a data gap.
	const trackedFields = 6
	presentFields := 0

	// Fiber (strong evidence)
	if nutrients != nil && nutrients.Fiber != nil {
		presentFields++
		fiber := *nutrients.Fiber
		fiberPct := minFloat(100, fiber/dailyReference["fiber"].DV*100)
		fiberPoints := fiberPct / 100 * dailyReference["fiber"].MaxPoints * WeightStrong
		if fiberPoints > 0 {
			positivePoints += fiberPoints
			adjustments = append(adjustments, domain.Adjustment{
				Category:       "Fiber",
				Reason:         fmt.Sprintf("%.1fg fiber (%.0f%% DV)", fiber, fiberPct),
				Points:         fiberPoints,
				EvidenceWeight: WeightStrong,
			})
		}
	} else {
		warnings = append(warnings, warnMissingFiber)
	}

	// Protein quantity (strong evidence)
	if nutrients != nil && nutrients.Protein != nil {
		presentFields++
		protein := *nutrients.Protein
		proteinPct := minFloat(100, protein/dailyReference["protein"].DV*100)
		proteinPoints := proteinPct / 100 * dailyReference["protein"].MaxPoints * WeightStrong
		if proteinPoints > 0 {
			positivePoints += proteinPoints
			adjustments = append(adjustments, domain.Adjustment{
				Category:       "Protein",
				Reason:         fmt.Sprintf("%.1fg protein", protein),
				Points:         proteinPoints,
				EvidenceWeight: WeightStrong,
			})
		}
	}

	// Protein source quality (moderate evidence). The per-tag average is
	// sign-routed: a net-negative average lands in the negative bucket.
	if len(a.ProteinSources) > 0 {
		var sourceScore float64
		for _, source := range a.ProteinSources {
			sourceScore += proteinSourceScores[source] * WeightModerate
		}
		sourceScore /= float64(len(a.ProteinSources))

		if sourceScore != 0 {
			if sourceScore > 0 {
				positivePoints += sourceScore
			} else {
				negativePoints += -sourceScore
			}
			adjustments = append(adjustments, domain.Adjustment{
				Category:       "Protein Source",
				Reason:         strings.Join(a.ProteinSources, ", "),
				Points:         sourceScore,
				EvidenceWeight: WeightModerate,
			})
		}

		for _, source := range a.ProteinSources {
			if source == "processed_meat" {
				warnings = append(warnings, warnProcessedMeat)
				break
			}
		}
	}

	// Fruit/vegetable content (strong evidence)
	if fv := domain.Value(a.FruitVegPercentage); fv > 0 {
		fvPoints := minFloat(10, fv/10) * WeightStrong
		positivePoints += fvPoints
		adjustments = append(adjustments, domain.Adjustment{
			Category:       "Fruits & Vegetables",
			Reason:         fmt.Sprintf("%.0f%% fruit/vegetable content", fv),
			Points:         fvPoints,
			EvidenceWeight: WeightStrong,
		})
	}

	// Omega-3 (strong evidence)
	if nutrients != nil {
		if omega3 := domain.Value(nutrients.Omega3); omega3 > 0 {
			omega3Points := minFloat(3, omega3/0.25) * WeightStrong
			positivePoints += omega3Points
			adjustments = append(adjustments, domain.Adjustment{
				Category:       "Omega-3",
				Reason:         fmt.Sprintf("%.0fmg omega-3", omega3*1000),
				Points:         omega3Points,
				EvidenceWeight: WeightStrong,
			})
		}
	}

	// Fat source quality (moderate evidence), symmetric to protein source.
	if len(a.FatSources) > 0 {
		var fatScore float64
		for _, source := range a.FatSources {
			fatScore += fatTypeScores[source] * WeightModerate
		}
		fatScore /= float64(len(a.FatSources))

		if fatScore != 0 {
			if fatScore > 0 {
				positivePoints += fatScore
			} else {
				negativePoints += -fatScore
			}
			adjustments = append(adjustments, domain.Adjustment{
				Category:       "Fat Sources",
				Reason:         strings.Join(a.FatSources, ", "),
				Points:         fatScore,
				EvidenceWeight: WeightModerate,
			})
		}
	}

	// Fermentation bonus: product fermented, live cultures claimed, AND
	// the fermentation type itself retains live cultures. Triple AND.
	if a.IsFermented && a.HasLiveCultures && a.FermentationType != "" {
		if info, ok := fermentedScores[a.FermentationType]; ok && info.HasLiveCultures {
			bonus := info.Score * WeightModerate
			positivePoints += bonus
			adjustments = append(adjustments, domain.Adjustment{
				Category:       "Fermented",
				Reason:         fmt.Sprintf("Live culture %s", a.FermentationType),
				Points:         bonus,
				EvidenceWeight: WeightModerate,
			})
		}
	}

	// Polyphenols (emerging evidence), capped at 5 total.
	if len(a.PolyphenolSources) > 0 {
		var polyScore float64
		for _, source := range a.PolyphenolSources {
			polyScore += polyphenolScores[source] * WeightEmerging
		}
		if polyScore > 0 {
			capped := minFloat(5, polyScore)
			positivePoints += capped
			adjustments = append(adjustments, domain.Adjustment{
				Category:       "Polyphenols",
				Reason:         fmt.Sprintf("Contains %s", strings.Join(a.PolyphenolSources, ", ")),
				Points:         capped,
				EvidenceWeight: WeightEmerging,
			})
		}
	}

	// Saturated fat (strong evidence)
	if nutrients != nil && nutrients.SaturatedFat != nil {
		presentFields++
		satFat := *nutrients.SaturatedFat
		ref := dailyReference["saturatedFat"]
		satFatPct := satFat / ref.DV * 100
		if satFatPct > 0 {
			penalty := minFloat(ref.MaxPenalty, satFatPct/100*ref.MaxPenalty) * WeightStrong
			negativePoints += penalty
			adjustments = append(adjustments, domain.Adjustment{
				Category:       "Saturated Fat",
				Reason:         fmt.Sprintf("%.1fg saturated fat", satFat),
				Points:         -penalty,
				EvidenceWeight: WeightStrong,
			})
		}
	}

	// Added sugar (strong evidence)
	if nutrients != nil && nutrients.AddedSugar != nil {
		presentFields++
		sugar := *nutrients.AddedSugar
		ref := dailyReference["addedSugar"]
		sugarPct := sugar / ref.DV * 100
		if sugarPct > 0 {
			penalty := minFloat(ref.MaxPenalty, sugarPct/100*ref.MaxPenalty) * WeightStrong
			negativePoints += penalty
			adjustments = append(adjustments, domain.Adjustment{
				Category:       "Added Sugar",
				Reason:         fmt.Sprintf("%.1fg added sugar", sugar),
				Points:         -penalty,
				EvidenceWeight: WeightStrong,
			})
		}
	}

	// Sodium (strong evidence), only penalized past 20% of the daily limit.
	if nutrients != nil && nutrients.Sodium != nil {
		presentFields++
		sodium := *nutrients.Sodium
		ref := dailyReference["sodium"]
		sodiumPct := sodium / ref.DV * 100
		if sodiumPct > 20 {
			penalty := minFloat(ref.MaxPenalty, sodiumPct/100*ref.MaxPenalty) * WeightStrong
			negativePoints += penalty
			adjustments = append(adjustments, domain.Adjustment{
				Category:       "Sodium",
				Reason:         fmt.Sprintf("%.0fmg sodium", sodium),
				Points:         -penalty,
				EvidenceWeight: WeightStrong,
			})
		}
	}

	// Trans fat: the steepest per-gram penalty rate in the model.
	if nutrients != nil && nutrients.TransFat != nil {
		presentFields++
		transFat := *nutrients.TransFat
		if transFat > 0 {
			penalty := minFloat(15, transFat*10) * WeightStrong
			negativePoints += penalty
			adjustments = append(adjustments, domain.Adjustment{
				Category:       "Trans Fat",
				Reason:         fmt.Sprintf("%.1fg trans fat - AVOID", transFat),
				Points:         -penalty,
				EvidenceWeight: WeightStrong,
			})
		}
	}

	// Glycemic load (moderate evidence): bonus below 10, penalty at 20+.
	if a.GlycemicLoad != nil {
		gl := *a.GlycemicLoad
		switch {
		case gl <= glycemicLowMax:
			pts := glycemicLowPts * WeightModerate
			positivePoints += pts
			adjustments = append(adjustments, domain.Adjustment{
				Category:       "Glycemic Load",
				Reason:         fmt.Sprintf("Low GL (%.0f)", gl),
				Points:         pts,
				EvidenceWeight: WeightModerate,
			})
		case gl >= glycemicHighMin:
			pts := glycemicHighPts * WeightModerate
			negativePoints += pts
			adjustments = append(adjustments, domain.Adjustment{
				Category:       "Glycemic Load",
				Reason:         fmt.Sprintf("High GL (%.0f)", gl),
				Points:         -pts,
				EvidenceWeight: WeightModerate,
			})
		}
	}

	// Additives: each recognized entry weighted by its own evidence tier,
	// net sign-routed. Unrecognized entries contribute nothing.
	if len(a.Additives) > 0 {
		var additiveScore float64
		for _, additive := range a.Additives {
			if info, ok := additiveScores[NormalizeKey(additive)]; ok {
				additiveScore += info.Score * evidenceWeightForTier(info.Confidence)
			}
		}
		if additiveScore != 0 {
			if additiveScore < 0 {
				negativePoints += -additiveScore
			} else {
				positivePoints += additiveScore
			}
			adjustments = append(adjustments, domain.Adjustment{
				Category:       "Additives",
				Reason:         fmt.Sprintf("%d additives detected", len(a.Additives)),
				Points:         additiveScore,
				EvidenceWeight: WeightModerate,
			})
		}
	}

	// Sweeteners: always conflicting-weighted, always flagged.
	if len(a.Sweeteners) > 0 {
		warnings = append(warnings, warnArtificialSweeteners)
		var sweetenerScore float64
		for _, sweetener := range a.Sweeteners {
			if info, ok := sweetenerScores[NormalizeKey(sweetener)]; ok {
				sweetenerScore += info.Score * WeightConflicting
			}
		}
		if sweetenerScore != 0 {
			negativePoints += absFloat(sweetenerScore)
			adjustments = append(adjustments, domain.Adjustment{
				Category:       "Sweeteners",
				Reason:         fmt.Sprintf("Contains %s (research evolving)", strings.Join(a.Sweeteners, ", ")),
				Points:         sweetenerScore,
				EvidenceWeight: WeightConflicting,
			})
		}
		for _, sweetener := range a.Sweeteners {
			key := NormalizeKey(sweetener)
			if key == "erythritol" || key == "xylitol" {
				warnings = append(warnings, warnErythritolXylitol)
				break
			}
		}
	}

	rawScore := foodBaseScore + positivePoints - negativePoints

	// NOVA multiplier, applied once after the additive stage.
	nova := novaMultiplier(a.ProcessingLevel)
	rawScore *= nova

	switch a.ProcessingLevel {
	case domain.NovaUltraProcessed:
		warnings = append(warnings, warnUltraProcessed)
		adjustments = append(adjustments, domain.Adjustment{
			Category:       "Processing",
			Reason:         "Ultra-processed (NOVA 4) - 22% penalty",
			Points:         -(rawScore * 0.22),
			EvidenceWeight: WeightEmerging,
		})
	case domain.NovaUnprocessed:
		// Informational line; the multiplier already applied the bonus.
		adjustments = append(adjustments, domain.Adjustment{
			Category:       "Processing",
			Reason:         "Minimally processed (NOVA 1) - 5% bonus",
			Points:         rawScore * 0.05,
			EvidenceWeight: WeightEmerging,
		})
	}

	// Confidence: the final multiplicative step before clamping.
	completeness := float64(presentFields) / trackedFields * 100
	confidenceAdjustment := 1.0
	level := domain.ConfidenceHigh
	message := ""

	switch {
	case completeness < 50:
		confidenceAdjustment = 0.9
		level = domain.ConfidenceLow
		message = "Limited nutritional data available"
		warnings = append(warnings, warnInsufficientData)
	case completeness < 80:
		confidenceAdjustment = 0.95
		level = domain.ConfidenceModerate
	}

	rawScore *= confidenceAdjustment

	finalScore := clampScore(rawScore)
	category, grade := Categorize(finalScore)

	return &domain.ScoringResult{
		FinalScore:  finalScore,
		Category:    category,
		Grade:       grade,
		ProductName: a.ProductName,
		Breakdown: domain.Breakdown{
			BaseScore:            foodBaseScore,
			PositivePoints:       positivePoints,
			NegativePoints:       negativePoints,
			NovaMultiplier:       nova,
			ConfidenceAdjustment: confidenceAdjustment,
			Adjustments:          adjustments,
		},
		Confidence: domain.ConfidenceRating{
			Level:            level,
			DataCompleteness: completeness,
			Message:          message,
		},
		Warnings:             warnings,
		Nutrients:            a.NutrientsPer100g,
		HealthierAlternative: a.HealthierAlternative,
	}
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
