package scoring

import (
	"regexp"

	"github.com/futureissustainable/healthscore-2.0/internal/domain"
)

const personalCareBaseScore = 70

// Ingredient patterns are matched case-insensitively against the raw
// free text the extractor returns. One ingredient string can hit more
// than one pattern; each hit counts.
var (
	parabenPattern      = regexp.MustCompile(`(?i)paraben`)
	phthalatePattern    = regexp.MustCompile(`(?i)phthalate`)
	sulfatePattern      = regexp.MustCompile(`(?i)sulfate|sls|sles`)
	formaldehydePattern = regexp.MustCompile(`(?i)formaldehyde`)
	triclosanPattern    = regexp.MustCompile(`(?i)triclosan`)
	ceramidePattern     = regexp.MustCompile(`(?i)ceramide`)
	vitaminEPattern     = regexp.MustCompile(`(?i)vitamin e|tocopherol`)
	niacinamidePattern  = regexp.MustCompile(`(?i)niacinamide`)
	hyaluronicPattern   = regexp.MustCompile(`(?i)hyaluronic`)
)

// scorePersonalCare scans ingredient lists against a fixed vocabulary of
// penalties and bonuses. No NOVA stage and a fixed MODERATE confidence;
// ingredient text never carries enough signal for more.
func scorePersonalCare(a *domain.ProductAnalysis) *domain.ScoringResult {
	var (
		adjustments    []domain.Adjustment
		warnings       []string
		positivePoints float64
		negativePoints float64
	)

	details := a.PersonalCareDetails
	if details != nil {
		penalize := func(category, reason string, points float64, weight float64) {
			negativePoints += points
			adjustments = append(adjustments, domain.Adjustment{
				Category:       category,
				Reason:         reason,
				Points:         -points,
				EvidenceWeight: weight,
			})
		}
		reward := func(category, reason string, points float64, weight float64) {
			positivePoints += points
			adjustments = append(adjustments, domain.Adjustment{
				Category:       category,
				Reason:         reason,
				Points:         points,
				EvidenceWeight: weight,
			})
		}

		for _, ingredient := range details.HarmfulIngredients {
			if parabenPattern.MatchString(ingredient) {
				penalize("Harmful Ingredient", "Contains Parabens", personalCarePenalties["parabens"], WeightModerate)
			}
			if phthalatePattern.MatchString(ingredient) {
				penalize("Harmful Ingredient", "Contains Phthalates", personalCarePenalties["phthalates"], WeightModerate)
			}
			if sulfatePattern.MatchString(ingredient) {
				penalize("Harsh Ingredient", "Contains Sulfates (SLS/SLES)", personalCarePenalties["sulfates_sls_sles"], WeightModerate)
			}
			if formaldehydePattern.MatchString(ingredient) {
				penalize("Harmful Ingredient", "Contains Formaldehyde/Releasers", personalCarePenalties["formaldehyde_releasers"], WeightStrong)
			}
			if triclosanPattern.MatchString(ingredient) {
				penalize("Harmful Ingredient", "Contains Triclosan", personalCarePenalties["triclosan"], WeightModerate)
			}
		}

		if details.HasFragrance {
			penalize("Fragrance", "Contains Synthetic Fragrance", personalCarePenalties["synthetic_fragrance"], WeightModerate)
		}

		for _, ingredient := range details.BeneficialIngredients {
			if ceramidePattern.MatchString(ingredient) {
				reward("Beneficial Ingredient", "Contains Ceramides", personalCareBonuses["ceramides"], WeightModerate)
			}
			if vitaminEPattern.MatchString(ingredient) {
				reward("Beneficial Ingredient", "Contains Vitamin E", personalCareBonuses["vitamin_e_tocopherol"], WeightModerate)
			}
			if niacinamidePattern.MatchString(ingredient) {
				reward("Beneficial Ingredient", "Contains Niacinamide", personalCareBonuses["niacinamide"], WeightModerate)
			}
			if hyaluronicPattern.MatchString(ingredient) {
				reward("Beneficial Ingredient", "Contains Hyaluronic Acid", personalCareBonuses["hyaluronic_acid"], WeightModerate)
			}
		}

		if details.IsCrueltyFree {
			reward("Ethics", "Cruelty-Free", personalCareBonuses["cruelty_free"], WeightStrong)
		}
		if details.IsEWGVerified {
			reward("Certification", "EWG Verified", personalCareBonuses["ewg_verified"], WeightStrong)
		}
	}

	rawScore := personalCareBaseScore + positivePoints - negativePoints
	finalScore := clampScore(rawScore)
	category, grade := Categorize(finalScore)

	return &domain.ScoringResult{
		FinalScore:  finalScore,
		Category:    category,
		Grade:       grade,
		ProductName: a.ProductName,
		Breakdown: domain.Breakdown{
			BaseScore:            personalCareBaseScore,
			PositivePoints:       positivePoints,
			NegativePoints:       negativePoints,
			NovaMultiplier:       1.0,
			ConfidenceAdjustment: 1.0,
			Adjustments:          adjustments,
		},
		Confidence: domain.ConfidenceRating{
			Level:            domain.ConfidenceModerate,
			DataCompleteness: 70,
		},
		Warnings: warnings,
	}
}
