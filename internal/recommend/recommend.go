// Package recommend generates contextual suggestions for scored
// products: add-ons that patch nutritional gaps, healthier alternatives
// for low scorers, and synergistic pairings. Suggestions are table
// driven and deterministic; nothing is recommended for products that
// already score well.
package recommend

import (
	"fmt"
	"strings"

	"github.com/futureissustainable/healthscore-2.0/internal/domain"
)

const (
	// excellentThreshold suppresses all suggestions: the product does not
	// need improving.
	excellentThreshold = 85

	addonThreshold       = 80
	alternativeThreshold = 70

	// relevanceFloor is the minimum relevance a suggestion must clear to
	// be shown at all.
	relevanceFloor = 60

	pairingRelevance = 75
)

// Generate produces up to one suggestion per slot for a scored product.
// Empty slots stay nil.
func Generate(a *domain.ProductAnalysis, finalScore int) domain.RecommendationSet {
	var set domain.RecommendationSet

	if finalScore >= excellentThreshold {
		return set
	}

	nameLower := strings.ToLower(a.ProductName)

	if finalScore < addonThreshold {
		set.Addon = findAddon(a, nameLower)
	}
	if finalScore < alternativeThreshold {
		set.Alternative = findAlternative(a, nameLower, finalScore)
	}
	set.Pairing = findPairing(nameLower)

	return set
}

// findAddon walks the nutritional gaps in severity order and returns the
// first applicable add-on that clears the relevance floor.
func findAddon(a *domain.ProductAnalysis, nameLower string) *domain.Recommendation {
	nutrients := a.NutrientsPer100g
	if nutrients == nil {
		return nil
	}

	var gaps []string
	if nutrients.Fiber != nil && *nutrients.Fiber < 3 {
		gaps = append(gaps, gapLowFiber)
	}
	if nutrients.Protein != nil && *nutrients.Protein < 5 {
		gaps = append(gaps, gapLowProtein)
	}
	if nutrients.Omega3 == nil || *nutrients.Omega3 < 0.1 {
		gaps = append(gaps, gapLowOmega3)
	}
	if nutrients.AddedSugar != nil && *nutrients.AddedSugar > 10 {
		gaps = append(gaps, gapHighSugar)
	}
	if !a.IsFermented && !a.HasLiveCultures {
		gaps = append(gaps, gapNeedsFermented)
	}

	for _, gap := range gaps {
		for _, addon := range addonsByGap[gap] {
			if !addonApplies(addon, nameLower) {
				continue
			}
			relevance := addonRelevance(gap, nutrients, addon.Boost)
			if relevance <= relevanceFloor {
				continue
			}
			return &domain.Recommendation{
				Type:                domain.RecommendationAddon,
				ProductName:         addon.Name,
				Description:         addon.Description,
				Reason:              gapReasons[gap],
				EstimatedScoreBoost: addon.Boost,
				RelevanceScore:      relevance,
			}
		}
	}
	return nil
}

func addonApplies(addon addonOption, nameLower string) bool {
	for _, category := range addon.ApplicableTo {
		if strings.Contains(nameLower, category) {
			return true
		}
		keywords, ok := foodCategoryKeywords[category]
		if !ok {
			continue
		}
		for _, keyword := range keywords {
			if strings.Contains(nameLower, keyword) {
				return true
			}
		}
	}
	return false
}

// addonRelevance starts at the floor and scales with deficiency
// severity plus the add-on's own boost, capped at 95.
func addonRelevance(gap string, nutrients *domain.Nutrients, boost int) int {
	relevance := relevanceFloor

	switch gap {
	case gapLowFiber:
		switch fiber := domain.Value(nutrients.Fiber); {
		case fiber < 1:
			relevance += 25
		case fiber < 2:
			relevance += 15
		default:
			relevance += 5
		}
	case gapLowProtein:
		switch protein := domain.Value(nutrients.Protein); {
		case protein < 2:
			relevance += 25
		case protein < 4:
			relevance += 15
		default:
			relevance += 5
		}
	case gapLowOmega3:
		relevance += 15
	case gapHighSugar:
		switch sugar := domain.Value(nutrients.AddedSugar); {
		case sugar > 20:
			relevance += 25
		case sugar > 15:
			relevance += 15
		default:
			relevance += 5
		}
	case gapNeedsFermented:
		relevance += 10
	}

	if boost < 10 {
		relevance += boost
	} else {
		relevance += 10
	}

	if relevance > 95 {
		return 95
	}
	return relevance
}

// findAlternative suggests a healthier swap when the product name hits a
// known trigger and the estimated improvement clears the entry's minimum
// gap.
func findAlternative(a *domain.ProductAnalysis, nameLower string, finalScore int) *domain.Recommendation {
	candidates := foodAlternatives
	if a.ProductCategory == domain.CategoryBeverage || a.BeverageType != "" {
		candidates = beverageAlternatives
	}

	for _, alt := range candidates {
		if !matchesAny(nameLower, alt.Trigger) {
			continue
		}
		scoreGap := alt.EstimatedScore - finalScore
		if scoreGap < alt.MinScoreGap {
			continue
		}
		relevance := relevanceFloor + scoreGap
		if relevance > 95 {
			relevance = 95
		}
		return &domain.Recommendation{
			Type:                domain.RecommendationAlternative,
			ProductName:         alt.Alternative,
			Description:         alt.Description,
			Reason:              fmt.Sprintf("Could improve your score by ~%d points", scoreGap),
			EstimatedScoreBoost: scoreGap,
			RelevanceScore:      relevance,
		}
	}
	return nil
}

func findPairing(nameLower string) *domain.Recommendation {
	for _, group := range pairingGroups {
		for _, pairing := range group {
			if !matchesAny(nameLower, pairing.Trigger) {
				continue
			}
			return &domain.Recommendation{
				Type:                domain.RecommendationPairing,
				ProductName:         pairing.Pairing,
				Description:         pairing.Reason,
				Reason:              "Synergistic pairing",
				EstimatedScoreBoost: pairing.Boost,
				RelevanceScore:      pairingRelevance,
			}
		}
	}
	return nil
}

func matchesAny(nameLower string, triggers []string) bool {
	for _, trigger := range triggers {
		if strings.Contains(nameLower, trigger) {
			return true
		}
	}
	return false
}
