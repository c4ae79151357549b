package scoring

import (
	"testing"

	"github.com/futureissustainable/healthscore-2.0/internal/domain"
)

func beverageAnalysis(beverageType string, mutate func(*domain.ProductAnalysis)) *domain.ProductAnalysis {
	a := &domain.ProductAnalysis{
		IsConsumerProduct: true,
		ProductName:       "Test Beverage",
		ProductCategory:   domain.CategoryBeverage,
		ProcessingLevel:   domain.NovaProcessed,
		BeverageType:      beverageType,
		NutrientsPer100g:  &domain.Nutrients{},
	}
	if mutate != nil {
		mutate(a)
	}
	return a
}

func TestBeverageScoreWater(t *testing.T) {
	result := scoreBeverage(beverageAnalysis("water", func(a *domain.ProductAnalysis) {
		a.ProcessingLevel = domain.NovaUnprocessed
	}))

	if result.FinalScore != 100 {
		t.Fatalf("FinalScore = %d, want 100", result.FinalScore)
	}
	if result.Category != "Excellent" || result.Grade != "A" {
		t.Errorf("category/grade = %s/%s, want Excellent/A", result.Category, result.Grade)
	}
}

func TestBeverageScoreSugarySodaClampsToZero(t *testing.T) {
	// Base 20, minus min(40, 10*3) = 30 sugar penalty, times 0.78:
	// -7.8, clamped to 0.
	result := scoreBeverage(beverageAnalysis("soda", func(a *domain.ProductAnalysis) {
		a.ProcessingLevel = domain.NovaUltraProcessed
		a.NutrientsPer100g.AddedSugar = domain.Float(10)
	}))

	if result.FinalScore != 0 {
		t.Fatalf("FinalScore = %d, want 0", result.FinalScore)
	}
	if result.Category != "Avoid" || result.Grade != "F" {
		t.Errorf("category/grade = %s/%s, want Avoid/F", result.Category, result.Grade)
	}
}

func TestBeverageScoreUnknownTypeDefaultsToNeutralBase(t *testing.T) {
	result := scoreBeverage(beverageAnalysis("yak milk smoothie", func(a *domain.ProductAnalysis) {
		a.ProcessingLevel = domain.NovaCulinary
	}))
	if result.Breakdown.BaseScore != 50 {
		t.Errorf("BaseScore = %v, want 50", result.Breakdown.BaseScore)
	}
}

func TestBeverageScoreSugarMonotonic(t *testing.T) {
	score := func(sugar float64) int {
		result := scoreBeverage(beverageAnalysis("fruit_juice", func(a *domain.ProductAnalysis) {
			a.NutrientsPer100g.AddedSugar = domain.Float(sugar)
		}))
		return result.FinalScore
	}

	prev := score(0)
	for _, sugar := range []float64{2, 5, 8, 12, 20} {
		current := score(sugar)
		if current > prev {
			t.Fatalf("score increased from %d to %d at sugar=%.0fg", prev, current, sugar)
		}
		prev = current
	}
}

func TestBeverageScoreSweetenerPenalty(t *testing.T) {
	plain := scoreBeverage(beverageAnalysis("diet_soda", nil))
	sweetened := scoreBeverage(beverageAnalysis("diet_soda", func(a *domain.ProductAnalysis) {
		a.Sweeteners = []string{"aspartame"}
	}))

	if sweetened.FinalScore >= plain.FinalScore {
		t.Errorf("sweetened score %d not below plain %d", sweetened.FinalScore, plain.FinalScore)
	}
	if !containsWarning(sweetened.Warnings, warnArtificialSweeteners) {
		t.Errorf("warnings = %v, want sweetener-evidence warning", sweetened.Warnings)
	}
}

func TestBeverageScoreElectrolyteBonus(t *testing.T) {
	plain := scoreBeverage(beverageAnalysis("coconut_water", nil))
	electrolyte := scoreBeverage(beverageAnalysis("coconut_water", func(a *domain.ProductAnalysis) {
		a.NutrientsPer100g.Potassium = domain.Float(250)
	}))

	if electrolyte.FinalScore <= plain.FinalScore {
		t.Errorf("electrolyte score %d not above plain %d", electrolyte.FinalScore, plain.FinalScore)
	}
}

func TestBeverageScoreFixedConfidence(t *testing.T) {
	result := scoreBeverage(beverageAnalysis("green_tea", nil))
	if result.Confidence.Level != domain.ConfidenceHigh {
		t.Errorf("Confidence.Level = %s, want HIGH", result.Confidence.Level)
	}
	if result.Confidence.DataCompleteness != 80 {
		t.Errorf("DataCompleteness = %.0f, want 80", result.Confidence.DataCompleteness)
	}
}
