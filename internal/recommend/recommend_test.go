package recommend

import (
	"testing"

	"github.com/futureissustainable/healthscore-2.0/internal/domain"
)

func TestGenerateSuppressedForExcellentScores(t *testing.T) {
	// Trigger words for every slot, but the score says leave it alone.
	a := &domain.ProductAnalysis{
		ProductName:      "Spinach Rice Bowl with Soda",
		ProductCategory:  domain.CategoryFood,
		NutrientsPer100g: &domain.Nutrients{Fiber: domain.Float(0)},
	}

	set := Generate(a, 85)
	if set.Addon != nil || set.Alternative != nil || set.Pairing != nil {
		t.Fatalf("expected empty set at score 85, got %+v", set)
	}
}

func TestGenerateAddon(t *testing.T) {
	t.Run("low fiber yogurt gets chia seeds", func(t *testing.T) {
		a := &domain.ProductAnalysis{
			ProductName:     "Vanilla Yogurt",
			ProductCategory: domain.CategoryFood,
			NutrientsPer100g: &domain.Nutrients{
				Fiber:   domain.Float(0.5),
				Protein: domain.Float(6),
			},
			IsFermented:     true,
			HasLiveCultures: true,
		}

		set := Generate(a, 65)
		if set.Addon == nil {
			t.Fatal("expected an addon")
		}
		if set.Addon.ProductName != "Chia Seeds" {
			t.Errorf("addon = %s, want Chia Seeds", set.Addon.ProductName)
		}
		if set.Addon.Reason != "Boost fiber content" {
			t.Errorf("reason = %q", set.Addon.Reason)
		}
		// 60 base + 25 severe deficiency + 8 boost = 93.
		if set.Addon.RelevanceScore != 93 {
			t.Errorf("relevance = %d, want 93", set.Addon.RelevanceScore)
		}
	})

	t.Run("no addon at or above 80", func(t *testing.T) {
		a := &domain.ProductAnalysis{
			ProductName:      "Vanilla Yogurt",
			ProductCategory:  domain.CategoryFood,
			NutrientsPer100g: &domain.Nutrients{Fiber: domain.Float(0.5)},
		}
		if set := Generate(a, 80); set.Addon != nil {
			t.Errorf("unexpected addon at score 80: %+v", set.Addon)
		}
	})

	t.Run("no addon without nutrient data", func(t *testing.T) {
		a := &domain.ProductAnalysis{
			ProductName:     "Mystery Yogurt",
			ProductCategory: domain.CategoryFood,
		}
		if set := Generate(a, 50); set.Addon != nil {
			t.Errorf("unexpected addon without nutrients: %+v", set.Addon)
		}
	})

	t.Run("gap order prefers fiber over protein", func(t *testing.T) {
		a := &domain.ProductAnalysis{
			ProductName:     "Plain Oatmeal",
			ProductCategory: domain.CategoryFood,
			NutrientsPer100g: &domain.Nutrients{
				Fiber:   domain.Float(1.5),
				Protein: domain.Float(1),
			},
		}
		set := Generate(a, 60)
		if set.Addon == nil {
			t.Fatal("expected an addon")
		}
		if set.Addon.Reason != "Boost fiber content" {
			t.Errorf("reason = %q, want fiber gap first", set.Addon.Reason)
		}
	})

	t.Run("category keyword widening matches porridge as oatmeal", func(t *testing.T) {
		a := &domain.ProductAnalysis{
			ProductName:      "Morning Porridge",
			ProductCategory:  domain.CategoryFood,
			NutrientsPer100g: &domain.Nutrients{Fiber: domain.Float(0.5)},
		}
		set := Generate(a, 60)
		if set.Addon == nil {
			t.Fatal("expected an addon for porridge")
		}
	})

	t.Run("inapplicable food type yields nothing", func(t *testing.T) {
		a := &domain.ProductAnalysis{
			ProductName:      "Canned Tuna",
			ProductCategory:  domain.CategoryFood,
			NutrientsPer100g: &domain.Nutrients{Fiber: domain.Float(0)},
			IsFermented:      true,
			HasLiveCultures:  true,
		}
		if set := Generate(a, 50); set.Addon != nil {
			t.Errorf("unexpected addon for tuna: %+v", set.Addon)
		}
	})
}

func TestGenerateAlternative(t *testing.T) {
	t.Run("soda suggests sparkling water when gap is large", func(t *testing.T) {
		a := &domain.ProductAnalysis{
			ProductName:     "Cherry Soda",
			ProductCategory: domain.CategoryBeverage,
			BeverageType:    "soda",
		}
		set := Generate(a, 20)
		if set.Alternative == nil {
			t.Fatal("expected an alternative")
		}
		if set.Alternative.ProductName != "Sparkling Water with Lemon" {
			t.Errorf("alternative = %s", set.Alternative.ProductName)
		}
		// Gap 95-20 = 75; relevance caps at 95.
		if set.Alternative.EstimatedScoreBoost != 75 {
			t.Errorf("boost = %d, want 75", set.Alternative.EstimatedScoreBoost)
		}
		if set.Alternative.RelevanceScore != 95 {
			t.Errorf("relevance = %d, want 95", set.Alternative.RelevanceScore)
		}
	})

	t.Run("small gap falls through to next entry", func(t *testing.T) {
		// At 60, the sparkling water gap (35) misses its 40 minimum but
		// the kombucha entry (gap 15 < 30) misses too: no alternative.
		a := &domain.ProductAnalysis{
			ProductName:     "Cola",
			ProductCategory: domain.CategoryBeverage,
			BeverageType:    "soda",
		}
		if set := Generate(a, 60); set.Alternative != nil {
			t.Errorf("unexpected alternative at score 60: %+v", set.Alternative)
		}
	})

	t.Run("no alternative at or above 70", func(t *testing.T) {
		a := &domain.ProductAnalysis{
			ProductName:     "Cherry Soda",
			ProductCategory: domain.CategoryBeverage,
		}
		if set := Generate(a, 70); set.Alternative != nil {
			t.Errorf("unexpected alternative at score 70: %+v", set.Alternative)
		}
	})

	t.Run("food categories search snacks first", func(t *testing.T) {
		a := &domain.ProductAnalysis{
			ProductName:     "Nacho Cheese Chips",
			ProductCategory: domain.CategoryFood,
		}
		set := Generate(a, 30)
		if set.Alternative == nil {
			t.Fatal("expected an alternative")
		}
		if set.Alternative.ProductName != "Roasted Chickpeas" {
			t.Errorf("alternative = %s, want Roasted Chickpeas", set.Alternative.ProductName)
		}
	})

	t.Run("beverage type routes to beverage table even for food category", func(t *testing.T) {
		a := &domain.ProductAnalysis{
			ProductName:     "Orange Juice Blend",
			ProductCategory: domain.CategoryFood,
			BeverageType:    "fruit_juice",
		}
		set := Generate(a, 40)
		if set.Alternative == nil {
			t.Fatal("expected an alternative")
		}
		if set.Alternative.ProductName != "Whole Fruit + Water" {
			t.Errorf("alternative = %s", set.Alternative.ProductName)
		}
	})
}

func TestGeneratePairing(t *testing.T) {
	t.Run("spinach pairs with vitamin C", func(t *testing.T) {
		a := &domain.ProductAnalysis{
			ProductName:     "Baby Spinach",
			ProductCategory: domain.CategoryFood,
		}
		set := Generate(a, 82)
		if set.Pairing == nil {
			t.Fatal("expected a pairing")
		}
		if set.Pairing.ProductName != "Citrus or Bell Peppers" {
			t.Errorf("pairing = %s", set.Pairing.ProductName)
		}
		if set.Pairing.RelevanceScore != pairingRelevance {
			t.Errorf("relevance = %d, want %d", set.Pairing.RelevanceScore, pairingRelevance)
		}
	})

	t.Run("turmeric pairs with black pepper", func(t *testing.T) {
		a := &domain.ProductAnalysis{
			ProductName:     "Turmeric Latte Mix",
			ProductCategory: domain.CategoryBeverage,
		}
		set := Generate(a, 75)
		if set.Pairing == nil || set.Pairing.ProductName != "Black Pepper" {
			t.Fatalf("pairing = %+v, want Black Pepper", set.Pairing)
		}
	})

	t.Run("no trigger no pairing", func(t *testing.T) {
		a := &domain.ProductAnalysis{
			ProductName:     "Plain Crackers",
			ProductCategory: domain.CategoryFood,
		}
		if set := Generate(a, 50); set.Pairing != nil {
			t.Errorf("unexpected pairing: %+v", set.Pairing)
		}
	})
}
