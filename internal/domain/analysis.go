package domain

// ProductCategory discriminates which scorer handles an analysis.
type ProductCategory string

const (
	CategoryFood         ProductCategory = "Food"
	CategoryBeverage     ProductCategory = "Beverage"
	CategoryPersonalCare ProductCategory = "PersonalCare"
)

// ProcessingLevel is the NOVA food processing classification (groups 1-4).
type ProcessingLevel string

const (
	NovaUnprocessed    ProcessingLevel = "Unprocessed/Minimally Processed"
	NovaCulinary       ProcessingLevel = "Processed Culinary Ingredients"
	NovaProcessed      ProcessingLevel = "Processed Foods"
	NovaUltraProcessed ProcessingLevel = "Ultra-Processed Foods"
)

// Nutrients holds per-100g nutrient values extracted by the AI.
// Fields are pointers because absence is meaningful: a missing field
// lowers the computed confidence instead of being treated as zero.
type Nutrients struct {
	Calories       *float64 `json:"calories,omitempty"`
	Protein        *float64 `json:"protein,omitempty"`
	TotalFat       *float64 `json:"totalFat,omitempty"`
	SaturatedFat   *float64 `json:"saturatedFat,omitempty"`
	UnsaturatedFat *float64 `json:"unsaturatedFat,omitempty"`
	TransFat       *float64 `json:"transFat,omitempty"`
	Omega3         *float64 `json:"omega3,omitempty"`
	Carbohydrates  *float64 `json:"carbohydrates,omitempty"`
	Fiber          *float64 `json:"fiber,omitempty"`
	AddedSugar     *float64 `json:"addedSugar,omitempty"`
	Sodium         *float64 `json:"sodium,omitempty"`

	// Optional micronutrients
	VitaminA  *float64 `json:"vitaminA,omitempty"`
	VitaminC  *float64 `json:"vitaminC,omitempty"`
	VitaminE  *float64 `json:"vitaminE,omitempty"`
	Calcium   *float64 `json:"calcium,omitempty"`
	Iron      *float64 `json:"iron,omitempty"`
	Magnesium *float64 `json:"magnesium,omitempty"`
	Potassium *float64 `json:"potassium,omitempty"`
}

// PersonalCareDetails carries the free-text ingredient evidence for
// personal care products. Ingredient strings come straight from the AI
// extractor and are matched by pattern, not exact key.
type PersonalCareDetails struct {
	HarmfulIngredients    []string `json:"harmfulIngredients"`
	BeneficialIngredients []string `json:"beneficialIngredients"`
	HasFragrance          bool     `json:"hasFragrance"`
	IsCrueltyFree         bool     `json:"isCrueltyFree"`
	IsEWGVerified         bool     `json:"isEWGVerified,omitempty"`
}

// HealthierAlternative is an AI-suggested substitute passed through
// scoring unmodified.
type HealthierAlternative struct {
	ProductName    string `json:"productName"`
	Description    string `json:"description"`
	EstimatedScore int    `json:"estimatedScore"`
}

// ProductAnalysis is the structured profile produced by the AI extractor.
// It is decoded strictly at the boundary; every optional field has an
// explicit absent representation so the scorers never guess.
type ProductAnalysis struct {
	IsConsumerProduct bool            `json:"isConsumerProduct"`
	RejectionReason   string          `json:"rejectionReason,omitempty"`
	ProductName       string          `json:"productName"`
	ProductCategory   ProductCategory `json:"productCategory"`
	ProcessingLevel   ProcessingLevel `json:"processingLevel,omitempty"`

	NutrientsPer100g *Nutrients `json:"nutrientsPer100g,omitempty"`

	GlycemicLoad *float64 `json:"glycemicLoad,omitempty"`

	ProteinSources []string `json:"proteinSources,omitempty"`
	FatSources     []string `json:"fatSources,omitempty"`

	Additives  []string `json:"additives,omitempty"`
	Sweeteners []string `json:"sweeteners,omitempty"`

	IsFermented      bool   `json:"isFermented,omitempty"`
	FermentationType string `json:"fermentationType,omitempty"`
	HasLiveCultures  bool   `json:"hasLiveCultures,omitempty"`

	PolyphenolSources []string `json:"polyphenolSources,omitempty"`

	WholeFoodPercentage *float64 `json:"wholeFoodPercentage,omitempty"`
	FruitVegPercentage  *float64 `json:"fruitVegPercentage,omitempty"`

	PersonalCareDetails *PersonalCareDetails `json:"personalCareDetails,omitempty"`

	BeverageType string `json:"beverageType,omitempty"`

	HealthierAlternative *HealthierAlternative `json:"healthierAlternative,omitempty"`

	// Self-reported by the extractor; advisory only. The engine computes
	// its own completeness from which fields are actually present.
	DataCompleteness *float64 `json:"dataCompleteness,omitempty"`
}

// Value unwraps an optional nutrient, treating absence as zero.
func Value(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// Float returns a pointer to v, for building analyses literally.
func Float(v float64) *float64 {
	return &v
}
