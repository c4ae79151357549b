package scoring

import "github.com/futureissustainable/healthscore-2.0/internal/domain"

// Evidence weights follow the GRADE framework: the stronger the
// scientific consensus behind an adjustment, the more of its raw points
// survive into the score.
const (
	WeightStrong      = 1.0  // Cochrane reviews, large RCTs
	WeightModerate    = 0.75 // protein quality, omega ratios, whole grains
	WeightEmerging    = 0.5  // ultra-processing effects, polyphenols
	WeightConflicting = 0.25 // artificial sweeteners, disputed additives
)

// scoreCategory maps a score band to its user-facing label and grade.
type scoreCategory struct {
	Min   int
	Label string
	Grade string
}

// scoreCategories uses the current 80/60/40/20 breakpoints. Ordered
// highest band first; categorize walks it top down.
var scoreCategories = []scoreCategory{
	{Min: 80, Label: "Excellent", Grade: "A"},
	{Min: 60, Label: "Good", Grade: "B"},
	{Min: 40, Label: "Moderate", Grade: "C"},
	{Min: 20, Label: "Poor", Grade: "D"},
	{Min: 0, Label: "Avoid", Grade: "F"},
}

// novaMultipliers apply once, multiplicatively, after all additive
// adjustments.
var novaMultipliers = map[domain.ProcessingLevel]float64{
	domain.NovaUnprocessed:    1.05,
	domain.NovaCulinary:       1.00,
	domain.NovaProcessed:      0.92,
	domain.NovaUltraProcessed: 0.78,
}

// dailyRef captures an NRF9.3 daily reference value with either a point
// ceiling (nutrients to encourage) or a penalty ceiling (to limit).
type dailyRef struct {
	DV         float64
	MaxPoints  float64
	MaxPenalty float64
}

var dailyReference = map[string]dailyRef{
	"fiber":        {DV: 25, MaxPoints: 10},
	"protein":      {DV: 50, MaxPoints: 8},
	"saturatedFat": {DV: 20, MaxPenalty: 15},
	"addedSugar":   {DV: 50, MaxPenalty: 20},
	"sodium":       {DV: 2300, MaxPenalty: 15},
	"transFat":     {DV: 0, MaxPenalty: 15},
}

// Glycemic load thresholds: low is a bonus, high a penalty, in between
// neutral.
const (
	glycemicLowMax  = 10
	glycemicHighMin = 20
	glycemicLowPts  = 2
	glycemicHighPts = 2
)

// proteinSourceScores rate protein quality per source tag (BMJ 2020
// meta-analysis ranges, roughly -3..+3).
var proteinSourceScores = map[string]float64{
	"fatty_fish":           3,
	"legumes":              2.5,
	"nuts_seeds":           2,
	"tofu_tempeh":          2,
	"greek_yogurt":         1,
	"poultry":              0.5,
	"eggs":                 0.5,
	"whey_protein":         0.5,
	"unprocessed_red_meat": -1,
	"processed_meat":       -3, // IARC Group 1 carcinogen
}

// fatTypeScores rate fat quality per source tag.
var fatTypeScores = map[string]float64{
	"omega3_epa_dha":         3,
	"extra_virgin_olive_oil": 2.5,
	"omega3_ala":             1.5,
	"mufa_other":             1.5,
	"pufa_seed_oils":         0.5,
	"whole_egg_fat":          0,
	"dairy_fat":              0,
	"coconut_oil":            -0.5,
	"butter":                 -1,
	"meat_saturated_fat":     -1.5,
	"industrial_trans_fat":   -5,
	"natural_trans_fat":      0,
}

// additiveInfo carries a signed score plus the tier of evidence behind
// it; the tier picks the weight applied at scoring time.
type additiveInfo struct {
	Score      float64
	Confidence string // HIGH, MODERATE, LOW
}

var additiveScores = map[string]additiveInfo{
	"trans_fats":               {Score: -5, Confidence: "HIGH"},
	"bha_bht":                  {Score: -2, Confidence: "MODERATE"},
	"sodium_nitrite":           {Score: -2, Confidence: "HIGH"},
	"titanium_dioxide":         {Score: -2, Confidence: "MODERATE"},
	"brominated_vegetable_oil": {Score: -2, Confidence: "HIGH"},
	"carrageenan":              {Score: -1.5, Confidence: "MODERATE"},
	"polysorbate_80":           {Score: -1.5, Confidence: "MODERATE"},
	"artificial_colors":        {Score: -1, Confidence: "MODERATE"},
	"hfcs":                     {Score: -1, Confidence: "LOW"},
	"msg":                      {Score: 0, Confidence: "HIGH"},
	"soy_lecithin":             {Score: 0, Confidence: "HIGH"},
	"citric_acid":              {Score: 0, Confidence: "HIGH"},
	"xanthan_gum":              {Score: 0, Confidence: "HIGH"},
	"guar_gum":                 {Score: 0, Confidence: "HIGH"},
	"tocopherols":              {Score: 0.5, Confidence: "HIGH"},
	"ascorbic_acid":            {Score: 0.5, Confidence: "HIGH"},
}

// sweetenerScores are always weighted CONFLICTING at scoring time
// regardless of the per-entry tier; the evidence is genuinely disputed.
var sweetenerScores = map[string]additiveInfo{
	"stevia":       {Score: -0.5, Confidence: "LOW"},
	"erythritol":   {Score: -1, Confidence: "MODERATE"},
	"xylitol":      {Score: -1, Confidence: "MODERATE"},
	"aspartame":    {Score: 0, Confidence: "LOW"},
	"sucralose":    {Score: -0.5, Confidence: "LOW"},
	"saccharin":    {Score: -0.5, Confidence: "LOW"},
	"acesulfame_k": {Score: -0.5, Confidence: "LOW"},
}

// fermentedInfo ties a fermentation type to its bonus and whether that
// preparation actually retains live cultures. The bonus only applies
// when the product, the extractor, and this table all agree on live
// cultures.
type fermentedInfo struct {
	Score           float64
	HasLiveCultures bool
}

var fermentedScores = map[string]fermentedInfo{
	"kefir":                 {Score: 3, HasLiveCultures: true},
	"kimchi":                {Score: 3, HasLiveCultures: true},
	"natto":                 {Score: 3, HasLiveCultures: true},
	"sauerkraut_raw":        {Score: 2.5, HasLiveCultures: true},
	"miso_unpasteurized":    {Score: 2, HasLiveCultures: true},
	"greek_yogurt":          {Score: 2, HasLiveCultures: true},
	"kombucha":              {Score: 1.5, HasLiveCultures: true},
	"sourdough":             {Score: 0.5, HasLiveCultures: false},
	"pasteurized_fermented": {Score: 0, HasLiveCultures: false},
}

var polyphenolScores = map[string]float64{
	"sulforaphane": 2.5,
	"flavanols":    2,
	"anthocyanins": 2,
	"egcg":         1.5,
	"lycopene":     1.5,
	"resveratrol":  1,
	"quercetin":    1,
	"curcumin":     1,
}

// Personal care penalties are stored as the absolute points subtracted.
var personalCarePenalties = map[string]float64{
	"parabens":               8,
	"phthalates":             8,
	"sulfates_sls_sles":      3,
	"synthetic_fragrance":    3,
	"formaldehyde_releasers": 5,
	"triclosan":              4,
	"oxybenzone":             3,
	"coal_tar":               5,
}

var personalCareBonuses = map[string]float64{
	"ceramides":            5,
	"vitamin_e_tocopherol": 3,
	"niacinamide":          3,
	"hyaluronic_acid":      2,
	"cruelty_free":         3,
	"ewg_verified":         5,
}

// beverageBaseScores anchor beverage scoring in hydration context.
var beverageBaseScores = map[string]float64{
	"water":           100,
	"mineral_water":   100,
	"sparkling_water": 98,
	"herbal_tea":      95,
	"green_tea":       92,
	"black_coffee":    90,
	"coconut_water":   80,
	"diet_soda":       60,
	"sports_drink":    50,
	"fruit_juice":     40,
	"energy_drink":    35,
	"soda":            20,
}

// User-facing warning strings.
const (
	warnArtificialSweeteners = "Health effects actively debated; research evolving"
	warnErythritolXylitol    = "Recent studies suggest cardiovascular concerns"
	warnProcessedMeat        = "Strong evidence links to cancer risk (IARC Group 1)"
	warnUltraProcessed       = "Emerging research suggests effects beyond nutrients"
	warnMissingFiber         = "Score estimated; fiber data unavailable"
	warnInsufficientData     = "Limited data available; score is estimated"
)
