package recommend

// addonOption is a single product add-on suggestion tied to the food
// contexts it makes sense in.
type addonOption struct {
	Name         string
	Description  string
	Boost        int
	ApplicableTo []string
}

// Gap identifiers, checked in this order. The first gap that yields an
// applicable, relevant add-on wins.
const (
	gapLowFiber       = "low_fiber"
	gapLowProtein     = "low_protein"
	gapLowOmega3      = "low_omega3"
	gapHighSugar      = "high_sugar"
	gapNeedsFermented = "needs_fermented"
)

var gapOrder = []string{
	gapLowFiber,
	gapLowProtein,
	gapLowOmega3,
	gapHighSugar,
	gapNeedsFermented,
}

var addonsByGap = map[string][]addonOption{
	gapLowFiber: {
		{Name: "Chia Seeds", Description: "Add 1 tbsp for +5g fiber and omega-3", Boost: 8, ApplicableTo: []string{"yogurt", "oatmeal", "smoothie", "cereal", "salad"}},
		{Name: "Ground Flaxseed", Description: "Add 2 tbsp for fiber and lignans", Boost: 6, ApplicableTo: []string{"yogurt", "oatmeal", "smoothie", "baking"}},
		{Name: "Fresh Berries", Description: "Add 1/2 cup for fiber and antioxidants", Boost: 7, ApplicableTo: []string{"yogurt", "oatmeal", "cereal", "pancakes"}},
		{Name: "Sliced Almonds", Description: "Add 1oz for fiber, protein and healthy fats", Boost: 5, ApplicableTo: []string{"yogurt", "oatmeal", "salad", "cereal"}},
	},
	gapLowProtein: {
		{Name: "Greek Yogurt", Description: "Add 1/2 cup for +10g protein", Boost: 8, ApplicableTo: []string{"smoothie", "fruit", "granola"}},
		{Name: "Hemp Seeds", Description: "Add 2 tbsp for +6g complete protein", Boost: 6, ApplicableTo: []string{"yogurt", "oatmeal", "salad", "smoothie"}},
		{Name: "Nut Butter", Description: "Add 2 tbsp for protein and healthy fats", Boost: 5, ApplicableTo: []string{"toast", "oatmeal", "smoothie", "fruit"}},
		{Name: "Cottage Cheese", Description: "Add 1/2 cup for +14g protein", Boost: 9, ApplicableTo: []string{"fruit", "toast", "salad"}},
	},
	gapLowOmega3: {
		{Name: "Walnuts", Description: "Add 1oz for ALA omega-3", Boost: 6, ApplicableTo: []string{"yogurt", "oatmeal", "salad", "cereal"}},
		{Name: "Chia Seeds", Description: "Add 1 tbsp for omega-3 and fiber", Boost: 7, ApplicableTo: []string{"yogurt", "oatmeal", "smoothie"}},
		{Name: "Ground Flaxseed", Description: "Add 2 tbsp for ALA omega-3", Boost: 6, ApplicableTo: []string{"yogurt", "oatmeal", "smoothie", "baking"}},
	},
	gapHighSugar: {
		{Name: "Cinnamon", Description: "Add 1 tsp to help balance blood sugar response", Boost: 2, ApplicableTo: []string{"oatmeal", "yogurt", "coffee", "smoothie"}},
		{Name: "Nuts or Seeds", Description: "Add protein/fat to slow sugar absorption", Boost: 4, ApplicableTo: []string{"fruit", "juice", "cereal", "dessert"}},
	},
	gapNeedsFermented: {
		{Name: "Sauerkraut", Description: "Add 2 tbsp for probiotics", Boost: 5, ApplicableTo: []string{"sandwich", "salad", "bowl", "meat"}},
		{Name: "Kimchi", Description: "Add for probiotics and flavor", Boost: 6, ApplicableTo: []string{"rice", "bowl", "eggs", "noodles"}},
		{Name: "Miso Paste", Description: "Add to dressings or soups", Boost: 4, ApplicableTo: []string{"soup", "dressing", "marinade"}},
	},
}

var gapReasons = map[string]string{
	gapLowFiber:       "Boost fiber content",
	gapLowProtein:     "Add protein",
	gapLowOmega3:      "Add omega-3 fatty acids",
	gapHighSugar:      "Balance blood sugar impact",
	gapNeedsFermented: "Add probiotic benefits",
}

// alternativeOption names a healthier swap, keyed on product-name
// keywords and gated by a minimum score gap.
type alternativeOption struct {
	Trigger        []string
	Alternative    string
	Description    string
	EstimatedScore int
	MinScoreGap    int
}

var beverageAlternatives = []alternativeOption{
	{Trigger: []string{"soda", "cola", "sprite", "fanta", "pepsi"}, Alternative: "Sparkling Water with Lemon", Description: "Zero sugar, same fizz satisfaction", EstimatedScore: 95, MinScoreGap: 40},
	{Trigger: []string{"soda", "cola"}, Alternative: "Kombucha", Description: "Fermented, low sugar, probiotic benefits", EstimatedScore: 75, MinScoreGap: 30},
	{Trigger: []string{"energy drink", "red bull", "monster"}, Alternative: "Green Tea", Description: "Natural caffeine with L-theanine for smooth energy", EstimatedScore: 92, MinScoreGap: 35},
	{Trigger: []string{"energy drink"}, Alternative: "Black Coffee", Description: "Clean caffeine, zero sugar, antioxidants", EstimatedScore: 90, MinScoreGap: 30},
	{Trigger: []string{"fruit juice", "orange juice", "apple juice"}, Alternative: "Whole Fruit + Water", Description: "Get the fiber, skip the sugar spike", EstimatedScore: 88, MinScoreGap: 25},
	{Trigger: []string{"sports drink", "gatorade", "powerade"}, Alternative: "Coconut Water", Description: "Natural electrolytes without artificial colors", EstimatedScore: 80, MinScoreGap: 20},
}

// foodAlternatives concatenates snacks, breakfast, meals, and condiments.
// Match order matters: the first trigger hit that clears its gap wins.
var foodAlternatives = []alternativeOption{
	// Snacks
	{Trigger: []string{"chips", "doritos", "cheetos", "lays"}, Alternative: "Roasted Chickpeas", Description: "Crunchy, high protein, high fiber", EstimatedScore: 78, MinScoreGap: 25},
	{Trigger: []string{"chips", "crisps"}, Alternative: "Mixed Nuts", Description: "Healthy fats, protein, satisfying crunch", EstimatedScore: 82, MinScoreGap: 25},
	{Trigger: []string{"candy", "gummy", "skittles", "m&m"}, Alternative: "Dark Chocolate (70%+)", Description: "Satisfies sweet tooth with antioxidants", EstimatedScore: 65, MinScoreGap: 30},
	{Trigger: []string{"candy", "sweets"}, Alternative: "Fresh Berries", Description: "Natural sweetness with fiber and vitamins", EstimatedScore: 90, MinScoreGap: 35},
	{Trigger: []string{"cookie", "oreo", "chips ahoy"}, Alternative: "Apple Slices with Almond Butter", Description: "Sweet, satisfying, nutritious", EstimatedScore: 85, MinScoreGap: 30},
	{Trigger: []string{"ice cream"}, Alternative: "Frozen Banana Soft Serve", Description: "Blend frozen bananas for creamy texture", EstimatedScore: 80, MinScoreGap: 25},
	{Trigger: []string{"ice cream"}, Alternative: "Greek Yogurt with Berries", Description: "Creamy, protein-rich, probiotic", EstimatedScore: 82, MinScoreGap: 25},
	// Breakfast
	{Trigger: []string{"cereal", "frosted", "fruit loops", "lucky charms"}, Alternative: "Steel Cut Oatmeal", Description: "Whole grain, high fiber, low glycemic", EstimatedScore: 85, MinScoreGap: 30},
	{Trigger: []string{"cereal"}, Alternative: "Greek Yogurt Parfait", Description: "Protein-rich with fresh fruit and nuts", EstimatedScore: 83, MinScoreGap: 25},
	{Trigger: []string{"pastry", "pop tart", "toaster strudel"}, Alternative: "Whole Grain Toast with Nut Butter", Description: "Complex carbs, protein, healthy fats", EstimatedScore: 78, MinScoreGap: 30},
	{Trigger: []string{"pancake", "waffle"}, Alternative: "Oat Pancakes", Description: "Made with oats and banana, no added sugar", EstimatedScore: 75, MinScoreGap: 20},
	{Trigger: []string{"bacon", "sausage"}, Alternative: "Eggs with Avocado", Description: "High protein, healthy fats, no processed meat", EstimatedScore: 80, MinScoreGap: 30},
	// Meals
	{Trigger: []string{"instant noodle", "ramen", "cup noodle"}, Alternative: "Rice Noodle Soup with Vegetables", Description: "Less sodium, more nutrients", EstimatedScore: 70, MinScoreGap: 25},
	{Trigger: []string{"hot dog", "corn dog"}, Alternative: "Grilled Chicken Wrap", Description: "Lean protein, no processed meat", EstimatedScore: 75, MinScoreGap: 35},
	{Trigger: []string{"pizza", "frozen pizza"}, Alternative: "Homemade Flatbread with Vegetables", Description: "Control ingredients, add vegetables", EstimatedScore: 70, MinScoreGap: 25},
	{Trigger: []string{"burger", "fast food"}, Alternative: "Black Bean Burger", Description: "High fiber, no processed meat", EstimatedScore: 72, MinScoreGap: 25},
	{Trigger: []string{"fried chicken", "nugget"}, Alternative: "Baked Chicken Breast", Description: "Same protein, no deep frying", EstimatedScore: 78, MinScoreGap: 30},
	// Condiments
	{Trigger: []string{"ketchup"}, Alternative: "Fresh Salsa", Description: "Less sugar, more vegetables", EstimatedScore: 80, MinScoreGap: 20},
	{Trigger: []string{"mayo", "mayonnaise"}, Alternative: "Avocado or Hummus", Description: "Healthy fats, more nutrients", EstimatedScore: 78, MinScoreGap: 20},
	{Trigger: []string{"ranch", "blue cheese", "creamy dressing"}, Alternative: "Olive Oil & Lemon Dressing", Description: "Heart-healthy fats, no additives", EstimatedScore: 85, MinScoreGap: 25},
}

// pairingOption names a complementary food with the nutritional synergy
// behind it.
type pairingOption struct {
	Trigger []string
	Pairing string
	Reason  string
	Boost   int
}

// pairingGroups are checked in order; the first trigger hit anywhere
// wins.
var pairingGroups = [][]pairingOption{
	// Iron absorption
	{
		{Trigger: []string{"spinach", "lentils", "beans", "tofu"}, Pairing: "Citrus or Bell Peppers", Reason: "Vitamin C increases iron absorption by up to 6x", Boost: 8},
	},
	// Fat-soluble vitamins
	{
		{Trigger: []string{"carrot", "sweet potato", "tomato", "leafy green"}, Pairing: "Olive Oil or Avocado", Reason: "Fat helps absorb vitamins A, D, E, K and lycopene", Boost: 6},
	},
	// Turmeric absorption
	{
		{Trigger: []string{"turmeric", "curry"}, Pairing: "Black Pepper", Reason: "Piperine increases curcumin absorption by 2000%", Boost: 10},
	},
	// Complete protein
	{
		{Trigger: []string{"rice", "grain"}, Pairing: "Beans or Lentils", Reason: "Creates complete amino acid profile", Boost: 7},
		{Trigger: []string{"beans", "lentils", "legume"}, Pairing: "Whole Grain", Reason: "Creates complete amino acid profile", Boost: 7},
	},
}

// foodCategoryKeywords widen an add-on's applicability list: "oatmeal"
// also matches porridge and muesli in the product name.
var foodCategoryKeywords = map[string][]string{
	"yogurt":   {"yogurt", "yoghurt", "greek", "skyr"},
	"oatmeal":  {"oatmeal", "oat", "porridge", "muesli"},
	"smoothie": {"smoothie", "shake", "blend"},
	"cereal":   {"cereal", "granola", "flakes", "crunch"},
	"salad":    {"salad", "slaw", "greens"},
	"toast":    {"toast", "bread", "bagel"},
	"fruit":    {"fruit", "apple", "banana", "berry", "orange"},
	"soup":     {"soup", "broth", "stew"},
	"bowl":     {"bowl", "buddha", "grain bowl", "poke"},
	"rice":     {"rice", "pilaf", "risotto"},
	"sandwich": {"sandwich", "sub", "wrap", "burger"},
	"meat":     {"chicken", "beef", "pork", "steak", "meat"},
	"eggs":     {"egg", "omelette", "scramble"},
	"noodles":  {"noodle", "pasta", "spaghetti", "ramen"},
}
