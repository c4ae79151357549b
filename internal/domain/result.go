package domain

// ConfidenceLevel labels how much of a score rests on supplied data.
type ConfidenceLevel string

const (
	ConfidenceHigh     ConfidenceLevel = "HIGH"
	ConfidenceModerate ConfidenceLevel = "MODERATE"
	ConfidenceLow      ConfidenceLevel = "LOW"
)

// ConfidenceRating pairs the level with the numeric completeness that
// produced it.
type ConfidenceRating struct {
	Level            ConfidenceLevel `json:"level"`
	DataCompleteness float64         `json:"dataCompleteness"`
	Message          string          `json:"message,omitempty"`
}

// Adjustment is a single named contribution to the score breakdown.
type Adjustment struct {
	Category       string  `json:"category"`
	Reason         string  `json:"reason"`
	Points         float64 `json:"points"`
	EvidenceWeight float64 `json:"evidenceWeight"`
}

// Breakdown explains how a final score was assembled.
type Breakdown struct {
	BaseScore            float64      `json:"baseScore"`
	PositivePoints       float64      `json:"positivePoints"`
	NegativePoints       float64      `json:"negativePoints"`
	NovaMultiplier       float64      `json:"novaMultiplier"`
	ConfidenceAdjustment float64      `json:"confidenceAdjustment"`
	Adjustments          []Adjustment `json:"adjustments"`
}

// ScoringResult is the full output of a scoring pass. Results are
// created fresh per request and never mutated after return; the safety
// override produces a new derived result instead of editing in place.
type ScoringResult struct {
	FinalScore           int                   `json:"finalScore"`
	Category             string                `json:"category"`
	Grade                string                `json:"grade"`
	ProductName          string                `json:"productName"`
	Breakdown            Breakdown             `json:"breakdown"`
	Confidence           ConfidenceRating      `json:"confidence"`
	Warnings             []string              `json:"warnings"`
	Nutrients            *Nutrients            `json:"nutrients,omitempty"`
	HealthierAlternative *HealthierAlternative `json:"healthierAlternative,omitempty"`
	OverrideReason       string                `json:"overrideReason,omitempty"`
}

// RecommendationType distinguishes the three suggestion slots.
type RecommendationType string

const (
	RecommendationAddon       RecommendationType = "addon"
	RecommendationAlternative RecommendationType = "alternative"
	RecommendationPairing     RecommendationType = "pairing"
)

// Recommendation is a single suggestion surfaced alongside a score.
type Recommendation struct {
	Type                RecommendationType `json:"type"`
	ProductName         string             `json:"productName"`
	Description         string             `json:"description"`
	Reason              string             `json:"reason"`
	EstimatedScoreBoost int                `json:"estimatedScoreBoost,omitempty"`
	RelevanceScore      int                `json:"relevanceScore"`
}

// RecommendationSet holds at most one suggestion per slot.
type RecommendationSet struct {
	Addon       *Recommendation `json:"addon"`
	Alternative *Recommendation `json:"alternative"`
	Pairing     *Recommendation `json:"pairing"`
}

// SafetyJudgment is the validated shape returned by the safety oracle.
type SafetyJudgment struct {
	IsMisleading   bool   `json:"isMisleading"`
	CorrectedScore *int   `json:"correctedScore,omitempty"`
	Reason         string `json:"reason,omitempty"`
}

// ScanRecord is what the history store persists per analyze call.
type ScanRecord struct {
	ProductName     string             `json:"productName"`
	Score           int                `json:"score"`
	Category        string             `json:"category"`
	Result          *ScoringResult     `json:"result"`
	Recommendations *RecommendationSet `json:"recommendations,omitempty"`
	ScannedAt       int64              `json:"scannedAt"`
}
