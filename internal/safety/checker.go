// Package safety runs the common-sense override pass: an AI oracle
// reviews scores the nutritional model may have been fooled into
// awarding (inedible or toxic items with clean macros). The oracle is
// advisory; any failure leaves the original score untouched.
package safety

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/futureissustainable/healthscore-2.0/internal/domain"
)

const (
	// oracleGate: scores below this are already in the Avoid band; a
	// misleadingly high score is impossible, so the oracle is skipped.
	oracleGate = 20

	defaultTimeout = 12 * time.Second
)

// Checker applies the safety override to scored results.
type Checker struct {
	oracle  domain.SafetyOracle
	timeout time.Duration
	logger  *logrus.Logger
}

func NewChecker(oracle domain.SafetyOracle, timeout time.Duration, logger *logrus.Logger) *Checker {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Checker{oracle: oracle, timeout: timeout, logger: logger}
}

// Apply returns the result to surface to the caller: the input
// unchanged when the oracle is skipped, fails, or finds nothing wrong,
// or a fresh overridden result when it flags the score as dangerous.
// The input result is never mutated.
func (c *Checker) Apply(ctx context.Context, a *domain.ProductAnalysis, result *domain.ScoringResult) *domain.ScoringResult {
	if result.FinalScore < oracleGate {
		return result
	}
	if c.oracle == nil {
		return result
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	judgment, err := c.oracle.Judge(ctx, a.ProductName, result.FinalScore, string(a.ProductCategory))
	if err != nil {
		c.logger.WithError(err).WithField("product", a.ProductName).
			Warn("safety check failed, keeping original score")
		return result
	}
	if judgment == nil || !judgment.IsMisleading {
		return result
	}

	c.logger.WithFields(logrus.Fields{
		"product": a.ProductName,
		"reason":  judgment.Reason,
	}).Warn("safety override applied")

	return override(result, judgment)
}

// override builds the corrected result. The score defaults to 0 when
// the oracle omits one, and whatever it supplies is clamped to [0,100].
func override(result *domain.ScoringResult, judgment *domain.SafetyJudgment) *domain.ScoringResult {
	corrected := 0
	if judgment.CorrectedScore != nil {
		corrected = *judgment.CorrectedScore
		if corrected < 0 {
			corrected = 0
		}
		if corrected > 100 {
			corrected = 100
		}
	}

	overridden := *result
	overridden.FinalScore = corrected
	overridden.Category = "Avoid"
	overridden.Grade = "F"
	overridden.OverrideReason = judgment.Reason
	overridden.Warnings = append(append([]string(nil), result.Warnings...), judgment.Reason)
	overridden.Breakdown.Adjustments = []domain.Adjustment{{
		Category:       "Safety Override",
		Reason:         "Safety Override: " + judgment.Reason,
		Points:         -100,
		EvidenceWeight: 1.0,
	}}
	return &overridden
}
