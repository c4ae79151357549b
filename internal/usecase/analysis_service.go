package usecase

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/futureissustainable/healthscore-2.0/internal/domain"
	"github.com/futureissustainable/healthscore-2.0/internal/recommend"
	"github.com/futureissustainable/healthscore-2.0/internal/safety"
	"github.com/futureissustainable/healthscore-2.0/internal/scoring"
)

// AnalysisServiceConfig holds configuration for the analysis pipeline.
type AnalysisServiceConfig struct {
	SafetyTimeout time.Duration
}

// AnalysisService runs the full analyze pipeline:
// extract -> score -> safety override -> recommend -> history.
type AnalysisService struct {
	extractor domain.ProductExtractor
	checker   *safety.Checker
	history   domain.HistoryRepository
	logger    *logrus.Logger
}

// AnalysisResponse is the payload the delivery layer serializes.
type AnalysisResponse struct {
	Result          *domain.ScoringResult     `json:"result"`
	Recommendations *domain.RecommendationSet `json:"recommendations,omitempty"`
}

// NewAnalysisService wires the pipeline with its dependencies. The
// oracle may be nil; the safety stage then passes results through.
func NewAnalysisService(
	extractor domain.ProductExtractor,
	oracle domain.SafetyOracle,
	history domain.HistoryRepository,
	config AnalysisServiceConfig,
	logger *logrus.Logger,
) *AnalysisService {
	if logger == nil {
		logger = logrus.New()
	}
	return &AnalysisService{
		extractor: extractor,
		checker:   safety.NewChecker(oracle, config.SafetyTimeout, logger),
		history:   history,
		logger:    logger,
	}
}

// Analyze scores a product described by free text and an optional
// base64 image. clientID keys the scan history; history failures are
// logged and never fail the call.
func (s *AnalysisService) Analyze(ctx context.Context, clientID, term, base64Image string) (*AnalysisResponse, error) {
	if term == "" {
		return nil, domain.ErrInvalidRequest
	}

	analysis, err := s.extractor.ExtractProduct(ctx, term, base64Image)
	if err != nil {
		return nil, err
	}

	result, err := scoring.Score(analysis)
	if err != nil {
		return nil, err
	}

	result = s.checker.Apply(ctx, analysis, result)

	response := &AnalysisResponse{Result: result}

	// An overridden score is a safety verdict, not a nutritional one;
	// suggesting add-ons for it would be absurd.
	if result.OverrideReason == "" {
		set := recommend.Generate(analysis, result.FinalScore)
		response.Recommendations = &set
	}

	s.appendHistory(ctx, clientID, response)

	return response, nil
}

// History returns a client's most recent scans.
func (s *AnalysisService) History(ctx context.Context, clientID string, limit int) ([]*domain.ScanRecord, error) {
	if s.history == nil {
		return nil, domain.ErrHistoryUnavailable
	}
	return s.history.List(ctx, clientID, limit)
}

func (s *AnalysisService) appendHistory(ctx context.Context, clientID string, response *AnalysisResponse) {
	if s.history == nil || clientID == "" {
		return
	}

	record := &domain.ScanRecord{
		ProductName:     response.Result.ProductName,
		Score:           response.Result.FinalScore,
		Category:        response.Result.Category,
		Result:          response.Result,
		Recommendations: response.Recommendations,
		ScannedAt:       time.Now().Unix(),
	}
	if err := s.history.Add(ctx, clientID, record); err != nil {
		s.logger.WithError(err).WithField("client", clientID).
			Warn("failed to append scan history")
	}
}
