package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/futureissustainable/healthscore-2.0/internal/domain"
	"github.com/futureissustainable/healthscore-2.0/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	service *usecase.AnalysisService
	quota   *Quota
}

// NewHandler creates a new HTTP handler
func NewHandler(service *usecase.AnalysisService, quota *Quota) *Handler {
	return &Handler{service: service, quota: quota}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "healthscore-backend",
		"version": "2.0.0",
	})
}

type analyzeRequest struct {
	Term  string `json:"term"`
	Image string `json:"image"`
}

// Analyze runs the full scoring pipeline for a product description.
func (h *Handler) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Term == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "term is required"})
		return
	}

	response, err := h.service.Analyze(c.Request.Context(), ClientIP(c), req.Term, req.Image)
	if err != nil {
		h.renderAnalyzeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// renderAnalyzeError maps pipeline sentinels to HTTP status codes. The
// sentinel message is user-facing for rejection cases; everything else
// stays generic.
func (h *Handler) renderAnalyzeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotConsumerProduct),
		errors.Is(err, domain.ErrUnsupportedCategory):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request parameters"})
	case errors.Is(err, domain.ErrExtractionFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": "product analysis is temporarily unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// History returns the caller's most recent scans.
func (h *Handler) History(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	records, err := h.service.History(c.Request.Context(), ClientIP(c), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "history is unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"scans": records, "count": len(records)})
}

// Usage reports the caller's standing against the daily quota without
// consuming a scan.
func (h *Handler) Usage(c *gin.Context) {
	status := h.quota.Status(ClientIP(c), time.Now())
	c.JSON(http.StatusOK, gin.H{
		"limit":     status.Limit,
		"used":      status.Used,
		"remaining": status.Remaining,
		"reset":     status.Reset,
	})
}
