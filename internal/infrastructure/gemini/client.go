// Package gemini implements the AI boundary: product extraction and the
// safety judgment call against the Gemini generateContent API. Both
// return strictly decoded domain structures; nothing downstream ever
// parses model output.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/futureissustainable/healthscore-2.0/internal/domain"
)

// Config holds Gemini API configuration.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Client talks to the Gemini API. It implements domain.ProductExtractor
// and domain.SafetyOracle.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	model       string
	rateLimiter *rate.Limiter
	logger      *logrus.Logger
}

// NewClient creates a Gemini client. The free tier allows 60 requests
// per minute; the limiter holds outbound traffic to 1 req/sec with a
// small burst.
func NewClient(cfg Config, logger *logrus.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-3.0-flash"
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      cfg.APIKey,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		model:       cfg.Model,
		rateLimiter: rate.NewLimiter(rate.Limit(1), 5),
		logger:      logger,
	}
}

// Gemini wire types.
type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseMimeType string  `json:"responseMimeType"`
	Temperature      float64 `json:"temperature"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

const extractionPrompt = `You are a product health analyst. Analyze the consumer product and respond ONLY with valid JSON in this exact format:
{
  "isConsumerProduct": boolean,
  "rejectionReason": string | null,
  "productName": string,
  "productCategory": "Food" | "Beverage" | "PersonalCare",
  "processingLevel": "Unprocessed/Minimally Processed" | "Processed Culinary Ingredients" | "Processed Foods" | "Ultra-Processed Foods",
  "nutrientsPer100g": { "calories": number, "protein": number, "totalFat": number, "saturatedFat": number, "unsaturatedFat": number, "transFat": number, "omega3": number, "carbohydrates": number, "fiber": number, "addedSugar": number, "sodium": number, "potassium": number } | null,
  "glycemicLoad": number | null,
  "proteinSources": string[],
  "fatSources": string[],
  "additives": string[],
  "sweeteners": string[],
  "isFermented": boolean,
  "fermentationType": string | null,
  "hasLiveCultures": boolean,
  "polyphenolSources": string[],
  "wholeFoodPercentage": number | null,
  "fruitVegPercentage": number | null,
  "personalCareDetails": { "harmfulIngredients": string[], "beneficialIngredients": string[], "hasFragrance": boolean, "isCrueltyFree": boolean, "isEWGVerified": boolean } | null,
  "beverageType": string | null,
  "healthierAlternative": { "productName": string, "description": string, "estimatedScore": number } | null,
  "dataCompleteness": number
}
Omit any nutrient field you cannot determine rather than guessing zero. Sodium is in mg, all other nutrients in grams per 100g. Source tags use snake_case (e.g. fatty_fish, extra_virgin_olive_oil). beverageType uses snake_case (e.g. sparkling_water, energy_drink). If the item is not a consumer product, set isConsumerProduct to false with a short rejectionReason.`

// ExtractProduct analyzes free text plus an optional base64 JPEG and
// returns the structured profile. Non-consumer input is rejected here
// so the scoring pipeline never sees it.
func (c *Client) ExtractProduct(ctx context.Context, term, base64Image string) (*domain.ProductAnalysis, error) {
	parts := []part{
		{Text: extractionPrompt},
		{Text: "Product: " + term},
	}
	if base64Image != "" {
		parts = append(parts, part{InlineData: &inlineData{
			MimeType: "image/jpeg",
			Data:     base64Image,
		}})
	}

	// Extraction retries transient failures; a scan request is worth a
	// couple of extra seconds.
	text, err := c.generate(ctx, parts, 0.1, 3)
	if err != nil {
		return nil, err
	}

	var analysis domain.ProductAnalysis
	if err := json.Unmarshal([]byte(normalizeJSONBlock(text)), &analysis); err != nil {
		c.logger.WithError(err).Warn("extraction response is not valid JSON")
		return nil, fmt.Errorf("%w: malformed analysis", domain.ErrExtractionFailed)
	}

	if !analysis.IsConsumerProduct {
		if analysis.RejectionReason != "" {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotConsumerProduct, analysis.RejectionReason)
		}
		return nil, domain.ErrNotConsumerProduct
	}
	if analysis.ProductName == "" {
		return nil, fmt.Errorf("%w: missing product name", domain.ErrExtractionFailed)
	}

	return &analysis, nil
}

const judgePromptFormat = `You are a safety and common sense validation AI. Your task is to identify dangerously misleading health scores. The algorithm scores based on nutritional data but can be fooled by inedible or poisonous items (e.g., scoring 'Cyanide Water' as 100). Product Name: %q, Category: %s, Initial Score: %d/100. **Task:** Evaluate if the score is absurd or dangerous (Toxic, Inedible, etc.). **Response Format:** If plausible, respond ONLY with: {"isMisleading": false}. If dangerous, respond ONLY with: {"isMisleading": true, "correctedScore": 0, "reason": "A brief, user-facing explanation."}. Only override for clear, unambiguous cases of danger.`

// Judge asks the model whether a score is dangerously misleading. No
// retries: the caller fails open on any error.
func (c *Client) Judge(ctx context.Context, productName string, score int, category string) (*domain.SafetyJudgment, error) {
	prompt := fmt.Sprintf(judgePromptFormat, productName, category, score)

	text, err := c.generate(ctx, []part{{Text: prompt}}, 0.0, 1)
	if err != nil {
		return nil, err
	}

	var judgment domain.SafetyJudgment
	if err := json.Unmarshal([]byte(normalizeJSONBlock(text)), &judgment); err != nil {
		return nil, fmt.Errorf("malformed judgment: %w", err)
	}
	if judgment.IsMisleading && judgment.Reason == "" {
		return nil, fmt.Errorf("malformed judgment: override without reason")
	}
	return &judgment, nil
}

// generate runs one generateContent call, retrying transient failures
// up to attempts times with linear backoff.
func (c *Client) generate(ctx context.Context, parts []part, temperature float64, attempts int) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: parts}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			Temperature:      temperature,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limiter: %w", err)
		}

		text, err := c.doGenerate(ctx, reqURL, body)
		if err == nil {
			return text, nil
		}
		lastErr = err
		c.logger.WithError(err).WithField("attempt", attempt).Warn("gemini request failed")

		if attempt < attempts {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(time.Duration(attempt*500) * time.Millisecond):
			}
		}
	}
	return "", lastErr
}

func (c *Client) doGenerate(ctx context.Context, reqURL string, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("%w: status %d: %s", domain.ErrExtractionFailed, resp.StatusCode, string(respBody))
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", domain.ErrExtractionFailed, err)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty response, input may have been blocked", domain.ErrExtractionFailed)
	}
	return decoded.Candidates[0].Content.Parts[0].Text, nil
}

// normalizeJSONBlock strips markdown fencing and surrounding prose the
// model sometimes wraps around its JSON.
func normalizeJSONBlock(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```")
		if idx := strings.IndexRune(trimmed, '\n'); idx >= 0 {
			trimmed = trimmed[idx+1:]
		}
		if strings.HasSuffix(trimmed, "```") {
			trimmed = trimmed[:len(trimmed)-3]
		}
	}
	trimmed = strings.TrimSpace(trimmed)
	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start >= 0 && end >= start {
		return strings.TrimSpace(trimmed[start : end+1])
	}
	return trimmed
}
