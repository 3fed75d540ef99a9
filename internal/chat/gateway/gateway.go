// internal/chat/gateway/gateway.go
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"zone-platform/internal/chat/zones"
	"zone-platform/internal/common/logger"
	"zone-platform/internal/common/metrics"
	"zone-platform/internal/models"
)

var (
	ErrGenerationTimeout = errors.New("GENERATION_TIMEOUT")
	ErrGenerationFailed  = errors.New("GENERATION_FAILED")
)

// Generator produces an assistant reply for a user message in a zone context.
// Implementations must never return an empty string alongside a nil error.
type Generator interface {
	Generate(ctx context.Context, zone models.ZoneConfig, userMessage string, history []models.ChatMessage) string
}

// Config holds the upstream generation endpoint settings.
type Config struct {
	BaseURL       string
	APIKey        string
	Model         string
	Timeout       time.Duration
	MaxRetries    int
	HistoryWindow int
}

// Gateway proxies generation requests to the upstream model endpoint. Any
// failure, timeout, or blank result degrades to a fixed friendly response; a
// transport error never escapes to the caller.
type Gateway struct {
	config *Config
	client *http.Client
	logger logger.Logger

	// pick selects an index in [0, n); injectable so tests can pin the
	// fallback choice.
	pick func(n int) int
}

func New(config *Config, log logger.Logger) *Gateway {
	return &Gateway{
		config: config,
		// No client timeout; the per-request context bounds the call.
		client: &http.Client{},
		logger: log.With(map[string]interface{}{"component": "chat-gateway"}),
		pick:   rand.Intn,
	}
}

// WithPicker overrides the random index picker.
func (g *Gateway) WithPicker(pick func(n int) int) *Gateway {
	g.pick = pick
	return g
}

// Generate returns the assistant reply for the user message, falling back to
// one of the fixed friendly responses when the upstream call fails.
func (g *Gateway) Generate(ctx context.Context, zone models.ZoneConfig, userMessage string, history []models.ChatMessage) string {
	start := time.Now()

	text, err := g.generate(ctx, zone, userMessage, history)
	metrics.ChatGenerationDuration.WithLabelValues(zone.ZoneID).Observe(time.Since(start).Seconds())

	if err != nil {
		outcome := "failed"
		if errors.Is(err, ErrGenerationTimeout) {
			outcome = "timeout"
		}
		metrics.ChatGenerations.WithLabelValues(zone.ZoneID, outcome).Inc()
		g.logger.Warn("generation failed, using fallback", map[string]interface{}{
			"zoneId": zone.ZoneID,
			"error":  err.Error(),
		})
		fallbacks := zones.FallbackResponses()
		return fallbacks[g.pick(len(fallbacks))]
	}

	metrics.ChatGenerations.WithLabelValues(zone.ZoneID, "success").Inc()
	return text
}

func (g *Gateway) generate(ctx context.Context, zone models.ZoneConfig, userMessage string, history []models.ChatMessage) (string, error) {
	prompt := BuildPrompt(zone, userMessage, history, g.config.HistoryWindow)
	return g.GenerateRaw(ctx, prompt, g.config.Model)
}

// GenerateRaw sends a prepared prompt upstream and returns the model text.
// Unlike Generate, failures surface as errors; callers own the fallback.
func (g *Gateway) GenerateRaw(ctx context.Context, prompt, model string) (string, error) {
	if model == "" {
		model = g.config.Model
	}
	requestBody := map[string]interface{}{
		"prompt": prompt,
		"model":  model,
	}
	body, _ := json.Marshal(requestBody)

	ctx, cancel := context.WithTimeout(ctx, g.config.Timeout)
	defer cancel()

	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt <= g.config.MaxRetries; attempt++ {
		if attempt > 0 {
			// Apply exponential backoff
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
				// Continue with retry
			case <-ctx.Done():
				return "", ErrGenerationTimeout
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.config.BaseURL+"/api/chat", bytes.NewReader(body))
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
		}
		req.Header.Set("Content-Type", "application/json")
		if g.config.APIKey != "" {
			req.Header.Set("Authorization", "Bearer "+g.config.APIKey)
		}

		resp, lastErr = g.client.Do(req)
		if lastErr == nil {
			if resp.StatusCode == http.StatusOK {
				break
			}
			// Non-OK status codes are retried like transport errors.
			resp.Body.Close()
			lastErr = fmt.Errorf("status %d", resp.StatusCode)
			resp = nil
		}

		if ctx.Err() != nil {
			return "", ErrGenerationTimeout
		}
	}

	if lastErr != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", ErrGenerationTimeout
		}
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, lastErr)
	}
	if resp == nil {
		return "", fmt.Errorf("%w: no successful response after retries", ErrGenerationFailed)
	}
	defer resp.Body.Close()

	var apiResponse struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return "", fmt.Errorf("%w: decode error: %v", ErrGenerationFailed, err)
	}

	if strings.TrimSpace(apiResponse.Text) == "" {
		return zones.BlankResponse, nil
	}
	return apiResponse.Text, nil
}
