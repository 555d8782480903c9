package stackexchange

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"stackcollect/pkg/config"
	"stackcollect/pkg/logger"
	"stackcollect/pkg/ratelimit"
)

// Client is a Stack Exchange API client scoped to a single site.
//
// The API key is optional; without one the API grants a reduced anonymous
// quota (300 requests per day), which the constructor logs as a warning.
type Client struct {
	httpClient *http.Client
	limiter    ratelimit.Limiter
	baseURL    string
	site       string
	apiKey     string
	pageSize   int
	maxPages   int
	logger     logger.Logger
}

// NewClient creates a new Stack Exchange API client
func NewClient(cfg *config.Config, log logger.Logger) (*Client, error) {
	if log == nil {
		log = logger.GetLogger()
	}

	if cfg.StackExchange.Site == "" {
		return nil, &Error{
			Type:    ErrorTypeUnknown,
			Message: "site must not be empty",
		}
	}
	if cfg.StackExchange.PageSize <= 0 || cfg.StackExchange.MaxPages <= 0 {
		return nil, &Error{
			Type:    ErrorTypeUnknown,
			Message: "page size and max pages must be positive",
		}
	}

	if cfg.StackExchange.APIKey == "" {
		log.Warn("no API key provided, using keyless mode (limited to 300 requests per day)")
	}

	timeout := cfg.StackExchange.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		limiter:    ratelimit.NewInterval(cfg.RateLimit.RequestsPerSecond),
		baseURL:    BaseURL,
		site:       cfg.StackExchange.Site,
		apiKey:     cfg.StackExchange.APIKey,
		pageSize:   cfg.StackExchange.PageSize,
		maxPages:   cfg.StackExchange.MaxPages,
		logger:     log,
	}, nil
}

// SetBaseURL overrides the API base URL. Used by tests to point the client
// at a local server.
func (c *Client) SetBaseURL(base string) {
	c.baseURL = base
}

// getJSON performs a GET request and decodes the JSON response into target
func (c *Client) getJSON(ctx context.Context, url string, target interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &Error{
			Type:    ErrorTypeUnknown,
			Message: fmt.Sprintf("failed to create request: %v", err),
		}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	c.logger.DebugWithFields("sending API request", map[string]interface{}{
		"url": req.URL.String(),
	})

	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logger.ErrorWithFields("API request failed", map[string]interface{}{
			"url":      req.URL.String(),
			"error":    err.Error(),
			"duration": duration,
		})
		return &Error{
			Type:    ErrorTypeNetwork,
			Message: fmt.Sprintf("network error: %v", err),
		}
	}
	defer resp.Body.Close()

	c.logger.DebugWithFields("API request completed", map[string]interface{}{
		"url":      req.URL.String(),
		"status":   resp.StatusCode,
		"duration": duration,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{
			Type:    ErrorTypeNetwork,
			Message: fmt.Sprintf("failed to read response body: %v", err),
			Code:    resp.StatusCode,
		}
	}

	// The API reports errors via a JSON envelope, usually with a 400
	// status. Try to surface that before falling back to the raw status.
	if resp.StatusCode != http.StatusOK {
		var envelope struct {
			ErrorID      int    `json:"error_id"`
			ErrorName    string `json:"error_name"`
			ErrorMessage string `json:"error_message"`
		}
		if json.Unmarshal(body, &envelope) == nil && envelope.ErrorID != 0 {
			return apiError(envelope.ErrorID, envelope.ErrorName, envelope.ErrorMessage)
		}
		return &Error{
			Type:    classifyStatus(resp.StatusCode),
			Message: fmt.Sprintf("unexpected status %d", resp.StatusCode),
			Code:    resp.StatusCode,
		}
	}

	if err := json.Unmarshal(body, target); err != nil {
		return &Error{
			Type:    ErrorTypeParsing,
			Message: fmt.Sprintf("failed to decode response: %v", err),
			Code:    resp.StatusCode,
		}
	}

	return nil
}
