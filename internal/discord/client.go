package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"time"
)

// Paths on the chat-intent API
const (
	PathAnalyze = "/api/v1/analyze"
	PathHealthz = "/healthz"
)

// Retry defaults
const (
	DefaultMaxRetries = 3
	DefaultRetryDelay = 500 * time.Millisecond
	DefaultTimeout    = 10 * time.Second
	maxJitter         = 100 * time.Millisecond
)

// AnalyzeResult is the API's answer to an analyze call
type AnalyzeResult struct {
	Response   string     `json:"response"`
	Intent     string     `json:"intent"`
	Parameters Parameters `json:"parameters"`
}

// Parameters mirrors the extracted parameter set; nil means not found
type Parameters struct {
	Amount    *float64 `json:"amount"`
	FromToken *string  `json:"fromToken"`
	ToToken   *string  `json:"toToken"`
	FromChain *string  `json:"fromChain"`
	ToChain   *string  `json:"toChain"`
	ToAddress *string  `json:"toAddress"`
}

// APIError is a non-2xx answer from the API
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error: %s", e.Message)
	}
	return fmt.Sprintf("API returned status: %d", e.Status)
}

// APIClient handles communication with the chat-intent API
type APIClient struct {
	BaseURL    string
	Client     *http.Client
	APIKey     string
	MaxRetries int
	RetryDelay time.Duration
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL:    baseURL,
		Client:     &http.Client{Timeout: DefaultTimeout},
		APIKey:     apiKey,
		MaxRetries: DefaultMaxRetries,
		RetryDelay: DefaultRetryDelay,
	}
}

// backoff returns the wait before retry attempt (1-based)
func (c *APIClient) backoff(attempt int) time.Duration {
	return c.RetryDelay*time.Duration(1<<uint(attempt-1)) + rand.N(maxJitter)
}

// doRequest performs an HTTP request, retrying transport errors and 5xx
// answers with exponential backoff
func (c *APIClient) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	url := c.BaseURL + path

	var lastErr error
	for attempt := 0; attempt <= c.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.backoff(attempt)
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}

		if resp.StatusCode < http.StatusInternalServerError {
			return resp, nil
		}

		resp.Body.Close()
		lastErr = &APIError{Status: resp.StatusCode}
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// decodeError reads the {"error": ...} body of a failed response
func decodeError(resp *http.Response) error {
	var errResp struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
		return &APIError{Status: resp.StatusCode, Message: errResp.Error}
	}
	return &APIError{Status: resp.StatusCode}
}

// Analyze sends message to the analyze endpoint on behalf of chatID
func (c *APIClient) Analyze(ctx context.Context, message, chatID string) (*AnalyzeResult, error) {
	req := map[string]string{
		"message": message,
		"chatId":  chatID,
	}

	resp, err := c.doRequest(ctx, http.MethodPost, PathAnalyze, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var result AnalyzeResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}

// Healthz reports whether the API answers its liveness check. It does not
// retry.
func (c *APIClient) Healthz(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+PathHealthz, nil)
	if err != nil {
		return err
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &APIError{Status: resp.StatusCode}
	}
	return nil
}
