// Package agent holds the handle to the external LLM agent. The handle is
// injected into the HTTP layer and built lazily; intent classification never
// goes through it.
package agent

import (
	"sync"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultModel is used when no model is configured
const DefaultModel = openai.GPT4oMini

// Status values reported by Handle.Status
const (
	StatusUnconfigured = "unconfigured"
	StatusConfigured   = "configured"
	StatusInitialized  = "initialized"
)

// Config configures the agent client
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Handle is a lazily initialised agent client
type Handle struct {
	cfg Config

	once   sync.Once
	mu     sync.RWMutex
	client *openai.Client
}

// NewHandle stores cfg without dialing anything
func NewHandle(cfg Config) *Handle {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	return &Handle{cfg: cfg}
}

// Configured reports whether an API key was provided
func (h *Handle) Configured() bool {
	return h != nil && h.cfg.APIKey != ""
}

// Model returns the configured model name
func (h *Handle) Model() string {
	return h.cfg.Model
}

// Client builds the client on first use. Returns nil when unconfigured.
func (h *Handle) Client() *openai.Client {
	if !h.Configured() {
		return nil
	}

	h.once.Do(func() {
		clientCfg := openai.DefaultConfig(h.cfg.APIKey)
		if h.cfg.BaseURL != "" {
			clientCfg.BaseURL = h.cfg.BaseURL
		}

		h.mu.Lock()
		h.client = openai.NewClientWithConfig(clientCfg)
		h.mu.Unlock()
	})

	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.client
}

// Status reports the handle state without initialising it
func (h *Handle) Status() string {
	if !h.Configured() {
		return StatusUnconfigured
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.client != nil {
		return StatusInitialized
	}
	return StatusConfigured
}
