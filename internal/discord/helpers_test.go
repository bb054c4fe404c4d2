package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// DiscordCall is one intercepted request to the Discord REST API
type DiscordCall struct {
	Method string
	Path   string
	Body   []byte
}

// TestContext wires a fake analysis API and an intercepted Discord session
type TestContext struct {
	Server       *httptest.Server
	Mux          *http.ServeMux
	APIClient    *APIClient
	Session      *discordgo.Session
	DiscordMocks *MockRoundTripper

	mu    sync.Mutex
	calls []DiscordCall
}

func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := NewAPIClient(server.URL, "test-api-key")
	client.RetryDelay = 0

	session, err := discordgo.New("Bot test-token")
	require.NoError(t, err)

	ctx := &TestContext{
		Server:    server,
		Mux:       mux,
		APIClient: client,
		Session:   session,
	}

	ctx.DiscordMocks = &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			var body []byte
			if req.Body != nil {
				body, _ = io.ReadAll(req.Body)
			}
			ctx.mu.Lock()
			ctx.calls = append(ctx.calls, DiscordCall{Method: req.Method, Path: req.URL.Path, Body: body})
			ctx.mu.Unlock()

			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString("{}")),
				Header:     make(http.Header),
				Request:    req,
			}, nil
		},
	}
	session.Client = &http.Client{Transport: ctx.DiscordMocks}

	return ctx
}

// Calls returns the intercepted Discord requests so far
func (c *TestContext) Calls() []DiscordCall {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]DiscordCall(nil), c.calls...)
}

// LastEdit decodes the most recent PATCH to the original interaction response
func (c *TestContext) LastEdit(t *testing.T) capturedEdit {
	t.Helper()

	calls := c.Calls()
	for i := len(calls) - 1; i >= 0; i-- {
		if calls[i].Method == http.MethodPatch {
			var edit capturedEdit
			require.NoError(t, json.Unmarshal(calls[i].Body, &edit))
			return edit
		}
	}
	t.Fatal("no interaction edit captured")
	return capturedEdit{}
}

// LastResponse decodes the most recent interaction callback
func (c *TestContext) LastResponse(t *testing.T) capturedResponse {
	t.Helper()

	calls := c.Calls()
	for i := len(calls) - 1; i >= 0; i-- {
		if calls[i].Method == http.MethodPost {
			var resp capturedResponse
			require.NoError(t, json.Unmarshal(calls[i].Body, &resp))
			return resp
		}
	}
	t.Fatal("no interaction response captured")
	return capturedResponse{}
}

type capturedResponse struct {
	Type discordgo.InteractionResponseType `json:"type"`
	Data *struct {
		Content string                 `json:"content"`
		Flags   discordgo.MessageFlags `json:"flags"`
	} `json:"data"`
}

type capturedEdit struct {
	Content *string                   `json:"content"`
	Embeds  []*discordgo.MessageEmbed `json:"embeds"`
}

// WriteJSON writes data as a JSON response
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// newInteraction builds a slash command interaction in channel "chan-1"
func newInteraction(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:        "interaction-1",
			AppID:     "app-1",
			Token:     "interaction-token",
			ChannelID: "chan-1",
			Type:      discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: opts,
			},
		},
	}
}

func stringOpt(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

func numberOpt(name string, value float64) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionNumber,
		Value: value,
	}
}

func strPtr(s string) *string { return &s }
