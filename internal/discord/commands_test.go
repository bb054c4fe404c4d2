package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allCommands() []func() (*discordgo.ApplicationCommand, CommandHandler) {
	return []func() (*discordgo.ApplicationCommand, CommandHandler){
		PingCommand, AskCommand, SwapCommand, BridgeCommand, SendCommand, BalanceCommand,
	}
}

func TestCommandRegistry_Handle(t *testing.T) {
	ctx := SetupTestContext(t)
	registry := NewCommandRegistry()

	var called string
	registry.Register(&discordgo.ApplicationCommand{Name: "one"}, func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		called = i.ApplicationCommandData().Name
	})

	before := commandCounter.Load()
	registry.Handle(ctx.Session, newInteraction("one"), ctx.APIClient)
	assert.Equal(t, "one", called)
	assert.Equal(t, before+1, commandCounter.Load())

	called = ""
	registry.Handle(ctx.Session, newInteraction("missing"), ctx.APIClient)
	assert.Empty(t, called)
	assert.Equal(t, before+1, commandCounter.Load())
}

func TestAllCommandsHaveUniqueNames(t *testing.T) {
	registry := NewCommandRegistry()
	for _, factory := range allCommands() {
		cmd, handler := factory()
		require.NotNil(t, handler)
		assert.NotEmpty(t, cmd.Description, cmd.Name)
		_, dup := registry.Commands[cmd.Name]
		assert.False(t, dup, cmd.Name)
		registry.Register(cmd, handler)
	}
	assert.Len(t, registry.Commands, 6)
}

func TestCommandsEqual(t *testing.T) {
	swap, _ := SwapCommand()
	swapCopy, _ := SwapCommand()
	ping, _ := PingCommand()

	assert.True(t, commandsEqual(
		[]*discordgo.ApplicationCommand{swap, ping},
		[]*discordgo.ApplicationCommand{ping, swapCopy}))

	assert.False(t, commandsEqual(
		[]*discordgo.ApplicationCommand{swap},
		[]*discordgo.ApplicationCommand{swap, ping}))

	changed, _ := SwapCommand()
	changed.Options[1].Required = false
	assert.False(t, commandsEqual(
		[]*discordgo.ApplicationCommand{swap},
		[]*discordgo.ApplicationCommand{changed}))

	renamed, _ := PingCommand()
	renamed.Description = "different"
	assert.False(t, commandsEqual(
		[]*discordgo.ApplicationCommand{ping},
		[]*discordgo.ApplicationCommand{renamed}))
}

func TestRegisterCommands(t *testing.T) {
	ping, _ := PingCommand()
	swap, _ := SwapCommand()

	setup := func(t *testing.T, existing []*discordgo.ApplicationCommand) (*Bot, *int) {
		ctx := SetupTestContext(t)
		overwrites := 0
		ctx.DiscordMocks.RoundTripFunc = func(req *http.Request) (*http.Response, error) {
			var body []byte
			switch req.Method {
			case http.MethodGet:
				body, _ = json.Marshal(existing)
			case http.MethodPut:
				overwrites++
				body, _ = io.ReadAll(req.Body)
			}
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewReader(body)),
				Header:     make(http.Header),
				Request:    req,
			}, nil
		}

		registry := NewCommandRegistry()
		registry.Register(ping, nil)
		registry.Register(swap, nil)
		return &Bot{Session: ctx.Session, AppID: "app-1", Registry: registry}, &overwrites
	}

	t.Run("unchanged commands are not rewritten", func(t *testing.T) {
		bot, overwrites := setup(t, []*discordgo.ApplicationCommand{swap, ping})
		require.NoError(t, bot.RegisterCommands(bot.Registry, false))
		assert.Equal(t, 0, *overwrites)
	})

	t.Run("changed commands are rewritten", func(t *testing.T) {
		bot, overwrites := setup(t, []*discordgo.ApplicationCommand{ping})
		require.NoError(t, bot.RegisterCommands(bot.Registry, false))
		assert.Equal(t, 1, *overwrites)
	})

	t.Run("force skips the comparison", func(t *testing.T) {
		bot, overwrites := setup(t, []*discordgo.ApplicationCommand{swap, ping})
		require.NoError(t, bot.RegisterCommands(bot.Registry, true))
		assert.Equal(t, 1, *overwrites)
	})
}

func TestPingCommand(t *testing.T) {
	ctx := SetupTestContext(t)
	_, handler := PingCommand()

	handler(ctx.Session, newInteraction("ping"), ctx.APIClient)

	resp := ctx.LastResponse(t)
	assert.Equal(t, discordgo.InteractionResponseChannelMessageWithSource, resp.Type)
	require.NotNil(t, resp.Data)
	assert.Equal(t, MsgPong, resp.Data.Content)
}

func TestAskCommand(t *testing.T) {
	t.Run("renders the analysis", func(t *testing.T) {
		ctx := SetupTestContext(t)
		ctx.Mux.HandleFunc("POST "+PathAnalyze, func(w http.ResponseWriter, r *http.Request) {
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "bridge 0.1 eth to polygon", body["message"])
			assert.Equal(t, "chan-1", body["chatId"])

			WriteJSON(w, http.StatusOK, map[string]any{
				"response": "Bridging 0.1 ETH from Ethereum to Polygon.",
				"intent":   "bridge",
				"parameters": map[string]any{
					"amount":    0.1,
					"fromToken": "ETH",
					"toToken":   "ETH",
					"fromChain": "Ethereum",
					"toChain":   "Polygon",
					"toAddress": nil,
				},
			})
		})

		_, handler := AskCommand()
		handler(ctx.Session, newInteraction("ask", stringOpt("message", "bridge 0.1 eth to polygon")), ctx.APIClient)

		calls := ctx.Calls()
		require.Len(t, calls, 2)
		assert.Equal(t, http.MethodPost, calls[0].Method)
		assert.Equal(t, http.MethodPatch, calls[1].Method)

		edit := ctx.LastEdit(t)
		require.Len(t, edit.Embeds, 1)
		embed := edit.Embeds[0]
		assert.Equal(t, "🤖 Bridge", embed.Title)
		assert.Equal(t, "Bridging 0.1 ETH from Ethereum to Polygon.", embed.Description)
		assert.Equal(t, ColorKnown, embed.Color)
		assert.Len(t, embed.Fields, 5)
		assert.Equal(t, "Amount", embed.Fields[0].Name)
		assert.Equal(t, "0.1", embed.Fields[0].Value)
	})

	t.Run("blank message is refused locally", func(t *testing.T) {
		ctx := SetupTestContext(t)
		ctx.Mux.HandleFunc("POST "+PathAnalyze, func(w http.ResponseWriter, r *http.Request) {
			t.Error("API should not be called")
		})

		_, handler := AskCommand()
		handler(ctx.Session, newInteraction("ask", stringOpt("message", "   ")), ctx.APIClient)

		resp := ctx.LastResponse(t)
		require.NotNil(t, resp.Data)
		assert.Equal(t, MsgMessageRequired, resp.Data.Content)
		assert.Equal(t, discordgo.MessageFlagsEphemeral, resp.Data.Flags)
	})

	t.Run("API failure becomes a friendly message", func(t *testing.T) {
		ctx := SetupTestContext(t)
		ctx.APIClient.MaxRetries = 0
		ctx.Mux.HandleFunc("POST "+PathAnalyze, func(w http.ResponseWriter, r *http.Request) {
			WriteJSON(w, http.StatusTooManyRequests, map[string]string{"error": "Too many requests"})
		})

		_, handler := AskCommand()
		handler(ctx.Session, newInteraction("ask", stringOpt("message", "check my balance")), ctx.APIClient)

		edit := ctx.LastEdit(t)
		require.NotNil(t, edit.Content)
		assert.Equal(t, MsgRateLimited, *edit.Content)
	})
}

func TestComposeSwap(t *testing.T) {
	i := newInteraction("swap", numberOpt("amount", 100), stringOpt("from", "usdc"), stringOpt("to", "weth"))
	msg, err := composeSwap(optionMap(i))
	require.NoError(t, err)
	assert.Equal(t, "swap 100 usdc to weth", msg)

	_, err = composeSwap(optionMap(newInteraction("swap", numberOpt("amount", 1))))
	assert.EqualError(t, err, fmt.Sprintf(MsgMissingOption, "from"))
}

func TestComposeBridge(t *testing.T) {
	tests := []struct {
		name string
		opts []*discordgo.ApplicationCommandInteractionDataOption
		want string
	}{
		{
			name: "default source chain",
			opts: []*discordgo.ApplicationCommandInteractionDataOption{
				numberOpt("amount", 0.1), stringOpt("token", "eth"), stringOpt("chain", "polygon"),
			},
			want: "bridge 0.1 eth to polygon",
		},
		{
			name: "explicit source chain",
			opts: []*discordgo.ApplicationCommandInteractionDataOption{
				numberOpt("amount", 2.5), stringOpt("token", "usdc"), stringOpt("chain", "base"), stringOpt("from_chain", "arbitrum"),
			},
			want: "bridge 2.5 usdc from arbitrum to base",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := composeBridge(optionMap(newInteraction("bridge", tt.opts...)))
			require.NoError(t, err)
			assert.Equal(t, tt.want, msg)
		})
	}

	_, err := composeBridge(optionMap(newInteraction("bridge", numberOpt("amount", 1), stringOpt("token", "eth"))))
	assert.EqualError(t, err, fmt.Sprintf(MsgMissingOption, "chain"))
}

func TestComposeSend(t *testing.T) {
	addr := "0x1234567890123456789012345678901234567890"
	i := newInteraction("send",
		numberOpt("amount", 1.5), stringOpt("token", "usdc"), stringOpt("address", addr), stringOpt("chain", "polygon"))

	msg, err := composeSend(optionMap(i))
	require.NoError(t, err)
	assert.Equal(t, "send 1.5 usdc to "+addr+" on polygon", msg)
}

func TestComposeCommand_InvalidOptions(t *testing.T) {
	ctx := SetupTestContext(t)
	_, handler := SwapCommand()

	handler(ctx.Session, newInteraction("swap", numberOpt("amount", 1)), ctx.APIClient)

	resp := ctx.LastResponse(t)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "❌ "+fmt.Sprintf(MsgMissingOption, "from"), resp.Data.Content)
}

func TestBalanceCommand(t *testing.T) {
	ctx := SetupTestContext(t)
	ctx.Mux.HandleFunc("POST "+PathAnalyze, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, BalanceMessage, body["message"])
		WriteJSON(w, http.StatusOK, map[string]any{"intent": "balance", "response": "Let me check your balance."})
	})

	_, handler := BalanceCommand()
	handler(ctx.Session, newInteraction("balance"), ctx.APIClient)

	edit := ctx.LastEdit(t)
	require.Len(t, edit.Embeds, 1)
	assert.Equal(t, "🤖 Balance", edit.Embeds[0].Title)
	assert.Empty(t, edit.Embeds[0].Fields)
}

func TestFormatFriendlyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"unauthorized", &APIError{Status: http.StatusUnauthorized, Message: "Unauthorized"}, MsgUnauthorized},
		{"rate limited", &APIError{Status: http.StatusTooManyRequests}, MsgRateLimited},
		{"server error", &APIError{Status: http.StatusInternalServerError}, MsgAPIUnavailable},
		{"retries exhausted", fmt.Errorf("max retries exceeded: %w", &APIError{Status: http.StatusBadGateway}), MsgAPIUnavailable},
		{"transport retries exhausted", fmt.Errorf("max retries exceeded: %w", errors.New("connection refused")), MsgAPIUnavailable},
		{"deadline", context.DeadlineExceeded, MsgAPIUnavailable},
		{"API message", &APIError{Status: http.StatusBadRequest, Message: "No message provided"}, "❌ No message provided"},
		{"bare status", &APIError{Status: http.StatusNotFound}, MsgGenericError},
		{"anything else", errors.New("boom"), MsgGenericError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatFriendlyError(tt.err))
		})
	}
}

func TestBuildAnalysisEmbed(t *testing.T) {
	t.Run("unknown intent", func(t *testing.T) {
		embed := buildAnalysisEmbed("hello", &AnalyzeResult{Intent: "unknown", Response: "I understand you said: hello"})
		assert.Equal(t, ColorUnknown, embed.Color)
		assert.Equal(t, "🤖 Unknown", embed.Title)
		assert.Empty(t, embed.Fields)
		assert.Equal(t, `ChainBot • "hello"`, embed.Footer.Text)
	})

	t.Run("multi-word intent", func(t *testing.T) {
		embed := buildAnalysisEmbed("show tokens", &AnalyzeResult{Intent: "token_balances"})
		assert.Equal(t, "🤖 Token Balances", embed.Title)
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
	assert.Equal(t, "éé…", truncate("éééé", 3))
}
