package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	intentUnknown  = "unknown"
	maxFooterQuote = 100
)

var titleCaser = cases.Title(language.English)

// respondError replaces the deferred response with message
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		slog.Error("Failed to edit interaction response", "error", err)
	}
}

// deferResponse acknowledges an interaction so the API call can take longer
// than Discord's three second window. Returns false if the ack failed.
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		slog.Error("Failed to send deferred response", "error", err)
		return false
	}
	return true
}

// getOptions extracts command options from an interaction
func getOptions(i *discordgo.InteractionCreate) []*discordgo.ApplicationCommandInteractionDataOption {
	return i.ApplicationCommandData().Options
}

// optionMap indexes options by name
func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := getOptions(i)
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, opt := range opts {
		m[opt.Name] = opt
	}
	return m
}

// formatFriendlyError turns an API client error into something a chat user
// can act on
func formatFriendlyError(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Status == http.StatusUnauthorized:
			return MsgUnauthorized
		case apiErr.Status == http.StatusTooManyRequests:
			return MsgRateLimited
		case apiErr.Status >= http.StatusInternalServerError:
			return MsgAPIUnavailable
		case apiErr.Message != "":
			return "❌ " + apiErr.Message
		}
		return MsgGenericError
	}

	if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "max retries exceeded") {
		return MsgAPIUnavailable
	}
	return MsgGenericError
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// intentTitle renders an intent label for display, e.g. "Token Balances"
func intentTitle(intent string) string {
	return titleCaser.String(strings.ReplaceAll(intent, "_", " "))
}

// buildAnalysisEmbed shows the reply, intent, and every extracted parameter
func buildAnalysisEmbed(message string, result *AnalyzeResult) *discordgo.MessageEmbed {
	color := ColorKnown
	if result.Intent == intentUnknown {
		color = ColorUnknown
	}

	var fields []*discordgo.MessageEmbedField
	addField := func(name string, value *string) {
		if value != nil {
			fields = append(fields, &discordgo.MessageEmbedField{Name: name, Value: *value, Inline: true})
		}
	}

	p := result.Parameters
	if p.Amount != nil {
		amount := formatAmount(*p.Amount)
		addField("Amount", &amount)
	}
	addField("From Token", p.FromToken)
	addField("To Token", p.ToToken)
	addField("From Chain", p.FromChain)
	addField("To Chain", p.ToChain)
	addField("To Address", p.ToAddress)

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🤖 %s", intentTitle(result.Intent)),
		Description: result.Response,
		Color:       color,
		Fields:      fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%s • \"%s\"", EmbedFooter, truncate(message, maxFooterQuote)),
		},
	}
}

// analyzeAndRespond forwards message to the API for the interaction's
// channel and answers with the analysis embed
func analyzeAndRespond(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient, message string) {
	if !deferResponse(s, i) {
		return
	}

	result, err := client.Analyze(context.Background(), message, i.ChannelID)
	if err != nil {
		slog.Error("Analyze failed", "error", err, "channel_id", i.ChannelID)
		respondError(s, i, formatFriendlyError(err))
		return
	}

	embed := buildAnalysisEmbed(message, result)
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		slog.Error("Failed to send response", "error", err)
	}
}
