package discord

import (
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// AskCommand forwards free text to the analyzer
func AskCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "ask",
		Description: "Ask the bot to do something, e.g. \"swap 100 usdc to weth\"",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "message",
				Description: "What you want to do",
				Required:    true,
				MaxLength:   4096,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		opt, ok := optionMap(i)["message"]
		if !ok || strings.TrimSpace(opt.StringValue()) == "" {
			if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
				Type: discordgo.InteractionResponseChannelMessageWithSource,
				Data: &discordgo.InteractionResponseData{
					Content: MsgMessageRequired,
					Flags:   discordgo.MessageFlagsEphemeral,
				},
			}); err != nil {
				slog.Error("Failed to respond to ask", "error", err)
			}
			return
		}

		analyzeAndRespond(s, i, client, opt.StringValue())
	}

	return cmd, handler
}
