package discord

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// Sentence templates the structured commands compose. They use the same
// phrasing the analyzer recognises from free text.
const (
	swapFormat          = "swap %s %s to %s"
	bridgeFormat        = "bridge %s %s to %s"
	bridgeFromFormat    = "bridge %s %s from %s to %s"
	sendFormat          = "send %s %s to %s on %s"
	minAmount           = 0.0
	maxAddressOptionLen = 128
)

func amountOption() *discordgo.ApplicationCommandOption {
	minValue := minAmount
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionNumber,
		Name:        "amount",
		Description: "How much",
		Required:    true,
		MinValue:    &minValue,
	}
}

func stringOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		Required:    required,
	}
}

// composeCommand builds a handler that turns options into a sentence and
// forwards it like /ask would
func composeCommand(compose func(opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (string, error)) CommandHandler {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		message, err := compose(optionMap(i))
		if err != nil {
			slog.Warn("Invalid command options", "command", i.ApplicationCommandData().Name, "error", err)
			if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
				Type: discordgo.InteractionResponseChannelMessageWithSource,
				Data: &discordgo.InteractionResponseData{
					Content: "❌ " + err.Error(),
					Flags:   discordgo.MessageFlagsEphemeral,
				},
			}); err != nil {
				slog.Error("Failed to respond", "error", err)
			}
			return
		}
		analyzeAndRespond(s, i, client, message)
	}
}

func requireOptions(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, names ...string) error {
	for _, name := range names {
		if _, ok := opts[name]; !ok {
			return fmt.Errorf(MsgMissingOption, name)
		}
	}
	return nil
}

// composeSwap renders "swap <amount> <from> to <to>"
func composeSwap(opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (string, error) {
	if err := requireOptions(opts, "amount", "from", "to"); err != nil {
		return "", err
	}
	return fmt.Sprintf(swapFormat,
		formatAmount(opts["amount"].FloatValue()),
		opts["from"].StringValue(),
		opts["to"].StringValue()), nil
}

// composeBridge renders "bridge <amount> <token> [from <chain>] to <chain>"
func composeBridge(opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (string, error) {
	if err := requireOptions(opts, "amount", "token", "chain"); err != nil {
		return "", err
	}
	amount := formatAmount(opts["amount"].FloatValue())
	token := opts["token"].StringValue()
	chain := opts["chain"].StringValue()

	if from, ok := opts["from_chain"]; ok && from.StringValue() != "" {
		return fmt.Sprintf(bridgeFromFormat, amount, token, from.StringValue(), chain), nil
	}
	return fmt.Sprintf(bridgeFormat, amount, token, chain), nil
}

// composeSend renders "send <amount> <token> to <address> on <chain>"
func composeSend(opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (string, error) {
	if err := requireOptions(opts, "amount", "token", "address", "chain"); err != nil {
		return "", err
	}
	return fmt.Sprintf(sendFormat,
		formatAmount(opts["amount"].FloatValue()),
		opts["token"].StringValue(),
		opts["address"].StringValue(),
		opts["chain"].StringValue()), nil
}

// SwapCommand composes a swap request from structured options
func SwapCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "swap",
		Description: "Swap one token for another",
		Options: []*discordgo.ApplicationCommandOption{
			amountOption(),
			stringOption("from", "Token to sell, e.g. USDC", true),
			stringOption("to", "Token to buy, e.g. WETH", true),
		},
	}
	return cmd, composeCommand(composeSwap)
}

// BridgeCommand composes a bridge request from structured options
func BridgeCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "bridge",
		Description: "Move a token to another chain",
		Options: []*discordgo.ApplicationCommandOption{
			amountOption(),
			stringOption("token", "Token to bridge, e.g. ETH", true),
			stringOption("chain", "Destination chain, e.g. Polygon", true),
			stringOption("from_chain", "Source chain (default: Ethereum)", false),
		},
	}
	return cmd, composeCommand(composeBridge)
}

// SendCommand composes a transfer request from structured options
func SendCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	address := stringOption("address", "Recipient address (0x...)", true)
	address.MaxLength = maxAddressOptionLen

	cmd := &discordgo.ApplicationCommand{
		Name:        "send",
		Description: "Send a token to an address",
		Options: []*discordgo.ApplicationCommandOption{
			amountOption(),
			stringOption("token", "Token to send, e.g. USDC", true),
			address,
			stringOption("chain", "Chain to send on, e.g. Polygon", true),
		},
	}
	return cmd, composeCommand(composeSend)
}

// BalanceCommand asks for the caller's balance
func BalanceCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "balance",
		Description: "Check your balance",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		analyzeAndRespond(s, i, client, BalanceMessage)
	}
	return cmd, handler
}
