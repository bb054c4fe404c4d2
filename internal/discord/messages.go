package discord

// Friendly message constants for Discord responses
const (
	MsgPong            = "Pong! 🏓"
	MsgGenericError    = "❌ Something went wrong."
	MsgAPIUnavailable  = "🔌 **Service Unavailable**\nThe intent service is not answering. Try again in a moment."
	MsgUnauthorized    = "🔒 **Not Authorized**\nThe bot's API key was rejected."
	MsgRateLimited     = "⏳ **Slow down!**\nToo many requests, try again in a few minutes."
	MsgMessageRequired = "✏️ **Nothing to analyze**\nPlease include a message."
	MsgMissingOption   = "missing required option: %s"
)

// Embed styling
const (
	EmbedFooter = "ChainBot"

	ColorKnown   = 0x2ECC71
	ColorUnknown = 0x95A5A6
)

// BalanceMessage is what /balance forwards to the API
const BalanceMessage = "check my balance"
