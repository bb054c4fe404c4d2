package intent

import "github.com/osse101/ChainBot_Go/internal/domain"

// Rule maps a message to an intent when it contains any of AnyOf and every
// entry of AllOf. Matching is done on the lower-cased message.
type Rule struct {
	Intent domain.Intent
	AnyOf  []string
	AllOf  []string
}

// Rules is the ordered classification table. First match wins, so the order
// here is the precedence policy: a "send" phrase only counts when an address
// prefix is present, otherwise the message falls through to bridge, token
// balances, swap, and balance in that order.
var Rules = []Rule{
	{
		Intent: domain.IntentSend,
		AnyOf:  []string{"send", "deposit", "transfer"},
		AllOf:  []string{AddressPrefix},
	},
	{
		Intent: domain.IntentBridge,
		AnyOf:  []string{"bridge", "move"},
	},
	{
		Intent: domain.IntentTokenBalances,
		AnyOf:  []string{"my token balances", "which tokens", "show tokens", "token balance"},
	},
	{
		Intent: domain.IntentSwap,
		AnyOf:  []string{"swap", "exchange", "trade"},
	},
	{
		Intent: domain.IntentBalance,
		AnyOf:  []string{"balance", "how much", "check"},
	},
}

// Token tickers recognised after "to"
var KnownTokens = map[string]bool{
	"ETH":   true,
	"WETH":  true,
	"USDC":  true,
	"USDT":  true,
	"DAI":   true,
	"WBTC":  true,
	"MATIC": true,
	"LINK":  true,
	"UNI":   true,
}

// Chain names (upper-cased) recognised after "to"
var KnownChains = map[string]bool{
	"ETHEREUM": true,
	"POLYGON":  true,
	"ARBITRUM": true,
	"OPTIMISM": true,
	"BASE":     true,
}

// Extraction constants
const (
	// AddressPrefix marks a token as a candidate address
	AddressPrefix = "0x"

	// MinAddressLength is the shortest token (prefix included) accepted as an address
	MinAddressLength = 40

	// DefaultFromChain is assumed when a destination chain is given without a source
	DefaultFromChain = "Ethereum"

	// bridgeKeyword enables the same-token default for bridges
	bridgeKeyword = "bridge"

	wordTo   = "to"
	wordOn   = "on"
	wordFrom = "from"
)
