package analysis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/osse101/ChainBot_Go/internal/domain"
)

// Reply text
const (
	MsgBalance       = "Let me check your balance."
	MsgTokenBalances = "Let me look up your token balances."
	MsgUnknownFormat = "I understand you said: %s"
	MsgMissingFormat = "To %s I still need: %s. Try something like \"%s\"."
)

type intentSpec struct {
	verb     string
	example  string
	required []string
	compose  func(p domain.ParameterSet) string
}

var specs = map[domain.Intent]intentSpec{
	domain.IntentSwap: {
		verb:     "swap",
		example:  "swap 100 USDC to WETH",
		required: []string{domain.ParamAmount, domain.ParamFromToken, domain.ParamToToken},
		compose: func(p domain.ParameterSet) string {
			return fmt.Sprintf("Swapping %s %s to %s.", formatAmount(*p.Amount), *p.FromToken, *p.ToToken)
		},
	},
	domain.IntentBridge: {
		verb:     "bridge",
		example:  "bridge 0.1 ETH to Polygon",
		required: []string{domain.ParamAmount, domain.ParamFromToken, domain.ParamToChain},
		compose: func(p domain.ParameterSet) string {
			// fromChain is always set once toChain is
			return fmt.Sprintf("Bridging %s %s from %s to %s.", formatAmount(*p.Amount), *p.FromToken, *p.FromChain, *p.ToChain)
		},
	},
	domain.IntentSend: {
		verb:     "send",
		example:  "send 1.5 USDC to 0x1234567890123456789012345678901234567890 on Polygon",
		required: []string{domain.ParamAmount, domain.ParamFromToken, domain.ParamToAddress, domain.ParamToChain},
		compose: func(p domain.ParameterSet) string {
			return fmt.Sprintf("Sending %s %s to %s on %s.", formatAmount(*p.Amount), *p.FromToken, *p.ToAddress, *p.ToChain)
		},
	},
	domain.IntentBalance: {
		compose: func(domain.ParameterSet) string { return MsgBalance },
	},
	domain.IntentTokenBalances: {
		compose: func(domain.ParameterSet) string { return MsgTokenBalances },
	},
}

// RequiredParameters lists the parameter names an intent needs before it can
// be acted on. Intents without requirements return nil.
func RequiredParameters(intent domain.Intent) []string {
	s, ok := specs[intent]
	if !ok || len(s.required) == 0 {
		return nil
	}
	out := make([]string, len(s.required))
	copy(out, s.required)
	return out
}

// MissingParameters returns the required parameters absent from params, in
// the order they are required.
func MissingParameters(intent domain.Intent, params domain.ParameterSet) []string {
	var missing []string
	for _, name := range specs[intent].required {
		if !params.Has(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// ComposeResponse renders the reply for an analysed message
func ComposeResponse(message string, intent domain.Intent, params domain.ParameterSet, missing []string) string {
	s, ok := specs[intent]
	if !ok {
		return fmt.Sprintf(MsgUnknownFormat, message)
	}
	if len(missing) > 0 {
		return fmt.Sprintf(MsgMissingFormat, s.verb, strings.Join(missing, ", "), s.example)
	}
	return s.compose(params)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
