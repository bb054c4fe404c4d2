package domain

// Intent is the user goal guessed from a chat message.
type Intent string

// Supported intents. Classification is total: anything unrecognised is IntentUnknown.
const (
	IntentBalance       Intent = "balance"
	IntentSwap          Intent = "swap"
	IntentBridge        Intent = "bridge"
	IntentSend          Intent = "send"
	IntentTokenBalances Intent = "token_balances"
	IntentUnknown       Intent = "unknown"
)

// AllIntents lists every intent label in classification order.
var AllIntents = []Intent{
	IntentSend,
	IntentBridge,
	IntentTokenBalances,
	IntentSwap,
	IntentBalance,
	IntentUnknown,
}

// String implements fmt.Stringer
func (i Intent) String() string {
	return string(i)
}

// Parameter names as they appear on the wire
const (
	ParamAmount    = "amount"
	ParamFromToken = "fromToken"
	ParamToToken   = "toToken"
	ParamFromChain = "fromChain"
	ParamToChain   = "toChain"
	ParamToAddress = "toAddress"
)

// ParameterSet holds the loosely structured values pulled out of a message.
// Every field is optional; nil means the extractor found nothing for it and
// is encoded as JSON null.
type ParameterSet struct {
	Amount    *float64 `json:"amount"`
	FromToken *string  `json:"fromToken"`
	ToToken   *string  `json:"toToken"`
	FromChain *string  `json:"fromChain"`
	ToChain   *string  `json:"toChain"`
	ToAddress *string  `json:"toAddress"`
}

// Has reports whether the named parameter is present.
func (p ParameterSet) Has(name string) bool {
	switch name {
	case ParamAmount:
		return p.Amount != nil
	case ParamFromToken:
		return p.FromToken != nil
	case ParamToToken:
		return p.ToToken != nil
	case ParamFromChain:
		return p.FromChain != nil
	case ParamToChain:
		return p.ToChain != nil
	case ParamToAddress:
		return p.ToAddress != nil
	}
	return false
}

// Analysis is the per-request result of classifying and extracting a message.
// It is never stored.
type Analysis struct {
	Response   string       `json:"response"`
	Intent     Intent       `json:"intent"`
	Parameters ParameterSet `json:"parameters"`

	// Missing lists required parameters the message did not supply
	Missing []string `json:"-"`
	ChatID  ChatID   `json:"-"`
}

// Complete reports whether every parameter the intent needs was found
func (a *Analysis) Complete() bool {
	return len(a.Missing) == 0
}
