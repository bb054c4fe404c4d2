package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/ChainBot_Go/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    domain.Intent
	}{
		{"send with address", "send 1 eth to 0xabc", domain.IntentSend},
		{"deposit with address", "Deposit 5 USDC into 0x1234", domain.IntentSend},
		{"transfer with address", "transfer 2 dai 0xdead", domain.IntentSend},
		{"send without address falls through", "send 1 eth to polygon", domain.IntentUnknown},
		{"transfer without address is not a bridge", "transfer my eth", domain.IntentUnknown},
		{"bridge", "bridge 0.1 eth to polygon", domain.IntentBridge},
		{"move", "Move my USDC to Arbitrum", domain.IntentBridge},
		{"my token balances", "what are my token balances?", domain.IntentTokenBalances},
		{"which tokens", "Which tokens do I hold", domain.IntentTokenBalances},
		{"show tokens", "show tokens", domain.IntentTokenBalances},
		{"token balance", "token balance please", domain.IntentTokenBalances},
		{"swap", "swap 100 usdc to weth", domain.IntentSwap},
		{"exchange", "exchange eth for dai", domain.IntentSwap},
		{"trade", "I want to TRADE", domain.IntentSwap},
		{"balance", "what's my balance", domain.IntentBalance},
		{"how much", "How much ETH do I have?", domain.IntentBalance},
		{"check", "check wallet", domain.IntentBalance},
		{"unknown", "what's up", domain.IntentUnknown},
		{"empty", "", domain.IntentUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.message))
		})
	}
}

func TestClassify_Precedence(t *testing.T) {
	t.Run("send beats bridge when an address is present", func(t *testing.T) {
		assert.Equal(t, domain.IntentSend, Classify("send 1 eth to 0x1234567890123456789012345678901234567890 and bridge it"))
	})

	t.Run("bridge beats swap", func(t *testing.T) {
		assert.Equal(t, domain.IntentBridge, Classify("bridge then swap"))
	})

	t.Run("token balances beats balance", func(t *testing.T) {
		assert.Equal(t, domain.IntentTokenBalances, Classify("check my token balance"))
	})

	t.Run("swap beats balance", func(t *testing.T) {
		assert.Equal(t, domain.IntentSwap, Classify("check the swap rate"))
	})

	t.Run("move matches inside other words", func(t *testing.T) {
		// Substring matching is the documented behavior
		assert.Equal(t, domain.IntentBridge, Classify("remove this"))
	})
}

func TestClassify_Deterministic(t *testing.T) {
	messages := []string{"swap 1 eth", "bridge", "what's up", "show tokens"}
	for _, msg := range messages {
		first := Classify(msg)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, Classify(msg))
		}
	}
}

func TestClassifyWith_CustomRules(t *testing.T) {
	rules := []Rule{
		{Intent: domain.IntentSwap, AnyOf: []string{"flip"}},
	}

	assert.Equal(t, domain.IntentSwap, ClassifyWith(rules, "FLIP it"))
	assert.Equal(t, domain.IntentUnknown, ClassifyWith(rules, "swap"))
	assert.Equal(t, domain.IntentUnknown, ClassifyWith(nil, "anything"))
}

func TestRules_Order(t *testing.T) {
	// The table order is the precedence policy
	want := []domain.Intent{
		domain.IntentSend,
		domain.IntentBridge,
		domain.IntentTokenBalances,
		domain.IntentSwap,
		domain.IntentBalance,
	}

	got := make([]domain.Intent, 0, len(Rules))
	for _, r := range Rules {
		got = append(got, r.Intent)
	}
	assert.Equal(t, want, got)
}
