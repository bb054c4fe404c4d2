package intent

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/osse101/ChainBot_Go/internal/domain"
)

// Extract pulls amount, tokens, chains, and a destination address out of
// message. It never fails: anything it cannot make sense of is left nil.
//
// Three independent passes run over the lower-cased, whitespace-split message.
// The last one may overwrite the destination chain picked by the address pass;
// that precedence is kept as-is for compatibility with existing clients.
func Extract(message string) domain.ParameterSet {
	text := lower(message)
	words := strings.Fields(text)

	var params domain.ParameterSet
	extractAmount(words, &params)
	extractAddress(words, &params)
	extractToFrom(words, &params)

	if params.ToChain != nil && params.FromChain == nil {
		params.FromChain = ptr(DefaultFromChain)
	}
	if params.ToToken == nil && params.FromToken != nil && strings.Contains(text, bridgeKeyword) {
		params.ToToken = ptr(*params.FromToken)
	}

	return params
}

// extractAmount takes the first numeric word as the amount and the word after
// it as the source token.
func extractAmount(words []string, params *domain.ParameterSet) {
	for i, word := range words {
		if !isDecimal(word) {
			continue
		}

		amount, err := strconv.ParseFloat(word, 64)
		if err != nil || math.IsInf(amount, 0) {
			// Not representable; leave the pass empty rather than guess
			return
		}
		params.Amount = &amount

		if i+1 < len(words) {
			params.FromToken = ptr(upper(words[i+1]))
		}
		return
	}
}

// extractAddress takes the first long 0x word as the destination address. A
// following "on <chain>" or "to <chain>" names the destination chain.
func extractAddress(words []string, params *domain.ParameterSet) {
	for i, word := range words {
		if !isAddress(word) {
			continue
		}

		params.ToAddress = ptr(word)
		if i+2 < len(words) && (words[i+1] == wordOn || words[i+1] == wordTo) {
			params.ToChain = ptr(capitalize(words[i+2]))
		}
		return
	}
}

// extractToFrom scans every "to X" and "from X" pair. Later pairs win.
func extractToFrom(words []string, params *domain.ParameterSet) {
	for i, word := range words {
		if i+1 >= len(words) {
			break
		}
		next := words[i+1]

		switch word {
		case wordTo:
			symbol := upper(next)
			if KnownTokens[symbol] {
				params.ToToken = ptr(symbol)
			} else if KnownChains[symbol] {
				params.ToChain = ptr(capitalize(next))
			}
		case wordFrom:
			params.FromChain = ptr(capitalize(next))
		}
	}
}

// isDecimal reports whether word is ASCII digits with at most one '.' and at
// least one digit. Signs, exponents, and separators are rejected.
func isDecimal(word string) bool {
	digits := 0
	dots := 0
	for i := 0; i < len(word); i++ {
		c := word[i]
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			dots++
			if dots > 1 {
				return false
			}
		default:
			return false
		}
	}
	return digits > 0
}

func isAddress(word string) bool {
	return strings.HasPrefix(word, AddressPrefix) && utf8.RuneCountInString(word) >= MinAddressLength
}

func ptr[T any](v T) *T {
	return &v
}
