// Package intent turns a free-text chat message into an intent label and a
// parameter record using ordered keyword rules and token heuristics. Both
// entry points are pure functions and safe for concurrent use.
package intent

import (
	"strings"

	"github.com/osse101/ChainBot_Go/internal/domain"
)

// Classify returns the intent of message. It always returns a value.
func Classify(message string) domain.Intent {
	return ClassifyWith(Rules, message)
}

// ClassifyWith evaluates rules in order against message
func ClassifyWith(rules []Rule, message string) domain.Intent {
	text := lower(message)
	for _, rule := range rules {
		if rule.matches(text) {
			return rule.Intent
		}
	}
	return domain.IntentUnknown
}

// matches expects text to be lower-cased already
func (r Rule) matches(text string) bool {
	if !containsAny(text, r.AnyOf) {
		return false
	}
	for _, required := range r.AllOf {
		if !strings.Contains(text, required) {
			return false
		}
	}
	return true
}

func containsAny(text string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}
