// Package modifier resolves modifier instruction strings into quantity
// multipliers. Instructions may be compound ("side,extra"); a removal token
// zeroes the whole instruction, otherwise the largest token multiplier wins.
package modifier

import (
	"strings"

	"github.com/GetwithitMan/gwi-pos-sub007/internal/models"
)

// Default multipliers, overridable per location
const (
	DefaultLite   = 0.5
	DefaultExtra  = 2.0
	DefaultTriple = 3.0
)

var removalTokens = map[string]bool{
	"no":      true,
	"none":    true,
	"remove":  true,
	"without": true,
	"hold":    true,
}

var liteTokens = map[string]bool{
	"lite":  true,
	"light": true,
	"easy":  true,
	"half":  true,
}

var extraTokens = map[string]bool{
	"extra":  true,
	"double": true,
	"heavy":  true,
}

var tripleTokens = map[string]bool{
	"triple": true,
	"3x":     true,
}

// tokenize splits on commas only. Modifiers name their target through the
// ingredient linkage, so an instruction is a keyword list ("no",
// "side,extra"), never a free-text phrase; a phrase token resolves to the
// neutral 1.0.
func tokenize(instruction string) []string {
	var tokens []string
	for _, raw := range strings.Split(instruction, ",") {
		tok := strings.ToLower(strings.TrimSpace(raw))
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// tokenMultiplier resolves a single token. The settings pointers are
// checked for nil, not truthiness: an explicit override of 0 is a valid
// multiplier and must not fall through to the default.
func tokenMultiplier(token string, settings models.MultiplierSettings) float64 {
	switch {
	case removalTokens[token]:
		return 0
	case liteTokens[token]:
		if settings.Lite != nil {
			return *settings.Lite
		}
		return DefaultLite
	case extraTokens[token]:
		if settings.Extra != nil {
			return *settings.Extra
		}
		return DefaultExtra
	case tripleTokens[token]:
		if settings.Triple != nil {
			return *settings.Triple
		}
		return DefaultTriple
	default:
		// ADD, NORMAL, REGULAR, SIDE and anything unrecognized
		return 1.0
	}
}

// Multiplier resolves a possibly compound instruction into a quantity
// multiplier. Removal dominates: any removal token makes the whole
// instruction 0. Otherwise the maximum across tokens applies, so
// "side,extra" resolves to the extra multiplier.
func Multiplier(instruction string, settings models.MultiplierSettings) float64 {
	tokens := tokenize(instruction)
	if len(tokens) == 0 {
		return 1.0
	}
	result := 0.0
	for _, tok := range tokens {
		m := tokenMultiplier(tok, settings)
		if m == 0 {
			// Removal, or an explicit 0 override: zero wins outright.
			return 0
		}
		if m > result {
			result = m
		}
	}
	return result
}

// IsRemoval reports whether any comma-separated token of the instruction
// is a removal synonym.
func IsRemoval(instruction string) bool {
	for _, tok := range tokenize(instruction) {
		if removalTokens[tok] {
			return true
		}
	}
	return false
}
