package models

import (
	"fmt"
	"strings"
)

// TradeKind identifies the instrument family of a trade.
type TradeKind string

const (
	KindFra         TradeKind = "Fra"
	KindSwap        TradeKind = "Swap"
	KindTermDeposit TradeKind = "TermDeposit"
	KindSecurity    TradeKind = "Security"
)

// kindTags maps upper-cased trade type tags to their canonical kind.
// Matching is case-insensitive and some kinds accept more than one spelling.
var kindTags = map[string]TradeKind{
	"FRA":          KindFra,
	"SWAP":         KindSwap,
	"TERMDEPOSIT":  KindTermDeposit,
	"TERM DEPOSIT": KindTermDeposit,
	"SECURITY":     KindSecurity,
}

// ParseTradeKind resolves a trade type tag to its canonical kind.
// Tags differing only in case, or using a documented synonym spelling,
// resolve to the same kind.
func ParseTradeKind(tag string) (TradeKind, error) {
	k, ok := kindTags[strings.ToUpper(strings.TrimSpace(tag))]
	if !ok {
		return "", fmt.Errorf("trade type %q is not known", tag)
	}
	return k, nil
}

// Kinds returns all supported trade kinds.
func Kinds() []TradeKind {
	return []TradeKind{KindFra, KindSwap, KindTermDeposit, KindSecurity}
}
