package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Trade is one financial trade of any supported kind.
// Values are immutable once constructed.
type Trade interface {
	// Kind identifies the instrument family of the trade.
	Kind() TradeKind
	// Info returns the metadata block shared by every trade kind.
	Info() TradeInfo
}

// BuySell indicates the direction of a trade.
type BuySell string

const (
	Buy  BuySell = "Buy"
	Sell BuySell = "Sell"
)

// ParseBuySell parses a direction field, case-insensitively.
// "B" and "S" are accepted as short forms.
func ParseBuySell(s string) (BuySell, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BUY", "B":
		return Buy, nil
	case "SELL", "S":
		return Sell, nil
	default:
		return "", fmt.Errorf("invalid buy/sell value %q", s)
	}
}

// FraTrade is a forward rate agreement.
type FraTrade struct {
	TradeInfo TradeInfo
	BuySell   BuySell
	Notional  decimal.Decimal
	FixedRate decimal.Decimal // fraction, e.g. 0.012 for 1.2%
	StartDate time.Time
	EndDate   time.Time
	Index     string
	DayCount  string
}

func (t FraTrade) Kind() TradeKind { return KindFra }
func (t FraTrade) Info() TradeInfo { return t.TradeInfo }

// SwapTrade is a single-currency fixed-for-floating interest rate swap.
type SwapTrade struct {
	TradeInfo TradeInfo
	BuySell   BuySell
	Notional  decimal.Decimal
	FixedRate decimal.Decimal
	StartDate time.Time
	EndDate   time.Time
	Tenor     string
	Currency  string
}

func (t SwapTrade) Kind() TradeKind { return KindSwap }
func (t SwapTrade) Info() TradeInfo { return t.TradeInfo }

// TermDepositTrade is a term deposit.
type TermDepositTrade struct {
	TradeInfo TradeInfo
	BuySell   BuySell
	Notional  decimal.Decimal
	FixedRate decimal.Decimal
	StartDate time.Time
	EndDate   time.Time
	Currency  string
	DayCount  string
}

func (t TermDepositTrade) Kind() TradeKind { return KindTermDeposit }
func (t TermDepositTrade) Info() TradeInfo { return t.TradeInfo }

// SecurityTrade is a trade in a quantity of a security.
// Quantity is signed: long minus short.
type SecurityTrade struct {
	TradeInfo  TradeInfo
	SecurityID StandardID
	Quantity   decimal.Decimal
	Price      decimal.Decimal
}

func (t SecurityTrade) Kind() TradeKind { return KindSecurity }
func (t SecurityTrade) Info() TradeInfo { return t.TradeInfo }
