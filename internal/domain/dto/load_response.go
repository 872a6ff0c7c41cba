package dto

import (
	"time"

	"github.com/guttosm/tradeflow/internal/domain/models"
	"github.com/guttosm/tradeflow/internal/result"
)

// TradeDTO is the JSON shape of one parsed trade. Kind-specific fields are
// omitted when not applicable.
type TradeDTO struct {
	Kind       string `json:"kind" example:"Fra"`
	ID         string `json:"id,omitempty" example:"TF-Trade~FRA12345"`
	TradeDate  string `json:"trade_date,omitempty" example:"2024-08-01"`
	BuySell    string `json:"buy_sell,omitempty" example:"Buy"`
	Notional   string `json:"notional,omitempty" example:"1000000"`
	FixedRate  string `json:"fixed_rate,omitempty" example:"0.012"`
	StartDate  string `json:"start_date,omitempty" example:"2024-09-01"`
	EndDate    string `json:"end_date,omitempty" example:"2025-03-01"`
	Currency   string `json:"currency,omitempty" example:"GBP"`
	SecurityID string `json:"security_id,omitempty" example:"TF-Security~AAPL"`
	Quantity   string `json:"quantity,omitempty" example:"12"`
	Price      string `json:"price,omitempty" example:"14.5"`
}

// FailureDTO is the JSON shape of one failure item.
type FailureDTO struct {
	Reason  string `json:"reason" example:"parsing"`
	Message string `json:"message" example:"trade type \"Bogus\" is not known"`
	Line    int    `json:"line,omitempty" example:"2"`
}

// LoadResponse is returned by the parse and load endpoints.
//
// swagger:model LoadResponse
type LoadResponse struct {
	BatchID      string       `json:"batch_id,omitempty" example:"7c9e6679-7425-40de-944b-e07fc1f90ae7"`
	TradeCount   int          `json:"trade_count" example:"2"`
	FailureCount int          `json:"failure_count" example:"1"`
	Trades       []TradeDTO   `json:"trades"`
	Failures     []FailureDTO `json:"failures"`
}

// NewLoadResponse maps a parse result onto the API shape.
func NewLoadResponse(res result.Result[models.Trade]) LoadResponse {
	resp := LoadResponse{
		TradeCount:   len(res.Values),
		FailureCount: len(res.Failures),
		Trades:       make([]TradeDTO, 0, len(res.Values)),
		Failures:     make([]FailureDTO, 0, len(res.Failures)),
	}
	for _, t := range res.Values {
		resp.Trades = append(resp.Trades, newTradeDTO(t))
	}
	for _, f := range res.Failures {
		resp.Failures = append(resp.Failures, FailureDTO{
			Reason:  string(f.Reason),
			Message: f.Msg,
			Line:    f.Line,
		})
	}
	return resp
}

func newTradeDTO(trade models.Trade) TradeDTO {
	info := trade.Info()
	d := TradeDTO{
		Kind:      string(trade.Kind()),
		ID:        info.ID.String(),
		TradeDate: fmtDate(info.TradeDate),
	}
	switch t := trade.(type) {
	case models.FraTrade:
		d.BuySell = string(t.BuySell)
		d.Notional = t.Notional.String()
		d.FixedRate = t.FixedRate.String()
		d.StartDate = fmtDate(t.StartDate)
		d.EndDate = fmtDate(t.EndDate)
	case models.SwapTrade:
		d.BuySell = string(t.BuySell)
		d.Notional = t.Notional.String()
		d.FixedRate = t.FixedRate.String()
		d.StartDate = fmtDate(t.StartDate)
		d.EndDate = fmtDate(t.EndDate)
		d.Currency = t.Currency
	case models.TermDepositTrade:
		d.BuySell = string(t.BuySell)
		d.Notional = t.Notional.String()
		d.FixedRate = t.FixedRate.String()
		d.StartDate = fmtDate(t.StartDate)
		d.EndDate = fmtDate(t.EndDate)
		d.Currency = t.Currency
	case models.SecurityTrade:
		d.SecurityID = t.SecurityID.String()
		d.Quantity = t.Quantity.String()
		if !t.Price.IsZero() {
			d.Price = t.Price.String()
		}
	}
	return d
}

func fmtDate(d time.Time) string {
	if d.IsZero() {
		return ""
	}
	return d.Format("2006-01-02")
}
