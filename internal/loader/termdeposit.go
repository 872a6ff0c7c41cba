package loader

import (
	"fmt"

	"github.com/guttosm/tradeflow/internal/csvio"
	"github.com/guttosm/tradeflow/internal/domain/models"
)

// parseTermDepositTrade builds a term deposit from one row.
//
// Mandatory columns: Buy Sell, Notional, Fixed Rate, Start Date, Currency.
// The deposit end comes from End Date or Tenor. Day Count defaults to
// Act/360.
func parseTermDepositTrade(row csvio.Row, info models.TradeInfo, _ InfoResolver) (models.Trade, error) {
	buySellRaw, err := requiredField(row, BuySellField)
	if err != nil {
		return nil, err
	}
	buySell, err := models.ParseBuySell(buySellRaw)
	if err != nil {
		return nil, err
	}
	notional, err := requiredDecimal(row, NotionalField)
	if err != nil {
		return nil, err
	}
	fixedRate, err := requiredPercent(row, FixedRateField)
	if err != nil {
		return nil, err
	}
	startDate, err := requiredDate(row, StartDateField)
	if err != nil {
		return nil, err
	}
	currency, err := requiredField(row, CurrencyField)
	if err != nil {
		return nil, err
	}

	var endDate = startDate
	if endRaw, ok := row.FindField(EndDateField); ok {
		endDate, err = ParseDate(endRaw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EndDateField, err)
		}
	} else if tenor, ok := row.FindField(TenorField); ok {
		endDate, err = addTenor(startDate, tenor)
		if err != nil {
			return nil, err
		}
	} else {
		return nil, fmt.Errorf("term deposit requires %q or %q", EndDateField, TenorField)
	}
	if !endDate.After(startDate) {
		return nil, fmt.Errorf("%s must be after %s", EndDateField, StartDateField)
	}

	dayCount, ok := row.FindField(DayCountField)
	if !ok {
		dayCount = "Act/360"
	}

	return models.TermDepositTrade{
		TradeInfo: info,
		BuySell:   buySell,
		Notional:  notional,
		FixedRate: fixedRate,
		StartDate: startDate,
		EndDate:   endDate,
		Currency:  currency,
		DayCount:  dayCount,
	}, nil
}
