package loader

import (
	"fmt"

	"github.com/guttosm/tradeflow/internal/csvio"
	"github.com/guttosm/tradeflow/internal/domain/models"
)

// parseSwapTrade builds a fixed-for-floating swap from one row.
//
// Mandatory columns: Buy Sell, Notional, Fixed Rate, Start Date, Currency.
// The end of the swap comes from either End Date or Tenor (e.g. "5Y");
// exactly one of the two must be supplied.
func parseSwapTrade(row csvio.Row, info models.TradeInfo, _ InfoResolver) (models.Trade, error) {
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

	endRaw, hasEnd := row.FindField(EndDateField)
	tenor, hasTenor := row.FindField(TenorField)
	if hasEnd == hasTenor {
		return nil, fmt.Errorf("swap requires exactly one of %q and %q", EndDateField, TenorField)
	}

	trade := models.SwapTrade{
		TradeInfo: info,
		BuySell:   buySell,
		Notional:  notional,
		FixedRate: fixedRate,
		StartDate: startDate,
		Currency:  currency,
		Tenor:     tenor,
	}
	if hasEnd {
		endDate, err := ParseDate(endRaw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EndDateField, err)
		}
		if !endDate.After(startDate) {
			return nil, fmt.Errorf("%s must be after %s", EndDateField, StartDateField)
		}
		trade.EndDate = endDate
	} else {
		end, err := addTenor(startDate, tenor)
		if err != nil {
			return nil, err
		}
		trade.EndDate = end
	}
	return trade, nil
}
