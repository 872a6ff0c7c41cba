package loader

import (
	"fmt"

	"github.com/guttosm/tradeflow/internal/csvio"
	"github.com/guttosm/tradeflow/internal/domain/models"
)

// parseFraTrade builds a forward rate agreement from one row.
//
// Mandatory columns: Buy Sell, Notional, Fixed Rate, Start Date, End Date.
// Optional columns: Index, Day Count (defaults to Act/360).
func parseFraTrade(row csvio.Row, info models.TradeInfo, _ InfoResolver) (models.Trade, error) {
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
	endDate, err := requiredDate(row, EndDateField)
	if err != nil {
		return nil, err
	}
	if !endDate.After(startDate) {
		return nil, fmt.Errorf("%s %s must be after %s %s",
			EndDateField, endDate.Format("2006-01-02"), StartDateField, startDate.Format("2006-01-02"))
	}

	index, _ := row.FindField(IndexField)
	dayCount, ok := row.FindField(DayCountField)
	if !ok {
		dayCount = "Act/360"
	}

	return models.FraTrade{
		TradeInfo: info,
		BuySell:   buySell,
		Notional:  notional,
		FixedRate: fixedRate,
		StartDate: startDate,
		EndDate:   endDate,
		Index:     index,
		DayCount:  dayCount,
	}, nil
}
