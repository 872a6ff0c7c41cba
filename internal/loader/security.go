package loader

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/guttosm/tradeflow/internal/csvio"
	"github.com/guttosm/tradeflow/internal/domain/models"
)

// parseSecurityTrade builds a security trade from one row.
//
// Mandatory columns: Security Id. The scheme defaults when absent.
// Quantity normally comes from the Quantity column; when that column is
// missing, Long Quantity minus Short Quantity is used instead.
// Price is optional.
func parseSecurityTrade(row csvio.Row, info models.TradeInfo, _ InfoResolver) (models.Trade, error) {
	scheme := models.DefaultSecurityScheme
	if s, ok := row.FindField(SecurityIDSchemeField); ok {
		scheme = s
	}
	idValue, err := requiredField(row, SecurityIDField)
	if err != nil {
		return nil, err
	}
	securityID, err := models.NewStandardID(scheme, idValue)
	if err != nil {
		return nil, err
	}

	quantity, err := parseQuantity(row)
	if err != nil {
		return nil, err
	}

	var price decimal.Decimal
	if s, ok := row.FindField(PriceField); ok {
		price, err = ParseDecimal(s)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", PriceField, err)
		}
	}

	return models.SecurityTrade{
		TradeInfo:  info,
		SecurityID: securityID,
		Quantity:   quantity,
		Price:      price,
	}, nil
}

func parseQuantity(row csvio.Row) (decimal.Decimal, error) {
	if s, ok := row.FindField(QuantityField); ok {
		q, err := ParseDecimal(s)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("invalid %s: %w", QuantityField, err)
		}
		return q, nil
	}

	longRaw, hasLong := row.FindField(LongQuantityField)
	shortRaw, hasShort := row.FindField(ShortQuantityField)
	if !hasLong && !hasShort {
		return decimal.Decimal{}, fmt.Errorf(
			"security requires %q or %q/%q", QuantityField, LongQuantityField, ShortQuantityField)
	}
	var long, short decimal.Decimal
	var err error
	if hasLong {
		if long, err = ParseDecimal(longRaw); err != nil {
			return decimal.Decimal{}, fmt.Errorf("invalid %s: %w", LongQuantityField, err)
		}
	}
	if hasShort {
		if short, err = ParseDecimal(shortRaw); err != nil {
			return decimal.Decimal{}, fmt.Errorf("invalid %s: %w", ShortQuantityField, err)
		}
	}
	return long.Sub(short), nil
}
