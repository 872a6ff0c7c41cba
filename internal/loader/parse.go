package loader

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/tradeflow/internal/csvio"
)

// Accepted layouts for date and time cells. Files come from several
// upstream systems, so a few spellings are tolerated.
var (
	dateLayouts = []string{"2006-01-02", "20060102", "02/01/2006", "2006/01/02"}
	timeLayouts = []string{"15:04:05", "15:04", "3:04 PM"}
)

// ParseDate parses a date cell, trying each accepted layout in turn.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", s)
}

// ParseTime parses a time-of-day cell. The result carries only the clock
// part (year zero), matching how trade times are stored.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(0, 1, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable time %q", s)
}

// ParseZone parses a time-zone identifier cell, such as "Europe/London".
func ParseZone(s string) (*time.Location, error) {
	return time.LoadLocation(strings.TrimSpace(s))
}

// ParseDecimal parses a numeric cell. Thousands separators are not
// accepted; the decimal separator is a dot.
func ParseDecimal(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}

// ParsePercent parses a rate cell expressed as a percentage (e.g. "1.2"
// meaning 1.2%) into a fraction (0.012).
func ParsePercent(s string) (decimal.Decimal, error) {
	d, err := ParseDecimal(s)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return d.Shift(-2), nil
}

// addTenor advances a date by a tenor such as "5Y", "6M", "2W" or "90D".
func addTenor(start time.Time, tenor string) (time.Time, error) {
	tenor = strings.ToUpper(strings.TrimSpace(tenor))
	if len(tenor) < 2 {
		return time.Time{}, fmt.Errorf("invalid tenor %q", tenor)
	}
	n := 0
	for _, c := range tenor[:len(tenor)-1] {
		if c < '0' || c > '9' {
			return time.Time{}, fmt.Errorf("invalid tenor %q", tenor)
		}
		n = n*10 + int(c-'0')
	}
	if n == 0 {
		return time.Time{}, fmt.Errorf("invalid tenor %q", tenor)
	}
	switch tenor[len(tenor)-1] {
	case 'Y':
		return start.AddDate(n, 0, 0), nil
	case 'M':
		return start.AddDate(0, n, 0), nil
	case 'W':
		return start.AddDate(0, 0, 7*n), nil
	case 'D':
		return start.AddDate(0, 0, n), nil
	default:
		return time.Time{}, fmt.Errorf("invalid tenor %q", tenor)
	}
}

// requiredField returns the trimmed value of a column that must be
// present and non-empty for the row to parse.
func requiredField(row csvio.Row, name string) (string, error) {
	v, ok := row.FindField(name)
	if !ok {
		return "", fmt.Errorf("missing value for column %q", name)
	}
	return v, nil
}

// requiredDate reads a mandatory date column.
func requiredDate(row csvio.Row, name string) (time.Time, error) {
	v, err := requiredField(row, name)
	if err != nil {
		return time.Time{}, err
	}
	d, err := ParseDate(v)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s: %w", name, err)
	}
	return d, nil
}

// requiredDecimal reads a mandatory numeric column.
func requiredDecimal(row csvio.Row, name string) (decimal.Decimal, error) {
	v, err := requiredField(row, name)
	if err != nil {
		return decimal.Decimal{}, err
	}
	d, err := ParseDecimal(v)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %s: %w", name, err)
	}
	return d, nil
}

// requiredPercent reads a mandatory percentage column as a fraction.
func requiredPercent(row csvio.Row, name string) (decimal.Decimal, error) {
	v, err := requiredField(row, name)
	if err != nil {
		return decimal.Decimal{}, err
	}
	d, err := ParsePercent(v)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %s: %w", name, err)
	}
	return d, nil
}
