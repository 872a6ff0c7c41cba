package models

import (
	"fmt"
	"strings"
	"time"
)

// DefaultTradeScheme is the identifier scheme assumed when a file provides
// a trade id without naming the scheme it is unique within.
const DefaultTradeScheme = "TF-Trade"

// DefaultSecurityScheme is the equivalent default for security identifiers.
const DefaultSecurityScheme = "TF-Security"

// StandardID is a two-part identifier: the scheme the value is unique
// within, plus the value itself. The zero value means "no identifier".
type StandardID struct {
	Scheme string
	Value  string
}

// NewStandardID builds an identifier, rejecting empty parts.
func NewStandardID(scheme, value string) (StandardID, error) {
	scheme = strings.TrimSpace(scheme)
	value = strings.TrimSpace(value)
	if scheme == "" || value == "" {
		return StandardID{}, fmt.Errorf("standard id requires scheme and value, got %q / %q", scheme, value)
	}
	return StandardID{Scheme: scheme, Value: value}, nil
}

// IsEmpty reports whether the identifier is absent.
func (id StandardID) IsEmpty() bool { return id.Scheme == "" && id.Value == "" }

func (id StandardID) String() string {
	if id.IsEmpty() {
		return ""
	}
	return id.Scheme + "~" + id.Value
}

// TradeInfo is the metadata block shared by every trade kind.
// All fields are optional; zero values mean "not supplied".
// Attributes carries deployment-specific enrichment added by an InfoResolver.
type TradeInfo struct {
	ID         StandardID
	TradeDate  time.Time // date only, zero when absent
	TradeTime  time.Time // clock only (year 0), zero when absent
	TradeZone  *time.Location
	Attributes map[string]string
}

// TradeInfoBuilder accumulates trade metadata field by field.
// Resolvers receive the builder so they can extend the metadata in place.
type TradeInfoBuilder struct {
	info TradeInfo
}

// NewTradeInfoBuilder returns an empty builder.
func NewTradeInfoBuilder() *TradeInfoBuilder {
	return &TradeInfoBuilder{}
}

// ID sets the trade identifier.
func (b *TradeInfoBuilder) ID(id StandardID) *TradeInfoBuilder {
	b.info.ID = id
	return b
}

// TradeDate sets the date the trade occurred.
func (b *TradeInfoBuilder) TradeDate(d time.Time) *TradeInfoBuilder {
	b.info.TradeDate = d
	return b
}

// TradeTime sets the time of day the trade occurred.
func (b *TradeInfoBuilder) TradeTime(t time.Time) *TradeInfoBuilder {
	b.info.TradeTime = t
	return b
}

// TradeZone sets the time-zone the trade occurred in.
func (b *TradeInfoBuilder) TradeZone(z *time.Location) *TradeInfoBuilder {
	b.info.TradeZone = z
	return b
}

// Attribute records one enrichment key/value pair.
func (b *TradeInfoBuilder) Attribute(key, value string) *TradeInfoBuilder {
	if b.info.Attributes == nil {
		b.info.Attributes = make(map[string]string)
	}
	b.info.Attributes[key] = value
	return b
}

// Build returns the accumulated metadata.
func (b *TradeInfoBuilder) Build() TradeInfo {
	return b.info
}
