package loader

// Shared CSV column names. Columns may occur in any order; names are
// matched case-sensitively.
const (
	// TypeField selects which kind parser handles a row. It is the only
	// mandatory column and is what format sniffing keys off.
	TypeField = "Trade Type"

	IDSchemeField  = "Id Scheme"
	IDField        = "Id"
	TradeDateField = "Trade Date"
	TradeTimeField = "Trade Time"
	TradeZoneField = "Trade Zone"

	BuySellField   = "Buy Sell"
	CurrencyField  = "Currency"
	NotionalField  = "Notional"
	FixedRateField = "Fixed Rate"
	StartDateField = "Start Date"
	EndDateField   = "End Date"
	IndexField     = "Index"
	DayCountField  = "Day Count"
	TenorField     = "Tenor"

	SecurityIDSchemeField = "Security Id Scheme"
	SecurityIDField       = "Security Id"
	QuantityField         = "Quantity"
	LongQuantityField     = "Long Quantity"
	ShortQuantityField    = "Short Quantity"
	PriceField            = "Price"
)
