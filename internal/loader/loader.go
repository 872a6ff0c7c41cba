// Package loader turns CSV trade files into typed trade records.
//
// The loader is deliberately tolerant: a malformed row never aborts its
// file, and a malformed file never aborts its batch. Every operation
// returns a result.Result pairing the trades that could be built with the
// failures captured along the way. Failures are data, not panics.
//
// Each file must carry the "Trade Type" column, whose value selects the
// kind parser for the row. Matching is case-insensitive and accepts the
// documented synonym spellings (e.g. "Term Deposit" for "TermDeposit").
// The remaining shared columns (Id Scheme, Id, Trade Date, Trade Time,
// Trade Zone) are optional.
package loader

import (
	"fmt"
	"io"

	"github.com/guttosm/tradeflow/internal/csvio"
	"github.com/guttosm/tradeflow/internal/domain/models"
	"github.com/guttosm/tradeflow/internal/result"
)

// KindParser converts one row plus its common metadata into a trade of a
// specific kind. Parsers are registered per canonical kind tag.
type KindParser func(row csvio.Row, info models.TradeInfo, resolver InfoResolver) (models.Trade, error)

// Filter decides whether trades of a kind are kept in the output.
// Rows of excluded kinds are skipped silently: filtered parsing behaves as
// if the file contained only rows of the requested kinds.
type Filter func(models.TradeKind) bool

// AnyKind keeps every trade kind.
func AnyKind(models.TradeKind) bool { return true }

// OnlyKind keeps a single trade kind.
func OnlyKind(kind models.TradeKind) Filter {
	return func(k models.TradeKind) bool { return k == kind }
}

// Loader parses CSV trade sources. The kind-parser table is built at
// construction; Register can extend it with additional kinds.
// A Loader is immutable after setup and safe for reuse across batches.
type Loader struct {
	resolver InfoResolver
	parsers  map[models.TradeKind]KindParser
}

// New returns a loader with the standard kind parsers (Fra, Swap,
// TermDeposit, Security) and the given resolver for metadata enrichment.
func New(resolver InfoResolver) *Loader {
	l := &Loader{
		resolver: resolver,
		parsers:  make(map[models.TradeKind]KindParser),
	}
	l.Register(models.KindFra, parseFraTrade)
	l.Register(models.KindSwap, parseSwapTrade)
	l.Register(models.KindTermDeposit, parseTermDepositTrade)
	l.Register(models.KindSecurity, parseSecurityTrade)
	return l
}

// Standard returns a loader with the no-op standard resolver.
func Standard() *Loader {
	return New(StandardResolver())
}

// Register installs or replaces the parser for a kind.
// Call during setup only; Loader is not safe for concurrent mutation.
func (l *Loader) Register(kind models.TradeKind, parser KindParser) {
	l.parsers[kind] = parser
}

// IsKnownFormat reports whether the source is plausibly a CSV trade file.
// This reads only the header and checks for the trade type column; any
// error opening or reading the source means "not known format".
func (l *Loader) IsKnownFormat(src Source) bool {
	rc, err := src.Open()
	if err != nil {
		return false
	}
	defer func() { _ = rc.Close() }()

	r, err := csvio.Open(rc)
	if err != nil {
		return false
	}
	return r.ContainsHeader(TypeField)
}

// Parse parses one or more sources into trades of any kind.
// Sources are consumed strictly in order; per-source results are
// concatenated, successes and failures each preserving input order.
func (l *Loader) Parse(sources []Source) result.Result[models.Trade] {
	return l.ParseFiltered(sources, AnyKind)
}

// ParseKind parses one or more sources, keeping only trades of one kind.
// Rows of other kinds produce no output at all, success or failure.
func (l *Loader) ParseKind(sources []Source, kind models.TradeKind) result.Result[models.Trade] {
	return l.ParseFiltered(sources, OnlyKind(kind))
}

// ParseFiltered parses one or more sources with a caller-supplied filter.
//
// The method never panics across its boundary: a fault escaping the
// per-source and per-row containment is converted into a single generic
// failure on an otherwise empty result.
func (l *Loader) ParseFiltered(sources []Source, keep Filter) (res result.Result[models.Trade]) {
	defer func() {
		if r := recover(); r != nil {
			res = result.Failed[models.Trade](
				result.NewFailure(result.ReasonError, "unexpected error parsing trade sources: %v", r))
		}
	}()

	combined := result.Result[models.Trade]{}
	for _, src := range sources {
		combined = combined.Combine(l.parseSource(src, keep))
	}
	return combined
}

// parseSource converts one source, capturing source-level faults as a
// single failure item. The reader is closed on every exit path.
func (l *Loader) parseSource(src Source, keep Filter) result.Result[models.Trade] {
	rc, err := src.Open()
	if err != nil {
		return result.Failed[models.Trade](
			result.NewFailure(result.ReasonParsing, "source %s could not be opened: %v", src.Name, err).WithCause(err))
	}
	defer func() { _ = rc.Close() }()

	r, err := csvio.Open(rc)
	if err != nil {
		return result.Failed[models.Trade](
			result.NewFailure(result.ReasonParsing, "source %s could not be parsed: %v", src.Name, err).WithCause(err))
	}
	if !r.ContainsHeader(TypeField) {
		return result.Failed[models.Trade](
			result.NewFailure(result.ReasonFormat, "source %s does not contain %q header", src.Name, TypeField))
	}
	return l.parseRows(src.Name, r, keep)
}

// parseRows iterates the data rows of one open source in file order.
func (l *Loader) parseRows(name string, r *csvio.Reader, keep Filter) result.Result[models.Trade] {
	var res result.Result[models.Trade]
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// a broken stream invalidates the whole source; partial rows
			// are discarded and the source reports a single failure
			return result.Failed[models.Trade](result.NewFailure(
				result.ReasonParsing, "source %s could not be read: %v", name, err).WithCause(err))
		}
		l.parseRow(row, keep, &res)
	}
	return res
}

// parseRow produces exactly one success or one failure for the row, or
// nothing when the row's kind is excluded by the filter. Any panic during
// the row is contained here and scoped to this row only.
func (l *Loader) parseRow(row csvio.Row, keep Filter, res *result.Result[models.Trade]) {
	defer func() {
		if r := recover(); r != nil {
			res.AddFailure(result.NewRowFailure(
				result.ReasonParsing, row.LineNumber(), "trade could not be parsed: %v", r))
		}
	}()

	tag, err := row.GetField(TypeField)
	if err != nil {
		res.AddFailure(result.NewRowFailure(
			result.ReasonParsing, row.LineNumber(), "trade type could not be read: %v", err).WithCause(err))
		return
	}
	kind, err := models.ParseTradeKind(tag)
	if err != nil {
		res.AddFailure(result.NewRowFailure(
			result.ReasonParsing, row.LineNumber(), "trade type %q is not known", tag))
		return
	}
	if !keep(kind) {
		return
	}

	parser, ok := l.parsers[kind]
	if !ok {
		res.AddFailure(result.NewRowFailure(
			result.ReasonParsing, row.LineNumber(), "no parser registered for trade type %q", kind))
		return
	}
	info, err := l.parseTradeInfo(row)
	if err != nil {
		res.AddFailure(result.NewRowFailure(
			result.ReasonParsing, row.LineNumber(), "trade could not be parsed: %v", err).WithCause(err))
		return
	}
	trade, err := parser(row, info, l.resolver)
	if err != nil {
		res.AddFailure(result.NewRowFailure(
			result.ReasonParsing, row.LineNumber(), "trade could not be parsed: %v", err).WithCause(err))
		return
	}
	res.AddValue(trade)
}

// parseTradeInfo builds the common metadata block from the shared columns,
// then hands the builder to the resolver for enrichment.
func (l *Loader) parseTradeInfo(row csvio.Row) (models.TradeInfo, error) {
	b := models.NewTradeInfoBuilder()

	scheme := models.DefaultTradeScheme
	if s, ok := row.FindField(IDSchemeField); ok {
		scheme = s
	}
	if idValue, ok := row.FindField(IDField); ok {
		id, err := models.NewStandardID(scheme, idValue)
		if err != nil {
			return models.TradeInfo{}, err
		}
		b.ID(id)
	}
	if s, ok := row.FindField(TradeDateField); ok {
		d, err := ParseDate(s)
		if err != nil {
			return models.TradeInfo{}, fmt.Errorf("invalid %s: %w", TradeDateField, err)
		}
		b.TradeDate(d)
	}
	if s, ok := row.FindField(TradeTimeField); ok {
		t, err := ParseTime(s)
		if err != nil {
			return models.TradeInfo{}, fmt.Errorf("invalid %s: %w", TradeTimeField, err)
		}
		b.TradeTime(t)
	}
	if s, ok := row.FindField(TradeZoneField); ok {
		z, err := ParseZone(s)
		if err != nil {
			return models.TradeInfo{}, fmt.Errorf("invalid %s: %w", TradeZoneField, err)
		}
		b.TradeZone(z)
	}

	if err := l.resolver.EnrichTradeInfo(row, b); err != nil {
		return models.TradeInfo{}, fmt.Errorf("resolver rejected trade info: %w", err)
	}
	return b.Build(), nil
}
