package storage

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	pq "github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/guttosm/tradeflow/internal/domain/models"
	"github.com/guttosm/tradeflow/internal/result"
)

// TradesRepository defines the contract for persisting load results.
type TradesRepository interface {
	InsertTradesBatch(batchID uuid.UUID, trades []models.Trade) error
	InsertFailures(batchID uuid.UUID, failures []result.FailureItem) error
	RecordLoad(batchID uuid.UUID, sourceCount, tradeCount, failureCount int) error
	GetLoadStats() (*models.LoadStats, error)
}

type tradesRepository struct {
	db *sql.DB
}

func NewTradesRepository(db *sql.DB) TradesRepository {
	return &tradesRepository{db: db}
}

// InsertTradesBatch inserts the trades of one load batch in a single
// transaction using the Postgres COPY protocol. Trades of every kind share
// one wide table; columns not applicable to a kind are NULL.
func (r *tradesRepository) InsertTradesBatch(batchID uuid.UUID, trades []models.Trade) error {
	if len(trades) == 0 {
		return nil
	}
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	// Small optimization for bulk load
	if _, err := tx.Exec(`SET LOCAL synchronous_commit = OFF`); err != nil {
		_ = tx.Rollback()
		return err
	}

	stmt, err := tx.Prepare(pq.CopyIn(
		"trades",
		"batch_id",
		"kind",
		"id_scheme",
		"id_value",
		"trade_date",
		"trade_time",
		"trade_zone",
		"buy_sell",
		"notional",
		"fixed_rate",
		"start_date",
		"end_date",
		"currency",
		"index_name",
		"day_count",
		"tenor",
		"security_scheme",
		"security_id",
		"quantity",
		"price",
	))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, trade := range trades {
		rec := flatten(trade)
		if _, err := stmt.Exec(
			batchID.String(),
			rec.kind,
			toNullStr(rec.idScheme),
			toNullStr(rec.idValue),
			toNullDate(rec.tradeDate),
			toNullClock(rec.tradeTime),
			toNullStr(rec.tradeZone),
			toNullStr(rec.buySell),
			toNullDec(rec.notional),
			toNullDec(rec.fixedRate),
			toNullDate(rec.startDate),
			toNullDate(rec.endDate),
			toNullStr(rec.currency),
			toNullStr(rec.indexName),
			toNullStr(rec.dayCount),
			toNullStr(rec.tenor),
			toNullStr(rec.securityScheme),
			toNullStr(rec.securityID),
			toNullDec(rec.quantity),
			toNullDec(rec.price),
		); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if _, err := stmt.Exec(); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// InsertFailures records the failure items of one load batch.
func (r *tradesRepository) InsertFailures(batchID uuid.UUID, failures []result.FailureItem) error {
	if len(failures) == 0 {
		return nil
	}
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(pq.CopyIn(
		"load_failures", "batch_id", "reason", "message", "line_no",
	))
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	for _, f := range failures {
		var line interface{}
		if f.Line > 0 {
			line = f.Line
		}
		if _, err := stmt.Exec(batchID.String(), string(f.Reason), f.Msg, line); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}
	if _, err := stmt.Exec(); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// RecordLoad upserts the load_log entry for a batch.
func (r *tradesRepository) RecordLoad(batchID uuid.UUID, sourceCount, tradeCount, failureCount int) error {
	_, err := r.db.Exec(`
		INSERT INTO load_log (batch_id, source_count, trade_count, failure_count)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (batch_id)
		DO UPDATE SET source_count = EXCLUDED.source_count,
					  trade_count = EXCLUDED.trade_count,
					  failure_count = EXCLUDED.failure_count,
					  loaded_at = NOW()
	`, batchID.String(), sourceCount, tradeCount, failureCount)
	return err
}

// GetLoadStats returns persisted trade counts broken down by kind.
func (r *tradesRepository) GetLoadStats() (*models.LoadStats, error) {
	rows, err := r.db.Query(`SELECT kind, COUNT(*) FROM trades GROUP BY kind ORDER BY kind`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	stats := &models.LoadStats{}
	for rows.Next() {
		var kc models.KindCount
		if err := rows.Scan(&kc.Kind, &kc.Count); err != nil {
			return nil, err
		}
		stats.ByKind = append(stats.ByKind, kc)
		stats.Total += kc.Count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var last sql.NullTime
	err = r.db.QueryRow(`SELECT MAX(loaded_at) FROM load_log`).Scan(&last)
	if err != nil {
		return nil, err
	}
	if last.Valid {
		stats.LastLoadAt = last.Time
	}
	return stats, nil
}

// tradeRecord is the flattened, nullable shape of one trade row.
type tradeRecord struct {
	kind           string
	idScheme       string
	idValue        string
	tradeDate      time.Time
	tradeTime      time.Time
	tradeZone      string
	buySell        string
	notional       *decimal.Decimal
	fixedRate      *decimal.Decimal
	startDate      time.Time
	endDate        time.Time
	currency       string
	indexName      string
	dayCount       string
	tenor          string
	securityScheme string
	securityID     string
	quantity       *decimal.Decimal
	price          *decimal.Decimal
}

// flatten maps a typed trade onto the wide trades table shape.
func flatten(trade models.Trade) tradeRecord {
	info := trade.Info()
	rec := tradeRecord{
		kind:      string(trade.Kind()),
		idScheme:  info.ID.Scheme,
		idValue:   info.ID.Value,
		tradeDate: info.TradeDate,
		tradeTime: info.TradeTime,
	}
	if info.TradeZone != nil {
		rec.tradeZone = info.TradeZone.String()
	}

	switch t := trade.(type) {
	case models.FraTrade:
		rec.buySell = string(t.BuySell)
		rec.notional = &t.Notional
		rec.fixedRate = &t.FixedRate
		rec.startDate = t.StartDate
		rec.endDate = t.EndDate
		rec.indexName = t.Index
		rec.dayCount = t.DayCount
	case models.SwapTrade:
		rec.buySell = string(t.BuySell)
		rec.notional = &t.Notional
		rec.fixedRate = &t.FixedRate
		rec.startDate = t.StartDate
		rec.endDate = t.EndDate
		rec.currency = t.Currency
		rec.tenor = t.Tenor
	case models.TermDepositTrade:
		rec.buySell = string(t.BuySell)
		rec.notional = &t.Notional
		rec.fixedRate = &t.FixedRate
		rec.startDate = t.StartDate
		rec.endDate = t.EndDate
		rec.currency = t.Currency
		rec.dayCount = t.DayCount
	case models.SecurityTrade:
		rec.securityScheme = t.SecurityID.Scheme
		rec.securityID = t.SecurityID.Value
		rec.quantity = &t.Quantity
		rec.price = &t.Price
	}
	return rec
}

func toNullStr(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func toNullDate(d time.Time) interface{} {
	if d.IsZero() {
		return nil
	}
	return d
}

// toNullClock stores a clock-only time as "HH:MM:SS" text.
func toNullClock(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.Format("15:04:05")
}

func toNullDec(d *decimal.Decimal) interface{} {
	if d == nil {
		return nil
	}
	return d.String()
}
