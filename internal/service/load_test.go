package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/guttosm/tradeflow/internal/domain/models"
	"github.com/guttosm/tradeflow/internal/loader"
	"github.com/guttosm/tradeflow/internal/result"
)

type fakeRepo struct {
	trades    []models.Trade
	failures  []result.FailureItem
	recorded  bool
	insertErr error
}

func (f *fakeRepo) InsertTradesBatch(_ uuid.UUID, trades []models.Trade) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.trades = append(f.trades, trades...)
	return nil
}

func (f *fakeRepo) InsertFailures(_ uuid.UUID, failures []result.FailureItem) error {
	f.failures = append(f.failures, failures...)
	return nil
}

func (f *fakeRepo) RecordLoad(uuid.UUID, int, int, int) error {
	f.recorded = true
	return nil
}

func (f *fakeRepo) GetLoadStats() (*models.LoadStats, error) {
	return &models.LoadStats{Total: int64(len(f.trades))}, nil
}

const csvContent = "Trade Type,Buy Sell,Notional,Fixed Rate,Start Date,End Date\n" +
	"Fra,Buy,1000,1,2024-09-01,2025-03-01\n" +
	"Bogus,Buy,1000,1,2024-09-01,2025-03-01\n"

func TestLoad_PersistsTradesAndFailures(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewLoadService(loader.Standard(), repo)

	sources := []loader.Source{loader.BytesSource("a.csv", []byte(csvContent))}
	res, batchID, err := svc.Load(context.Background(), sources, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if batchID == uuid.Nil {
		t.Error("batch id not assigned")
	}
	if len(res.Values) != 1 || len(res.Failures) != 1 {
		t.Fatalf("result: %+v", res)
	}
	if len(repo.trades) != 1 || len(repo.failures) != 1 {
		t.Fatalf("persisted: %d trades, %d failures", len(repo.trades), len(repo.failures))
	}
	if !repo.recorded {
		t.Error("load_log not recorded")
	}
}

func TestLoad_RepositoryError(t *testing.T) {
	repo := &fakeRepo{insertErr: errors.New("db down")}
	svc := NewLoadService(loader.Standard(), repo)

	sources := []loader.Source{loader.BytesSource("a.csv", []byte(csvContent))}
	_, _, err := svc.Load(context.Background(), sources, nil)
	if err == nil {
		t.Fatal("want error when persistence fails")
	}
	if repo.recorded {
		t.Error("load_log must not be recorded on failed persistence")
	}
}

func TestParse_KindFilter(t *testing.T) {
	svc := NewLoadService(loader.Standard(), &fakeRepo{})
	content := "Trade Type,Buy Sell,Notional,Fixed Rate,Start Date,End Date,Security Id,Quantity\n" +
		"Fra,Buy,1000,1,2024-09-01,2025-03-01,,\n" +
		"Security,,,,,,AAPL,12\n"
	sources := []loader.Source{loader.BytesSource("a.csv", []byte(content))}

	res := svc.Parse(sources, nil)
	if len(res.Values) != 2 {
		t.Fatalf("unfiltered: %+v", res)
	}

	kind := models.KindSecurity
	res = svc.Parse(sources, &kind)
	if len(res.Values) != 1 || res.Values[0].Kind() != models.KindSecurity {
		t.Fatalf("filtered: %+v", res)
	}
	if len(res.Failures) != 0 {
		t.Fatalf("filtered rows must not fail: %v", res.Failures)
	}
}

func TestStats(t *testing.T) {
	repo := &fakeRepo{trades: make([]models.Trade, 3)}
	svc := NewLoadService(loader.Standard(), repo)
	stats, err := svc.Stats(context.Background())
	if err != nil || stats.Total != 3 {
		t.Fatalf("stats: %+v err %v", stats, err)
	}
}
