package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/tradeflow/internal/domain/models"
	"github.com/guttosm/tradeflow/internal/loader"
	"github.com/guttosm/tradeflow/internal/logger"
	"github.com/guttosm/tradeflow/internal/result"
	"github.com/guttosm/tradeflow/internal/storage"
)

// LoadService orchestrates parsing trade sources and persisting the
// outcome. Parsing itself is strictly sequential; only persistence of the
// already-built result fans out.
type LoadService interface {
	// Parse runs a dry-run parse with an optional kind filter (nil = any).
	Parse(sources []loader.Source, kind *models.TradeKind) result.Result[models.Trade]
	// Load parses and persists, returning the result and its batch id.
	Load(ctx context.Context, sources []loader.Source, kind *models.TradeKind) (result.Result[models.Trade], uuid.UUID, error)
	// Stats returns persisted trade counts by kind.
	Stats(ctx context.Context) (*models.LoadStats, error)
}

type loadService struct {
	ldr  *loader.Loader
	repo storage.TradesRepository
}

func NewLoadService(ldr *loader.Loader, repo storage.TradesRepository) LoadService {
	return &loadService{ldr: ldr, repo: repo}
}

func (s *loadService) Parse(sources []loader.Source, kind *models.TradeKind) result.Result[models.Trade] {
	if kind != nil {
		return s.ldr.ParseKind(sources, *kind)
	}
	return s.ldr.Parse(sources)
}

func (s *loadService) Load(ctx context.Context, sources []loader.Source, kind *models.TradeKind) (result.Result[models.Trade], uuid.UUID, error) {
	res := s.Parse(sources, kind)
	batchID := uuid.New()

	// Trades and failures land in separate tables; persist them in parallel.
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.repo.InsertTradesBatch(batchID, res.Values); err != nil {
			return fmt.Errorf("insert trades: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := s.repo.InsertFailures(batchID, res.Failures); err != nil {
			return fmt.Errorf("insert failures: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return res, batchID, err
	}

	if err := s.repo.RecordLoad(batchID, len(sources), len(res.Values), len(res.Failures)); err != nil {
		return res, batchID, fmt.Errorf("record load: %w", err)
	}

	logger.L().Info().
		Str("batch_id", batchID.String()).
		Int("sources", len(sources)).
		Int("trades", len(res.Values)).
		Int("failures", len(res.Failures)).
		Msg("load persisted")
	return res, batchID, nil
}

func (s *loadService) Stats(_ context.Context) (*models.LoadStats, error) {
	return s.repo.GetLoadStats()
}
