package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/tradeflow/config"
	"github.com/guttosm/tradeflow/internal/api"
	"github.com/guttosm/tradeflow/internal/loader"
	"github.com/guttosm/tradeflow/internal/service"
	"github.com/guttosm/tradeflow/internal/storage"
)

// InitializeApp wires all application dependencies and returns a fully
// configured Gin router, a cleanup function for graceful shutdown, and any
// error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres().
//   - Builds the CSV trade loader with the standard kind parsers.
//   - Initializes the repository, service, and HTTP handler layers.
//   - Configures the Gin router and health/readiness probes.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	repo := storage.NewTradesRepository(db)
	svc := service.NewLoadService(loader.Standard(), repo)
	handler := api.NewHandler(svc)
	router := api.NewRouter(handler)

	healthHandler := api.NewHealthHandler(db.Ping)
	healthHandler.Register(router)

	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}
