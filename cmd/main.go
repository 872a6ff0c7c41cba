package main

//
//  @title           tradeflow API
//  @version         1.0
//  @description     CSV trade loading service with per-row failure isolation.
//  @termsOfService  https://github.com/guttosm/tradeflow
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/tradeflow
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        trades
//  @tag.description Endpoints for parsing and loading CSV trade files
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/guttosm/tradeflow/config"
	_ "github.com/guttosm/tradeflow/docs" // swagger docs
	"github.com/guttosm/tradeflow/internal/app"
	"github.com/guttosm/tradeflow/internal/domain/models"
	"github.com/guttosm/tradeflow/internal/loader"
	"github.com/guttosm/tradeflow/internal/logger"
	"github.com/guttosm/tradeflow/internal/service"
	"github.com/guttosm/tradeflow/internal/storage"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown terminates the HTTP server and runs cleanup when an OS
// interrupt signal (SIGINT, SIGTERM) is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// runLoad parses every CSV file in dir (in name order) as one batch and
// persists the outcome. Row and file failures are captured in the batch,
// not raised; only infrastructure errors (DB down) abort the run.
func runLoad(ctx context.Context, dir string, kindFlag string) {
	pattern := filepath.Join(dir, "*.csv")
	paths, err := filepath.Glob(pattern)
	if err != nil {
		logger.L().Fatal().Err(err).Str("pattern", pattern).Msg("scan input dir failed")
	}
	if len(paths) == 0 {
		logger.L().Fatal().Str("dir", dir).Msg("no .csv files found")
	}
	sort.Strings(paths)

	var kind *models.TradeKind
	if kindFlag != "" {
		k, err := models.ParseTradeKind(kindFlag)
		if err != nil {
			logger.L().Fatal().Err(err).Str("kind", kindFlag).Msg("invalid kind flag")
		}
		kind = &k
	}

	sources := make([]loader.Source, 0, len(paths))
	for _, p := range paths {
		sources = append(sources, loader.FileSource(p))
	}
	logger.L().Info().Int("files", len(sources)).Str("dir", dir).Msg("load start")

	db, err := app.InitPostgres(config.AppConfig)
	if err != nil {
		logger.L().Fatal().Err(err).Msg("db connect error")
	}
	defer func() { _ = db.Close() }()

	svc := service.NewLoadService(loader.Standard(), storage.NewTradesRepository(db))
	res, batchID, err := svc.Load(ctx, sources, kind)
	if err != nil {
		logger.L().Fatal().Err(err).Msg("load failed")
	}

	for _, f := range res.Failures {
		logger.L().Warn().Str("reason", string(f.Reason)).Int("line", f.Line).Msg(f.Msg)
	}
	logger.L().Info().
		Str("batch_id", batchID.String()).
		Int("trades", len(res.Values)).
		Int("failures", len(res.Failures)).
		Msg("load completed")
}

// main is the entry point of the tradeflow application.
//
// Modes (selected via --mode flag):
//   - load: Parses the CSV trade files in --dir and persists them as one batch.
//   - api:  Starts the REST API for uploading and querying trades.
func main() {
	ctx := context.Background()

	config.LoadConfig()
	logger.Init()

	mode := flag.String("mode", "load", "Mode: load or api")
	dir := flag.String("dir", config.AppConfig.Loader.InputDir, "Directory with .csv trade files")
	kind := flag.String("kind", "", "Restrict loading to one trade kind (e.g. Fra)")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "load":
		logger.L().Info().Msg("running load")
		runLoad(ctx, *dir, strings.TrimSpace(*kind))

	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
