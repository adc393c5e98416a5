package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"enrolld/internal/account/secrets"
	accountservice "enrolld/internal/account/service"
	accountstore "enrolld/internal/account/store"
	applicationservice "enrolld/internal/application/service"
	applicationstore "enrolld/internal/application/store"
	institutionservice "enrolld/internal/institution/service"
	institutionstore "enrolld/internal/institution/store"
	"enrolld/internal/platform/config"
	"enrolld/internal/platform/httpserver"
	"enrolld/internal/platform/logger"
	"enrolld/internal/platform/metrics"
	"enrolld/internal/platform/middleware"
	httptransport "enrolld/internal/transport/http"
)

// main wires dependencies and keeps the server lifecycle small. Business
// logic lives in the internal service packages.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		logger.New(slog.LevelInfo).Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.SlogLevel())

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	m := metrics.New(registry)

	accounts := accountstore.NewFileStore(cfg.DataDir, log)
	institutions := institutionstore.NewFileStore(cfg.DataDir, log)
	applications := applicationstore.NewFileStore(cfg.DataDir, log)

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:       log,
		Metrics:      m,
		Registry:     registry,
		RateLimiter:  middleware.NewRateLimiter(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst),
		Accounts:     accountservice.NewRegistry(accounts, secrets.NewHasher(cfg.BcryptCost), log, m),
		Institutions: institutionservice.NewCatalog(institutions, log),
		Applications: applicationservice.NewLedger(applications, accounts, log, m),
	})

	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting enrolld", "addr", cfg.Addr, "data_dir", cfg.DataDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
