package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"maricoleta.org/internal/auth"
	"maricoleta.org/internal/catalog"
	"maricoleta.org/internal/config"
	"maricoleta.org/internal/httpapi"
	"maricoleta.org/internal/obs"
	"maricoleta.org/internal/store/pg"
)

var (
	version = "0.3.1"
	commit  = "dev"
)

func main() {
	obs.Init()
	obs.InitBuildInfo(version, commit)
	logger := obs.Logger()
	defer obs.Sync()

	cfg, err := config.Load(os.Getenv("MARICOLETA_CONFIG"))
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	store, err := pg.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("open store", zap.Error(err))
	}
	defer func() { _ = store.Close() }()

	svc, err := catalog.NewService(store)
	if err != nil {
		logger.Fatal("build catalog service", zap.Error(err))
	}

	tokens, err := auth.NewTokens(cfg.AuthSecret)
	if err != nil {
		logger.Fatal("configure auth", zap.Error(err))
	}

	api := httpapi.New(svc, tokens, httpapi.ReadyProbe{DB: store.DB()}, version)
	api.SetRateLimit(cfg.RateBurst, cfg.RatePerSec)
	api.SetMaxBodyBytes(cfg.MaxBodyBytes)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           api.Handler(),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("starting maricoleta-api",
		zap.String("version", version),
		zap.String("addr", srv.Addr),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = srv.Shutdown(ctx)
	logger.Info("stopped")
}
