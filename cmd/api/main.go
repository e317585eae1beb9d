package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/zhouzirui/interview-coach/backend/internal/config"
	"github.com/zhouzirui/interview-coach/backend/internal/handler"
	"github.com/zhouzirui/interview-coach/backend/internal/metrics"
	"github.com/zhouzirui/interview-coach/backend/internal/model/option"
	"github.com/zhouzirui/interview-coach/backend/internal/pkg/logger"
	"github.com/zhouzirui/interview-coach/backend/internal/service/ai"
	"github.com/zhouzirui/interview-coach/backend/internal/service/coach"
	"github.com/zhouzirui/interview-coach/backend/internal/service/report"
	"github.com/zhouzirui/interview-coach/backend/internal/service/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if envErr != nil {
		zl.Warn("failed to load .env file, continuing with system environment variables only", zap.Error(envErr))
	}

	store := session.NewMemoryStore()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg, store.Count)

	deps := handler.Deps{
		Store:          store,
		Options:        option.NewMemoryStore(option.Seed()),
		Gatherer:       reg,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Logger:         zl,
	}

	if cfg.AI.Enabled() {
		generator, err := ai.NewGenerator(ctx, cfg.AI, zl)
		if err != nil {
			zl.Warn("failed to initialize AI service, continuing without it", zap.Error(err))
		} else {
			deps.Coach = coach.NewService(store, generator, m, zl)
			deps.Reports = report.NewService(store, generator, report.NewPDFRenderer(report.DefaultLayout), m, zl)
			zl.Info("AI service initialized", zap.String("provider", cfg.AI.Provider))
		}
	} else {
		zl.Warn("no LLM credentials configured (GEMINI_KEY or Ark), question and report endpoints will return 503")
	}

	startServer(ctx, cfg.Server, handler.NewRouter(deps), zl)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler, zl *zap.Logger) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	zl.Info("interview coach backend listening", zap.String("addr", addr))
	if err := runServer(ctx, srv); err != nil {
		zl.Fatal("server error", zap.Error(err))
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
