package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dynamocards/internal/concepts"
	"dynamocards/internal/config"
	"dynamocards/internal/http"
	"dynamocards/internal/llm"
	"dynamocards/internal/service"
	"dynamocards/internal/splitter"
	"dynamocards/internal/summary"
	"dynamocards/internal/transcript"
)

// shutdownTimeout bounds how long in-flight analyses may run after a stop signal.
const shutdownTimeout = 30 * time.Second

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Create model gateway (external service layer)
	gateway, err := llm.NewGateway(ctx, llm.Config{
		APIKey:            cfg.LLMAPIKey,
		ModelName:         cfg.LLMModelName,
		Timeout:           cfg.LLMTimeout,
		RequestsPerSecond: cfg.LLMRequestsPerSecond,
		JSONMode:          cfg.LLMJSONMode,
	})
	if err != nil {
		log.Fatalf("Failed to create model gateway: %v", err)
	}
	defer func() {
		_ = gateway.Close()
	}()
	slog.Info("Model gateway initialized", "model", gateway.ModelName(), "rps", cfg.LLMRequestsPerSecond)

	source := transcript.NewClient(cfg.TranscriptLanguage, cfg.SourceTimeout)

	segmenter, err := splitter.New(cfg.ChunkSize, cfg.ChunkOverlap)
	if err != nil {
		log.Fatalf("Failed to create splitter: %v", err)
	}

	extractor := concepts.NewExtractor(gateway,
		concepts.WithLogger(logger),
		concepts.WithRates(concepts.Rates{Input: cfg.InputRate, Output: cfg.OutputRate}),
	)
	summarizer := summary.New(gateway, logger)

	analyzeService := service.NewAnalyzeService(source, segmenter, extractor, summarizer, service.Settings{
		SampleSize:   cfg.SampleSize,
		Concurrency:  cfg.BatchConcurrency,
		BatchTimeout: cfg.LLMTimeout,
		Verbose:      cfg.LogLevel <= slog.LevelDebug,
	})

	// Create router with dependencies
	router := http.NewRouter(&http.Deps{
		AnalyzeService: analyzeService,
		Logger:         logger,
		RequestTimeout: cfg.RequestTimeout,
	})

	srv := &nethttp.Server{
		Addr:              ":" + cfg.APIPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start API server
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting API server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("API server failed to start: %v", err)
		}
	case <-ctx.Done():
		slog.Info("Shutting down API server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("API server shutdown failed", "error", err)
	}
	slog.Info("API server stopped")
}
