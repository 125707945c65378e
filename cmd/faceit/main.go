package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/riskibarqy/faceit-go/external/faceit"
	"github.com/riskibarqy/faceit-go/internal/cli"
	"github.com/riskibarqy/faceit-go/internal/config"
	"github.com/riskibarqy/faceit-go/internal/observability"
	"github.com/riskibarqy/faceit-go/internal/platform/logging"
	"github.com/riskibarqy/faceit-go/internal/platform/resilience"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	program := filepath.Base(os.Args[0])
	if len(args) == 0 {
		cli.Usage(os.Stderr, program)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return 1
	}

	logger := logging.NewJSON(cfg.LogLevel, os.Stderr)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("uptrace shutdown failed", "error", err)
		}
	}()

	client, err := faceit.NewClient(faceit.ClientConfig{
		APIKey:    cfg.FaceitAPIKey,
		BaseURL:   cfg.FaceitBaseURL,
		UserAgent: cfg.FaceitUserAgent,
		Timeout:   cfg.FaceitTimeout,
		Logger:    logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.FaceitCircuitEnabled,
			FailureThreshold: cfg.FaceitCircuitFailureCount,
			OpenTimeout:      cfg.FaceitCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.FaceitCircuitHalfOpenMaxReq,
		},
	})
	if err != nil {
		if errors.Is(err, faceit.ErrMissingAPIKey) {
			fmt.Fprintln(os.Stderr, "FACEIT_API_KEY is required")
			return 1
		}
		logger.Error("build faceit client", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRunner(client, os.Stdout, logger).Run(ctx, args); err != nil {
		if errors.Is(err, cli.ErrUsage) {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			cli.Usage(os.Stderr, program)
			return 2
		}
		if apiErr, ok := faceit.AsAPIError(err); ok && apiErr.StatusCode != 0 {
			logger.Error("faceit request failed", "command", args[0], "status", apiErr.StatusCode, "error", err)
			return 1
		}
		logger.Error("command failed", "command", args[0], "error", err)
		return 1
	}
	return 0
}
