// This app implements a DIS/C-DIS translating gateway: a configurable
// pipeline of UDP and codec nodes that converts full-width DIS traffic to
// Compressed-DIS and back.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sw-vish/cdisgw/internal/config"
	"github.com/sw-vish/cdisgw/internal/logging"
	"github.com/sw-vish/cdisgw/internal/node"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	logger.Info("Starting gateway...")

	pipeline, err := node.Build(cfg.Pipeline, logger)
	if err != nil {
		logger.Fatalf("failed to build pipeline: %v", err)
	}

	if cfg.MetricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			logger.Infof("Serving metrics on %s", cfg.MetricsAddr)
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				logger.Errorf("metrics server: %v", err)
			}
		}()
	}

	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		if err := pipeline.Run(ctx); err != nil && err != context.Canceled {
			logger.Errorf("pipeline stopped: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Infof("Signal received: %s, shutting down gracefully...", sig)
	cancel()
	logger.Info("Gateway shut down cleanly")
}
