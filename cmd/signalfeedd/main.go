package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/tmoreau/signalfeed/internal/api"
	"github.com/tmoreau/signalfeed/internal/config"
	"github.com/tmoreau/signalfeed/internal/notify"
	"github.com/tmoreau/signalfeed/internal/socket"
	"github.com/tmoreau/signalfeed/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/signalfeedd.yaml", "path to config file")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting signalfeedd",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"base_url", cfg.Server.BaseURL,
		"ws_url", cfg.Server.WSURL,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Create REST client; it doubles as the token store for the socket.
	apiClient := api.NewClient(
		cfg.Server.BaseURL,
		cfg.Server.Password,
		api.WithLogger(logger),
		api.WithTimeout(cfg.Server.Timeout),
		api.WithRetries(cfg.Server.MaxRetries, time.Second),
	)

	if _, err := apiClient.Login(ctx); err != nil {
		logger.Error("failed to log in", "error", err)
		os.Exit(1)
	}
	logger.Info("logged in")

	if status, err := apiClient.GetExecutorStatus(ctx); err != nil {
		logger.Warn("failed to fetch executor status", "error", err)
	} else {
		logger.Info("executor status",
			"running", status.Running,
			"paused", status.Paused,
			"open_positions", status.OpenPositions,
			"equity", status.Equity,
		)
	}

	// Wire the realtime feed
	supervisor := socket.NewSupervisor(socket.SupervisorConfig{
		URL:              cfg.Server.WSURL,
		ReconnectFloor:   cfg.Socket.ReconnectFloor,
		ReconnectCeiling: cfg.Socket.ReconnectCeiling,
		ReconnectGrowth:  cfg.Socket.ReconnectGrowth,
		AuthTimeout:      cfg.Socket.AuthTimeout,
		WriteTimeout:     cfg.Socket.WriteTimeout,
		BufferSize:       cfg.Socket.BufferSize,
	}, apiClient, logger)

	center := notify.NewCenter(notify.Config{
		AlertToasts: notify.Policy{
			Capacity:  cfg.Notify.AlertToasts.Capacity,
			Expiry:    cfg.Notify.AlertToasts.Expiry,
			Staleness: cfg.Notify.AlertToasts.Staleness,
		},
		TradeToasts: notify.Policy{
			Capacity:  cfg.Notify.TradeToasts.Capacity,
			Expiry:    cfg.Notify.TradeToasts.Expiry,
			Staleness: cfg.Notify.TradeToasts.Staleness,
		},
		BellSize:     cfg.Notify.BellSize,
		MinScore:     cfg.Notify.MinScore,
		SeenCapacity: cfg.Seen.Capacity,
		SeenTTL:      cfg.Seen.TTL,
	}, logger)
	center.Attach(supervisor)

	supervisor.Connect()

	// Metrics server
	mux := http.NewServeMux()
	mux.Handle(cfg.Metrics.Path, promhttp.Handler())
	metricsSrv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Metrics.Port),
		Handler: mux,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("metrics server listening", "port", cfg.Metrics.Port, "path", cfg.Metrics.Path)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		supervisor.Disconnect()
		center.Detach()
		return metricsSrv.Shutdown(shutdownCtx)
	})

	// Periodic live indicator, the terminal stand-in for the dashboard
	// header dot.
	g.Go(func() error {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				logger.Info("feed status",
					"state", supervisor.State().String(),
					"unread", center.Bell().UnreadLabel(),
				)
			}
		}
	})

	if err := g.Wait(); err != nil {
		logger.Error("shutdown with error", "error", err)
		os.Exit(1)
	}

	logger.Info("signalfeedd stopped")
}
