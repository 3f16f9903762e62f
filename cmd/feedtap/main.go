// feedtap connects to the dashboard WebSocket and prints every parsed
// message to the console. Useful for eyeballing the live feed without
// the notification layer in the way.
//
// Usage: go run ./cmd/feedtap --config configs/signalfeedd.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tmoreau/signalfeed/internal/api"
	"github.com/tmoreau/signalfeed/internal/config"
	"github.com/tmoreau/signalfeed/internal/message"
	"github.com/tmoreau/signalfeed/internal/socket"
)

func main() {
	configPath := flag.String("config", "configs/signalfeedd.yaml", "path to config file")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal")
		cancel()
	}()

	apiClient := api.NewClient(
		cfg.Server.BaseURL,
		cfg.Server.Password,
		api.WithLogger(logger),
		api.WithTimeout(cfg.Server.Timeout),
	)

	if _, err := apiClient.Login(ctx); err != nil {
		logger.Error("failed to log in", "error", err)
		os.Exit(1)
	}

	supervisor := socket.NewSupervisor(socket.SupervisorConfig{
		URL:              cfg.Server.WSURL,
		ReconnectFloor:   cfg.Socket.ReconnectFloor,
		ReconnectCeiling: cfg.Socket.ReconnectCeiling,
		ReconnectGrowth:  cfg.Socket.ReconnectGrowth,
		AuthTimeout:      cfg.Socket.AuthTimeout,
		WriteTimeout:     cfg.Socket.WriteTimeout,
		BufferSize:       cfg.Socket.BufferSize,
	}, apiClient, logger)

	unsubscribe := supervisor.Subscribe(func(msg message.Message) {
		switch m := msg.(type) {
		case message.SignalMsg:
			fmt.Printf("%s  signal      %-10s side=%-5s score=%.1f decision=%s\n",
				m.ReceivedAt.Format(time.TimeOnly), m.Symbol, m.Side, m.Score, m.Decision)
		case message.TradeOpenMsg:
			fmt.Printf("%s  trade_open  %-10s side=%-5s entry=%.4f lev=%d\n",
				m.ReceivedAt.Format(time.TimeOnly), m.Symbol, m.Side, m.EntryPrice, m.Leverage)
		case message.TradeCloseMsg:
			fmt.Printf("%s  trade_close %-10s side=%-5s pnl=%+.2f (%s)\n",
				m.ReceivedAt.Format(time.TimeOnly), m.Symbol, m.Side, m.PnL, m.ExitReason)
		case message.ConnectedMsg:
			fmt.Printf("%s  connected\n", m.ReceivedAt.Format(time.TimeOnly))
		case message.PingMsg:
			// heartbeat noise, skip
		default:
			fmt.Printf("--  %s (ignored)\n", msg.MessageKind())
		}
	})
	defer unsubscribe()

	supervisor.Connect()
	defer supervisor.Disconnect()

	<-ctx.Done()
}
