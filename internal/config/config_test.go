package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	yaml := `
server:
  base_url: http://localhost:9000
  ws_url: ws://localhost:9000/ws
  password: hunter2
socket:
  reconnect_floor: 2s
  reconnect_ceiling: 30s
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.BaseURL != "http://localhost:9000" {
		t.Errorf("Server.BaseURL = %q, want %q", cfg.Server.BaseURL, "http://localhost:9000")
	}
	if cfg.Server.WSURL != "ws://localhost:9000/ws" {
		t.Errorf("Server.WSURL = %q, want %q", cfg.Server.WSURL, "ws://localhost:9000/ws")
	}
	if cfg.Socket.ReconnectFloor != 2*time.Second {
		t.Errorf("Socket.ReconnectFloor = %v, want 2s", cfg.Socket.ReconnectFloor)
	}
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_DASH_PASSWORD", "secret123")

	yaml := `
server:
  ws_url: ws://localhost:9000/ws
  password: ${TEST_DASH_PASSWORD}
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Password != "secret123" {
		t.Errorf("Server.Password = %q, want %q", cfg.Server.Password, "secret123")
	}
}

func TestLoadWithDefaults(t *testing.T) {
	yaml := `
server:
  ws_url: ws://localhost:9000/ws
`
	path := writeTempFile(t, yaml)

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	// Check defaults were applied
	if cfg.Socket.ReconnectFloor != DefaultReconnectFloor {
		t.Errorf("Socket.ReconnectFloor = %v, want default %v", cfg.Socket.ReconnectFloor, DefaultReconnectFloor)
	}
	if cfg.Socket.ReconnectGrowth != DefaultReconnectGrowth {
		t.Errorf("Socket.ReconnectGrowth = %v, want default %v", cfg.Socket.ReconnectGrowth, DefaultReconnectGrowth)
	}
	if cfg.Notify.AlertToasts.Capacity != DefaultAlertToastCapacity {
		t.Errorf("Notify.AlertToasts.Capacity = %d, want default %d", cfg.Notify.AlertToasts.Capacity, DefaultAlertToastCapacity)
	}
	if cfg.Notify.TradeToasts.Staleness != DefaultTradeToastStaleness {
		t.Errorf("Notify.TradeToasts.Staleness = %v, want default %v", cfg.Notify.TradeToasts.Staleness, DefaultTradeToastStaleness)
	}
	if cfg.Notify.BellSize != DefaultBellSize {
		t.Errorf("Notify.BellSize = %d, want default %d", cfg.Notify.BellSize, DefaultBellSize)
	}
	if cfg.Metrics.Port != DefaultMetricsPort {
		t.Errorf("Metrics.Port = %d, want default %d", cfg.Metrics.Port, DefaultMetricsPort)
	}
}

func TestValidate(t *testing.T) {
	valid := func() FeedConfig {
		cfg := FeedConfig{
			Server: ServerConfig{WSURL: "ws://localhost:9000/ws"},
		}
		cfg.applyDefaults()
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*FeedConfig)
		wantErr string
	}{
		{
			name:    "valid config",
			mutate:  func(c *FeedConfig) {},
			wantErr: "",
		},
		{
			name:    "missing ws url",
			mutate:  func(c *FeedConfig) { c.Server.WSURL = "" },
			wantErr: "server.ws_url is required",
		},
		{
			name:    "bad ws scheme",
			mutate:  func(c *FeedConfig) { c.Server.WSURL = "http://localhost/ws" },
			wantErr: `server.ws_url must use ws:// or wss:// scheme, got "http://localhost/ws"`,
		},
		{
			name: "ceiling below floor",
			mutate: func(c *FeedConfig) {
				c.Socket.ReconnectFloor = 10 * time.Second
				c.Socket.ReconnectCeiling = 2 * time.Second
			},
			wantErr: "socket.reconnect_ceiling (2s) cannot be below reconnect_floor (10s)",
		},
		{
			name:    "growth below one",
			mutate:  func(c *FeedConfig) { c.Socket.ReconnectGrowth = 0.5 },
			wantErr: "socket.reconnect_growth must be >= 1",
		},
		{
			name:    "zero toast capacity",
			mutate:  func(c *FeedConfig) { c.Notify.AlertToasts.Capacity = -1 },
			wantErr: "notify.alert_toasts.capacity must be >= 1",
		},
		{
			name:    "score out of range",
			mutate:  func(c *FeedConfig) { c.Notify.MinScore = 150 },
			wantErr: "notify.min_score must be between 0 and 100, got 150",
		},
		{
			name:    "bad metrics port",
			mutate:  func(c *FeedConfig) { c.Metrics.Port = 70000 },
			wantErr: "metrics.port must be between 1 and 65535, got 70000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
			} else {
				if err == nil {
					t.Errorf("Validate() expected error %q, got nil", tt.wantErr)
				} else if err.Error() != tt.wantErr {
					t.Errorf("Validate() error = %q, want %q", err.Error(), tt.wantErr)
				}
			}
		})
	}
}
