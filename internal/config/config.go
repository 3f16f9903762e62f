package config

import "time"

// FeedConfig is the root configuration for a signalfeed instance.
type FeedConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Socket  SocketConfig  `yaml:"socket"`
	Notify  NotifyConfig  `yaml:"notify"`
	Seen    SeenConfig    `yaml:"seen"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// ServerConfig holds dashboard backend settings.
type ServerConfig struct {
	BaseURL    string        `yaml:"base_url"` // REST base, e.g. http://localhost:8080
	WSURL      string        `yaml:"ws_url"`   // WebSocket endpoint, e.g. ws://localhost:8080/ws
	Password   string        `yaml:"password"` // dashboard password, exchanged for a bearer token
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`
}

// SocketConfig holds WebSocket supervisor settings.
type SocketConfig struct {
	ReconnectFloor   time.Duration `yaml:"reconnect_floor"`
	ReconnectCeiling time.Duration `yaml:"reconnect_ceiling"`
	ReconnectGrowth  float64       `yaml:"reconnect_growth"`
	AuthTimeout      time.Duration `yaml:"auth_timeout"`
	WriteTimeout     time.Duration `yaml:"write_timeout"`
	BufferSize       int           `yaml:"buffer_size"`
}

// NotifyConfig holds presentation consumer settings.
type NotifyConfig struct {
	AlertToasts ConsumerConfig `yaml:"alert_toasts"`
	TradeToasts ConsumerConfig `yaml:"trade_toasts"`
	BellSize    int            `yaml:"bell_size"`
	MinScore    float64        `yaml:"min_score"` // minimum signal score promoted to a toast
}

// ConsumerConfig holds one toast stack's policy.
type ConsumerConfig struct {
	Capacity  int           `yaml:"capacity"`
	Expiry    time.Duration `yaml:"expiry"`
	Staleness time.Duration `yaml:"staleness"`
}

// SeenConfig holds the dedup cache settings.
type SeenConfig struct {
	Capacity int           `yaml:"capacity"`
	TTL      time.Duration `yaml:"ttl"`
}

// MetricsConfig holds Prometheus metrics settings.
type MetricsConfig struct {
	Port int    `yaml:"port"`
	Path string `yaml:"path"`
}
