package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultBaseURL    = "http://localhost:8080"
	DefaultWSURL      = "ws://localhost:8080/ws"
	DefaultAPITimeout = 30 * time.Second
	DefaultMaxRetries = 3

	DefaultReconnectFloor   = 2 * time.Second
	DefaultReconnectCeiling = 30 * time.Second
	DefaultReconnectGrowth  = 1.5
	DefaultAuthTimeout      = 10 * time.Second
	DefaultWriteTimeout     = 5 * time.Second
	DefaultBufferSize       = 256

	DefaultAlertToastCapacity  = 3
	DefaultAlertToastExpiry    = 8 * time.Second
	DefaultAlertToastStaleness = 2 * time.Minute
	DefaultTradeToastCapacity  = 5
	DefaultTradeToastExpiry    = 6 * time.Second
	DefaultTradeToastStaleness = 10 * time.Second
	DefaultBellSize            = 50
	DefaultMinScore            = 70.0

	DefaultSeenCapacity = 1024
	DefaultSeenTTL      = 10 * time.Minute

	DefaultMetricsPort = 9090
	DefaultMetricsPath = "/metrics"
)

func (c *FeedConfig) applyDefaults() {
	// Server defaults
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = DefaultBaseURL
	}
	if c.Server.WSURL == "" {
		c.Server.WSURL = DefaultWSURL
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = DefaultAPITimeout
	}
	if c.Server.MaxRetries == 0 {
		c.Server.MaxRetries = DefaultMaxRetries
	}

	// Socket defaults
	if c.Socket.ReconnectFloor == 0 {
		c.Socket.ReconnectFloor = DefaultReconnectFloor
	}
	if c.Socket.ReconnectCeiling == 0 {
		c.Socket.ReconnectCeiling = DefaultReconnectCeiling
	}
	if c.Socket.ReconnectGrowth == 0 {
		c.Socket.ReconnectGrowth = DefaultReconnectGrowth
	}
	if c.Socket.AuthTimeout == 0 {
		c.Socket.AuthTimeout = DefaultAuthTimeout
	}
	if c.Socket.WriteTimeout == 0 {
		c.Socket.WriteTimeout = DefaultWriteTimeout
	}
	if c.Socket.BufferSize == 0 {
		c.Socket.BufferSize = DefaultBufferSize
	}

	// Notify defaults
	applyConsumerDefaults(&c.Notify.AlertToasts, DefaultAlertToastCapacity, DefaultAlertToastExpiry, DefaultAlertToastStaleness)
	applyConsumerDefaults(&c.Notify.TradeToasts, DefaultTradeToastCapacity, DefaultTradeToastExpiry, DefaultTradeToastStaleness)
	if c.Notify.BellSize == 0 {
		c.Notify.BellSize = DefaultBellSize
	}
	if c.Notify.MinScore == 0 {
		c.Notify.MinScore = DefaultMinScore
	}

	// Seen cache defaults
	if c.Seen.Capacity == 0 {
		c.Seen.Capacity = DefaultSeenCapacity
	}
	if c.Seen.TTL == 0 {
		c.Seen.TTL = DefaultSeenTTL
	}

	// Metrics defaults
	if c.Metrics.Port == 0 {
		c.Metrics.Port = DefaultMetricsPort
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
}

func applyConsumerDefaults(cc *ConsumerConfig, capacity int, expiry, staleness time.Duration) {
	if cc.Capacity == 0 {
		cc.Capacity = capacity
	}
	if cc.Expiry == 0 {
		cc.Expiry = expiry
	}
	if cc.Staleness == 0 {
		cc.Staleness = staleness
	}
}
