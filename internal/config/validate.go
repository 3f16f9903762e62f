package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks that all required fields are set and values are valid.
func (c *FeedConfig) Validate() error {
	if c.Server.WSURL == "" {
		return errors.New("server.ws_url is required")
	}
	if !strings.HasPrefix(c.Server.WSURL, "ws://") && !strings.HasPrefix(c.Server.WSURL, "wss://") {
		return fmt.Errorf("server.ws_url must use ws:// or wss:// scheme, got %q", c.Server.WSURL)
	}

	if c.Socket.ReconnectFloor <= 0 {
		return errors.New("socket.reconnect_floor must be > 0")
	}
	if c.Socket.ReconnectCeiling < c.Socket.ReconnectFloor {
		return fmt.Errorf("socket.reconnect_ceiling (%v) cannot be below reconnect_floor (%v)",
			c.Socket.ReconnectCeiling, c.Socket.ReconnectFloor)
	}
	if c.Socket.ReconnectGrowth < 1 {
		return errors.New("socket.reconnect_growth must be >= 1")
	}
	if c.Socket.BufferSize < 1 {
		return errors.New("socket.buffer_size must be >= 1")
	}

	if err := c.Notify.AlertToasts.validate("notify.alert_toasts"); err != nil {
		return err
	}
	if err := c.Notify.TradeToasts.validate("notify.trade_toasts"); err != nil {
		return err
	}
	if c.Notify.BellSize < 1 {
		return errors.New("notify.bell_size must be >= 1")
	}
	if c.Notify.MinScore < 0 || c.Notify.MinScore > 100 {
		return fmt.Errorf("notify.min_score must be between 0 and 100, got %v", c.Notify.MinScore)
	}

	if c.Seen.Capacity < 1 {
		return errors.New("seen.capacity must be >= 1")
	}

	if c.Metrics.Port < 1 || c.Metrics.Port > 65535 {
		return fmt.Errorf("metrics.port must be between 1 and 65535, got %d", c.Metrics.Port)
	}

	return nil
}

func (cc *ConsumerConfig) validate(prefix string) error {
	if cc.Capacity < 1 {
		return fmt.Errorf("%s.capacity must be >= 1", prefix)
	}
	if cc.Expiry <= 0 {
		return fmt.Errorf("%s.expiry must be > 0", prefix)
	}
	if cc.Staleness <= 0 {
		return fmt.Errorf("%s.staleness must be > 0", prefix)
	}
	return nil
}
