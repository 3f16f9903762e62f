package notify

import (
	"log/slog"
	"time"

	"github.com/tmoreau/signalfeed/internal/message"
	"github.com/tmoreau/signalfeed/internal/metrics"
	"github.com/tmoreau/signalfeed/internal/socket"
)

// Consumer names for metrics labels.
const (
	consumerAlertToasts = "alert_toasts"
	consumerTradeToasts = "trade_toasts"
	consumerBell        = "bell"
)

// Filter outcomes for metrics labels.
const (
	outcomeShown     = "shown"
	outcomeDuplicate = "duplicate"
	outcomeStale     = "stale"
	outcomeFiltered  = "filtered"
)

// Policy is one consumer's admission policy.
type Policy struct {
	Capacity  int
	Expiry    time.Duration
	Staleness time.Duration
}

// Config holds the notification center settings.
type Config struct {
	AlertToasts  Policy
	TradeToasts  Policy
	BellSize     int
	MinScore     float64 // minimum signal score promoted to a toast
	SeenCapacity int
	SeenTTL      time.Duration
}

// Center fans inbound messages out to the presentation consumers: a
// small alert toast stack, a medium trade toast stack, and the bell
// history panel. Each consumer applies its own dedup and staleness
// policy; unknown message kinds are ignored.
type Center struct {
	cfg    Config
	logger *slog.Logger

	alerts *Stack
	trades *Stack
	bell   *Bell

	alertSeen *SeenCache
	tradeSeen *SeenCache
	bellSeen  *SeenCache

	unsubscribe func()

	now func() time.Time
}

// NewCenter creates a notification center with its three consumers.
func NewCenter(cfg Config, logger *slog.Logger) *Center {
	if logger == nil {
		logger = slog.Default()
	}
	return &Center{
		cfg:       cfg,
		logger:    logger,
		alerts:    NewStack(cfg.AlertToasts.Capacity, cfg.AlertToasts.Expiry),
		trades:    NewStack(cfg.TradeToasts.Capacity, cfg.TradeToasts.Expiry),
		bell:      NewBell(cfg.BellSize),
		alertSeen: NewSeenCache(cfg.SeenCapacity, cfg.SeenTTL),
		tradeSeen: NewSeenCache(cfg.SeenCapacity, cfg.SeenTTL),
		bellSeen:  NewSeenCache(cfg.SeenCapacity, cfg.SeenTTL),
		now:       time.Now,
	}
}

// Attach subscribes the center to a supervisor's feed.
func (c *Center) Attach(s *socket.Supervisor) {
	c.unsubscribe = s.Subscribe(c.Handle)
}

// Detach removes the center's subscription.
func (c *Center) Detach() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// AlertToasts returns the high-visibility alert toast stack.
func (c *Center) AlertToasts() *Stack { return c.alerts }

// TradeToasts returns the trade open/close toast stack.
func (c *Center) TradeToasts() *Stack { return c.trades }

// Bell returns the history panel.
func (c *Center) Bell() *Bell { return c.bell }

// Handle routes one inbound message to the consumers. Exported so it
// can also be driven directly without a live socket.
func (c *Center) Handle(msg message.Message) {
	switch m := msg.(type) {
	case message.SignalMsg:
		c.handleSignal(m)

	case message.TradeOpenMsg:
		c.handleTrade(fromTradeOpen(m))

	case message.TradeCloseMsg:
		c.handleTrade(fromTradeClose(m))

	default:
		// connected, ping, and unrecognized kinds carry no
		// notification content.
	}
}

func (c *Center) handleSignal(m message.SignalMsg) {
	// Domain filter before dedup: only genuine alerts at or above the
	// score threshold are promoted.
	if !m.IsAlert() || m.Score < c.cfg.MinScore {
		metrics.Notification(consumerAlertToasts, outcomeFiltered)
		return
	}

	n := fromSignal(m)
	now := c.now()

	if m.Age(now) > c.cfg.AlertToasts.Staleness {
		metrics.Notification(consumerAlertToasts, outcomeStale)
	} else if !c.alertSeen.Admit(n.Key) {
		metrics.Notification(consumerAlertToasts, outcomeDuplicate)
	} else {
		c.alerts.Push(n)
		metrics.Notification(consumerAlertToasts, outcomeShown)
		c.logger.Info("alert",
			"symbol", n.Symbol,
			"side", n.Side,
			"score", n.Score,
		)
	}

	c.addToBell(n)
}

func (c *Center) handleTrade(n Notification) {
	now := c.now()

	if now.Sub(n.Timestamp) > c.cfg.TradeToasts.Staleness {
		metrics.Notification(consumerTradeToasts, outcomeStale)
	} else if !c.tradeSeen.Admit(n.Key) {
		metrics.Notification(consumerTradeToasts, outcomeDuplicate)
	} else {
		c.trades.Push(n)
		metrics.Notification(consumerTradeToasts, outcomeShown)
		c.logger.Info("trade",
			"kind", n.Kind,
			"symbol", n.Symbol,
			"side", n.Side,
			"pnl", n.PnL,
		)
	}

	c.addToBell(n)
}

// addToBell gives the history panel its own dedup decision; it has no
// staleness guard since entries persist until evicted by capacity.
func (c *Center) addToBell(n Notification) {
	if !c.bellSeen.Admit(n.Key) {
		metrics.Notification(consumerBell, outcomeDuplicate)
		return
	}
	c.bell.Add(n)
	metrics.Notification(consumerBell, outcomeShown)
}
