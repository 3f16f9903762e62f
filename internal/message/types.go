package message

import (
	"fmt"
	"strings"
	"time"
)

// Kind is the wire-level type discriminator of an inbound message.
type Kind string

// Recognized inbound message kinds. Anything else parses to UnknownMsg.
const (
	KindConnected  Kind = "connected"
	KindPing       Kind = "ping"
	KindSignal     Kind = "signal"
	KindTradeOpen  Kind = "trade_open"
	KindTradeClose Kind = "trade_close"
)

// DecisionDryRun marks a signal produced by a dry-run simulation rather
// than a live alert.
const DecisionDryRun = "dry_run"

// Message is implemented by every parsed inbound message.
type Message interface {
	// MessageKind returns the wire-level type of this message.
	MessageKind() Kind
}

// ConnectedMsg is the application-level handshake acknowledgment.
type ConnectedMsg struct {
	ReceivedAt time.Time
}

func (ConnectedMsg) MessageKind() Kind { return KindConnected }

// PingMsg is a server heartbeat request expecting an immediate echo.
type PingMsg struct {
	ReceivedAt time.Time
}

func (PingMsg) MessageKind() Kind { return KindPing }

// SignalMsg is a scored market event.
type SignalMsg struct {
	Symbol     string
	Side       string // "long" or "short"
	Decision   string // e.g. "buy", "sell", or "dry_run"
	Score      float64
	Price      float64
	Timestamp  time.Time // server timestamp
	ReceivedAt time.Time // local receive time
}

func (SignalMsg) MessageKind() Kind { return KindSignal }

// IsAlert reports whether the signal is a genuine alert rather than a
// dry-run simulation.
func (m SignalMsg) IsAlert() bool {
	return m.Decision != "" && !strings.EqualFold(m.Decision, DecisionDryRun)
}

// Key returns the identity key used for dedup across reconnect redelivery.
func (m SignalMsg) Key() string {
	return identityKey(KindSignal, m.Symbol, m.Timestamp)
}

// Age returns how old the message was at the given instant.
func (m SignalMsg) Age(now time.Time) time.Duration { return now.Sub(m.Timestamp) }

// TradeOpenMsg announces a newly opened position.
type TradeOpenMsg struct {
	Symbol     string
	Side       string
	EntryPrice float64
	Leverage   int
	Timestamp  time.Time
	ReceivedAt time.Time
}

func (TradeOpenMsg) MessageKind() Kind { return KindTradeOpen }

func (m TradeOpenMsg) Key() string {
	return identityKey(KindTradeOpen, m.Symbol, m.Timestamp)
}

func (m TradeOpenMsg) Age(now time.Time) time.Duration { return now.Sub(m.Timestamp) }

// TradeCloseMsg announces a closed position with its realized outcome.
type TradeCloseMsg struct {
	Symbol     string
	Side       string
	EntryPrice float64
	ExitPrice  float64
	PnL        float64
	PnLPercent float64
	ExitReason string // e.g. "take_profit", "stop_loss", "manual"
	Leverage   int
	Timestamp  time.Time
	ReceivedAt time.Time
}

func (TradeCloseMsg) MessageKind() Kind { return KindTradeClose }

func (m TradeCloseMsg) Key() string {
	return identityKey(KindTradeClose, m.Symbol, m.Timestamp)
}

func (m TradeCloseMsg) Age(now time.Time) time.Duration { return now.Sub(m.Timestamp) }

// UnknownMsg is any message with an unrecognized type. Consumers ignore
// it; it is never treated as an error.
type UnknownMsg struct {
	Kind       Kind
	ReceivedAt time.Time
}

func (m UnknownMsg) MessageKind() Kind { return m.Kind }

// identityKey builds the dedup key: kind, subject symbol, and server
// timestamp in milliseconds.
func identityKey(kind Kind, symbol string, ts time.Time) string {
	return fmt.Sprintf("%s|%s|%d", kind, symbol, ts.UnixMilli())
}
