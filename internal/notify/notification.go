package notify

import (
	"time"

	"github.com/google/uuid"

	"github.com/tmoreau/signalfeed/internal/message"
)

// Notification is an in-memory projection of an inbound message into a
// display record. Each consumer owns the notifications it created.
type Notification struct {
	ID   uuid.UUID // per-entry identity, keys the expiry timer
	Key  string    // dedup identity (kind|symbol|timestamp)
	Kind message.Kind

	Symbol     string
	Side       string
	Price      float64
	Score      float64
	PnL        float64
	PnLPercent float64
	ExitReason string
	Leverage   int

	Timestamp  time.Time // server timestamp
	ReceivedAt time.Time // local receive time
}

func fromSignal(m message.SignalMsg) Notification {
	return Notification{
		ID:         uuid.New(),
		Key:        m.Key(),
		Kind:       message.KindSignal,
		Symbol:     m.Symbol,
		Side:       m.Side,
		Price:      m.Price,
		Score:      m.Score,
		Timestamp:  m.Timestamp,
		ReceivedAt: m.ReceivedAt,
	}
}

func fromTradeOpen(m message.TradeOpenMsg) Notification {
	return Notification{
		ID:         uuid.New(),
		Key:        m.Key(),
		Kind:       message.KindTradeOpen,
		Symbol:     m.Symbol,
		Side:       m.Side,
		Price:      m.EntryPrice,
		Leverage:   m.Leverage,
		Timestamp:  m.Timestamp,
		ReceivedAt: m.ReceivedAt,
	}
}

func fromTradeClose(m message.TradeCloseMsg) Notification {
	return Notification{
		ID:         uuid.New(),
		Key:        m.Key(),
		Kind:       message.KindTradeClose,
		Symbol:     m.Symbol,
		Side:       m.Side,
		Price:      m.ExitPrice,
		PnL:        m.PnL,
		PnLPercent: m.PnLPercent,
		ExitReason: m.ExitReason,
		Leverage:   m.Leverage,
		Timestamp:  m.Timestamp,
		ReceivedAt: m.ReceivedAt,
	}
}
