package message

import (
	"encoding/json"
	"time"
)

// envelope is used for fast type extraction.
type envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// signalWire is the wire format of a signal payload.
type signalWire struct {
	Symbol    string  `json:"symbol"`
	Side      string  `json:"side"`
	Decision  string  `json:"decision"`
	Score     float64 `json:"score"`
	Price     float64 `json:"price"`
	Timestamp int64   `json:"timestamp"` // ms since epoch
}

// tradeWire is the wire format of trade_open and trade_close payloads.
type tradeWire struct {
	Symbol     string  `json:"symbol"`
	Side       string  `json:"side"`
	EntryPrice float64 `json:"entry_price"`
	ExitPrice  float64 `json:"exit_price"`
	PnL        float64 `json:"pnl"`
	PnLPercent float64 `json:"pnl_percent"`
	ExitReason string  `json:"exit_reason"`
	Leverage   int     `json:"leverage"`
	Timestamp  int64   `json:"timestamp"` // ms since epoch
}

// Parse decodes a raw inbound frame into a typed Message.
//
// A frame whose type is not recognized parses to UnknownMsg, never an
// error; only malformed JSON returns an error.
func Parse(raw []byte, receivedAt time.Time) (Message, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, err
	}

	switch Kind(env.Type) {
	case KindConnected:
		return ConnectedMsg{ReceivedAt: receivedAt}, nil

	case KindPing:
		return PingMsg{ReceivedAt: receivedAt}, nil

	case KindSignal:
		var wire signalWire
		if len(env.Data) > 0 {
			if err := json.Unmarshal(env.Data, &wire); err != nil {
				return nil, err
			}
		}
		return SignalMsg{
			Symbol:     wire.Symbol,
			Side:       wire.Side,
			Decision:   wire.Decision,
			Score:      wire.Score,
			Price:      wire.Price,
			Timestamp:  time.UnixMilli(wire.Timestamp),
			ReceivedAt: receivedAt,
		}, nil

	case KindTradeOpen:
		wire, err := parseTrade(env.Data)
		if err != nil {
			return nil, err
		}
		return TradeOpenMsg{
			Symbol:     wire.Symbol,
			Side:       wire.Side,
			EntryPrice: wire.EntryPrice,
			Leverage:   wire.Leverage,
			Timestamp:  time.UnixMilli(wire.Timestamp),
			ReceivedAt: receivedAt,
		}, nil

	case KindTradeClose:
		wire, err := parseTrade(env.Data)
		if err != nil {
			return nil, err
		}
		return TradeCloseMsg{
			Symbol:     wire.Symbol,
			Side:       wire.Side,
			EntryPrice: wire.EntryPrice,
			ExitPrice:  wire.ExitPrice,
			PnL:        wire.PnL,
			PnLPercent: wire.PnLPercent,
			ExitReason: wire.ExitReason,
			Leverage:   wire.Leverage,
			Timestamp:  time.UnixMilli(wire.Timestamp),
			ReceivedAt: receivedAt,
		}, nil

	default:
		return UnknownMsg{Kind: Kind(env.Type), ReceivedAt: receivedAt}, nil
	}
}

func parseTrade(data json.RawMessage) (tradeWire, error) {
	var wire tradeWire
	if len(data) > 0 {
		if err := json.Unmarshal(data, &wire); err != nil {
			return tradeWire{}, err
		}
	}
	return wire, nil
}
