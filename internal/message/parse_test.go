package message

import (
	"testing"
	"time"
)

func TestParse_Signal(t *testing.T) {
	raw := []byte(`{
		"type": "signal",
		"data": {
			"symbol": "BTCUSDT",
			"side": "long",
			"decision": "buy",
			"score": 85.5,
			"price": 64250.0,
			"timestamp": 1712345678901
		}
	}`)

	now := time.Now()
	msg, err := Parse(raw, now)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	sig, ok := msg.(SignalMsg)
	if !ok {
		t.Fatalf("expected SignalMsg, got %T", msg)
	}
	if sig.Symbol != "BTCUSDT" {
		t.Errorf("Symbol = %q, want BTCUSDT", sig.Symbol)
	}
	if sig.Side != "long" {
		t.Errorf("Side = %q, want long", sig.Side)
	}
	if sig.Score != 85.5 {
		t.Errorf("Score = %v, want 85.5", sig.Score)
	}
	if sig.Timestamp.UnixMilli() != 1712345678901 {
		t.Errorf("Timestamp = %d, want 1712345678901", sig.Timestamp.UnixMilli())
	}
	if !sig.ReceivedAt.Equal(now) {
		t.Errorf("ReceivedAt = %v, want %v", sig.ReceivedAt, now)
	}
	if !sig.IsAlert() {
		t.Error("expected IsAlert() to be true for decision=buy")
	}
}

func TestParse_SignalDryRun(t *testing.T) {
	raw := []byte(`{"type":"signal","data":{"symbol":"ETHUSDT","decision":"DRY_RUN","score":90,"timestamp":1712345678901}}`)

	msg, err := Parse(raw, time.Now())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	sig := msg.(SignalMsg)
	if sig.IsAlert() {
		t.Error("expected IsAlert() to be false for dry-run decision")
	}
}

func TestParse_TradeClose(t *testing.T) {
	raw := []byte(`{
		"type": "trade_close",
		"data": {
			"symbol": "SOLUSDT",
			"side": "short",
			"entry_price": 145.2,
			"exit_price": 140.1,
			"pnl": 35.4,
			"pnl_percent": 3.5,
			"exit_reason": "take_profit",
			"leverage": 5,
			"timestamp": 1712345678000
		}
	}`)

	msg, err := Parse(raw, time.Now())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	tc, ok := msg.(TradeCloseMsg)
	if !ok {
		t.Fatalf("expected TradeCloseMsg, got %T", msg)
	}
	if tc.Symbol != "SOLUSDT" {
		t.Errorf("Symbol = %q, want SOLUSDT", tc.Symbol)
	}
	if tc.PnL != 35.4 {
		t.Errorf("PnL = %v, want 35.4", tc.PnL)
	}
	if tc.ExitReason != "take_profit" {
		t.Errorf("ExitReason = %q, want take_profit", tc.ExitReason)
	}
	if tc.Leverage != 5 {
		t.Errorf("Leverage = %d, want 5", tc.Leverage)
	}
}

func TestParse_ControlMessages(t *testing.T) {
	msg, err := Parse([]byte(`{"type":"connected"}`), time.Now())
	if err != nil {
		t.Fatalf("Parse connected failed: %v", err)
	}
	if _, ok := msg.(ConnectedMsg); !ok {
		t.Errorf("expected ConnectedMsg, got %T", msg)
	}

	msg, err = Parse([]byte(`{"type":"ping"}`), time.Now())
	if err != nil {
		t.Fatalf("Parse ping failed: %v", err)
	}
	if _, ok := msg.(PingMsg); !ok {
		t.Errorf("expected PingMsg, got %T", msg)
	}
}

func TestParse_UnknownType(t *testing.T) {
	msg, err := Parse([]byte(`{"type":"equity_update","data":{"balance":1000}}`), time.Now())
	if err != nil {
		t.Fatalf("Parse should not error on unknown type: %v", err)
	}

	unk, ok := msg.(UnknownMsg)
	if !ok {
		t.Fatalf("expected UnknownMsg, got %T", msg)
	}
	if unk.Kind != "equity_update" {
		t.Errorf("Kind = %q, want equity_update", unk.Kind)
	}
}

func TestParse_MalformedFrame(t *testing.T) {
	if _, err := Parse([]byte(`{not json`), time.Now()); err == nil {
		t.Error("expected error for malformed frame")
	}
	if _, err := Parse([]byte(`{"type":"signal","data":"not an object"}`), time.Now()); err == nil {
		t.Error("expected error for malformed payload")
	}
}

func TestIdentityKey(t *testing.T) {
	ts := time.UnixMilli(1712345678901)
	a := TradeCloseMsg{Symbol: "BTCUSDT", Timestamp: ts}
	b := TradeCloseMsg{Symbol: "BTCUSDT", Timestamp: ts, PnL: 12.3}

	if a.Key() != b.Key() {
		t.Errorf("keys differ for same symbol+timestamp: %q vs %q", a.Key(), b.Key())
	}
	if a.Key() != "trade_close|BTCUSDT|1712345678901" {
		t.Errorf("Key = %q, want trade_close|BTCUSDT|1712345678901", a.Key())
	}

	open := TradeOpenMsg{Symbol: "BTCUSDT", Timestamp: ts}
	if open.Key() == a.Key() {
		t.Error("trade_open and trade_close keys must differ")
	}
}

func TestAge(t *testing.T) {
	ts := time.Now().Add(-90 * time.Second)
	sig := SignalMsg{Symbol: "BTCUSDT", Timestamp: ts}

	age := sig.Age(time.Now())
	if age < 89*time.Second || age > 91*time.Second {
		t.Errorf("Age = %v, want ~90s", age)
	}
}
