package notify

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/tmoreau/signalfeed/internal/message"
)

func testNotification(symbol string) Notification {
	return Notification{
		ID:        uuid.New(),
		Key:       fmt.Sprintf("signal|%s|%d", symbol, time.Now().UnixMilli()),
		Kind:      message.KindSignal,
		Symbol:    symbol,
		Timestamp: time.Now(),
	}
}

func TestStack_MostRecentFirst(t *testing.T) {
	s := NewStack(3, time.Minute)

	s.Push(testNotification("AAA"))
	s.Push(testNotification("BBB"))
	s.Push(testNotification("CCC"))

	entries := s.Entries()
	if len(entries) != 3 {
		t.Fatalf("Len = %d, want 3", len(entries))
	}
	if entries[0].Symbol != "CCC" || entries[2].Symbol != "AAA" {
		t.Errorf("order = [%s %s %s], want [CCC BBB AAA]",
			entries[0].Symbol, entries[1].Symbol, entries[2].Symbol)
	}
}

func TestStack_CapacityEvictsOldest(t *testing.T) {
	s := NewStack(3, time.Minute)

	for _, sym := range []string{"AAA", "BBB", "CCC", "DDD"} {
		s.Push(testNotification(sym))
	}

	entries := s.Entries()
	if len(entries) != 3 {
		t.Fatalf("Len = %d, want 3", len(entries))
	}
	for _, n := range entries {
		if n.Symbol == "AAA" {
			t.Error("oldest entry AAA should have been evicted")
		}
	}
	if entries[0].Symbol != "DDD" {
		t.Errorf("newest entry = %s, want DDD", entries[0].Symbol)
	}
}

func TestStack_ExpiryRemovesEntry(t *testing.T) {
	s := NewStack(3, 30*time.Millisecond)

	s.Push(testNotification("AAA"))

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if s.Len() == 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Error("entry was not removed by its expiry timer")
}

func TestStack_DismissCancelsExpiry(t *testing.T) {
	s := NewStack(3, 50*time.Millisecond)

	n := testNotification("AAA")
	s.Push(n)

	if !s.Dismiss(n.ID) {
		t.Fatal("Dismiss should report removal")
	}
	if s.Dismiss(n.ID) {
		t.Error("second Dismiss should report nothing removed")
	}

	// A fresh entry pushed after the dismissal must not be clipped by
	// the first entry's (cancelled) timer.
	s2 := NewStack(3, time.Minute)
	later := testNotification("BBB")
	s2.Push(later)
	time.Sleep(100 * time.Millisecond)
	if s2.Len() != 1 {
		t.Errorf("Len = %d, want 1", s2.Len())
	}
}

func TestStack_EvictionCancelsTimer(t *testing.T) {
	s := NewStack(1, time.Minute)

	a := testNotification("AAA")
	s.Push(a)
	s.Push(testNotification("BBB")) // evicts AAA

	s.mu.Lock()
	_, timerAlive := s.timers[a.ID]
	s.mu.Unlock()
	if timerAlive {
		t.Error("evicted entry's timer should have been cancelled")
	}
}
