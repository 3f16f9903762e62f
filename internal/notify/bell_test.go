package notify

import (
	"fmt"
	"testing"
)

func TestBell_CapacityHoldsMostRecent(t *testing.T) {
	b := NewBell(50)

	for i := 1; i <= 51; i++ {
		n := testNotification(fmt.Sprintf("SYM%02d", i))
		b.Add(n)
	}

	if b.Len() != 50 {
		t.Fatalf("Len = %d, want 50", b.Len())
	}

	entries := b.Entries()
	if entries[0].Symbol != "SYM51" {
		t.Errorf("newest = %s, want SYM51", entries[0].Symbol)
	}
	if entries[49].Symbol != "SYM02" {
		t.Errorf("oldest kept = %s, want SYM02", entries[49].Symbol)
	}
	for _, n := range entries {
		if n.Symbol == "SYM01" {
			t.Error("SYM01 should have been evicted")
		}
	}
}

func TestBell_UnreadCountsSinceLastOpen(t *testing.T) {
	b := NewBell(50)

	for i := 0; i < 51; i++ {
		b.Add(testNotification("AAA"))
	}
	if b.Unread() != 51 {
		t.Errorf("Unread = %d, want 51", b.Unread())
	}
	if b.UnreadLabel() != "51" {
		t.Errorf("UnreadLabel = %q, want 51", b.UnreadLabel())
	}

	b.MarkRead()
	if b.Unread() != 0 {
		t.Errorf("Unread after MarkRead = %d, want 0", b.Unread())
	}

	b.Add(testNotification("AAA"))
	if b.Unread() != 1 {
		t.Errorf("Unread = %d, want 1", b.Unread())
	}
}

func TestBell_UnreadLabelSaturates(t *testing.T) {
	b := NewBell(50)

	for i := 0; i < 120; i++ {
		b.Add(testNotification("AAA"))
	}
	if b.UnreadLabel() != "99+" {
		t.Errorf("UnreadLabel = %q, want 99+", b.UnreadLabel())
	}
}
