package socket

import (
	"testing"
	"time"
)

func TestBackoff_GrowthSequence(t *testing.T) {
	b := newBackoff(2000*time.Millisecond, 30000*time.Millisecond, 1.5)

	// Three consecutive abnormal closes
	want := []time.Duration{
		2000 * time.Millisecond,
		3000 * time.Millisecond,
		4500 * time.Millisecond,
	}
	for i, w := range want {
		if got := b.Next(); got != w {
			t.Errorf("Next() call %d = %v, want %v", i+1, got, w)
		}
	}
}

func TestBackoff_Ceiling(t *testing.T) {
	b := newBackoff(2*time.Second, 30*time.Second, 1.5)

	var last time.Duration
	for i := 0; i < 20; i++ {
		d := b.Next()
		if d < last {
			t.Fatalf("delay decreased without reset: %v after %v", d, last)
		}
		if d > 30*time.Second {
			t.Fatalf("delay %v exceeds ceiling", d)
		}
		last = d
	}
	if last != 30*time.Second {
		t.Errorf("delay should have reached ceiling, got %v", last)
	}
}

func TestBackoff_ResetToFloor(t *testing.T) {
	b := newBackoff(2*time.Second, 30*time.Second, 1.5)

	b.Next()
	b.Next()
	b.Reset()

	if got := b.Next(); got != 2*time.Second {
		t.Errorf("Next() after Reset = %v, want 2s", got)
	}
}
