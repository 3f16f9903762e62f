package socket

import "time"

// backoff tracks the reconnect delay: starts at the floor, grows by a
// fixed factor on every abnormal close, capped at the ceiling, and
// returns to the floor only on a successful connected handshake.
type backoff struct {
	floor   time.Duration
	ceiling time.Duration
	growth  float64
	current time.Duration
}

func newBackoff(floor, ceiling time.Duration, growth float64) *backoff {
	return &backoff{
		floor:   floor,
		ceiling: ceiling,
		growth:  growth,
		current: floor,
	}
}

// Next returns the delay to wait before the next attempt and scales the
// delay for the attempt after it.
func (b *backoff) Next() time.Duration {
	d := b.current

	scaled := time.Duration(float64(b.current) * b.growth)
	if scaled > b.ceiling {
		scaled = b.ceiling
	}
	b.current = scaled

	return d
}

// Reset restores the delay to the floor value.
func (b *backoff) Reset() {
	b.current = b.floor
}
