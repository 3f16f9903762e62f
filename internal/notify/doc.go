// Package notify implements the presentation consumers of the realtime
// feed: bounded toast stacks with per-entry expiry, the bell history
// panel with its unread counter, and the dedup/staleness filtering that
// guards against backfill replay after a reconnect.
package notify
