// Package socket implements the realtime connection to the dashboard
// backend.
//
// It has two layers:
//   - Client: one WebSocket transport handle (dial, read loop, writes)
//   - Supervisor: desired-state tracking, the auth handshake, heartbeat
//     echo, exponential-backoff reconnection, and synchronous fan-out of
//     parsed messages to subscribers
//
// Transport failures are recovered automatically and never surfaced to
// consumers; the only externally visible effect of a dropped connection
// is the State accessor and a pause in inbound traffic.
package socket
