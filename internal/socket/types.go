package socket

import (
	"context"
	"errors"
	"time"
)

// Errors
var (
	ErrNotConnected  = errors.New("not connected")
	ErrAlreadyClosed = errors.New("already closed")
	ErrAuthTimeout   = errors.New("no connected ack within auth timeout")
	ErrFeedClosed    = errors.New("feed closed")
)

// Frame wraps raw frame bytes with the local receive timestamp.
type Frame struct {
	Data       []byte
	ReceivedAt time.Time
}

// ClientConfig holds settings for a single WebSocket connection.
type ClientConfig struct {
	URL          string
	DialTimeout  time.Duration
	WriteTimeout time.Duration
	BufferSize   int
}

// TokenSource supplies the bearer credential for the auth handshake.
// Implemented by the REST client; the socket layer never sees the
// password, only tokens.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// State is the supervisor's connection lifecycle state.
type State int32

const (
	StateDisconnected State = iota
	StateConnecting
	StateAuthenticating
	StateConnected
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateAuthenticating:
		return "authenticating"
	case StateConnected:
		return "connected"
	default:
		return "unknown"
	}
}

// authFrame is the outbound auth handshake sent on transport open.
type authFrame struct {
	Type  string `json:"type"`
	Token string `json:"token"`
}

// pingFrame is the outbound heartbeat echo.
type pingFrame struct {
	Type string `json:"type"`
}
