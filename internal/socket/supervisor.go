package socket

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tmoreau/signalfeed/internal/message"
	"github.com/tmoreau/signalfeed/internal/metrics"
)

// Handler receives every parsed inbound message, including the
// connected and ping control messages. Handlers run synchronously on
// the dispatch goroutine, in arrival order.
type Handler func(message.Message)

// SupervisorConfig holds supervisor settings.
type SupervisorConfig struct {
	URL              string
	ReconnectFloor   time.Duration
	ReconnectCeiling time.Duration
	ReconnectGrowth  float64
	AuthTimeout      time.Duration
	WriteTimeout     time.Duration
	BufferSize       int
}

// Supervisor owns the process-lifetime connection to the dashboard
// backend. It tracks desired state independently of actual socket
// state: Connect marks the connection wanted and the run loop keeps
// retrying with backoff until Disconnect marks it unwanted. The
// Supervisor itself is never torn down, only its transport handle is
// replaced across reconnects.
type Supervisor struct {
	cfg    SupervisorConfig
	tokens TokenSource
	logger *slog.Logger

	mu            sync.Mutex
	shouldConnect bool
	running       bool
	state         State
	client        *Client
	backoff       *backoff
	cancel        context.CancelFunc
	wg            sync.WaitGroup

	subsMu sync.RWMutex
	subs   []subscription
}

type subscription struct {
	id uuid.UUID
	fn Handler
}

// NewSupervisor creates a supervisor. It does not connect; call
// Connect to mark the connection wanted.
func NewSupervisor(cfg SupervisorConfig, tokens TokenSource, logger *slog.Logger) *Supervisor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ReconnectFloor == 0 {
		cfg.ReconnectFloor = 2 * time.Second
	}
	if cfg.ReconnectCeiling == 0 {
		cfg.ReconnectCeiling = 30 * time.Second
	}
	if cfg.ReconnectGrowth == 0 {
		cfg.ReconnectGrowth = 1.5
	}
	if cfg.AuthTimeout == 0 {
		cfg.AuthTimeout = 10 * time.Second
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = 5 * time.Second
	}

	return &Supervisor{
		cfg:     cfg,
		tokens:  tokens,
		logger:  logger,
		backoff: newBackoff(cfg.ReconnectFloor, cfg.ReconnectCeiling, cfg.ReconnectGrowth),
	}
}

// Connect marks the connection wanted and starts the run loop if it is
// not already running. Idempotent.
func (s *Supervisor) Connect() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shouldConnect = true
	if s.running {
		return
	}
	s.running = true

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.wg.Add(1)
	go s.run(ctx)
}

// Disconnect marks the connection unwanted, tears down any live
// handle, and stops further reconnect attempts. Expiry timers held by
// consumers are unaffected.
func (s *Supervisor) Disconnect() {
	s.mu.Lock()
	s.shouldConnect = false
	if s.cancel != nil {
		s.cancel()
	}
	client := s.client
	s.mu.Unlock()

	if client != nil {
		client.Close()
	}

	s.wg.Wait()
}

// Subscribe registers a handler for every parsed inbound message and
// returns a function that removes exactly that handler.
func (s *Supervisor) Subscribe(fn Handler) (unsubscribe func()) {
	id := uuid.New()

	s.subsMu.Lock()
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	s.subsMu.Unlock()

	return func() {
		s.subsMu.Lock()
		defer s.subsMu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// State returns the current lifecycle state.
func (s *Supervisor) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// IsConnected reports whether the auth handshake has completed on the
// current transport handle.
func (s *Supervisor) IsConnected() bool {
	return s.State() == StateConnected
}

// run is the reconnect loop. One iteration per connection attempt;
// exits when the connection is no longer wanted.
func (s *Supervisor) run(ctx context.Context) {
	defer s.wg.Done()
	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
		s.setState(StateDisconnected)
	}()

	for {
		if ctx.Err() != nil || !s.desired() {
			return
		}

		err := s.session(ctx)

		s.setState(StateDisconnected)
		if ctx.Err() != nil || !s.desired() {
			return
		}

		wait := s.nextBackoff()
		metrics.Reconnect()
		s.logger.Warn("connection lost, scheduling reconnect",
			"wait", wait,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
	}
}

// session runs one connection from dial to close. The returned error
// is the abnormal-close reason; it is logged, never surfaced.
func (s *Supervisor) session(ctx context.Context) error {
	s.setState(StateConnecting)

	client := NewClient(ClientConfig{
		URL:          s.cfg.URL,
		WriteTimeout: s.cfg.WriteTimeout,
		BufferSize:   s.cfg.BufferSize,
	}, s.logger)

	if err := client.Connect(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.client = client
	s.mu.Unlock()

	defer func() {
		client.Close()
		s.mu.Lock()
		if s.client == client {
			s.client = nil
		}
		s.mu.Unlock()
	}()

	// Transport open: send the auth frame immediately. The connected
	// flag flips only on the server's connected ack.
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return err
	}

	frame, err := json.Marshal(authFrame{Type: "auth", Token: token})
	if err != nil {
		return err
	}

	s.setState(StateAuthenticating)
	if err := client.Send(frame); err != nil {
		return err
	}

	// A server that never acks (bad token, hung handshake) would
	// otherwise leave us authenticating forever.
	authTimer := time.NewTimer(s.cfg.AuthTimeout)
	defer authTimer.Stop()
	authC := authTimer.C

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-authC:
			return ErrAuthTimeout

		case err := <-client.Errors():
			return err

		case f, ok := <-client.Frames():
			if !ok {
				return ErrFeedClosed
			}

			msg, err := message.Parse(f.Data, f.ReceivedAt)
			if err != nil {
				// Malformed frames are dropped silently.
				metrics.ParseError()
				s.logger.Debug("dropping malformed frame", "error", err)
				continue
			}

			// Unrecognized kinds share one label to keep metric
			// cardinality bounded.
			if _, unknown := msg.(message.UnknownMsg); unknown {
				metrics.MessageReceived("unknown")
			} else {
				metrics.MessageReceived(string(msg.MessageKind()))
			}

			switch msg.(type) {
			case message.ConnectedMsg:
				s.setState(StateConnected)
				s.resetBackoff()
				authC = nil
				s.logger.Info("handshake complete")

			case message.PingMsg:
				echo, _ := json.Marshal(pingFrame{Type: "ping"})
				if err := client.Send(echo); err != nil {
					return err
				}
				metrics.Ping()
			}

			s.dispatch(msg)
		}
	}
}

// dispatch invokes every subscribed handler synchronously, in arrival
// order. A slow handler delays the remaining handlers for this message
// only.
func (s *Supervisor) dispatch(msg message.Message) {
	s.subsMu.RLock()
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.subsMu.RUnlock()

	for _, sub := range subs {
		sub.fn(msg)
	}
}

func (s *Supervisor) desired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shouldConnect
}

func (s *Supervisor) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
	metrics.ConnectionState(int(state))
}

func (s *Supervisor) nextBackoff() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backoff.Next()
}

func (s *Supervisor) resetBackoff() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.backoff.Reset()
}
