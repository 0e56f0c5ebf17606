package milky

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/coder/websocket"
)

// Reconnect pacing defaults, overridable from Config.
const (
	defaultReconnectErrorLimit = 5
	defaultReconnectPause      = 30 * time.Second
)

// connState tracks the event stream lifecycle.
type connState string

// Connection states. Online is only reached after the login identity fetch
// succeeds on a freshly opened socket.
const (
	stateConnecting     connState = "connecting"
	stateAuthenticating connState = "authenticating"
	stateOnline         connState = "online"
	stateDisconnected   connState = "disconnected"
	stateErrored        connState = "errored"
)

// socket maintains the persistent event stream connection and feeds each
// frame to the dispatcher in arrival order.
type socket struct {
	client     *Client
	eventURL   string
	dispatcher *dispatcher
	logger     *slog.Logger
	onOnline   func(LoginInfo)
	errorLimit int
	pause      time.Duration

	mu    sync.Mutex
	state connState

	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
}

// eventStreamURL derives the socket URL from the HTTP endpoint: same host,
// fixed /event path, ws(s) scheme, and the bearer token mirrored into the
// query string.
func eventStreamURL(endpoint, token string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", err
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/event"
	if token != "" {
		q := u.Query()
		q.Set("access_token", token)
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

func newSocket(client *Client, eventURL string, dispatcher *dispatcher, logger *slog.Logger, onOnline func(LoginInfo)) *socket {
	ctx, cancel := context.WithCancel(context.Background())
	return &socket{
		client:     client,
		eventURL:   eventURL,
		dispatcher: dispatcher,
		logger:     logger,
		onOnline:   onOnline,
		errorLimit: defaultReconnectErrorLimit,
		pause:      defaultReconnectPause,
		state:      stateDisconnected,
		ctx:        ctx,
		cancel:     cancel,
		done:       make(chan struct{}),
	}
}

// Start launches the connect/read loop in a goroutine.
func (s *socket) Start() {
	go s.loop()
}

// Stop tears down the connection and waits for the loop to exit. It is safe
// to call Stop multiple times.
func (s *socket) Stop() {
	s.stopOnce.Do(s.cancel)
	<-s.done
}

// State returns the current connection state.
func (s *socket) State() connState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *socket) setState(state connState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

func (s *socket) loop() {
	defer close(s.done)
	defer s.setState(stateDisconnected)

	var consecutiveErrors int

	for {
		if s.ctx.Err() != nil {
			return
		}

		err := s.runConnection()
		if s.ctx.Err() != nil {
			return
		}
		if err != nil {
			consecutiveErrors++
			s.logger.Error("event stream connection failed",
				"error", err,
				"consecutive_errors", consecutiveErrors,
			)

			if consecutiveErrors >= s.errorLimit {
				s.logger.Warn("reconnect paused after consecutive errors",
					"pause", s.pause,
				)
				select {
				case <-s.ctx.Done():
					return
				case <-time.After(s.pause):
				}
				consecutiveErrors = 0
			}
			continue
		}

		// Clean close still reconnects, but without error pacing.
		consecutiveErrors = 0
	}
}

// runConnection performs one full connection attempt: dial, authenticate,
// then read frames until the socket closes.
func (s *socket) runConnection() error {
	s.setState(stateConnecting)

	conn, _, err := websocket.Dial(s.ctx, s.eventURL, nil)
	if err != nil {
		s.setState(stateErrored)
		return err
	}
	defer conn.Close(websocket.StatusNormalClosure, "")
	conn.SetReadLimit(maxResponseBytes)

	// The bot is not online until its identity is confirmed; a failure here
	// is fatal to this connection attempt.
	s.setState(stateAuthenticating)
	info, err := s.client.GetLoginInfo(s.ctx)
	if err != nil {
		s.setState(stateErrored)
		return err
	}

	s.setState(stateOnline)
	s.logger.Info("event stream online", "self_id", info.UIN, "nickname", info.Nickname)
	if s.onOnline != nil {
		s.onOnline(info)
	}

	return s.readLoop(conn)
}

// readLoop processes frames strictly in arrival order. Only a clean close
// handshake counts as a graceful end; anything else is returned so the
// reconnect loop paces it like a failed connection attempt.
func (s *socket) readLoop(conn *websocket.Conn) error {
	for {
		typ, data, err := conn.Read(s.ctx)
		if err != nil {
			s.setState(stateDisconnected)
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure {
				s.logger.Info("event stream closed")
				return nil
			}
			s.logger.Info("event stream dropped", "error", err)
			return fmt.Errorf("milky: event stream read: %w", err)
		}
		if typ != websocket.MessageText {
			continue
		}

		var ev Event
		if err := json.Unmarshal(data, &ev); err != nil {
			s.logger.Error("malformed event frame", "error", err)
			continue
		}
		s.dispatcher.handleEvent(s.ctx, &ev)
	}
}
