package milky

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/coder/websocket"
)

// flappingServer accepts the event stream and immediately drops it without a
// close handshake, simulating a remote that keeps failing mid-connection.
func flappingServer(t *testing.T, dials *atomic.Int64) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/event", func(w http.ResponseWriter, r *http.Request) {
		dials.Add(1)
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		conn.CloseNow()
	})
	mux.HandleFunc("/api/get_login_info", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, LoginInfo{UIN: 10000, Nickname: "bridge-bot"})
	})
	return httptest.NewServer(mux)
}

func TestSocket_AbruptDropEngagesPacing(t *testing.T) {
	var dials atomic.Int64
	srv := flappingServer(t, &dials)
	defer srv.Close()

	eventURL, err := eventStreamURL(srv.URL, "")
	if err != nil {
		t.Fatalf("eventStreamURL() error: %v", err)
	}

	dp := &dispatcher{adapter: "milky", logger: testLogger()}
	s := newSocket(NewClient(srv.URL, ""), eventURL, dp, testLogger(), nil)
	s.errorLimit = 3
	s.pause = time.Hour

	s.Start()
	defer s.Stop()

	// Each dropped connection must count as a failure, so after errorLimit
	// attempts the loop parks on the pause instead of redialing.
	deadline := time.Now().Add(5 * time.Second)
	for dials.Load() < 3 {
		if time.Now().After(deadline) {
			t.Fatalf("dials = %d, want at least 3 before deadline", dials.Load())
		}
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(300 * time.Millisecond)
	if got := dials.Load(); got > 4 {
		t.Fatalf("dials = %d after pacing threshold, want at most 4", got)
	}
}

func TestSocket_CleanCloseReconnectsWithoutPacing(t *testing.T) {
	var dials atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/event", func(w http.ResponseWriter, r *http.Request) {
		dials.Add(1)
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		conn.Close(websocket.StatusNormalClosure, "maintenance")
	})
	mux.HandleFunc("/api/get_login_info", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, LoginInfo{UIN: 10000, Nickname: "bridge-bot"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	eventURL, err := eventStreamURL(srv.URL, "")
	if err != nil {
		t.Fatalf("eventStreamURL() error: %v", err)
	}

	dp := &dispatcher{adapter: "milky", logger: testLogger()}
	s := newSocket(NewClient(srv.URL, ""), eventURL, dp, testLogger(), nil)
	s.errorLimit = 3
	s.pause = time.Hour

	s.Start()
	defer s.Stop()

	// A proper close handshake is not a failure, so the loop keeps redialing
	// past the error limit without ever parking.
	deadline := time.Now().Add(5 * time.Second)
	for dials.Load() < 5 {
		if time.Now().After(deadline) {
			t.Fatalf("dials = %d, want at least 5 before deadline", dials.Load())
		}
		time.Sleep(10 * time.Millisecond)
	}
}
