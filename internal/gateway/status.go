package gateway

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/flemzord/milkybridge/internal/bridge"
	"github.com/flemzord/milkybridge/internal/heartbeat"
)

// StatusResponse is the JSON response for GET /status.
type StatusResponse struct {
	Uptime    float64                 `json:"uptime_seconds"`
	Sessions  uint64                  `json:"sessions"`
	Adapters  map[string]string       `json:"adapters"`
	Heartbeat *heartbeat.Status       `json:"heartbeat,omitempty"`
	Recent    []bridge.SessionSummary `json:"recent,omitempty"`
}

// handleStatus returns an http.HandlerFunc for GET /status.
func (g *Gateway) handleStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		resp := StatusResponse{
			Uptime:   time.Since(g.startedAt).Round(time.Second).Seconds(),
			Adapters: g.adapterStates(),
		}

		if g.hub != nil {
			resp.Sessions = g.hub.Total()
			resp.Recent = g.hub.Recent()
		}
		if g.monitor != nil {
			st := g.monitor.Status()
			resp.Heartbeat = &st
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
