package gateway

import (
	"encoding/json"
	"net/http"
)

// HealthResponse is the JSON response for GET /health.
type HealthResponse struct {
	Status   string            `json:"status"` // "ok" or "degraded"
	Adapters map[string]string `json:"adapters"`
}

// handleHealth returns an http.HandlerFunc for GET /health.
// Returns 200 if every adapter is online, 503 otherwise.
func (g *Gateway) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		resp := HealthResponse{
			Status:   "ok",
			Adapters: g.adapterStates(),
		}
		for _, state := range resp.Adapters {
			if state != "online" {
				resp.Status = "degraded"
				break
			}
		}

		w.Header().Set("Content-Type", "application/json")
		if resp.Status == "degraded" {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}
