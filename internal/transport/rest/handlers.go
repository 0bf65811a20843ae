package rest

import (
	"encoding/json"
	"net/http"
)

func (that *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// handleStats returns the cumulative win/loss/draw counters per mode key.
func (that *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	scores, err := that.stats.Stats(r.Context())
	if err != nil {
		that.logger.Error("failed to read stats", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(scores); err != nil {
		that.logger.Error("failed to encode stats", "error", err)
	}
}
