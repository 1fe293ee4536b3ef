package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (that *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (that *Server) handleStats(w http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "handleStats")

	playerID := chi.URLParam(req, "playerID")
	if playerID == "" {
		http.Error(w, "player ID is required", http.StatusBadRequest)
		return
	}

	stats, err := that.stats.GetStats(req.Context(), playerID)
	if err != nil {
		log.Error("failed to get player stats", "playerID", playerID, "error", err)
		http.Error(w, "failed to get player stats", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err = json.NewEncoder(w).Encode(stats); err != nil {
		log.Error("failed to encode player stats", "playerID", playerID, "error", err)
	}
}
