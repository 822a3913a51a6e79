package http

import (
	"encoding/json"
	"net/http"

	"github.com/fieldtrack/syncserver/internal/logger"
	"github.com/fieldtrack/syncserver/models"
)

// restore runs one synchronization exchange and returns the versioned XML
// payload for the device.
func (h *Handler) restore(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RestoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.restore").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.RestoreService.Restore(ctx, req)
	if err != nil {
		log.Err(err).
			Str("func", "*Handler.restore").
			Str("device_id", req.DeviceID).
			Msg("synchronization exchange failed")
		http.Error(w, "synchronization exchange failed", statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Body)
}
