package http

import (
	"encoding/json"
	"net/http"

	"github.com/fieldtrack/syncserver/internal/logger"
	"github.com/fieldtrack/syncserver/internal/utils"
	"github.com/fieldtrack/syncserver/models"
)

// registerRequest is the enrollment payload. The raw password is accepted
// here and hashed by the service; models.Device never serializes it back.
type registerRequest struct {
	DeviceID string            `json:"device_id,omitempty"`
	Username string            `json:"username"`
	Password string            `json:"password"`
	UserData map[string]string `json:"user_data,omitempty"`
	OwnerIDs []string          `json:"owner_ids,omitempty"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	device, err := h.services.RegistrationService.Register(ctx, models.Device{
		DeviceID: req.DeviceID,
		Username: req.Username,
		Password: req.Password,
		UserData: req.UserData,
		OwnerIDs: req.OwnerIDs,
	})
	if err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("device registration failed")
		http.Error(w, "device registration failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, device, http.StatusCreated)
}
