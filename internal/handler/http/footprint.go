package http

import (
	"net/http"
	"sort"

	"github.com/fieldtrack/syncserver/internal/logger"
	"github.com/fieldtrack/syncserver/internal/utils"
	"github.com/go-chi/chi/v5"
)

type footprintResponse struct {
	DeviceID string   `json:"device_id"`
	CaseIDs  []string `json:"case_ids"`
	Length   int      `json:"length"`
}

// casesEverSynced reports the cumulative case footprint of a device across
// its whole sync-log chain.
func (h *Handler) casesEverSynced(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	deviceID := chi.URLParam(r, "deviceID")
	if deviceID == "" {
		http.Error(w, "no device ID was given", http.StatusBadRequest)
		return
	}

	synced, err := h.services.FootprintService.CasesEverSynced(ctx, deviceID)
	if err != nil {
		log.Err(err).
			Str("func", "*Handler.casesEverSynced").
			Str("device_id", deviceID).
			Msg("error computing device footprint")
		http.Error(w, "error computing device footprint", statusFromError(err))
		return
	}

	caseIDs := make([]string, 0, len(synced))
	for id := range synced {
		caseIDs = append(caseIDs, id)
	}
	sort.Strings(caseIDs)

	utils.WriteJSON(w, footprintResponse{
		DeviceID: deviceID,
		CaseIDs:  caseIDs,
		Length:   len(caseIDs),
	}, http.StatusOK)
}
