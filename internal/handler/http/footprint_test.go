package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fieldtrack/syncserver/internal/mock"
	"github.com/fieldtrack/syncserver/internal/service"
	"github.com/fieldtrack/syncserver/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCasesEverSynced_ReturnsSortedIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	footprintSvc := mock.NewMockFootprintService(ctrl)
	footprintSvc.EXPECT().
		CasesEverSynced(gomock.Any(), "d1").
		Return(map[string]struct{}{"b": {}, "a": {}, "c": {}}, nil)

	h := newHandlerWithServices(&service.Services{FootprintService: footprintSvc})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/phone/d1/cases", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp footprintResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "d1", resp.DeviceID)
	assert.Equal(t, []string{"a", "b", "c"}, resp.CaseIDs)
	assert.Equal(t, 3, resp.Length)
}

func TestCasesEverSynced_ConsistencyErrorIsServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	footprintSvc := mock.NewMockFootprintService(ctrl)
	footprintSvc.EXPECT().
		CasesEverSynced(gomock.Any(), "d1").
		Return(nil, &models.ConsistencyError{SyncLogID: "log-1", DeviceID: "d1"})

	h := newHandlerWithServices(&service.Services{FootprintService: footprintSvc})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/phone/d1/cases", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
