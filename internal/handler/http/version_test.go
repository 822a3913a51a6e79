package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fieldtrack/syncserver/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetServerVersion_WritesVersion(t *testing.T) {
	h := newHandlerWithServices(&service.Services{})

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	rec := httptest.NewRecorder()

	h.getServerVersion(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", rec.Body.String())
}

func TestUnknownMethodOnKnownRouteIsNotFound(t *testing.T) {
	h := newHandlerWithServices(&service.Services{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodDelete, "/api/version/", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
