package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fieldtrack/syncserver/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPOwnershipResolver_CandidateUpdates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/cases/candidates", r.URL.Path)

		var req candidateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "d1", req.DeviceID)
		assert.Equal(t, []string{"owner-1"}, req.OwnerIDs)
		assert.Equal(t, "log-1", req.SinceLogID)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.CandidateUpdate{
			{Case: models.Case{CaseID: "c1", Type: "patient"}, PreviouslySynced: true},
		})
	}))
	defer srv.Close()

	resolver := NewHTTPOwnershipResolver(HTTPResolverConfig{BaseURL: srv.URL})
	device := models.Device{DeviceID: "d1", OwnerIDs: []string{"owner-1"}}
	since := &models.SyncLog{ID: "log-1", DeviceID: "d1"}

	candidates, err := resolver.CandidateUpdates(context.Background(), device, since)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "c1", candidates[0].Case.CaseID)
	assert.True(t, candidates[0].PreviouslySynced)
}

func TestHTTPOwnershipResolver_FirstContactOmitsSinceLog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req candidateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Empty(t, req.SinceLogID)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	resolver := NewHTTPOwnershipResolver(HTTPResolverConfig{BaseURL: srv.URL})

	candidates, err := resolver.CandidateUpdates(context.Background(), models.Device{DeviceID: "d1"}, nil)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestHTTPOwnershipResolver_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "bad request", status: http.StatusBadRequest, want: ErrBadRequest},
		{name: "not found", status: http.StatusNotFound, want: ErrNotFound},
		{name: "internal error", status: http.StatusInternalServerError, want: ErrInternalServerError},
		{name: "bad gateway", status: http.StatusBadGateway, want: ErrResolverUnavailable},
		{name: "service unavailable", status: http.StatusServiceUnavailable, want: ErrResolverUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, tt.name, tt.status)
			}))
			defer srv.Close()

			resolver := NewHTTPOwnershipResolver(HTTPResolverConfig{BaseURL: srv.URL})

			_, err := resolver.CandidateUpdates(context.Background(), models.Device{DeviceID: "d1"}, nil)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestHTTPOwnershipResolver_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	resolver := NewHTTPOwnershipResolver(HTTPResolverConfig{BaseURL: srv.URL})

	_, err := resolver.CandidateUpdates(context.Background(), models.Device{DeviceID: "d1"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding candidate updates")
}
