package http

import (
	"errors"
	"net/http"

	"github.com/fieldtrack/syncserver/internal/adapter"
	"github.com/fieldtrack/syncserver/internal/service"
	"github.com/fieldtrack/syncserver/internal/store"
	"github.com/fieldtrack/syncserver/internal/wire"
	"github.com/fieldtrack/syncserver/models"
)

var errorStatusMap = map[error]int{
	service.ErrEmptyDeviceID:       http.StatusBadRequest,
	service.ErrInvalidRegistration: http.StatusBadRequest,
	service.ErrUnknownDevice:       http.StatusNotFound,
	service.ErrTooManyConflicts:    http.StatusConflict,

	wire.ErrUnsupportedVersion: http.StatusBadRequest,

	models.ErrInvalidTransition: http.StatusUnprocessableEntity,
	models.ErrConsistency:       http.StatusInternalServerError,
	models.ErrNotImplemented:    http.StatusNotImplemented,

	store.ErrSyncLogNotFound:     http.StatusNotFound,
	store.ErrCaseNotFound:        http.StatusNotFound,
	store.ErrDeviceNotFound:      http.StatusNotFound,
	store.ErrDeviceAlreadyExists: http.StatusConflict,
	store.ErrChainConflict:       http.StatusConflict,

	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,

	adapter.ErrResolverUnavailable: http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
