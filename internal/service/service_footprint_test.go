package service

import (
	"context"
	"errors"
	"testing"

	"github.com/fieldtrack/syncserver/internal/logger"
	"github.com/fieldtrack/syncserver/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCasesEverSynced_NoHistoryYieldsEmptySet(t *testing.T) {
	svc := NewFootprintService(chainLogs(), logger.Nop())

	synced, err := svc.CasesEverSynced(context.Background(), "d1")
	require.NoError(t, err)
	assert.Empty(t, synced)
}

func TestCasesEverSynced_UnionIncludesDependents(t *testing.T) {
	oldest := &models.SyncLog{ID: "log-1", DeviceID: "d1",
		CasesOnDevice:          stateList("a"),
		DependentCasesOnDevice: stateList("dep-1"),
	}
	newest := &models.SyncLog{ID: "log-2", DeviceID: "d1", PreviousLogID: "log-1",
		CasesOnDevice: stateList("a", "b"),
	}
	svc := NewFootprintService(chainLogs(oldest, newest), logger.Nop())

	synced, err := svc.CasesEverSynced(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"a": {}, "b": {}, "dep-1": {}}, synced)
}

func TestAllCasesSeen_IsExplicitlyNotImplemented(t *testing.T) {
	svc := NewFootprintService(chainLogs(), logger.Nop())

	_, err := svc.AllCasesSeen(context.Background(), "d1")
	assert.True(t, errors.Is(err, models.ErrNotImplemented))
}

func TestOpenCaseIDs_PropagatesNotImplemented(t *testing.T) {
	log := &models.SyncLog{ID: "log-1", DeviceID: "d1", CasesOnDevice: stateList("a")}
	svc := NewFootprintService(chainLogs(log), logger.Nop())

	_, err := svc.OpenCaseIDs(context.Background(), "d1")
	assert.True(t, errors.Is(err, models.ErrNotImplemented))
}

func TestAuditChain_ReturnsChainLength(t *testing.T) {
	oldest := &models.SyncLog{ID: "log-1", DeviceID: "d1", CasesOnDevice: stateList("a")}
	middle := &models.SyncLog{ID: "log-2", DeviceID: "d1", PreviousLogID: "log-1"}
	newest := &models.SyncLog{ID: "log-3", DeviceID: "d1", PreviousLogID: "log-2"}
	svc := NewFootprintService(chainLogs(oldest, middle, newest), logger.Nop())

	length, err := svc.AuditChain(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, 3, length)
}

func TestAuditChain_NoHistory(t *testing.T) {
	svc := NewFootprintService(chainLogs(), logger.Nop())

	length, err := svc.AuditChain(context.Background(), "d1")
	require.NoError(t, err)
	assert.Zero(t, length)
}

func TestAuditChain_DuplicateEntryIsConsistencyError(t *testing.T) {
	corrupted := &models.SyncLog{ID: "log-1", DeviceID: "d1", CasesOnDevice: stateList("a", "a")}
	svc := NewFootprintService(chainLogs(corrupted), logger.Nop())

	_, err := svc.AuditChain(context.Background(), "d1")
	assert.True(t, errors.Is(err, models.ErrConsistency))
}

func TestAuditChain_CaseInBothSetsIsConsistencyError(t *testing.T) {
	corrupted := &models.SyncLog{ID: "log-1", DeviceID: "d1",
		CasesOnDevice:          stateList("a"),
		DependentCasesOnDevice: stateList("a"),
	}
	svc := NewFootprintService(chainLogs(corrupted), logger.Nop())

	_, err := svc.AuditChain(context.Background(), "d1")
	require.Error(t, err)

	var cErr *models.ConsistencyError
	require.True(t, errors.As(err, &cErr))
	assert.Equal(t, "a", cErr.CaseID)
}

func TestAuditChain_DanglingBackLink(t *testing.T) {
	dangling := &models.SyncLog{ID: "log-2", DeviceID: "d1", PreviousLogID: "gone"}
	svc := NewFootprintService(chainLogs(dangling), logger.Nop())

	length, err := svc.AuditChain(context.Background(), "d1")
	assert.True(t, errors.Is(err, models.ErrConsistency))
	assert.Equal(t, 1, length)
}

func TestAuditChain_CycleIsConsistencyError(t *testing.T) {
	first := &models.SyncLog{ID: "log-1", DeviceID: "d1", PreviousLogID: "log-2"}
	second := &models.SyncLog{ID: "log-2", DeviceID: "d1", PreviousLogID: "log-1"}
	svc := NewFootprintService(chainLogs(first, second), logger.Nop())

	length, err := svc.AuditChain(context.Background(), "d1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrConsistency))

	var cErr *models.ConsistencyError
	require.True(t, errors.As(err, &cErr))
	assert.Contains(t, cErr.Detail, "cycle")
	assert.Equal(t, 2, length)
}
