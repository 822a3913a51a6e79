// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fieldtrack/syncserver/internal/logger"
	"github.com/fieldtrack/syncserver/internal/mock"
	"github.com/fieldtrack/syncserver/models"
	"go.uber.org/mock/gomock"
)

func TestChainAuditWorker_AuditAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	audits := mock.NewMockChainAuditService(ctrl)
	audits.EXPECT().DeviceIDs(gomock.Any()).Return([]string{"d1", "d2"}, nil)
	audits.EXPECT().AuditChain(gomock.Any(), "d1").Return(3, nil)
	audits.EXPECT().AuditChain(gomock.Any(), "d2").
		Return(0, &models.ConsistencyError{SyncLogID: "log-9", Detail: "previous sync log is missing"})

	w := newChainAuditWorker(audits, time.Minute, logger.Nop())
	w.auditAll(context.Background())
}

func TestChainAuditWorker_AuditAll_ListingFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	audits := mock.NewMockChainAuditService(ctrl)
	audits.EXPECT().DeviceIDs(gomock.Any()).Return(nil, errors.New("storage down"))

	w := newChainAuditWorker(audits, time.Minute, logger.Nop())

	// no AuditChain calls expected after a listing error
	w.auditAll(context.Background())
}

func TestChainAuditWorker_TickIsDeadlineBounded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	audits := mock.NewMockChainAuditService(ctrl)
	audits.EXPECT().DeviceIDs(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]string, error) {
		deadline, ok := ctx.Deadline()
		if !ok {
			t.Error("expected a deadline on the audit pass context")
		} else if remaining := time.Until(deadline); remaining > time.Minute {
			t.Errorf("deadline exceeds the tick interval: %v", remaining)
		}
		return nil, nil
	})

	w := newChainAuditWorker(audits, time.Minute, logger.Nop())
	w.auditTick()
}
