// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/fieldtrack/syncserver/internal/logger"
	"github.com/fieldtrack/syncserver/internal/service"
	"github.com/fieldtrack/syncserver/models"
)

// chainAuditWorker periodically walks every device's sync log chain and
// reports chains that fail integrity checks.
type chainAuditWorker struct {
	audits   service.ChainAuditService
	interval time.Duration
	logger   *logger.Logger
}

func newChainAuditWorker(audits service.ChainAuditService, interval time.Duration, logger *logger.Logger) *chainAuditWorker {
	return &chainAuditWorker{
		audits:   audits,
		interval: interval,
		logger:   logger,
	}
}

func (w *chainAuditWorker) Run() {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for range ticker.C {
			w.auditTick()
		}
	}()
}

// auditTick runs one audit pass bounded by the tick interval. A slow or hung
// pass must not wedge every later one.
func (w *chainAuditWorker) auditTick() {
	ctx, cancel := context.WithTimeout(context.Background(), w.interval)
	defer cancel()

	w.auditAll(ctx)
}

func (w *chainAuditWorker) auditAll(ctx context.Context) {
	deviceIDs, err := w.audits.DeviceIDs(ctx)
	if err != nil {
		w.logger.Error().Err(err).Msg("chain audit: listing devices")
		return
	}

	broken := 0
	for _, deviceID := range deviceIDs {
		length, err := w.audits.AuditChain(ctx, deviceID)
		switch {
		case err == nil:
			w.logger.Debug().Str("device_id", deviceID).Int("chain_length", length).Msg("chain audit passed")
		case errors.Is(err, models.ErrConsistency):
			broken++
			w.logger.Error().Err(err).Str("device_id", deviceID).Msg("chain audit found inconsistent chain")
		default:
			w.logger.Error().Err(err).Str("device_id", deviceID).Msg("chain audit failed")
		}
	}

	w.logger.Info().
		Int("devices", len(deviceIDs)).
		Int("broken_chains", broken).
		Msg("chain audit completed")
}
