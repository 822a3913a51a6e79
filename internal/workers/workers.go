package workers

import (
	"github.com/fieldtrack/syncserver/internal/config"
	"github.com/fieldtrack/syncserver/internal/logger"
	"github.com/fieldtrack/syncserver/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the set of background workers enabled by the
// configuration. Workers with a zero interval are not created.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	ws := new(Workers)

	if cfg.AuditInterval > 0 {
		ws.workers = append(ws.workers, newChainAuditWorker(services.ChainAuditService, cfg.AuditInterval, logger))
	}

	return ws
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
