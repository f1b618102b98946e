package jobs

import (
	"context"

	"github.com/kalakal/kalakal-api/internal/core/port"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SettlementJob periodically retries settlements stuck between the balance
// credit and the tracking Paid flip. Every step it drives is idempotent, so
// running concurrently with live credit requests is safe.
type SettlementJob struct {
	service port.BalanceService
	cron    *cron.Cron
	logger  *zap.Logger
}

func NewSettlementJob(service port.BalanceService, logger *zap.Logger) *SettlementJob {
	return &SettlementJob{
		service: service,
		cron:    cron.New(),
		logger:  logger,
	}
}

// Start schedules the reconciliation sweep every minute.
func (j *SettlementJob) Start() error {
	_, err := j.cron.AddFunc("@every 1m", func() {
		ctx := context.Background()
		if err := j.service.ReconcileSettlements(ctx); err != nil {
			j.logger.Error("Settlement reconciliation failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Settlement reconciliation job started")
	return nil
}

func (j *SettlementJob) Stop() {
	j.cron.Stop()
	j.logger.Info("Settlement reconciliation job stopped")
}
