package district

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/lbs-gateway/internal/usecase/dto"
	"github.com/lbs-gateway/internal/worker"
)

const defaultInterval = 24 * time.Hour

// Syncer обновляет локальный справочник районов
type Syncer interface {
	Sync(ctx context.Context) (*dto.DistrictSyncResult, error)
}

// SyncWorker периодически синхронизирует справочник районов.
// Первая синхронизация выполняется сразу при старте
type SyncWorker struct {
	*worker.BaseWorker
	syncer   Syncer
	interval time.Duration
}

func NewSyncWorker(syncer Syncer, interval time.Duration, logger *zap.Logger) *SyncWorker {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &SyncWorker{
		BaseWorker: worker.NewBaseWorker("district-sync", "", logger),
		syncer:     syncer,
		interval:   interval,
	}
}

func (w *SyncWorker) Start(ctx context.Context) error {
	w.Logger().Info("Starting district sync worker", zap.Duration("interval", w.interval))

	for {
		w.RunOnce(ctx)

		if !w.Pause(ctx, w.interval) {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			w.Logger().Info("Worker stopped")
			return nil
		}
	}
}

// RunOnce выполняет одну синхронизацию; ошибка только логируется
func (w *SyncWorker) RunOnce(ctx context.Context) {
	started := time.Now()

	res, err := w.syncer.Sync(ctx)
	if err != nil {
		w.Logger().Error("District sync failed", zap.Error(err))
		return
	}

	w.Logger().Info("District sync finished",
		zap.String("data_version", res.DataVersion),
		zap.Int("count", res.Count),
		zap.Duration("took", time.Since(started)))
}
