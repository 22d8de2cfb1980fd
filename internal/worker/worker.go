package worker

import (
	"context"
)

// Worker - фоновая задача процесса lbs-gateway-worker
type Worker interface {
	// Start блокируется до остановки воркера или отмены контекста
	Start(ctx context.Context) error

	// Stop сигнализирует воркеру завершиться
	Stop() error

	Name() string
}
