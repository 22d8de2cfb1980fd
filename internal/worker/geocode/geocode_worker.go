package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/lbs-gateway/internal/domain"
	"github.com/lbs-gateway/internal/domain/repository"
	"github.com/lbs-gateway/internal/worker"
)

const (
	defaultBatchSize = 20
	emptyQueueSleep  = 100 * time.Millisecond // пауза если очередь пуста
	errorSleep       = time.Second
)

// Processor выполняет одно событие геокодирования
type Processor interface {
	Process(ctx context.Context, event *domain.GeocodeRequestEvent) *domain.GeocodeDoneEvent
}

// Worker читает stream:lbs:geocode и публикует результаты в stream:lbs:geocode:done
type Worker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	processor    Processor
	consumerName string
	batchSize    int
}

func NewWorker(
	streamRepo repository.StreamRepository,
	processor Processor,
	consumerGroup string,
	batchSize int,
	logger *zap.Logger,
) *Worker {
	hostname, _ := os.Hostname()
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	return &Worker{
		BaseWorker:   worker.NewBaseWorker("lbs-geocode", consumerGroup, logger),
		streamRepo:   streamRepo,
		processor:    processor,
		consumerName: fmt.Sprintf("%s-%d", hostname, os.Getpid()),
		batchSize:    batchSize,
	}
}

// Start запускает воркер
func (w *Worker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting geocode worker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamGeocodeRequest, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.ProcessBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				w.Pause(ctx, errorSleep)
				continue
			}

			if processed == 0 {
				w.Pause(ctx, emptyQueueSleep)
			}
		}
	}
}

// ProcessBatch читает и обрабатывает одну пачку сообщений.
// Возвращает количество прочитанных сообщений, включая битые
func (w *Worker) ProcessBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamGeocodeRequest,
		w.ConsumerGroup(),
		w.consumerName,
		w.batchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	logger.Debug("Processing batch", zap.Int("message_count", len(messages)))

	ackIDs := make([]string, 0, len(messages))
	failed := 0

	for _, msg := range messages {
		event, err := parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// битое сообщение подтверждаем, чтобы не застревало
			ackIDs = append(ackIDs, msg.ID)
			continue
		}

		done := w.processor.Process(ctx, event)
		if done.Status != 0 {
			failed++
		}

		if err := w.streamRepo.PublishToStream(ctx, domain.StreamGeocodeDone, done); err != nil {
			// без ACK сообщение останется в pending группы
			logger.Error("Failed to publish done event",
				zap.String("request_id", event.RequestID.String()),
				zap.Error(err))
			continue
		}

		ackIDs = append(ackIDs, msg.ID)
	}

	if err := w.streamRepo.AckMessages(ctx, domain.StreamGeocodeRequest, w.ConsumerGroup(), ackIDs); err != nil {
		logger.Error("Failed to ack messages", zap.Error(err))
	}

	logger.Info("Batch processed",
		zap.Int("messages", len(messages)),
		zap.Int("acked", len(ackIDs)),
		zap.Int("failed", failed))

	return len(messages), nil
}

func parseMessage(msg domain.StreamMessage) (*domain.GeocodeRequestEvent, error) {
	if msg.Data == "" {
		return nil, fmt.Errorf("empty 'data' field")
	}

	var event domain.GeocodeRequestEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if event.Address == "" && event.Location == "" {
		return nil, fmt.Errorf("address or location is required")
	}

	return &event, nil
}
