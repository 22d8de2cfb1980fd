package geocode_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lbs-gateway/internal/domain"
	"github.com/lbs-gateway/internal/worker/geocode"
)

type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, count int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessages(ctx context.Context, stream, group string, messageIDs []string) error {
	args := m.Called(ctx, stream, group, messageIDs)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

type MockProcessor struct {
	mock.Mock
}

func (m *MockProcessor) Process(ctx context.Context, event *domain.GeocodeRequestEvent) *domain.GeocodeDoneEvent {
	args := m.Called(ctx, event)
	return args.Get(0).(*domain.GeocodeDoneEvent)
}

const group = "test-group"

func message(t *testing.T, id string, event domain.GeocodeRequestEvent) domain.StreamMessage {
	t.Helper()
	data, err := json.Marshal(event)
	require.NoError(t, err)
	return domain.StreamMessage{ID: id, Data: string(data)}
}

func TestWorker_Name(t *testing.T) {
	w := geocode.NewWorker(&MockStreamRepository{}, &MockProcessor{}, group, 0, zap.NewNop())

	assert.Equal(t, "lbs-geocode", w.Name())
	assert.Equal(t, group, w.ConsumerGroup())
}

func TestWorker_ProcessBatch_Empty(t *testing.T) {
	streamRepo := &MockStreamRepository{}
	streamRepo.On("ConsumeBatch", mock.Anything, domain.StreamGeocodeRequest, group, mock.Anything, 20).
		Return([]domain.StreamMessage{}, nil)

	w := geocode.NewWorker(streamRepo, &MockProcessor{}, group, 0, zap.NewNop())

	n, err := w.ProcessBatch(context.Background())

	require.NoError(t, err)
	assert.Zero(t, n)
	streamRepo.AssertNotCalled(t, "AckMessages", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWorker_ProcessBatch_ConsumeError(t *testing.T) {
	streamRepo := &MockStreamRepository{}
	streamRepo.On("ConsumeBatch", mock.Anything, domain.StreamGeocodeRequest, group, mock.Anything, 5).
		Return(nil, errors.New("connection refused"))

	w := geocode.NewWorker(streamRepo, &MockProcessor{}, group, 5, zap.NewNop())

	_, err := w.ProcessBatch(context.Background())

	assert.Error(t, err)
}

func TestWorker_ProcessBatch_PublishesAndAcks(t *testing.T) {
	forward := domain.GeocodeRequestEvent{RequestID: uuid.New(), Address: "北京市海淀区彩和坊路海淀西大街74号"}
	reverse := domain.GeocodeRequestEvent{RequestID: uuid.New(), Location: "39.984154,116.307490"}

	streamRepo := &MockStreamRepository{}
	streamRepo.On("ConsumeBatch", mock.Anything, domain.StreamGeocodeRequest, group, mock.Anything, 20).
		Return([]domain.StreamMessage{
			message(t, "1-0", forward),
			message(t, "2-0", reverse),
		}, nil)
	streamRepo.On("PublishToStream", mock.Anything, domain.StreamGeocodeDone, mock.Anything).Return(nil)
	streamRepo.On("AckMessages", mock.Anything, domain.StreamGeocodeRequest, group, []string{"1-0", "2-0"}).Return(nil)

	processor := &MockProcessor{}
	processor.On("Process", mock.Anything, mock.MatchedBy(func(e *domain.GeocodeRequestEvent) bool {
		return e.RequestID == forward.RequestID
	})).Return(&domain.GeocodeDoneEvent{RequestID: forward.RequestID, Result: json.RawMessage(`{"title":"x"}`)})
	processor.On("Process", mock.Anything, mock.MatchedBy(func(e *domain.GeocodeRequestEvent) bool {
		return e.RequestID == reverse.RequestID && e.IsReverse()
	})).Return(&domain.GeocodeDoneEvent{RequestID: reverse.RequestID, Status: 311, Error: "key format error"})

	w := geocode.NewWorker(streamRepo, processor, group, 0, zap.NewNop())

	n, err := w.ProcessBatch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	streamRepo.AssertNumberOfCalls(t, "PublishToStream", 2)
	streamRepo.AssertExpectations(t)
	processor.AssertExpectations(t)
}

func TestWorker_ProcessBatch_AcksMalformed(t *testing.T) {
	streamRepo := &MockStreamRepository{}
	streamRepo.On("ConsumeBatch", mock.Anything, domain.StreamGeocodeRequest, group, mock.Anything, 20).
		Return([]domain.StreamMessage{
			{ID: "1-0", Data: "not json"},
			{ID: "2-0", Data: `{"request_id":"` + uuid.NewString() + `"}`},
		}, nil)
	streamRepo.On("AckMessages", mock.Anything, domain.StreamGeocodeRequest, group, []string{"1-0", "2-0"}).Return(nil)

	processor := &MockProcessor{}

	w := geocode.NewWorker(streamRepo, processor, group, 0, zap.NewNop())

	n, err := w.ProcessBatch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	processor.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
	streamRepo.AssertNotCalled(t, "PublishToStream", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorker_ProcessBatch_KeepsUnpublishedPending(t *testing.T) {
	event := domain.GeocodeRequestEvent{RequestID: uuid.New(), Address: "北京市"}

	streamRepo := &MockStreamRepository{}
	streamRepo.On("ConsumeBatch", mock.Anything, domain.StreamGeocodeRequest, group, mock.Anything, 20).
		Return([]domain.StreamMessage{message(t, "1-0", event)}, nil)
	streamRepo.On("PublishToStream", mock.Anything, domain.StreamGeocodeDone, mock.Anything).
		Return(errors.New("redis down"))
	streamRepo.On("AckMessages", mock.Anything, domain.StreamGeocodeRequest, group, []string{}).Return(nil)

	processor := &MockProcessor{}
	processor.On("Process", mock.Anything, mock.Anything).
		Return(&domain.GeocodeDoneEvent{RequestID: event.RequestID})

	w := geocode.NewWorker(streamRepo, processor, group, 0, zap.NewNop())

	n, err := w.ProcessBatch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, n)
	streamRepo.AssertExpectations(t)
}

func TestWorker_Start_FailsWithoutGroup(t *testing.T) {
	streamRepo := &MockStreamRepository{}
	streamRepo.On("CreateConsumerGroup", mock.Anything, domain.StreamGeocodeRequest, group).
		Return(errors.New("NOAUTH"))

	w := geocode.NewWorker(streamRepo, &MockProcessor{}, group, 0, zap.NewNop())

	assert.Error(t, w.Start(context.Background()))
}

func TestWorker_StartStop(t *testing.T) {
	streamRepo := &MockStreamRepository{}
	streamRepo.On("CreateConsumerGroup", mock.Anything, domain.StreamGeocodeRequest, group).Return(nil)
	streamRepo.On("ConsumeBatch", mock.Anything, domain.StreamGeocodeRequest, group, mock.Anything, 20).
		Return([]domain.StreamMessage{}, nil)

	w := geocode.NewWorker(streamRepo, &MockProcessor{}, group, 0, zap.NewNop())

	errCh := make(chan error, 1)
	go func() { errCh <- w.Start(context.Background()) }()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, w.Stop())

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
	assert.True(t, w.IsStopped())
}
