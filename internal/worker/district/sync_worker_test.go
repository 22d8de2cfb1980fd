package district_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lbs-gateway/internal/usecase/dto"
	"github.com/lbs-gateway/internal/worker/district"
)

type countingSyncer struct {
	calls atomic.Int32
	err   error
}

func (s *countingSyncer) Sync(ctx context.Context) (*dto.DistrictSyncResult, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return &dto.DistrictSyncResult{DataVersion: "20220323", Count: 3}, nil
}

func TestSyncWorker_RunsImmediatelyAndStops(t *testing.T) {
	syncer := &countingSyncer{}
	w := district.NewSyncWorker(syncer, time.Hour, zap.NewNop())

	errCh := make(chan error, 1)
	go func() { errCh <- w.Start(context.Background()) }()

	require.Eventually(t, func() bool { return syncer.calls.Load() == 1 }, time.Second, 10*time.Millisecond)
	require.NoError(t, w.Stop())

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
	assert.Equal(t, int32(1), syncer.calls.Load())
}

func TestSyncWorker_RepeatsOnInterval(t *testing.T) {
	syncer := &countingSyncer{err: errors.New("upstream unavailable")}
	w := district.NewSyncWorker(syncer, 10*time.Millisecond, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- w.Start(ctx) }()

	require.Eventually(t, func() bool { return syncer.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestSyncWorker_Name(t *testing.T) {
	w := district.NewSyncWorker(&countingSyncer{}, 0, zap.NewNop())
	assert.Equal(t, "district-sync", w.Name())
}
