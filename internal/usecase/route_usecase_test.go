package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/lbs-gateway/internal/pkg/errors"
	"github.com/lbs-gateway/internal/usecase"
	"github.com/lbs-gateway/internal/usecase/dto"
	"github.com/lbs-gateway/pkg/lbs"
)

const (
	fromPoint = "39.984042,116.307535"
	toPoint   = "39.976249,116.316569"
)

func newRoute(repo *MockLBSRepository) *usecase.RouteUseCase {
	return usecase.NewRouteUseCase(repo, usecase.NewLookup(nil, nil, zap.NewNop(), 0))
}

func TestRouteUseCase_Direction(t *testing.T) {
	ctx := context.Background()

	t.Run("supported mode", func(t *testing.T) {
		repo := new(MockLBSRepository)
		repo.On("Direction", ctx, lbs.ModeEBicycling, fromPoint, toPoint, lbs.Params(nil)).
			Return(mustEnvelope(`{"status":0,"result":{"routes":[]}}`), nil)

		res, err := newRoute(repo).Direction(ctx, dto.DirectionRequest{Mode: lbs.ModeEBicycling, From: fromPoint, To: toPoint})
		require.NoError(t, err)
		assert.JSONEq(t, `{"routes":[]}`, string(res.Data))
	})

	t.Run("unknown mode is rejected before upstream", func(t *testing.T) {
		repo := new(MockLBSRepository)
		_, err := newRoute(repo).Direction(ctx, dto.DirectionRequest{Mode: "flying", From: fromPoint, To: toPoint})

		assert.Equal(t, 400, apperrors.StatusOf(err))
		repo.AssertNotCalled(t, "Direction", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRouteUseCase_Trucking(t *testing.T) {
	ctx := context.Background()
	truck := lbs.Truck{Size: 2, Height: 3.2, Width: 2.4, Weight: 12, AxleWeight: 6, AxleCount: 2}

	repo := new(MockLBSRepository)
	repo.On("DirectionTrucking", ctx, fromPoint, toPoint, truck, lbs.Params(nil)).
		Return(mustEnvelope(`{"status":0,"result":{}}`), nil)

	uc := newRoute(repo)
	_, err := uc.Trucking(ctx, dto.TruckingRequest{From: fromPoint, To: toPoint, Truck: truck})
	require.NoError(t, err)

	_, err = uc.Trucking(ctx, dto.TruckingRequest{From: fromPoint, To: toPoint, Truck: lbs.Truck{Size: 9}})
	assert.Equal(t, 400, apperrors.StatusOf(err))
	repo.AssertNumberOfCalls(t, "DirectionTrucking", 1)
}

func TestRouteUseCase_Matrix(t *testing.T) {
	ctx := context.Background()
	repo := new(MockLBSRepository)
	repo.On("DistanceMatrix", ctx, lbs.ModeWalking, fromPoint, fromPoint+";"+toPoint, lbs.Params(nil)).
		Return(mustEnvelope(`{"status":0,"result":{"rows":[]}}`), nil)

	uc := newRoute(repo)
	_, err := uc.Matrix(ctx, dto.MatrixRequest{Mode: lbs.ModeWalking, From: fromPoint, To: fromPoint + ";" + toPoint})
	require.NoError(t, err)

	_, err = uc.Matrix(ctx, dto.MatrixRequest{Mode: lbs.ModeTransit, From: fromPoint, To: toPoint})
	assert.Equal(t, 400, apperrors.StatusOf(err))
}
