package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/lbs-gateway/internal/pkg/errors"
	"github.com/lbs-gateway/internal/usecase"
	"github.com/lbs-gateway/internal/usecase/dto"
	"github.com/lbs-gateway/pkg/lbs"
)

func TestLocationUseCase_CoordTranslate(t *testing.T) {
	ctx := context.Background()
	repo := new(MockLBSRepository)
	repo.On("CoordTranslate", ctx, "39.12,116.83;30.21,115.43", lbs.CoordBaidu, lbs.Params(nil)).
		Return(mustEnvelope(`{"status":0,"locations":[{"lat":39.1,"lng":116.8}]}`), nil)

	uc := usecase.NewLocationUseCase(repo, usecase.NewLookup(nil, nil, zap.NewNop(), 0))

	res, err := uc.CoordTranslate(ctx, dto.CoordTranslateRequest{Locations: "39.12,116.83;30.21,115.43", Type: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"locations":[{"lat":39.1,"lng":116.8}]}`, string(res.Data))

	_, err = uc.CoordTranslate(ctx, dto.CoordTranslateRequest{Locations: "1,2", Type: 7})
	assert.Equal(t, 400, apperrors.StatusOf(err))
}

func TestLocationUseCase_IP(t *testing.T) {
	ctx := context.Background()
	repo := new(MockLBSRepository)
	repo.On("IPLocation", ctx, "61.135.17.68", lbs.Params(nil)).Return(mustEnvelope(geocodeBody), nil)

	uc := usecase.NewLocationUseCase(repo, usecase.NewLookup(nil, nil, zap.NewNop(), 0))

	_, err := uc.IP(ctx, dto.IPLocationRequest{IP: "61.135.17.68"})
	require.NoError(t, err)

	_, err = uc.IP(ctx, dto.IPLocationRequest{IP: "999.1.1.1"})
	assert.Equal(t, 400, apperrors.StatusOf(err))
}

func TestLocationUseCase_NetworkIsNotCached(t *testing.T) {
	ctx := context.Background()
	repo := new(MockLBSRepository)
	cache := new(MockCacheRepository)
	repo.On("NetworkLocation", ctx, "dev-1", lbs.Params{"wifiinfo": "aa:bb,-60"}).Return(mustEnvelope(geocodeBody), nil)

	uc := usecase.NewLocationUseCase(repo, usecase.NewLookup(cache, nil, zap.NewNop(), time.Minute))
	res, err := uc.Network(ctx, dto.NetworkLocationRequest{DeviceID: "dev-1", Options: dto.Options{"wifiinfo": "aa:bb,-60"}})

	require.NoError(t, err)
	assert.Equal(t, dto.SourceUpstream, res.Source)
	cache.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}
