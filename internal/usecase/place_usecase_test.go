package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/lbs-gateway/internal/pkg/errors"
	"github.com/lbs-gateway/internal/usecase"
	"github.com/lbs-gateway/internal/usecase/dto"
	"github.com/lbs-gateway/pkg/lbs"
)

func TestPlaceUseCase(t *testing.T) {
	ctx := context.Background()
	body := `{"status":0,"count":1,"data":[{"id":"1"}]}`

	repo := new(MockLBSRepository)
	repo.On("SearchPlaces", ctx, "酒店", "region(北京,0)", lbs.Params{"page_size": "5"}).Return(mustEnvelope(body), nil)
	repo.On("ExplorePlaces", ctx, "nearby(40.04,116.27,1000)", lbs.Params(nil)).Return(mustEnvelope(body), nil)
	repo.On("PlaceDetail", ctx, "2199027905900", lbs.Params(nil)).Return(mustEnvelope(body), nil)
	repo.On("Suggestion", ctx, "美食", lbs.Params(nil)).Return(mustEnvelope(body), nil)

	uc := usecase.NewPlaceUseCase(repo, usecase.NewLookup(nil, nil, zap.NewNop(), 0))

	res, err := uc.Search(ctx, dto.PlaceSearchRequest{Keyword: "酒店", Boundary: "region(北京,0)", Options: dto.Options{"page_size": "5"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"count":1,"data":[{"id":"1"}]}`, string(res.Data))

	_, err = uc.Explore(ctx, dto.PlaceExploreRequest{Boundary: "nearby(40.04,116.27,1000)"})
	require.NoError(t, err)
	_, err = uc.Detail(ctx, dto.PlaceDetailRequest{ID: "2199027905900"})
	require.NoError(t, err)
	_, err = uc.Suggestion(ctx, dto.SuggestionRequest{Keyword: "美食"})
	require.NoError(t, err)

	_, err = uc.Search(ctx, dto.PlaceSearchRequest{Keyword: "酒店"})
	assert.Equal(t, 400, apperrors.StatusOf(err))

	repo.AssertExpectations(t)
}
