package usecase

import (
	"context"

	"github.com/lbs-gateway/internal/domain/repository"
	"github.com/lbs-gateway/internal/pkg/validator"
	"github.com/lbs-gateway/internal/usecase/dto"
	"github.com/lbs-gateway/pkg/lbs"
)

// PlaceUseCase - поиск мест
type PlaceUseCase struct {
	lbsRepo repository.LBSRepository
	lookup  *Lookup
}

func NewPlaceUseCase(lbsRepo repository.LBSRepository, lookup *Lookup) *PlaceUseCase {
	return &PlaceUseCase{lbsRepo: lbsRepo, lookup: lookup}
}

func (uc *PlaceUseCase) Search(ctx context.Context, req dto.PlaceSearchRequest) (*dto.LookupResult, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}
	params := withNamed(req.Options, lbs.Params{"keyword": req.Keyword, "boundary": req.Boundary})
	return uc.lookup.Fetch(ctx, "place.search", params, func(ctx context.Context) (*lbs.Envelope, error) {
		return uc.lbsRepo.SearchPlaces(ctx, req.Keyword, req.Boundary, req.Options.Params())
	})
}

func (uc *PlaceUseCase) Explore(ctx context.Context, req dto.PlaceExploreRequest) (*dto.LookupResult, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}
	params := withNamed(req.Options, lbs.Params{"boundary": req.Boundary})
	return uc.lookup.Fetch(ctx, "place.explore", params, func(ctx context.Context) (*lbs.Envelope, error) {
		return uc.lbsRepo.ExplorePlaces(ctx, req.Boundary, req.Options.Params())
	})
}

func (uc *PlaceUseCase) Detail(ctx context.Context, req dto.PlaceDetailRequest) (*dto.LookupResult, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}
	params := withNamed(req.Options, lbs.Params{"id": req.ID})
	return uc.lookup.Fetch(ctx, "place.detail", params, func(ctx context.Context) (*lbs.Envelope, error) {
		return uc.lbsRepo.PlaceDetail(ctx, req.ID, req.Options.Params())
	})
}

func (uc *PlaceUseCase) Suggestion(ctx context.Context, req dto.SuggestionRequest) (*dto.LookupResult, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}
	params := withNamed(req.Options, lbs.Params{"keyword": req.Keyword})
	return uc.lookup.Fetch(ctx, "place.suggestion", params, func(ctx context.Context) (*lbs.Envelope, error) {
		return uc.lbsRepo.Suggestion(ctx, req.Keyword, req.Options.Params())
	})
}
