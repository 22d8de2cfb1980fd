package usecase

import (
	"context"

	"github.com/lbs-gateway/internal/domain/repository"
	"github.com/lbs-gateway/internal/pkg/validator"
	"github.com/lbs-gateway/internal/usecase/dto"
	"github.com/lbs-gateway/pkg/lbs"
)

// RouteUseCase - маршруты и матрица расстояний
type RouteUseCase struct {
	lbsRepo repository.LBSRepository
	lookup  *Lookup
}

func NewRouteUseCase(lbsRepo repository.LBSRepository, lookup *Lookup) *RouteUseCase {
	return &RouteUseCase{lbsRepo: lbsRepo, lookup: lookup}
}

func (uc *RouteUseCase) Direction(ctx context.Context, req dto.DirectionRequest) (*dto.LookupResult, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}
	params := withNamed(req.Options, lbs.Params{"from": req.From, "to": req.To})
	return uc.lookup.Fetch(ctx, "direction."+string(req.Mode), params, func(ctx context.Context) (*lbs.Envelope, error) {
		return uc.lbsRepo.Direction(ctx, req.Mode, req.From, req.To, req.Options.Params())
	})
}

func (uc *RouteUseCase) Trucking(ctx context.Context, req dto.TruckingRequest) (*dto.LookupResult, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}
	params := withNamed(req.Options, lbs.Params{
		"from":        req.From,
		"to":          req.To,
		"size":        req.Truck.Size,
		"height":      req.Truck.Height,
		"width":       req.Truck.Width,
		"weight":      req.Truck.Weight,
		"axle_weight": req.Truck.AxleWeight,
		"axle_count":  req.Truck.AxleCount,
		"is_trailer":  req.Truck.IsTrailer,
	})
	return uc.lookup.Fetch(ctx, "direction.trucking", params, func(ctx context.Context) (*lbs.Envelope, error) {
		return uc.lbsRepo.DirectionTrucking(ctx, req.From, req.To, req.Truck, req.Options.Params())
	})
}

func (uc *RouteUseCase) Matrix(ctx context.Context, req dto.MatrixRequest) (*dto.LookupResult, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}
	params := withNamed(req.Options, lbs.Params{"mode": string(req.Mode), "from": req.From, "to": req.To})
	return uc.lookup.Fetch(ctx, "distance.matrix", params, func(ctx context.Context) (*lbs.Envelope, error) {
		return uc.lbsRepo.DistanceMatrix(ctx, req.Mode, req.From, req.To, req.Options.Params())
	})
}
