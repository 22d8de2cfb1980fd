package usecase

import (
	"context"

	"github.com/lbs-gateway/internal/domain/repository"
	"github.com/lbs-gateway/internal/pkg/validator"
	"github.com/lbs-gateway/internal/usecase/dto"
	"github.com/lbs-gateway/pkg/lbs"
)

// LocationUseCase - пересчёт координат и определение местоположения
type LocationUseCase struct {
	lbsRepo repository.LBSRepository
	lookup  *Lookup
}

func NewLocationUseCase(lbsRepo repository.LBSRepository, lookup *Lookup) *LocationUseCase {
	return &LocationUseCase{lbsRepo: lbsRepo, lookup: lookup}
}

func (uc *LocationUseCase) CoordTranslate(ctx context.Context, req dto.CoordTranslateRequest) (*dto.LookupResult, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}
	typ := lbs.CoordType(req.Type)
	params := withNamed(req.Options, lbs.Params{"locations": req.Locations, "type": typ.String()})
	return uc.lookup.Fetch(ctx, "coord.translate", params, func(ctx context.Context) (*lbs.Envelope, error) {
		return uc.lbsRepo.CoordTranslate(ctx, req.Locations, typ, req.Options.Params())
	})
}

func (uc *LocationUseCase) IP(ctx context.Context, req dto.IPLocationRequest) (*dto.LookupResult, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}
	params := withNamed(req.Options, lbs.Params{"ip": req.IP})
	return uc.lookup.Fetch(ctx, "location.ip", params, func(ctx context.Context) (*lbs.Envelope, error) {
		return uc.lbsRepo.IPLocation(ctx, req.IP, req.Options.Params())
	})
}

// Network не кешируется: данные сети каждый раз новые
func (uc *LocationUseCase) Network(ctx context.Context, req dto.NetworkLocationRequest) (*dto.LookupResult, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}
	env, err := uc.lbsRepo.NetworkLocation(ctx, req.DeviceID, req.Options.Params())
	if err != nil {
		return nil, err
	}
	return toLookupResult(env, dto.SourceUpstream, payload)
}
