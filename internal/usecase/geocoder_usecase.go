package usecase

import (
	"context"

	"github.com/lbs-gateway/internal/domain/repository"
	"github.com/lbs-gateway/internal/pkg/validator"
	"github.com/lbs-gateway/internal/usecase/dto"
	"github.com/lbs-gateway/pkg/lbs"
)

// GeocoderUseCase - прямое, обратное и "умное" геокодирование
type GeocoderUseCase struct {
	lbsRepo repository.LBSRepository
	lookup  *Lookup
}

func NewGeocoderUseCase(lbsRepo repository.LBSRepository, lookup *Lookup) *GeocoderUseCase {
	return &GeocoderUseCase{lbsRepo: lbsRepo, lookup: lookup}
}

func (uc *GeocoderUseCase) Geocode(ctx context.Context, req dto.GeocodeRequest) (*dto.LookupResult, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}
	params := withNamed(req.Options, lbs.Params{"address": req.Address})
	return uc.lookup.Fetch(ctx, "geocoder.geocode", params, func(ctx context.Context) (*lbs.Envelope, error) {
		return uc.lbsRepo.Geocode(ctx, req.Address, req.Options.Params())
	})
}

func (uc *GeocoderUseCase) Reverse(ctx context.Context, req dto.ReverseGeocodeRequest) (*dto.LookupResult, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}
	params := withNamed(req.Options, lbs.Params{"location": req.Location})
	return uc.lookup.Fetch(ctx, "geocoder.reverse", params, func(ctx context.Context) (*lbs.Envelope, error) {
		return uc.lbsRepo.ReverseGeocode(ctx, req.Location, req.Options.Params())
	})
}

func (uc *GeocoderUseCase) Smart(ctx context.Context, req dto.AddressRequest) (*dto.LookupResult, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}
	params := withNamed(req.Options, lbs.Params{"smart_address": req.Address})
	return uc.lookup.Fetch(ctx, "geocoder.smart", params, func(ctx context.Context) (*lbs.Envelope, error) {
		return uc.lbsRepo.SmartGeocode(ctx, req.Address, req.Options.Params())
	})
}
