package usecase

import (
	"context"

	"github.com/lbs-gateway/internal/domain/repository"
	"github.com/lbs-gateway/internal/pkg/validator"
	"github.com/lbs-gateway/internal/usecase/dto"
	"github.com/lbs-gateway/pkg/lbs"
)

// AddressUseCase - анализ адресов (smart address)
type AddressUseCase struct {
	lbsRepo repository.LBSRepository
	lookup  *Lookup
}

func NewAddressUseCase(lbsRepo repository.LBSRepository, lookup *Lookup) *AddressUseCase {
	return &AddressUseCase{lbsRepo: lbsRepo, lookup: lookup}
}

type addressCall func(ctx context.Context, address string, opts lbs.Params) (*lbs.Envelope, error)

func (uc *AddressUseCase) single(ctx context.Context, endpoint string, req dto.AddressRequest, call addressCall) (*dto.LookupResult, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}
	params := withNamed(req.Options, lbs.Params{"address": req.Address})
	return uc.lookup.Fetch(ctx, endpoint, params, func(ctx context.Context) (*lbs.Envelope, error) {
		return call(ctx, req.Address, req.Options.Params())
	})
}

func (uc *AddressUseCase) Truth(ctx context.Context, req dto.AddressRequest) (*dto.LookupResult, error) {
	return uc.single(ctx, "address.truth", req, uc.lbsRepo.TruthAnalysis)
}

func (uc *AddressUseCase) Complete(ctx context.Context, req dto.AddressRequest) (*dto.LookupResult, error) {
	return uc.single(ctx, "address.complete", req, uc.lbsRepo.AddressComplete)
}

func (uc *AddressUseCase) Abnormal(ctx context.Context, req dto.AddressRequest) (*dto.LookupResult, error) {
	return uc.single(ctx, "address.abnormal", req, uc.lbsRepo.AbnormalAnalysis)
}

func (uc *AddressUseCase) NameAddress(ctx context.Context, req dto.NameAddressRequest) (*dto.LookupResult, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}
	params := withNamed(req.Options, lbs.Params{"name": req.Name, "address": req.Address})
	return uc.lookup.Fetch(ctx, "address.name", params, func(ctx context.Context) (*lbs.Envelope, error) {
		return uc.lbsRepo.NameAddressAnalysis(ctx, req.Name, req.Address, req.Options.Params())
	})
}

// Place - анализ по адресу или координате; при обоих задан используется адрес
func (uc *AddressUseCase) Place(ctx context.Context, req dto.PlaceAnalysisRequest) (*dto.LookupResult, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	named := lbs.Params{"address": req.Address}
	if req.Address == "" {
		named = lbs.Params{"location": req.Location}
	}
	params := withNamed(req.Options, named)
	delete(params, "address")
	delete(params, "location")
	for k, v := range named {
		params[k] = v
	}

	return uc.lookup.Fetch(ctx, "address.place", params, func(ctx context.Context) (*lbs.Envelope, error) {
		return uc.lbsRepo.PlaceAnalysis(ctx, req.Address, req.Location, req.Options.Params())
	})
}
