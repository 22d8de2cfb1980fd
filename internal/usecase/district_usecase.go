package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/lbs-gateway/internal/domain"
	"github.com/lbs-gateway/internal/domain/repository"
	"github.com/lbs-gateway/internal/pkg/errors"
	"github.com/lbs-gateway/internal/pkg/validator"
	"github.com/lbs-gateway/internal/usecase/dto"
	"github.com/lbs-gateway/pkg/lbs"
)

const defaultDistrictSearchLimit = 20

// DistrictUseCase - административное деление. Запросы без опций обслуживаются
// из локального справочника, если он синхронизирован, иначе из сервиса.
type DistrictUseCase struct {
	lbsRepo      repository.LBSRepository
	districtRepo repository.DistrictRepository
	lookup       *Lookup
	logger       *zap.Logger
}

// NewDistrictUseCase - districtRepo может быть nil (шлюз без PostgreSQL)
func NewDistrictUseCase(
	lbsRepo repository.LBSRepository,
	districtRepo repository.DistrictRepository,
	lookup *Lookup,
	logger *zap.Logger,
) *DistrictUseCase {
	return &DistrictUseCase{
		lbsRepo:      lbsRepo,
		districtRepo: districtRepo,
		lookup:       lookup,
		logger:       logger,
	}
}

// List - провинции
func (uc *DistrictUseCase) List(ctx context.Context, opts dto.Options) (*dto.LookupResult, error) {
	if len(opts) == 0 {
		if res := uc.local(ctx, func(ctx context.Context) ([]domain.District, error) {
			return uc.districtRepo.GetChildren(ctx, "")
		}); res != nil {
			return res, nil
		}
	}
	return uc.lookup.FetchRendered(ctx, "district.list", withNamed(opts, nil), func(ctx context.Context) (*lbs.Envelope, error) {
		return uc.lbsRepo.DistrictList(ctx, opts.Params())
	}, renderDistricts(func(levels [][]domain.DistrictItem) []domain.District {
		return provinces(domain.FlattenDistricts(levels))
	}))
}

func (uc *DistrictUseCase) Children(ctx context.Context, req dto.DistrictChildrenRequest) (*dto.LookupResult, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}
	if len(req.Options) == 0 {
		if res := uc.local(ctx, func(ctx context.Context) ([]domain.District, error) {
			return uc.districtRepo.GetChildren(ctx, req.ID)
		}); res != nil {
			return res, nil
		}
	}
	params := withNamed(req.Options, lbs.Params{"id": req.ID})
	return uc.lookup.FetchRendered(ctx, "district.children", params, func(ctx context.Context) (*lbs.Envelope, error) {
		return uc.lbsRepo.DistrictChildren(ctx, req.ID, req.Options.Params())
	}, renderDistricts(func(levels [][]domain.DistrictItem) []domain.District {
		parent := req.ID
		return domain.DistrictsFromItems(levels, &parent)
	}))
}

func (uc *DistrictUseCase) Search(ctx context.Context, req dto.DistrictSearchRequest) (*dto.LookupResult, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}
	limit := req.Limit
	if limit == 0 {
		limit = defaultDistrictSearchLimit
	}
	if len(req.Options) == 0 {
		if res := uc.local(ctx, func(ctx context.Context) ([]domain.District, error) {
			return uc.districtRepo.Search(ctx, req.Keyword, limit)
		}); res != nil {
			return res, nil
		}
	}
	params := withNamed(req.Options, lbs.Params{"keyword": req.Keyword})
	return uc.lookup.FetchRendered(ctx, "district.search", params, func(ctx context.Context) (*lbs.Envelope, error) {
		return uc.lbsRepo.DistrictSearch(ctx, req.Keyword, req.Options.Params())
	}, renderDistricts(func(levels [][]domain.DistrictItem) []domain.District {
		return domain.DistrictsFromItems(levels, nil)
	}))
}

// GetByID - единица из локального справочника
func (uc *DistrictUseCase) GetByID(ctx context.Context, id string) (*domain.District, error) {
	if uc.districtRepo == nil {
		return nil, errors.ErrDistrictNotFound
	}
	d, err := uc.districtRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to get district", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	if d == nil {
		return nil, errors.ErrDistrictNotFound
	}
	return d, nil
}

// Sync загружает полный справочник из сервиса и заменяет локальную копию,
// если версия данных изменилась
func (uc *DistrictUseCase) Sync(ctx context.Context) (*dto.DistrictSyncResult, error) {
	if uc.districtRepo == nil {
		return nil, fmt.Errorf("district storage is not configured")
	}

	env, err := uc.lbsRepo.DistrictList(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch district list: %w", err)
	}

	version := dataVersion(env)

	current, err := uc.districtRepo.DataVersion(ctx)
	if err != nil {
		return nil, fmt.Errorf("read data version: %w", err)
	}
	if version != "" && version == current {
		uc.logger.Info("Districts are up to date", zap.String("data_version", version))
		return &dto.DistrictSyncResult{DataVersion: version}, nil
	}

	var levels [][]domain.DistrictItem
	if err := env.DecodeResult(&levels); err != nil {
		return nil, fmt.Errorf("decode district list: %w", err)
	}

	districts := domain.FlattenDistricts(levels)
	if err := uc.districtRepo.ReplaceAll(ctx, &domain.DistrictSnapshot{
		DataVersion: version,
		Districts:   districts,
	}); err != nil {
		return nil, fmt.Errorf("store districts: %w", err)
	}

	return &dto.DistrictSyncResult{DataVersion: version, Count: len(districts)}, nil
}

// local - ответ из справочника или nil, если его нет или он пуст
func (uc *DistrictUseCase) local(ctx context.Context, query func(ctx context.Context) ([]domain.District, error)) *dto.LookupResult {
	if uc.districtRepo == nil {
		return nil
	}

	districts, err := query(ctx)
	if err != nil {
		uc.logger.Warn("District storage unavailable, falling back to upstream", zap.Error(err))
		return nil
	}
	if len(districts) == 0 {
		return nil
	}

	version, _ := uc.districtRepo.DataVersion(ctx)
	data, err := json.Marshal(dto.DistrictResponse{Districts: districts, DataVersion: version})
	if err != nil {
		return nil
	}
	return &dto.LookupResult{Data: data, Source: dto.SourceDatabase}
}

// renderDistricts приводит ответ district/v1 к dto.DistrictResponse,
// той же форме, что отдаёт локальный справочник
func renderDistricts(convert func(levels [][]domain.DistrictItem) []domain.District) RenderFunc {
	return func(env *lbs.Envelope) (json.RawMessage, error) {
		var levels [][]domain.DistrictItem
		if err := env.DecodeResult(&levels); err != nil {
			return nil, &lbs.DecodeError{Err: err}
		}
		data, err := json.Marshal(dto.DistrictResponse{
			Districts:   convert(levels),
			DataVersion: dataVersion(env),
		})
		if err != nil {
			return nil, fmt.Errorf("marshal districts: %w", err)
		}
		return data, nil
	}
}

func provinces(districts []domain.District) []domain.District {
	result := make([]domain.District, 0)
	for _, d := range districts {
		if d.Level == 1 {
			result = append(result, d)
		}
	}
	return result
}

func dataVersion(env *lbs.Envelope) string {
	if v, ok := env.Lookup("data_version"); ok {
		return cast.ToString(v)
	}
	return ""
}
