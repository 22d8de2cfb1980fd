package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/lbs-gateway/internal/domain"
	"github.com/lbs-gateway/pkg/lbs"
)

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

// MockDistrictRepository is a mock of DistrictRepository
type MockDistrictRepository struct {
	mock.Mock
}

func (m *MockDistrictRepository) ReplaceAll(ctx context.Context, snapshot *domain.DistrictSnapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *MockDistrictRepository) GetByID(ctx context.Context, id string) (*domain.District, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.District), args.Error(1)
}

func (m *MockDistrictRepository) GetChildren(ctx context.Context, parentID string) ([]domain.District, error) {
	args := m.Called(ctx, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.District), args.Error(1)
}

func (m *MockDistrictRepository) Search(ctx context.Context, keyword string, limit int) ([]domain.District, error) {
	args := m.Called(ctx, keyword, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.District), args.Error(1)
}

func (m *MockDistrictRepository) DataVersion(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// MockLBSRepository is a mock of LBSRepository
type MockLBSRepository struct {
	mock.Mock
}

func (m *MockLBSRepository) envelope(args mock.Arguments) (*lbs.Envelope, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lbs.Envelope), args.Error(1)
}

func (m *MockLBSRepository) SearchPlaces(ctx context.Context, keyword, boundary string, opts lbs.Params) (*lbs.Envelope, error) {
	return m.envelope(m.Called(ctx, keyword, boundary, opts))
}

func (m *MockLBSRepository) ExplorePlaces(ctx context.Context, boundary string, opts lbs.Params) (*lbs.Envelope, error) {
	return m.envelope(m.Called(ctx, boundary, opts))
}

func (m *MockLBSRepository) PlaceDetail(ctx context.Context, id string, opts lbs.Params) (*lbs.Envelope, error) {
	return m.envelope(m.Called(ctx, id, opts))
}

func (m *MockLBSRepository) Suggestion(ctx context.Context, keyword string, opts lbs.Params) (*lbs.Envelope, error) {
	return m.envelope(m.Called(ctx, keyword, opts))
}

func (m *MockLBSRepository) Geocode(ctx context.Context, address string, opts lbs.Params) (*lbs.Envelope, error) {
	return m.envelope(m.Called(ctx, address, opts))
}

func (m *MockLBSRepository) ReverseGeocode(ctx context.Context, location string, opts lbs.Params) (*lbs.Envelope, error) {
	return m.envelope(m.Called(ctx, location, opts))
}

func (m *MockLBSRepository) SmartGeocode(ctx context.Context, smartAddress string, opts lbs.Params) (*lbs.Envelope, error) {
	return m.envelope(m.Called(ctx, smartAddress, opts))
}

func (m *MockLBSRepository) TruthAnalysis(ctx context.Context, address string, opts lbs.Params) (*lbs.Envelope, error) {
	return m.envelope(m.Called(ctx, address, opts))
}

func (m *MockLBSRepository) AddressComplete(ctx context.Context, address string, opts lbs.Params) (*lbs.Envelope, error) {
	return m.envelope(m.Called(ctx, address, opts))
}

func (m *MockLBSRepository) AbnormalAnalysis(ctx context.Context, address string, opts lbs.Params) (*lbs.Envelope, error) {
	return m.envelope(m.Called(ctx, address, opts))
}

func (m *MockLBSRepository) NameAddressAnalysis(ctx context.Context, name, address string, opts lbs.Params) (*lbs.Envelope, error) {
	return m.envelope(m.Called(ctx, name, address, opts))
}

func (m *MockLBSRepository) PlaceAnalysis(ctx context.Context, address, location string, opts lbs.Params) (*lbs.Envelope, error) {
	return m.envelope(m.Called(ctx, address, location, opts))
}

func (m *MockLBSRepository) Direction(ctx context.Context, mode lbs.Mode, from, to string, opts lbs.Params) (*lbs.Envelope, error) {
	return m.envelope(m.Called(ctx, mode, from, to, opts))
}

func (m *MockLBSRepository) DirectionTrucking(ctx context.Context, from, to string, truck lbs.Truck, opts lbs.Params) (*lbs.Envelope, error) {
	return m.envelope(m.Called(ctx, from, to, truck, opts))
}

func (m *MockLBSRepository) DistanceMatrix(ctx context.Context, mode lbs.Mode, from, to string, opts lbs.Params) (*lbs.Envelope, error) {
	return m.envelope(m.Called(ctx, mode, from, to, opts))
}

func (m *MockLBSRepository) DistrictList(ctx context.Context, opts lbs.Params) (*lbs.Envelope, error) {
	return m.envelope(m.Called(ctx, opts))
}

func (m *MockLBSRepository) DistrictChildren(ctx context.Context, id string, opts lbs.Params) (*lbs.Envelope, error) {
	return m.envelope(m.Called(ctx, id, opts))
}

func (m *MockLBSRepository) DistrictSearch(ctx context.Context, keyword string, opts lbs.Params) (*lbs.Envelope, error) {
	return m.envelope(m.Called(ctx, keyword, opts))
}

func (m *MockLBSRepository) CoordTranslate(ctx context.Context, locations string, typ lbs.CoordType, opts lbs.Params) (*lbs.Envelope, error) {
	return m.envelope(m.Called(ctx, locations, typ, opts))
}

func (m *MockLBSRepository) IPLocation(ctx context.Context, ip string, opts lbs.Params) (*lbs.Envelope, error) {
	return m.envelope(m.Called(ctx, ip, opts))
}

func (m *MockLBSRepository) NetworkLocation(ctx context.Context, deviceID string, opts lbs.Params) (*lbs.Envelope, error) {
	return m.envelope(m.Called(ctx, deviceID, opts))
}

// MockCacheObserver is a mock of CacheObserver
type MockCacheObserver struct {
	mock.Mock
}

func (m *MockCacheObserver) CacheHit(endpoint string) {
	m.Called(endpoint)
}

func (m *MockCacheObserver) CacheMiss(endpoint string) {
	m.Called(endpoint)
}

func mustEnvelope(body string) *lbs.Envelope {
	env, err := lbs.Decode([]byte(body))
	if err != nil {
		panic(err)
	}
	return env
}
