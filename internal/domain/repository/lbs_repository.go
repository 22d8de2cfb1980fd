package repository

import (
	"context"

	"github.com/lbs-gateway/pkg/lbs"
)

// LBSRepository - операции веб-сервиса геолокации, которые использует шлюз.
// Реализуется *lbs.Client.
type LBSRepository interface {
	SearchPlaces(ctx context.Context, keyword, boundary string, opts lbs.Params) (*lbs.Envelope, error)
	ExplorePlaces(ctx context.Context, boundary string, opts lbs.Params) (*lbs.Envelope, error)
	PlaceDetail(ctx context.Context, id string, opts lbs.Params) (*lbs.Envelope, error)
	Suggestion(ctx context.Context, keyword string, opts lbs.Params) (*lbs.Envelope, error)

	Geocode(ctx context.Context, address string, opts lbs.Params) (*lbs.Envelope, error)
	ReverseGeocode(ctx context.Context, location string, opts lbs.Params) (*lbs.Envelope, error)
	SmartGeocode(ctx context.Context, smartAddress string, opts lbs.Params) (*lbs.Envelope, error)
	TruthAnalysis(ctx context.Context, address string, opts lbs.Params) (*lbs.Envelope, error)
	AddressComplete(ctx context.Context, address string, opts lbs.Params) (*lbs.Envelope, error)
	AbnormalAnalysis(ctx context.Context, address string, opts lbs.Params) (*lbs.Envelope, error)
	NameAddressAnalysis(ctx context.Context, name, address string, opts lbs.Params) (*lbs.Envelope, error)
	PlaceAnalysis(ctx context.Context, address, location string, opts lbs.Params) (*lbs.Envelope, error)

	Direction(ctx context.Context, mode lbs.Mode, from, to string, opts lbs.Params) (*lbs.Envelope, error)
	DirectionTrucking(ctx context.Context, from, to string, truck lbs.Truck, opts lbs.Params) (*lbs.Envelope, error)
	DistanceMatrix(ctx context.Context, mode lbs.Mode, from, to string, opts lbs.Params) (*lbs.Envelope, error)

	DistrictList(ctx context.Context, opts lbs.Params) (*lbs.Envelope, error)
	DistrictChildren(ctx context.Context, id string, opts lbs.Params) (*lbs.Envelope, error)
	DistrictSearch(ctx context.Context, keyword string, opts lbs.Params) (*lbs.Envelope, error)

	CoordTranslate(ctx context.Context, locations string, typ lbs.CoordType, opts lbs.Params) (*lbs.Envelope, error)
	IPLocation(ctx context.Context, ip string, opts lbs.Params) (*lbs.Envelope, error)
	NetworkLocation(ctx context.Context, deviceID string, opts lbs.Params) (*lbs.Envelope, error)
}

var _ LBSRepository = (*lbs.Client)(nil)
