package dto

import "github.com/lbs-gateway/pkg/lbs"

// Place

type PlaceSearchRequest struct {
	Keyword  string  `query:"keyword" validate:"required"`
	Boundary string  `query:"boundary" validate:"required"`
	Options  Options `query:"-"`
}

type PlaceExploreRequest struct {
	Boundary string  `query:"boundary" validate:"required"`
	Options  Options `query:"-"`
}

type PlaceDetailRequest struct {
	ID      string  `query:"id" validate:"required"`
	Options Options `query:"-"`
}

type SuggestionRequest struct {
	Keyword string  `query:"keyword" validate:"required"`
	Options Options `query:"-"`
}

// Geocoder

type GeocodeRequest struct {
	Address string  `query:"address" validate:"required"`
	Options Options `query:"-"`
}

type ReverseGeocodeRequest struct {
	Location string  `query:"location" validate:"required,latlng"`
	Options  Options `query:"-"`
}

// AddressRequest - запросы семейства smart address с одним адресом
type AddressRequest struct {
	Address string  `query:"address" validate:"required"`
	Options Options `query:"-"`
}

type NameAddressRequest struct {
	Name    string  `query:"name" validate:"required"`
	Address string  `query:"address" validate:"required"`
	Options Options `query:"-"`
}

// PlaceAnalysisRequest - address или location, address приоритетнее
type PlaceAnalysisRequest struct {
	Address  string  `query:"address" validate:"required_without=Location"`
	Location string  `query:"location" validate:"omitempty,latlng"`
	Options  Options `query:"-"`
}

// Routing

type DirectionRequest struct {
	Mode    lbs.Mode `query:"mode" validate:"required,oneof=driving walking bicycling ebicycling transit"`
	From    string   `query:"from" validate:"required,latlng"`
	To      string   `query:"to" validate:"required,latlng"`
	Options Options  `query:"-"`
}

type TruckingRequest struct {
	From    string    `query:"from" validate:"required,latlng"`
	To      string    `query:"to" validate:"required,latlng"`
	Truck   lbs.Truck `query:"-"`
	Options Options   `query:"-"`
}

type MatrixRequest struct {
	Mode    lbs.Mode `query:"mode" validate:"required,oneof=driving walking bicycling"`
	From    string   `query:"from" validate:"required"`
	To      string   `query:"to" validate:"required"`
	Options Options  `query:"-"`
}

// District

type DistrictChildrenRequest struct {
	ID      string  `query:"id" validate:"required,numeric"`
	Options Options `query:"-"`
}

type DistrictSearchRequest struct {
	Keyword string  `query:"keyword" validate:"required"`
	Limit   int     `query:"limit" validate:"omitempty,min=1,max=100"`
	Options Options `query:"-"`
}

// Location

type CoordTranslateRequest struct {
	Locations string  `query:"locations" validate:"required"`
	Type      int     `query:"type" validate:"required,min=1,max=6"`
	Options   Options `query:"-"`
}

type IPLocationRequest struct {
	IP      string  `query:"ip" validate:"omitempty,ip"`
	Options Options `query:"-"`
}

type NetworkLocationRequest struct {
	DeviceID string  `json:"device_id" validate:"required"`
	Options  Options `json:"options,omitempty"`
}
