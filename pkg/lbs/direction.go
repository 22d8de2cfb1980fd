package lbs

import (
	"context"
)

const (
	pathDirection      = "/ws/direction/v1/"
	pathTrucking       = "/ws/direction/v1/trucking"
	pathDistanceMatrix = "/ws/distance/v1/matrix"
)

// Mode - способ передвижения
type Mode string

const (
	ModeDriving    Mode = "driving"
	ModeWalking    Mode = "walking"
	ModeBicycling  Mode = "bicycling"
	ModeEBicycling Mode = "ebicycling"
	ModeTransit    Mode = "transit"
)

// DirectionModes - режимы, которые поддерживает Direction
var DirectionModes = []Mode{ModeDriving, ModeWalking, ModeBicycling, ModeEBicycling, ModeTransit}

// MatrixModes - режимы, которые поддерживает DistanceMatrix
var MatrixModes = []Mode{ModeDriving, ModeWalking, ModeBicycling}

func (m Mode) in(modes []Mode) bool {
	for _, v := range modes {
		if v == m {
			return true
		}
	}
	return false
}

// Truck - габариты грузовика для DirectionTrucking
type Truck struct {
	// Size - класс: 1 микро, 2 лёгкий, 3 средний, 4 тяжёлый
	Size       int     `param:"size" validate:"min=1,max=4"`
	Height     float64 `param:"height" validate:"gt=0"`
	Width      float64 `param:"width" validate:"gt=0"`
	Weight     float64 `param:"weight" validate:"gt=0"`
	AxleWeight float64 `param:"axle_weight" validate:"gt=0"`
	AxleCount  int     `param:"axle_count" validate:"min=2"`
	IsTrailer  bool    `param:"is_trailer"`
}

func (t Truck) params() Params {
	return Params{
		"size":        t.Size,
		"height":      t.Height,
		"width":       t.Width,
		"weight":      t.Weight,
		"axle_weight": t.AxleWeight,
		"axle_count":  t.AxleCount,
		"is_trailer":  t.IsTrailer,
	}
}

// Direction - построение маршрута. from и to в формате "lat,lng".
// https://lbs.qq.com/service/webService/webServiceGuide/webServiceRoute
func (c *Client) Direction(ctx context.Context, mode Mode, from, to string, opts Params) (*Envelope, error) {
	if !mode.in(DirectionModes) {
		return nil, c.reject(pathDirection, &ValidationError{Field: "mode", Reason: "unsupported mode " + string(mode)})
	}
	return c.get(ctx, pathDirection+string(mode)+"/", opts, named("from", from), named("to", to))
}

func (c *Client) DirectionDriving(ctx context.Context, from, to string, opts Params) (*Envelope, error) {
	return c.Direction(ctx, ModeDriving, from, to, opts)
}

func (c *Client) DirectionWalking(ctx context.Context, from, to string, opts Params) (*Envelope, error) {
	return c.Direction(ctx, ModeWalking, from, to, opts)
}

func (c *Client) DirectionBicycling(ctx context.Context, from, to string, opts Params) (*Envelope, error) {
	return c.Direction(ctx, ModeBicycling, from, to, opts)
}

func (c *Client) DirectionEBicycling(ctx context.Context, from, to string, opts Params) (*Envelope, error) {
	return c.Direction(ctx, ModeEBicycling, from, to, opts)
}

func (c *Client) DirectionTransit(ctx context.Context, from, to string, opts Params) (*Envelope, error) {
	return c.Direction(ctx, ModeTransit, from, to, opts)
}

// DirectionTrucking - маршрут для грузовика с учётом габаритов.
// https://lbs.qq.com/service/webService/webServiceGuide/directionTrucking
func (c *Client) DirectionTrucking(ctx context.Context, from, to string, truck Truck, opts Params) (*Envelope, error) {
	if err := validate.Struct(truck); err != nil {
		return nil, c.reject(pathTrucking, structError(err))
	}
	return c.get(ctx, pathTrucking, merge(opts, truck.params()),
		named("from", from),
		named("to", to))
}

// DistanceMatrix - матрица расстояний между наборами точек
// ("lat,lng;lat,lng", см. JoinLocations).
// https://lbs.qq.com/service/webService/webServiceGuide/webServiceMatrix
func (c *Client) DistanceMatrix(ctx context.Context, mode Mode, from, to string, opts Params) (*Envelope, error) {
	if !mode.in(MatrixModes) {
		return nil, c.reject(pathDistanceMatrix, &ValidationError{Field: "mode", Reason: "unsupported mode " + string(mode)})
	}
	return c.get(ctx, pathDistanceMatrix, opts,
		named("mode", string(mode)),
		named("from", from),
		named("to", to))
}
