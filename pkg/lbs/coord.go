package lbs

import (
	"context"
	"strconv"
)

const pathCoordTranslate = "/ws/coord/v1/translate"

// CoordType - система координат исходных точек
type CoordType int

const (
	CoordGPS           CoordType = 1
	CoordSogou         CoordType = 2
	CoordBaidu         CoordType = 3
	CoordMapBar        CoordType = 4
	CoordTencent       CoordType = 5
	CoordSogouMercator CoordType = 6
)

func (t CoordType) String() string {
	return strconv.Itoa(int(t))
}

func (t CoordType) valid() bool {
	return t >= CoordGPS && t <= CoordSogouMercator
}

// CoordTranslate переводит координаты locations ("lat,lng;lat,lng")
// из системы typ в систему сервиса.
// https://lbs.qq.com/service/webService/webServiceGuide/webServiceTranslate
func (c *Client) CoordTranslate(ctx context.Context, locations string, typ CoordType, opts Params) (*Envelope, error) {
	if !typ.valid() {
		return nil, c.reject(pathCoordTranslate, &ValidationError{Field: "type", Reason: "unknown coordinate type " + typ.String()})
	}
	return c.get(ctx, pathCoordTranslate, opts,
		named("locations", locations),
		named("type", typ.String()))
}
