package lbs

import "context"

const pathGeocoder = "/ws/geocoder/v1/"

// ReverseGeocode - адрес по координате "lat,lng".
// https://lbs.qq.com/service/webService/webServiceGuide/webServiceGcoder
func (c *Client) ReverseGeocode(ctx context.Context, location string, opts Params) (*Envelope, error) {
	return c.get(ctx, pathGeocoder, opts, named("location", location))
}

// Geocode - координата по адресу.
// https://lbs.qq.com/service/webService/webServiceGuide/webServiceGeocoder
func (c *Client) Geocode(ctx context.Context, address string, opts Params) (*Envelope, error) {
	return c.get(ctx, pathGeocoder, opts, named("address", address))
}

// SmartGeocode - разбор произвольной строки с адресом (имя, телефон, адрес вперемешку).
func (c *Client) SmartGeocode(ctx context.Context, smartAddress string, opts Params) (*Envelope, error) {
	return c.get(ctx, pathGeocoder, opts, named("smart_address", smartAddress))
}
