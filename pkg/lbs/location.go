package lbs

import (
	"context"
	"net"
)

const (
	pathIPLocation      = "/ws/location/v1/ip"
	pathNetworkLocation = "/ws/location/v1/network"
)

// IPLocation - местоположение по IP адресу.
// https://lbs.qq.com/service/webService/webServiceGuide/webServiceIp
func (c *Client) IPLocation(ctx context.Context, ip string, opts Params) (*Envelope, error) {
	if ip != "" && net.ParseIP(ip) == nil {
		return nil, c.reject(pathIPLocation, &ValidationError{Field: "ip", Reason: "not an IP address"})
	}
	return c.get(ctx, pathIPLocation, opts, named("ip", ip))
}

// NetworkLocation - местоположение устройства по данным сети (wifi, базовые станции).
// Параметры уходят в теле формы POST запроса.
// https://lbs.qq.com/service/webService/webServiceGuide/location
func (c *Client) NetworkLocation(ctx context.Context, deviceID string, opts Params) (*Envelope, error) {
	return c.post(ctx, pathNetworkLocation, opts, named("device_id", deviceID))
}
