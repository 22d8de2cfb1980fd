package lbs

import "context"

const (
	pathDistrictList     = "/ws/district/v1/list"
	pathDistrictChildren = "/ws/district/v1/getchildren"
	pathDistrictSearch   = "/ws/district/v1/search"
)

// DistrictList - полный список провинций, городов и районов.
// https://lbs.qq.com/service/webService/webServiceGuide/webServiceDistrict
func (c *Client) DistrictList(ctx context.Context, opts Params) (*Envelope, error) {
	return c.get(ctx, pathDistrictList, opts)
}

// DistrictChildren - дочерние административные единицы для id (adcode).
func (c *Client) DistrictChildren(ctx context.Context, id string, opts Params) (*Envelope, error) {
	return c.get(ctx, pathDistrictChildren, opts, named("id", id))
}

// DistrictSearch - поиск административной единицы по названию.
func (c *Client) DistrictSearch(ctx context.Context, keyword string, opts Params) (*Envelope, error) {
	return c.get(ctx, pathDistrictSearch, opts, named("keyword", keyword))
}
