package lbs

import "context"

const (
	pathPlaceSearch     = "/ws/place/v1/search"
	pathPlaceExplore    = "/ws/place/v1/explore"
	pathPlaceDetail     = "/ws/place/v1/detail"
	pathPlaceSuggestion = "/ws/place/v1/suggestion"
)

// SearchPlaces - поиск мест по ключевому слову в пределах boundary
// (например "region(北京,0)" или "nearby(39.908491,116.374328,1000)").
// https://lbs.qq.com/service/webService/webServiceGuide/webServiceSearch
func (c *Client) SearchPlaces(ctx context.Context, keyword, boundary string, opts Params) (*Envelope, error) {
	return c.get(ctx, pathPlaceSearch, opts,
		named("keyword", keyword),
		named("boundary", boundary))
}

// ExplorePlaces - рекомендации мест вокруг точки.
func (c *Client) ExplorePlaces(ctx context.Context, boundary string, opts Params) (*Envelope, error) {
	return c.get(ctx, pathPlaceExplore, opts, named("boundary", boundary))
}

// PlaceDetail - место по идентификатору.
func (c *Client) PlaceDetail(ctx context.Context, id string, opts Params) (*Envelope, error) {
	return c.get(ctx, pathPlaceDetail, opts, named("id", id))
}

// Suggestion - подсказки при вводе ключевого слова.
func (c *Client) Suggestion(ctx context.Context, keyword string, opts Params) (*Envelope, error) {
	return c.get(ctx, pathPlaceSuggestion, opts, named("keyword", keyword))
}
