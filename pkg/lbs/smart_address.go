package lbs

import "context"

const (
	pathTruthAnalysis       = "/ws/smart_address/truth_analy"
	pathAddressComplete     = "/ws/smart_address/address_complete"
	pathAbnormalAnalysis    = "/ws/smart_address/abnormal_analy"
	pathNameAddressAnalysis = "/ws/smart_address/name_address_analy"
	pathPlaceAnalysis       = "/ws/smart_address/place_analy/"
)

// TruthAnalysis - проверка существования адреса.
func (c *Client) TruthAnalysis(ctx context.Context, address string, opts Params) (*Envelope, error) {
	return c.get(ctx, pathTruthAnalysis, opts, named("address", address))
}

// AddressComplete - исправление и дополнение адреса.
func (c *Client) AddressComplete(ctx context.Context, address string, opts Params) (*Envelope, error) {
	return c.get(ctx, pathAddressComplete, opts, named("address", address))
}

// AbnormalAnalysis - поиск ошибок в адресе.
func (c *Client) AbnormalAnalysis(ctx context.Context, address string, opts Params) (*Envelope, error) {
	return c.get(ctx, pathAbnormalAnalysis, opts, named("address", address))
}

// NameAddressAnalysis - проверка соответствия названия организации адресу.
func (c *Client) NameAddressAnalysis(ctx context.Context, name, address string, opts Params) (*Envelope, error) {
	return c.get(ctx, pathNameAddressAnalysis, opts,
		named("name", name),
		named("address", address))
}

// PlaceAnalysis - анализ места по адресу или координате. Нужен хотя бы один
// из параметров; если заданы оба, отправляется только address.
func (c *Client) PlaceAnalysis(ctx context.Context, address, location string, opts Params) (*Envelope, error) {
	if address == "" && location == "" {
		return nil, c.reject(pathPlaceAnalysis, &ValidationError{
			Field:  "address",
			Reason: "address or location is required",
		})
	}

	params := merge(opts)
	delete(params, "address")
	delete(params, "location")

	if address != "" {
		params["address"] = address
	} else {
		params["location"] = location
	}

	return c.Get(ctx, pathPlaceAnalysis, params)
}
