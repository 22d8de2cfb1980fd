package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lbs-gateway/internal/pkg/utils"
	"github.com/lbs-gateway/internal/usecase"
	"github.com/lbs-gateway/internal/usecase/dto"
)

// GeocoderHandler - геокодирование
type GeocoderHandler struct {
	geocoderUC *usecase.GeocoderUseCase
}

func NewGeocoderHandler(geocoderUC *usecase.GeocoderUseCase) *GeocoderHandler {
	return &GeocoderHandler{geocoderUC: geocoderUC}
}

// Geocode godoc
// @Summary Адрес в координаты
// @Tags Geocoder
// @Produce json
// @Param address query string true "Адрес"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/geocoder [get]
func (h *GeocoderHandler) Geocode(c *fiber.Ctx) error {
	started := time.Now()
	res, err := h.geocoderUC.Geocode(c.Context(), dto.GeocodeRequest{
		Address: c.Query("address"),
		Options: queryOptions(c, "address"),
	})
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendLookup(c, res, started)
}

// Reverse godoc
// @Summary Координаты в адрес
// @Tags Geocoder
// @Produce json
// @Param location query string true "lat,lng"
// @Param get_poi query int false "Вернуть ближайшие места (1)"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/geocoder/reverse [get]
func (h *GeocoderHandler) Reverse(c *fiber.Ctx) error {
	started := time.Now()
	res, err := h.geocoderUC.Reverse(c.Context(), dto.ReverseGeocodeRequest{
		Location: c.Query("location"),
		Options:  queryOptions(c, "location"),
	})
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendLookup(c, res, started)
}

// Smart godoc
// @Summary Геокодирование неструктурированного адреса
// @Tags Geocoder
// @Produce json
// @Param address query string true "Адрес в свободной форме"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/geocoder/smart [get]
func (h *GeocoderHandler) Smart(c *fiber.Ctx) error {
	started := time.Now()
	res, err := h.geocoderUC.Smart(c.Context(), dto.AddressRequest{
		Address: c.Query("address"),
		Options: queryOptions(c, "address"),
	})
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendLookup(c, res, started)
}
