package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lbs-gateway/internal/pkg/errors"
	"github.com/lbs-gateway/internal/pkg/utils"
	"github.com/lbs-gateway/internal/usecase"
	"github.com/lbs-gateway/internal/usecase/dto"
)

// LocationHandler - координаты и местоположение
type LocationHandler struct {
	locationUC *usecase.LocationUseCase
}

func NewLocationHandler(locationUC *usecase.LocationUseCase) *LocationHandler {
	return &LocationHandler{locationUC: locationUC}
}

// CoordTranslate godoc
// @Summary Пересчёт координат в систему сервиса
// @Tags Location
// @Produce json
// @Param locations query string true "lat,lng;lat,lng"
// @Param type query int true "1 GPS, 2 Sogou, 3 Baidu, 4 MapBar, 5 Tencent, 6 Sogou Mercator"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/coord/translate [get]
func (h *LocationHandler) CoordTranslate(c *fiber.Ctx) error {
	started := time.Now()
	res, err := h.locationUC.CoordTranslate(c.Context(), dto.CoordTranslateRequest{
		Locations: c.Query("locations"),
		Type:      c.QueryInt("type"),
		Options:   queryOptions(c, "locations", "type"),
	})
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendLookup(c, res, started)
}

// IP godoc
// @Summary Местоположение по IP
// @Description Без параметра ip используется адрес клиента.
// @Tags Location
// @Produce json
// @Param ip query string false "IP адрес"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/location/ip [get]
func (h *LocationHandler) IP(c *fiber.Ctx) error {
	started := time.Now()
	res, err := h.locationUC.IP(c.Context(), dto.IPLocationRequest{
		IP:      c.Query("ip", c.IP()),
		Options: queryOptions(c, "ip"),
	})
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendLookup(c, res, started)
}

// Network godoc
// @Summary Местоположение по данным сети
// @Tags Location
// @Accept json
// @Produce json
// @Param request body dto.NetworkLocationRequest true "device_id и опции (wifiinfo, cellinfo, ...)"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/location/network [post]
func (h *LocationHandler) Network(c *fiber.Ctx) error {
	started := time.Now()

	var req dto.NetworkLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("invalid request body"))
	}

	res, err := h.locationUC.Network(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendLookup(c, res, started)
}
