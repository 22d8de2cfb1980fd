package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lbs-gateway/internal/pkg/utils"
	"github.com/lbs-gateway/internal/usecase"
	"github.com/lbs-gateway/internal/usecase/dto"
	"github.com/lbs-gateway/pkg/lbs"
)

// RouteHandler - маршруты и расстояния
type RouteHandler struct {
	routeUC *usecase.RouteUseCase
}

func NewRouteHandler(routeUC *usecase.RouteUseCase) *RouteHandler {
	return &RouteHandler{routeUC: routeUC}
}

// Direction godoc
// @Summary Построение маршрута
// @Tags Route
// @Produce json
// @Param mode path string true "driving, walking, bicycling, ebicycling, transit"
// @Param from query string true "lat,lng"
// @Param to query string true "lat,lng"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/direction/{mode} [get]
func (h *RouteHandler) Direction(c *fiber.Ctx) error {
	started := time.Now()
	res, err := h.routeUC.Direction(c.Context(), dto.DirectionRequest{
		Mode:    lbs.Mode(c.Params("mode")),
		From:    c.Query("from"),
		To:      c.Query("to"),
		Options: queryOptions(c, "from", "to"),
	})
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendLookup(c, res, started)
}

// Trucking godoc
// @Summary Маршрут для грузовика
// @Tags Route
// @Produce json
// @Param from query string true "lat,lng"
// @Param to query string true "lat,lng"
// @Param size query int true "Класс 1-4"
// @Param height query number true "Высота, м"
// @Param width query number true "Ширина, м"
// @Param weight query number true "Масса, т"
// @Param axle_weight query number true "Нагрузка на ось, т"
// @Param axle_count query int true "Число осей"
// @Param is_trailer query bool false "С прицепом"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/direction/trucking [get]
func (h *RouteHandler) Trucking(c *fiber.Ctx) error {
	started := time.Now()
	res, err := h.routeUC.Trucking(c.Context(), dto.TruckingRequest{
		From: c.Query("from"),
		To:   c.Query("to"),
		Truck: lbs.Truck{
			Size:       c.QueryInt("size"),
			Height:     c.QueryFloat("height"),
			Width:      c.QueryFloat("width"),
			Weight:     c.QueryFloat("weight"),
			AxleWeight: c.QueryFloat("axle_weight"),
			AxleCount:  c.QueryInt("axle_count"),
			IsTrailer:  c.QueryBool("is_trailer"),
		},
		Options: queryOptions(c, "from", "to", "size", "height", "width", "weight", "axle_weight", "axle_count", "is_trailer"),
	})
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendLookup(c, res, started)
}

// Matrix godoc
// @Summary Матрица расстояний
// @Tags Route
// @Produce json
// @Param mode query string true "driving, walking, bicycling"
// @Param from query string true "lat,lng;lat,lng"
// @Param to query string true "lat,lng;lat,lng"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/distance/matrix [get]
func (h *RouteHandler) Matrix(c *fiber.Ctx) error {
	started := time.Now()
	res, err := h.routeUC.Matrix(c.Context(), dto.MatrixRequest{
		Mode:    lbs.Mode(c.Query("mode")),
		From:    c.Query("from"),
		To:      c.Query("to"),
		Options: queryOptions(c, "mode", "from", "to"),
	})
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendLookup(c, res, started)
}
