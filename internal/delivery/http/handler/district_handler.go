package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lbs-gateway/internal/pkg/utils"
	"github.com/lbs-gateway/internal/usecase"
	"github.com/lbs-gateway/internal/usecase/dto"
)

// DistrictHandler - административное деление
type DistrictHandler struct {
	districtUC *usecase.DistrictUseCase
}

func NewDistrictHandler(districtUC *usecase.DistrictUseCase) *DistrictHandler {
	return &DistrictHandler{districtUC: districtUC}
}

// List godoc
// @Summary Список провинций
// @Description Без дополнительных параметров отдаётся из локального справочника, если он загружен.
// @Tags District
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.DistrictResponse}
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/district [get]
func (h *DistrictHandler) List(c *fiber.Ctx) error {
	started := time.Now()
	res, err := h.districtUC.List(c.Context(), queryOptions(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendLookup(c, res, started)
}

// Get godoc
// @Summary Административная единица из локального справочника
// @Tags District
// @Produce json
// @Param id path string true "adcode"
// @Success 200 {object} utils.SuccessResponse{data=domain.District}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/district/{id} [get]
func (h *DistrictHandler) Get(c *fiber.Ctx) error {
	d, err := h.districtUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, d, &utils.Meta{Source: dto.SourceDatabase})
}

// Children godoc
// @Summary Дочерние административные единицы
// @Tags District
// @Produce json
// @Param id path string true "adcode"
// @Success 200 {object} utils.SuccessResponse{data=dto.DistrictResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/district/{id}/children [get]
func (h *DistrictHandler) Children(c *fiber.Ctx) error {
	started := time.Now()
	res, err := h.districtUC.Children(c.Context(), dto.DistrictChildrenRequest{
		ID:      c.Params("id"),
		Options: queryOptions(c),
	})
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendLookup(c, res, started)
}

// Search godoc
// @Summary Поиск административной единицы
// @Tags District
// @Produce json
// @Param keyword query string true "Название или пиньинь"
// @Param limit query int false "Максимум результатов из справочника" default(20)
// @Success 200 {object} utils.SuccessResponse{data=dto.DistrictResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/district/search [get]
func (h *DistrictHandler) Search(c *fiber.Ctx) error {
	started := time.Now()
	res, err := h.districtUC.Search(c.Context(), dto.DistrictSearchRequest{
		Keyword: c.Query("keyword"),
		Limit:   c.QueryInt("limit"),
		Options: queryOptions(c, "keyword", "limit"),
	})
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendLookup(c, res, started)
}
