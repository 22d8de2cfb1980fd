package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lbs-gateway/internal/pkg/utils"
	"github.com/lbs-gateway/internal/usecase"
	"github.com/lbs-gateway/internal/usecase/dto"
)

// PlaceHandler - поиск мест
type PlaceHandler struct {
	placeUC *usecase.PlaceUseCase
}

func NewPlaceHandler(placeUC *usecase.PlaceUseCase) *PlaceHandler {
	return &PlaceHandler{placeUC: placeUC}
}

// Search godoc
// @Summary Поиск мест по ключевому слову
// @Description Поиск в пределах boundary: region(город,0), nearby(lat,lng,радиус) или rectangle(...). Прочие параметры передаются сервису как есть.
// @Tags Place
// @Produce json
// @Param keyword query string true "Ключевое слово"
// @Param boundary query string true "Область поиска"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Failure 504 {object} utils.ErrorResponse
// @Router /api/v1/place/search [get]
func (h *PlaceHandler) Search(c *fiber.Ctx) error {
	started := time.Now()
	res, err := h.placeUC.Search(c.Context(), dto.PlaceSearchRequest{
		Keyword:  c.Query("keyword"),
		Boundary: c.Query("boundary"),
		Options:  queryOptions(c, "keyword", "boundary"),
	})
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendLookup(c, res, started)
}

// Explore godoc
// @Summary Места поблизости
// @Tags Place
// @Produce json
// @Param boundary query string true "nearby(lat,lng,радиус)"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/place/explore [get]
func (h *PlaceHandler) Explore(c *fiber.Ctx) error {
	started := time.Now()
	res, err := h.placeUC.Explore(c.Context(), dto.PlaceExploreRequest{
		Boundary: c.Query("boundary"),
		Options:  queryOptions(c, "boundary"),
	})
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendLookup(c, res, started)
}

// Detail godoc
// @Summary Детали места
// @Tags Place
// @Produce json
// @Param id path string true "ID места"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/place/{id} [get]
func (h *PlaceHandler) Detail(c *fiber.Ctx) error {
	started := time.Now()
	res, err := h.placeUC.Detail(c.Context(), dto.PlaceDetailRequest{
		ID:      c.Params("id"),
		Options: queryOptions(c),
	})
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendLookup(c, res, started)
}

// Suggestion godoc
// @Summary Подсказки при вводе
// @Tags Place
// @Produce json
// @Param keyword query string true "Начало запроса"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/place/suggestion [get]
func (h *PlaceHandler) Suggestion(c *fiber.Ctx) error {
	started := time.Now()
	res, err := h.placeUC.Suggestion(c.Context(), dto.SuggestionRequest{
		Keyword: c.Query("keyword"),
		Options: queryOptions(c, "keyword"),
	})
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendLookup(c, res, started)
}
