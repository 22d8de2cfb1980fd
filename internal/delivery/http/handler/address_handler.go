package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lbs-gateway/internal/pkg/utils"
	"github.com/lbs-gateway/internal/usecase"
	"github.com/lbs-gateway/internal/usecase/dto"
)

// AddressHandler - анализ адресов
type AddressHandler struct {
	addressUC *usecase.AddressUseCase
}

func NewAddressHandler(addressUC *usecase.AddressUseCase) *AddressHandler {
	return &AddressHandler{addressUC: addressUC}
}

func (h *AddressHandler) single(c *fiber.Ctx, call func(context.Context, dto.AddressRequest) (*dto.LookupResult, error)) error {
	started := time.Now()
	res, err := call(c.Context(), dto.AddressRequest{
		Address: c.Query("address"),
		Options: queryOptions(c, "address"),
	})
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendLookup(c, res, started)
}

// Truth godoc
// @Summary Проверка достоверности адреса
// @Tags Address
// @Produce json
// @Param address query string true "Адрес"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/address/truth [get]
func (h *AddressHandler) Truth(c *fiber.Ctx) error {
	return h.single(c, h.addressUC.Truth)
}

// Complete godoc
// @Summary Дополнение неполного адреса
// @Tags Address
// @Produce json
// @Param address query string true "Адрес"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/address/complete [get]
func (h *AddressHandler) Complete(c *fiber.Ctx) error {
	return h.single(c, h.addressUC.Complete)
}

// Abnormal godoc
// @Summary Поиск ошибок в адресе
// @Tags Address
// @Produce json
// @Param address query string true "Адрес"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/address/abnormal [get]
func (h *AddressHandler) Abnormal(c *fiber.Ctx) error {
	return h.single(c, h.addressUC.Abnormal)
}

// NameAddress godoc
// @Summary Сопоставление названия и адреса
// @Tags Address
// @Produce json
// @Param name query string true "Название"
// @Param address query string true "Адрес"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/address/name [get]
func (h *AddressHandler) NameAddress(c *fiber.Ctx) error {
	started := time.Now()
	res, err := h.addressUC.NameAddress(c.Context(), dto.NameAddressRequest{
		Name:    c.Query("name"),
		Address: c.Query("address"),
		Options: queryOptions(c, "name", "address"),
	})
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendLookup(c, res, started)
}

// Place godoc
// @Summary Анализ места по адресу или координате
// @Description Нужен address или location; если заданы оба, используется address.
// @Tags Address
// @Produce json
// @Param address query string false "Адрес"
// @Param location query string false "lat,lng"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/address/place [get]
func (h *AddressHandler) Place(c *fiber.Ctx) error {
	started := time.Now()
	res, err := h.addressUC.Place(c.Context(), dto.PlaceAnalysisRequest{
		Address:  c.Query("address"),
		Location: c.Query("location"),
		Options:  queryOptions(c, "address", "location"),
	})
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendLookup(c, res, started)
}
