package utils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lbs-gateway/internal/pkg/errors"
)

type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

type Meta struct {
	RequestID string  `json:"request_id,omitempty"`
	Cached    bool    `json:"cached,omitempty"`
	Source    string  `json:"source,omitempty"`
	Total     int     `json:"total,omitempty"`
	TimeMSec  float64 `json:"time_ms,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

// SendError отдаёт ошибку в едином формате; ошибки клиента сервиса
// геолокации переводятся в AppError
func SendError(c *fiber.Ctx, err error) error {
	appErr := errors.FromLBS(err)
	return c.Status(appErr.StatusCode).JSON(ErrorResponse{
		Error: appErr,
	})
}
