package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/lbs-gateway/pkg/lbs"
)

type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

// WithDetails возвращает копию ошибки с деталями, исходное значение не меняется
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

// WithMessage возвращает копию ошибки с другим сообщением
func (e *AppError) WithMessage(message string) *AppError {
	cp := *e
	cp.Message = message
	return &cp
}

// FromLBS переводит ошибки клиента сервиса геолокации в AppError.
// Неизвестные ошибки становятся ErrInternalServer.
func FromLBS(err error) *AppError {
	if err == nil {
		return nil
	}

	var (
		appErr        *AppError
		validationErr *lbs.ValidationError
		serviceErr    *lbs.ServiceError
		transportErr  *lbs.TransportError
		decodeErr     *lbs.DecodeError
	)

	switch {
	case stderrors.As(err, &appErr):
		return appErr
	case stderrors.As(err, &validationErr):
		return ErrInvalidRequest.WithMessage(validationErr.Error()).WithDetails(map[string]interface{}{
			"field": validationErr.Field,
		})
	case stderrors.As(err, &serviceErr):
		return ErrUpstreamRejected.WithMessage(serviceErr.Message).WithDetails(map[string]interface{}{
			"upstream_status": serviceErr.Status,
			"request_id":      serviceErr.RequestID,
		})
	case stderrors.As(err, &transportErr):
		details := map[string]interface{}{"endpoint": transportErr.Path}
		if transportErr.StatusCode != 0 {
			details["http_status"] = transportErr.StatusCode
		}
		return ErrUpstreamUnavailable.WithDetails(details)
	case stderrors.As(err, &decodeErr):
		return ErrUpstreamBadResponse
	default:
		return ErrInternalServer
	}
}

// StatusOf возвращает HTTP статус для ошибки
func StatusOf(err error) int {
	if appErr := FromLBS(err); appErr != nil {
		return appErr.StatusCode
	}
	return http.StatusOK
}
