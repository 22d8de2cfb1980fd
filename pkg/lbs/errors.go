package lbs

import (
	"fmt"
)

// ValidationError - вызывающая сторона передала некорректные или неполные параметры.
// Возвращается до любого сетевого вызова.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "lbs: invalid request: " + e.Reason
	}
	return fmt.Sprintf("lbs: invalid parameter %q: %s", e.Field, e.Reason)
}

// TransportError - запрос не был выполнен: ошибка соединения, таймаут,
// отмена контекста или HTTP статус вне 2xx.
type TransportError struct {
	Op         string
	Path       string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("lbs: %s %s: unexpected http status %d", e.Op, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("lbs: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError - тело ответа не является JSON объектом с целочисленным status.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("lbs: decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ServiceError - сервис явно отклонил запрос (status != 0).
type ServiceError struct {
	Status    int
	Message   string
	RequestID string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("lbs: service status %d: %s", e.Status, e.Message)
}

func missing(field string) *ValidationError {
	return &ValidationError{Field: field, Reason: "is required"}
}
