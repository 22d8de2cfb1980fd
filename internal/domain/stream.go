package domain

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamGeocodeRequest = "stream:lbs:geocode"
	StreamGeocodeDone    = "stream:lbs:geocode:done"
)

// StatusGatewayError - статус результата, когда запрос не дошёл до сервиса
// или ответ не удалось разобрать
const StatusGatewayError = -1

// GeocodeRequestEvent - входящее событие на геокодирование.
// Задаётся address (прямое) или location (обратное геокодирование).
type GeocodeRequestEvent struct {
	RequestID uuid.UUID              `json:"request_id"`
	Address   string                 `json:"address,omitempty"`
	Location  string                 `json:"location,omitempty"`
	Options   map[string]interface{} `json:"options,omitempty"`
}

// IsReverse - обратное геокодирование по координате
func (e *GeocodeRequestEvent) IsReverse() bool {
	return e.Address == "" && e.Location != ""
}

// GeocodeDoneEvent - результат геокодирования
type GeocodeDoneEvent struct {
	RequestID uuid.UUID       `json:"request_id"`
	Status    int             `json:"status"`
	Result    json.RawMessage `json:"result,omitempty"`
	Error     string          `json:"error,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
