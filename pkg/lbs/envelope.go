package lbs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

const (
	fieldStatus    = "status"
	fieldMessage   = "message"
	fieldResult    = "result"
	fieldRequestID = "request_id"
)

// Envelope - разобранный ответ сервиса вида {status, message, result}.
// Доступ к полям верхнего уровня идёт по ключу; содержимое result не
// валидируется и отдаётся как есть.
type Envelope struct {
	Status    int
	Message   string
	RequestID string

	raw    []byte
	fields map[string]json.RawMessage
}

// Decode разбирает тело ответа. Возвращает *DecodeError, если тело не JSON
// объект или в нём нет целочисленного status.
func Decode(body []byte) (*Envelope, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, &DecodeError{Err: errors.New("body is not a JSON object")}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, &DecodeError{Err: err}
	}

	rawStatus, ok := fields[fieldStatus]
	if !ok {
		return nil, &DecodeError{Err: errors.New("envelope has no status")}
	}

	env := &Envelope{raw: trimmed, fields: fields}
	if err := json.Unmarshal(rawStatus, &env.Status); err != nil {
		return nil, &DecodeError{Err: fmt.Errorf("status is not an integer: %w", err)}
	}

	// message и request_id необязательны; нестроковый message сохраняется как есть
	if m, ok := fields[fieldMessage]; ok {
		if err := json.Unmarshal(m, &env.Message); err != nil {
			env.Message = string(m)
		}
	}
	if id, ok := fields[fieldRequestID]; ok {
		_ = json.Unmarshal(id, &env.RequestID)
	}

	return env, nil
}

// OK сообщает, что сервис вернул status == 0.
func (e *Envelope) OK() bool {
	return e.Status == 0
}

// Has проверяет наличие ключа верхнего уровня.
func (e *Envelope) Has(key string) bool {
	_, ok := e.fields[key]
	return ok
}

// Get возвращает сырое значение ключа и false, если ключа нет.
func (e *Envelope) Get(key string) (json.RawMessage, bool) {
	v, ok := e.fields[key]
	return v, ok
}

// Lookup возвращает значение ключа как произвольную JSON структуру.
func (e *Envelope) Lookup(key string) (any, bool) {
	raw, ok := e.fields[key]
	if !ok {
		return nil, false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, false
	}
	return v, true
}

// Keys - отсортированный список ключей верхнего уровня.
func (e *Envelope) Keys() []string {
	keys := make([]string, 0, len(e.fields))
	for k := range e.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// RawResult возвращает поле result без разбора.
func (e *Envelope) RawResult() (json.RawMessage, error) {
	raw, ok := e.fields[fieldResult]
	if !ok {
		return nil, errors.New("lbs: envelope has no result")
	}
	return raw, nil
}

// Result возвращает поле result как map[string]any / []any.
func (e *Envelope) Result() (any, error) {
	var v any
	if err := e.DecodeResult(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// DecodeResult разбирает result в v.
func (e *Envelope) DecodeResult(v any) error {
	raw, err := e.RawResult()
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("lbs: decode result: %w", err)
	}
	return nil
}

// Bytes - исходное тело ответа.
func (e *Envelope) Bytes() []byte {
	return e.raw
}

func (e *Envelope) serviceError() *ServiceError {
	return &ServiceError{
		Status:    e.Status,
		Message:   e.Message,
		RequestID: e.RequestID,
	}
}
