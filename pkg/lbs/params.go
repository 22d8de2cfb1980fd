package lbs

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Params - параметры запроса. Значения должны быть скалярами:
// строки, целые и дробные числа, bool или fmt.Stringer. nil пропускается.
type Params map[string]any

// LatLng - координата в формате сервиса "lat,lng"
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (p LatLng) String() string {
	return formatFloat(p.Lat) + "," + formatFloat(p.Lng)
}

// JoinLocations склеивает координаты через ";" как того требуют
// coord/translate и distance/matrix.
func JoinLocations(points []LatLng) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = p.String()
	}
	return strings.Join(parts, ";")
}

// merge накладывает наборы параметров слева направо: последующие
// перезаписывают предыдущие при совпадении ключей.
func merge(sets ...Params) Params {
	n := 0
	for _, s := range sets {
		n += len(s)
	}
	out := make(Params, n)
	for _, s := range sets {
		for k, v := range s {
			out[k] = v
		}
	}
	return out
}

// encode переводит параметры в url.Values поверх base.
func encode(base url.Values, params Params) (url.Values, error) {
	if base == nil {
		base = url.Values{}
	}
	for k, v := range params {
		if k == "" {
			return nil, &ValidationError{Reason: "empty parameter name"}
		}
		if v == nil {
			continue
		}
		s, err := scalar(v)
		if err != nil {
			return nil, &ValidationError{Field: k, Reason: err.Error()}
		}
		base.Set(k, s)
	}
	return base, nil
}

func scalar(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case bool:
		if t {
			return "1", nil
		}
		return "0", nil
	case float64:
		return formatFloat(t), nil
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), nil
	case fmt.Stringer:
		return t.String(), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return cast.ToStringE(t)
	}

	// именованные типы (Mode и т.п.) приводятся по базовому виду
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return scalar(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), nil
	case reflect.Float64:
		return formatFloat(rv.Float()), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Encode возвращает параметры в каноническом виде query-строки:
// ключи отсортированы, значения закодированы так же, как в запросе.
func (p Params) Encode() (string, error) {
	values, err := encode(nil, p)
	if err != nil {
		return "", err
	}
	return values.Encode(), nil
}
