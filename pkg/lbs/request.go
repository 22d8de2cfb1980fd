package lbs

import (
	"net/http"
	"net/url"
	"strings"
)

// Request - полностью собранный запрос, готовый к отправке.
// Создаётся на каждый вызов и не изменяется после передачи транспорту.
type Request struct {
	Method string
	// Path - путь вместе со строкой запроса (для GET)
	Path   string
	Form   url.Values
	Header http.Header
}

// BuildPath добавляет к path строку запроса. Приоритет при совпадении
// ключей (от низшего к высшему): параметры, уже записанные в path,
// params, ключ доступа.
func (c *Client) BuildPath(path string, params Params) (string, error) {
	base, rawQuery, _ := strings.Cut(path, "?")

	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return "", &ValidationError{Field: "path", Reason: "malformed query: " + err.Error()}
	}

	query, err = encode(query, params)
	if err != nil {
		return "", err
	}
	query.Set(KeyParam, c.key)

	return base + "?" + query.Encode(), nil
}

// NewRequest собирает дескриптор запроса. Для GET параметры и ключ
// уходят в строку запроса, для POST - в тело формы, а path не меняется.
func (c *Client) NewRequest(method, path string, params Params) (*Request, error) {
	header := c.headers.Clone()

	switch method {
	case http.MethodGet:
		full, err := c.BuildPath(path, params)
		if err != nil {
			return nil, err
		}
		return &Request{Method: method, Path: full, Header: header}, nil

	case http.MethodPost:
		form, err := encode(nil, params)
		if err != nil {
			return nil, err
		}
		form.Set(KeyParam, c.key)
		header.Set("Content-Type", "application/x-www-form-urlencoded")
		return &Request{Method: method, Path: path, Form: form, Header: header}, nil

	default:
		return nil, &ValidationError{Field: "method", Reason: "unsupported method " + method}
	}
}

// endpoint - путь без строки запроса, используется в логах и метриках
func (r *Request) endpoint() string {
	p, _, _ := strings.Cut(r.Path, "?")
	return p
}
