package lbs

import (
	"context"
	"errors"
	"net/http"
	"reflect"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator - ошибки полей называются по тегу param (имя параметра запроса)
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("param"); name != "" {
			return name
		}
		return f.Name
	})
	return v
}

// arg - именованный параметр эндпоинта
type arg struct {
	name  string
	value any
}

func named(name string, value any) arg {
	return arg{name: name, value: value}
}

// invoke проверяет именованные параметры и отправляет запрос.
// Опции вызывающей стороны не перекрывают именованные параметры.
func (c *Client) invoke(ctx context.Context, method, path string, opts Params, args ...arg) (*Envelope, error) {
	params := merge(opts)
	for _, a := range args {
		if err := validate.Var(a.value, "required"); err != nil {
			return nil, c.reject(path, missing(a.name))
		}
		params[a.name] = a.value
	}
	return c.call(ctx, method, path, params)
}

func (c *Client) get(ctx context.Context, path string, opts Params, args ...arg) (*Envelope, error) {
	return c.invoke(ctx, http.MethodGet, path, opts, args...)
}

func (c *Client) post(ctx context.Context, path string, opts Params, args ...arg) (*Envelope, error) {
	return c.invoke(ctx, http.MethodPost, path, opts, args...)
}

func (c *Client) reject(path string, err error) error {
	c.observe(path, err, 0)
	return err
}

// structError переводит ошибки validator в *ValidationError
func structError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &ValidationError{Field: fe.Field(), Reason: "failed rule " + fe.Tag()}
	}
	return &ValidationError{Reason: err.Error()}
}
