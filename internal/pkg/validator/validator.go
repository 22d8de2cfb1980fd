package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	apperrors "github.com/lbs-gateway/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// В ошибках используем имена полей из query/json тегов
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"query", "json"} {
			name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})

	// latlng - координата "lat,lng"
	_ = validate.RegisterValidation("latlng", func(fl validator.FieldLevel) bool {
		return isLatLng(fl.Field().String())
	})
}

// Validate - валидация структуры. Ошибки возвращаются как AppError INVALID_REQUEST
// с перечнем полей в details.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.ErrInvalidRequest.WithMessage(err.Error())
	}

	fields := make(map[string]interface{}, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return apperrors.ErrInvalidRequest.
		WithMessage(fmt.Sprintf("invalid field %s", verrs[0].Field())).
		WithDetails(fields)
}

func isLatLng(s string) bool {
	lat, lng, ok := strings.Cut(s, ",")
	if !ok {
		return false
	}
	return validate.Var(strings.TrimSpace(lat), "latitude") == nil &&
		validate.Var(strings.TrimSpace(lng), "longitude") == nil
}
