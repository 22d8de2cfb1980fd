package validator

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/lbs-gateway/internal/pkg/errors"
)

type sample struct {
	Location string `query:"location" validate:"required,latlng"`
	Mode     string `json:"mode" validate:"omitempty,oneof=driving walking"`
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, Validate(&sample{Location: "39.984154,116.307490", Mode: "driving"}))
	})

	t.Run("invalid coordinate", func(t *testing.T) {
		err := Validate(&sample{Location: "139.9,116.3"})

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
		assert.Equal(t, "latlng", appErr.Details["location"])
	})

	t.Run("field names from tags", func(t *testing.T) {
		err := Validate(&sample{Location: "39.9,116.3", Mode: "flying"})

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "oneof", appErr.Details["mode"])
	})
}
