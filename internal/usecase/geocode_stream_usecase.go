package usecase

import (
	"context"
	stdErrors "errors"

	"go.uber.org/zap"

	"github.com/lbs-gateway/internal/domain"
	"github.com/lbs-gateway/internal/pkg/errors"
	"github.com/lbs-gateway/internal/usecase/dto"
	"github.com/lbs-gateway/pkg/lbs"
)

// GeocodeStreamUseCase обрабатывает события геокодирования из стрима
type GeocodeStreamUseCase struct {
	geocoder *GeocoderUseCase
	logger   *zap.Logger
}

func NewGeocodeStreamUseCase(geocoder *GeocoderUseCase, logger *zap.Logger) *GeocodeStreamUseCase {
	return &GeocodeStreamUseCase{geocoder: geocoder, logger: logger}
}

// Process всегда возвращает событие-результат: ошибка запроса
// попадает в поля Status и Error, а не прерывает обработку
func (uc *GeocodeStreamUseCase) Process(ctx context.Context, event *domain.GeocodeRequestEvent) *domain.GeocodeDoneEvent {
	done := &domain.GeocodeDoneEvent{RequestID: event.RequestID}

	var (
		res *dto.LookupResult
		err error
	)
	switch {
	case event.IsReverse():
		res, err = uc.geocoder.Reverse(ctx, dto.ReverseGeocodeRequest{Location: event.Location, Options: event.Options})
	case event.Address != "":
		res, err = uc.geocoder.Geocode(ctx, dto.GeocodeRequest{Address: event.Address, Options: event.Options})
	default:
		err = errors.ErrInvalidRequest.WithMessage("address or location is required")
	}

	if err != nil {
		done.Status, done.Error = failure(err)
		uc.logger.Warn("Geocode request failed",
			zap.String("request_id", event.RequestID.String()),
			zap.Int("status", done.Status),
			zap.Error(err))
		return done
	}

	done.Status = 0
	done.Result = res.Data
	return done
}

// failure - статус сервиса для отказов сервиса, domain.StatusGatewayError для остальных ошибок
func failure(err error) (int, string) {
	var sErr *lbs.ServiceError
	if stdErrors.As(err, &sErr) {
		return sErr.Status, sErr.Message
	}
	return domain.StatusGatewayError, errors.FromLBS(err).Message
}
