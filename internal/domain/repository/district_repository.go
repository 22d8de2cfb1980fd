package repository

import (
	"context"

	"github.com/lbs-gateway/internal/domain"
)

// DistrictRepository - локальная копия административного деления
type DistrictRepository interface {
	// ReplaceAll заменяет справочник целиком в одной транзакции
	ReplaceAll(ctx context.Context, snapshot *domain.DistrictSnapshot) error

	// GetByID возвращает единицу по adcode, nil если не найдена
	GetByID(ctx context.Context, id string) (*domain.District, error)

	// GetChildren возвращает дочерние единицы; пустой parentID - провинции
	GetChildren(ctx context.Context, parentID string) ([]domain.District, error)

	// Search ищет по названию и пиньиню
	Search(ctx context.Context, keyword string, limit int) ([]domain.District, error)

	// DataVersion - версия данных последней синхронизации
	DataVersion(ctx context.Context) (string, error)
}
