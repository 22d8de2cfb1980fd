package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"github.com/lbs-gateway/internal/domain/repository"
	"github.com/lbs-gateway/internal/repository/postgres"
	"go.uber.org/zap"
)

// NewDistrictRepositoryForTest creates a district repository with test database and logger
func NewDistrictRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.DistrictRepository {
	return postgres.NewDistrictRepository(postgres.NewDBForTest(db, logger))
}
