package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"turnos/internal/domain/repository"
)

type storeHealth struct {
	db *gorm.DB
}

// NewStoreHealth exposes the main pool's liveness to the health endpoint.
func NewStoreHealth(db *gorm.DB) repository.StoreHealth {
	return &storeHealth{db: db}
}

func (s *storeHealth) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return errors.Wrap(err, "get sql.DB")
	}

	return errors.Wrap(sqlDB.PingContext(ctx), "ping main store")
}
