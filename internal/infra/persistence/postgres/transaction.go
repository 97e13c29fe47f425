// Package postgres stores the tourist catalogs and travel plans with GORM.
package postgres

import (
	"context"

	"tourist/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type txManager struct {
	db *gorm.DB
}

// txRepositories binds repositories to one open transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) NewTravelPlanRepository() repository.TravelPlanRepository {
	return NewTravelPlanRepository(r.tx)
}

func (r txRepositories) NewTouristPlaceRepository() repository.TouristPlaceRepository {
	return NewTouristPlaceRepository(r.tx)
}

// NewTransactionManager returns a TransactionManager over db.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &txManager{db: db}
}

// Execute commits when fn returns nil. An error or panic from fn rolls back and the
// error is returned unchanged.
func (m *txManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})
	if fnErr != nil {
		return fnErr
	}

	return errors.Wrap(err, "failed to run transaction")
}
