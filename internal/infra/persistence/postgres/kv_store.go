package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type kvStore struct {
	db *gorm.DB
}

// NewKVStore creates a KVStore backed by the client_state table
func NewKVStore(db *gorm.DB) repository.KVStore {
	return &kvStore{db: db}
}

// Get returns the value stored under key
func (s *kvStore) Get(ctx context.Context, key string) ([]byte, error) {
	var row model.ClientStateModel
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrKeyNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "select client_state %s", key)
	}

	return row.Value, nil
}

// Set upserts the value stored under key
func (s *kvStore) Set(ctx context.Context, key string, value []byte) error {
	row := model.ClientStateModel{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return errors.Wrapf(err, "upsert client_state %s", key)
	}

	return nil
}

// Delete removes key
func (s *kvStore) Delete(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Where("key = ?", key).Delete(&model.ClientStateModel{}).Error
	if err != nil {
		return errors.Wrapf(err, "delete client_state %s", key)
	}

	return nil
}

// Close is a no-op; the connection pool is closed by the fx lifecycle
func (s *kvStore) Close() error {
	return nil
}
