package posgrest

import (
	"context"

	"gorm.io/gorm"
)

// repository is a generic GORM-based repository implementation.
// Entities are keyed by a string "id" column and carry a created_at timestamp.
type repository[T interface{}] struct {
	db *gorm.DB
}

// New creates a new generic repository instance for type T.
func New[T interface{}](db *gorm.DB) *repository[T] {
	return &repository[T]{
		db,
	}
}

// Create inserts a new entity into the database.
func (r *repository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// Save writes every column of the entity, inserting it when the primary key
// is unknown.
func (r *repository[T]) Save(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Save(entity).Error
}

// GetBy retrieves entities matching a condition, newest first.
func (r *repository[T]) GetBy(ctx context.Context, query string, value interface{}) ([]T, error) {
	var entities []T
	if err := r.db.WithContext(ctx).Where(query, value).Order("created_at desc").Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// FindLatest returns the most recently created entity matching a condition.
func (r *repository[T]) FindLatest(ctx context.Context, query string, value interface{}) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where(query, value).Order("created_at desc").First(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}
