// Package store persists users, catalog entities and favorites through gorm.
package store

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a unique index.
	ErrDuplicate = errors.New("duplicate record")
)

// Store is the entity store. It wraps an injected *gorm.DB handle whose
// lifecycle belongs to the caller.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for bootstrap code (migrations, seeding).
func (s *Store) DB() *gorm.DB {
	return s.db
}

func translate(err error, op string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	}
	return errors.Wrap(err, op)
}

func get[T any](ctx context.Context, db *gorm.DB, op string, query any, args ...any) (*T, error) {
	var out T
	if err := db.WithContext(ctx).Where(query, args...).First(&out).Error; err != nil {
		return nil, translate(err, op)
	}
	return &out, nil
}

func list[T any](ctx context.Context, db *gorm.DB, op string) ([]T, error) {
	out := make([]T, 0)
	if err := db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, translate(err, op)
	}
	return out, nil
}

func create[T any](ctx context.Context, db *gorm.DB, op string, v *T) error {
	return translate(db.WithContext(ctx).Create(v).Error, op)
}

func remove[T any](ctx context.Context, db *gorm.DB, op string, v *T) error {
	res := db.WithContext(ctx).Delete(v)
	if res.Error != nil {
		return translate(res.Error, op)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
