package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fittrack/internal/model"
)

// OwnedStore is the persistence surface shared by every user-owned record
// type. One GORM-backed implementation serves both workouts and meals.
type OwnedStore[T any, PT model.Record[T]] interface {
	List(ctx context.Context, owner *uuid.UUID) ([]T, error)
	FindByID(ctx context.Context, id uuid.UUID) (PT, error)
	Create(ctx context.Context, rec PT) error
	Save(ctx context.Context, rec PT) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ownedRepository[T any, PT model.Record[T]] struct {
	db *gorm.DB
}

// NewOwnedRepository builds a GORM-backed store for one owned record type.
func NewOwnedRepository[T any, PT model.Record[T]](db *gorm.DB) OwnedStore[T, PT] {
	return &ownedRepository[T, PT]{db: db}
}

// List returns records newest-first, optionally restricted to one owner.
func (r *ownedRepository[T, PT]) List(ctx context.Context, owner *uuid.UUID) ([]T, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if owner != nil {
		q = q.Where("user_id = ?", *owner)
	}
	recs := make([]T, 0)
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *ownedRepository[T, PT]) FindByID(ctx context.Context, id uuid.UUID) (PT, error) {
	rec := PT(new(T))
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(rec).Error; err != nil {
		var zero PT
		return zero, err
	}
	return rec, nil
}

func (r *ownedRepository[T, PT]) Create(ctx context.Context, rec PT) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *ownedRepository[T, PT]) Save(ctx context.Context, rec PT) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *ownedRepository[T, PT]) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T)).Error
}
