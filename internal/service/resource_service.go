package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "fittrack/internal/errors"
	"fittrack/internal/model"
	"fittrack/internal/policy"
	"fittrack/internal/repository"
)

// ResourceService implements the shared lookup → authorize → persist skeleton
// for one owned record type. Workouts and meals are two instantiations of
// this single type.
type ResourceService[T any, PT model.Record[T]] struct {
	store    repository.OwnedStore[T, PT]
	name     string // display name used in 404 messages, e.g. "Workout"
	resource string // lowercase singular used in deny reasons
}

// NewResourceService creates a service for one owned record type.
func NewResourceService[T any, PT model.Record[T]](store repository.OwnedStore[T, PT], name string) *ResourceService[T, PT] {
	return &ResourceService[T, PT]{
		store:    store,
		name:     name,
		resource: strings.ToLower(name),
	}
}

// List returns the caller's records newest-first; admins see everyone's.
func (s *ResourceService[T, PT]) List(ctx context.Context, caller *model.User) ([]T, error) {
	recs, err := s.store.List(ctx, policy.ListScope(caller))
	if err != nil {
		return nil, fmt.Errorf("list %ss: %w", s.resource, err)
	}
	return recs, nil
}

// Get fetches one record by id.
func (s *ResourceService[T, PT]) Get(ctx context.Context, caller *model.User, id uuid.UUID) (PT, error) {
	return s.fetchAuthorized(ctx, caller, id, policy.OpAccess)
}

// Create persists a new record owned by the caller. An admin may assign a
// different owner; for everyone else requestedOwner is discarded.
func (s *ResourceService[T, PT]) Create(ctx context.Context, caller *model.User, rec PT, requestedOwner *uuid.UUID) error {
	rec.SetOwnerID(policy.ResolveOwner(caller, requestedOwner, caller.ID))
	if err := s.store.Create(ctx, rec); err != nil {
		return fmt.Errorf("create %s: %w", s.resource, err)
	}
	return nil
}

// Update replaces the record's mutable fields via apply and returns the
// stored result. A non-admin's requested owner is silently discarded; the
// rest of the update still goes through.
func (s *ResourceService[T, PT]) Update(ctx context.Context, caller *model.User, id uuid.UUID, requestedOwner *uuid.UUID, apply func(PT)) (PT, error) {
	var zero PT

	rec, err := s.fetchAuthorized(ctx, caller, id, policy.OpUpdate)
	if err != nil {
		return zero, err
	}

	apply(rec)
	rec.SetOwnerID(policy.ResolveOwner(caller, requestedOwner, rec.OwnerID()))

	if err := s.store.Save(ctx, rec); err != nil {
		return zero, fmt.Errorf("update %s: %w", s.resource, err)
	}
	return rec, nil
}

// Delete removes the record after the same lookup and ownership checks.
func (s *ResourceService[T, PT]) Delete(ctx context.Context, caller *model.User, id uuid.UUID) error {
	if _, err := s.fetchAuthorized(ctx, caller, id, policy.OpDelete); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete %s: %w", s.resource, err)
	}
	return nil
}

// fetchAuthorized loads the record and applies the ownership policy. The
// existence check runs first: an unknown id is always 404, never 403.
func (s *ResourceService[T, PT]) fetchAuthorized(ctx context.Context, caller *model.User, id uuid.UUID, op policy.Operation) (PT, error) {
	var zero PT

	rec, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, apperrors.NotFound(s.name)
		}
		return zero, fmt.Errorf("find %s: %w", s.resource, err)
	}

	if d := policy.Authorize(caller, rec.OwnerID(), op, s.resource); !d.Allowed {
		return zero, apperrors.Forbidden(d.Reason)
	}
	return rec, nil
}
