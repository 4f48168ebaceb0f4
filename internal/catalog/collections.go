package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// ListCollections returns all collections newest first without resolving
// owner, laboratory or vessel. This is the cheap path.
func (s *Service) ListCollections(ctx context.Context) ([]Collection, error) {
	return s.store.ListCollections(ctx)
}

// ListCollectionsWithDetails returns all collections enriched with owner,
// laboratory and vessel, assembled by the aggregator.
func (s *Service) ListCollectionsWithDetails(ctx context.Context) ([]CollectionDetails, error) {
	cols, err := s.store.ListCollections(ctx)
	if err != nil {
		return nil, err
	}
	return s.agg.CollectionsWithDetails(ctx, cols)
}

// ListCollectionsByOwner returns one owner's collections newest first.
func (s *Service) ListCollectionsByOwner(ctx context.Context, ownerID string) ([]Collection, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner_id is required", ErrInvalidInput)
	}
	return s.store.ListCollectionsByOwner(ctx, ownerID)
}

// ListCollectionsByOwnerWithDetails is the enriched owner-scoped listing
// used by the admin per-researcher drill-down.
func (s *Service) ListCollectionsByOwnerWithDetails(ctx context.Context, ownerID string) ([]CollectionDetails, error) {
	cols, err := s.ListCollectionsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.agg.CollectionsWithDetails(ctx, cols)
}

// GetCollection returns one collection or ErrNotFound.
func (s *Service) GetCollection(ctx context.Context, id string) (Collection, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Collection{}, fmt.Errorf("%w: collection_id is required", ErrInvalidInput)
	}
	return s.store.GetCollection(ctx, id)
}

// CreateCollection inserts a new observation. The owner id must already be
// the authenticated identity; it is never taken from client-controlled
// payload fields.
func (s *Service) CreateCollection(ctx context.Context, c NewCollection) (Collection, error) {
	c.OwnerUserID = strings.TrimSpace(c.OwnerUserID)
	if c.OwnerUserID == "" {
		return Collection{}, fmt.Errorf("%w: owner_user_id is required", ErrInvalidInput)
	}
	c.Date = strings.TrimSpace(c.Date)
	if c.Date == "" {
		return Collection{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if _, err := time.Parse("2006-01-02", c.Date); err != nil {
		return Collection{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	return s.store.CreateCollection(ctx, c)
}

// UpdateCollection applies patch unconditionally. Owner-or-admin gating is
// the API layer's job; keeping a single write path here avoids duplicated
// "self" and "admin" variants.
func (s *Service) UpdateCollection(ctx context.Context, id string, patch CollectionPatch) (Collection, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Collection{}, fmt.Errorf("%w: collection_id is required", ErrInvalidInput)
	}
	if patch.Date != nil {
		d := strings.TrimSpace(*patch.Date)
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return Collection{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
		}
		patch.Date = &d
	}
	return s.store.UpdateCollection(ctx, id, patch)
}

// DeleteCollection removes one collection, ErrNotFound when absent.
func (s *Service) DeleteCollection(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: collection_id is required", ErrInvalidInput)
	}
	return s.store.DeleteCollection(ctx, id)
}

// AdminUpdateCollection is the same unconditional write as UpdateCollection.
// It exists so admin-privileged call sites say so explicitly.
func (s *Service) AdminUpdateCollection(ctx context.Context, id string, patch CollectionPatch) (Collection, error) {
	return s.UpdateCollection(ctx, id, patch)
}

// AdminDeleteCollection is the admin-privileged alias of DeleteCollection.
func (s *Service) AdminDeleteCollection(ctx context.Context, id string) error {
	return s.DeleteCollection(ctx, id)
}
