package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ListFavoritesByUser returns the user's favorites, newest first.
func (s *Service) ListFavoritesByUser(ctx context.Context, userID string) ([]Favorite, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	return s.store.ListFavoritesByUser(ctx, userID)
}

// CheckFavorite reports whether the pair exists.
func (s *Service) CheckFavorite(ctx context.Context, userID, collectionID string) (bool, error) {
	userID = strings.TrimSpace(userID)
	collectionID = strings.TrimSpace(collectionID)
	if userID == "" || collectionID == "" {
		return false, fmt.Errorf("%w: user_id and collection_id are required", ErrInvalidInput)
	}
	return s.store.HasFavorite(ctx, userID, collectionID)
}

// CreateFavorite marks a collection as favorited. Creation is idempotent:
// when the pair already exists, including the case where a concurrent call
// won the race at the uniqueness constraint, the existing favorite is
// returned instead of an error.
func (s *Service) CreateFavorite(ctx context.Context, userID, collectionID string) (Favorite, error) {
	userID = strings.TrimSpace(userID)
	collectionID = strings.TrimSpace(collectionID)
	if userID == "" || collectionID == "" {
		return Favorite{}, fmt.Errorf("%w: user_id and collection_id are required", ErrInvalidInput)
	}
	fav, err := s.store.CreateFavorite(ctx, userID, collectionID)
	if errors.Is(err, ErrConflict) {
		return Favorite{UserID: userID, CollectionID: collectionID}, nil
	}
	if err != nil {
		return Favorite{}, err
	}
	return fav, nil
}

// DeleteFavorite removes the pair, ErrNotFound when it was never present.
func (s *Service) DeleteFavorite(ctx context.Context, userID, collectionID string) error {
	userID = strings.TrimSpace(userID)
	collectionID = strings.TrimSpace(collectionID)
	if userID == "" || collectionID == "" {
		return fmt.Errorf("%w: user_id and collection_id are required", ErrInvalidInput)
	}
	return s.store.DeleteFavorite(ctx, userID, collectionID)
}
