package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Role is the effective permission level of a user.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleResearcher Role = "researcher"
)

// ParseRole validates the two-value role enum.
func ParseRole(v string) (Role, error) {
	switch Role(strings.TrimSpace(strings.ToLower(v))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleResearcher:
		return RoleResearcher, nil
	default:
		return "", fmt.Errorf("%w: role must be %q or %q", ErrInvalidInput, RoleAdmin, RoleResearcher)
	}
}

// RoleStore is the slice of persistence the resolver needs.
type RoleStore interface {
	RoleForUser(ctx context.Context, userID string) (Role, error)
}

// Resolver centralizes the "absent row means researcher" default so every
// consumer shares one definition of the effective role.
type Resolver struct {
	store RoleStore
}

func NewResolver(store RoleStore) *Resolver {
	return &Resolver{store: store}
}

// Resolve returns the stored role for userID, or RoleResearcher when no role
// row exists. A missing row is the expected default path, not an error; only
// store failures propagate.
func (r *Resolver) Resolve(ctx context.Context, userID string) (Role, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	role, err := r.store.RoleForUser(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return RoleResearcher, nil
	}
	if err != nil {
		return "", err
	}
	return role, nil
}
