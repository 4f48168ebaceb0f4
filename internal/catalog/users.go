package catalog

import (
	"context"
	"fmt"
	"strings"
)

// ListResearchers returns every profile with its resolved role and
// laboratory name, newest first, excluding admins. The filter runs here
// rather than in SQL so the exclusion holds for any store.
func (s *Service) ListResearchers(ctx context.Context) ([]UserView, error) {
	users, err := s.store.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}
	researchers := make([]UserView, 0, len(users))
	for _, u := range users {
		if u.Role == RoleAdmin {
			continue
		}
		researchers = append(researchers, u)
	}
	return researchers, nil
}

// GetUser returns one profile with resolved role and laboratory name.
func (s *Service) GetUser(ctx context.Context, id string) (UserView, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return UserView{}, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	return s.store.GetUserView(ctx, id)
}

// UpdateProfile applies patch to the mutable profile fields and returns the
// refreshed view. Admin profiles can never be the target.
func (s *Service) UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (UserView, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return UserView{}, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return UserView{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
		}
		patch.Name = &name
	}
	if err := s.guardAdminTarget(ctx, id); err != nil {
		return UserView{}, err
	}
	if err := s.store.UpdateProfile(ctx, id, patch); err != nil {
		return UserView{}, err
	}
	return s.store.GetUserView(ctx, id)
}

// UpdateRole replaces the target's role with a single upsert keyed on the
// user id, so a concurrent read never observes a missing role row mid-way.
func (s *Service) UpdateRole(ctx context.Context, id string, newRole Role) (UserView, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return UserView{}, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	if _, err := ParseRole(string(newRole)); err != nil {
		return UserView{}, err
	}
	if err := s.guardAdminTarget(ctx, id); err != nil {
		return UserView{}, err
	}
	if err := s.store.UpsertRole(ctx, id, newRole); err != nil {
		return UserView{}, err
	}
	return s.store.GetUserView(ctx, id)
}

// UpdateStatus activates or deactivates an account. Deactivation is a soft
// flag, not a deletion.
func (s *Service) UpdateStatus(ctx context.Context, id string, active bool) (UserView, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return UserView{}, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	if err := s.guardAdminTarget(ctx, id); err != nil {
		return UserView{}, err
	}
	if err := s.store.UpdateProfileStatus(ctx, id, active); err != nil {
		return UserView{}, err
	}
	return s.store.GetUserView(ctx, id)
}

// guardAdminTarget rejects any mutation whose target currently resolves to
// admin. The check runs before the store write so a refused call leaves
// stored state untouched.
func (s *Service) guardAdminTarget(ctx context.Context, userID string) error {
	role, err := s.roles.Resolve(ctx, userID)
	if err != nil {
		return err
	}
	if role == RoleAdmin {
		return fmt.Errorf("%w: admin users cannot be modified", ErrForbidden)
	}
	return nil
}
