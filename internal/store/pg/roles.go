package pg

import (
	"context"
	"database/sql"
	"errors"

	"maricoleta.org/internal/catalog"
	"maricoleta.org/internal/ids"
)

func (s *Store) RoleForUser(ctx context.Context, userID string) (catalog.Role, error) {
	if s.db == nil {
		return "", errors.New("database connection unavailable")
	}
	var role string
	err := s.db.QueryRowContext(ctx, `
		select role from user_roles where user_id = $1
	`, userID).Scan(&role)
	if errors.Is(err, sql.ErrNoRows) {
		return "", catalog.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return catalog.Role(role), nil
}

// UpsertRole replaces the user's role atomically, keyed on user_id. A
// concurrent reader sees either the old or the new role, never an absent
// row.
func (s *Store) UpsertRole(ctx context.Context, userID string, role catalog.Role) error {
	if s.db == nil {
		return errors.New("database connection unavailable")
	}
	_, err := s.db.ExecContext(ctx, `
		insert into user_roles (id, user_id, role)
		values ($1, $2, $3)
		on conflict (user_id) do update set role = excluded.role
	`, ids.New(), userID, string(role))
	if err != nil {
		return mapConstraintError(err, catalog.ErrNotFound)
	}
	return nil
}
