package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"maricoleta.org/internal/catalog"
)

const userViewColumns = `
	p.id, p.name, p.email, p.description, p."position", p.active,
	p.photo_url, p.laboratory_id, p.created_at, p.updated_at,
	coalesce(r.role, 'researcher'), l.name
`

func scanUserView(scan func(...any) error) (catalog.UserView, error) {
	var (
		u    catalog.UserView
		role string
	)
	err := scan(
		&u.ID, &u.Name, &u.Email, &u.Description, &u.Position, &u.Active,
		&u.PhotoURL, &u.LaboratoryID, &u.CreatedAt, &u.UpdatedAt,
		&role, &u.LaboratoryName,
	)
	if err != nil {
		return catalog.UserView{}, err
	}
	u.Role = catalog.Role(role)
	return u, nil
}

func (s *Store) ListProfiles(ctx context.Context) ([]catalog.UserView, error) {
	if s.db == nil {
		return nil, errors.New("database connection unavailable")
	}
	rows, err := s.db.QueryContext(ctx, `
		select `+userViewColumns+`
		from profiles p
		left join user_roles r on r.user_id = p.id
		left join laboratories l on l.id = p.laboratory_id
		order by p.created_at desc
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []catalog.UserView
	for rows.Next() {
		u, err := scanUserView(rows.Scan)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) GetUserView(ctx context.Context, id string) (catalog.UserView, error) {
	if s.db == nil {
		return catalog.UserView{}, errors.New("database connection unavailable")
	}
	row := s.db.QueryRowContext(ctx, `
		select `+userViewColumns+`
		from profiles p
		left join user_roles r on r.user_id = p.id
		left join laboratories l on l.id = p.laboratory_id
		where p.id = $1
	`, id)
	u, err := scanUserView(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.UserView{}, catalog.ErrNotFound
	}
	if err != nil {
		return catalog.UserView{}, err
	}
	return u, nil
}

func (s *Store) UpdateProfile(ctx context.Context, id string, patch catalog.ProfilePatch) error {
	if s.db == nil {
		return errors.New("database connection unavailable")
	}

	var (
		setClauses []string
		args       []any
		idx        = 1
	)
	appendSet := func(column string, value any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}
	if patch.Name != nil {
		appendSet("name", *patch.Name)
	}
	if patch.Description != nil {
		appendSet("description", *patch.Description)
	}
	if patch.Position != nil {
		appendSet(`"position"`, *patch.Position)
	}
	if patch.PhotoURL != nil {
		appendSet("photo_url", *patch.PhotoURL)
	}
	if len(setClauses) == 0 {
		return s.profileExists(ctx, id)
	}
	setClauses = append(setClauses, "updated_at = now()")
	query := fmt.Sprintf(`update profiles set %s where id = $%d`, strings.Join(setClauses, ", "), idx)
	args = append(args, id)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if aff == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (s *Store) UpdateProfileStatus(ctx context.Context, id string, active bool) error {
	if s.db == nil {
		return errors.New("database connection unavailable")
	}
	res, err := s.db.ExecContext(ctx, `
		update profiles set active = $2, updated_at = now() where id = $1
	`, id, active)
	if err != nil {
		return err
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if aff == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (s *Store) ProfilesByIDs(ctx context.Context, idList []string) ([]catalog.Profile, error) {
	if s.db == nil {
		return nil, errors.New("database connection unavailable")
	}
	if len(idList) == 0 {
		return nil, nil
	}
	query := fmt.Sprintf(`
		select id, name, email, description, "position", active,
		       photo_url, laboratory_id, created_at, updated_at
		from profiles
		where id in (%s)
	`, inPlaceholders(len(idList)))
	rows, err := s.db.QueryContext(ctx, query, idArgs(idList)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []catalog.Profile
	for rows.Next() {
		var p catalog.Profile
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Email, &p.Description, &p.Position, &p.Active,
			&p.PhotoURL, &p.LaboratoryID, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (s *Store) profileExists(ctx context.Context, id string) error {
	var one int
	err := s.db.QueryRowContext(ctx, `select 1 from profiles where id = $1`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.ErrNotFound
	}
	return err
}
