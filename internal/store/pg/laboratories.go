package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"maricoleta.org/internal/catalog"
	"maricoleta.org/internal/ids"
)

func (s *Store) CreateLaboratory(ctx context.Context, name string) (catalog.Laboratory, error) {
	if s.db == nil {
		return catalog.Laboratory{}, errors.New("database connection unavailable")
	}
	var lab catalog.Laboratory
	row := s.db.QueryRowContext(ctx, `
		insert into laboratories (id, name)
		values ($1, $2)
		returning id, name, created_at, updated_at
	`, ids.New(), name)
	if err := row.Scan(&lab.ID, &lab.Name, &lab.CreatedAt, &lab.UpdatedAt); err != nil {
		return catalog.Laboratory{}, mapConstraintError(err, catalog.ErrNotFound)
	}
	return lab, nil
}

func (s *Store) ListLaboratories(ctx context.Context) ([]catalog.Laboratory, error) {
	if s.db == nil {
		return nil, errors.New("database connection unavailable")
	}
	rows, err := s.db.QueryContext(ctx, `
		select id, name, created_at, updated_at
		from laboratories
		order by name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var labs []catalog.Laboratory
	for rows.Next() {
		var lab catalog.Laboratory
		if err := rows.Scan(&lab.ID, &lab.Name, &lab.CreatedAt, &lab.UpdatedAt); err != nil {
			return nil, err
		}
		labs = append(labs, lab)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return labs, nil
}

func (s *Store) GetLaboratory(ctx context.Context, id string) (catalog.Laboratory, error) {
	if s.db == nil {
		return catalog.Laboratory{}, errors.New("database connection unavailable")
	}
	var lab catalog.Laboratory
	err := s.db.QueryRowContext(ctx, `
		select id, name, created_at, updated_at
		from laboratories
		where id = $1
	`, id).Scan(&lab.ID, &lab.Name, &lab.CreatedAt, &lab.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Laboratory{}, catalog.ErrNotFound
	}
	if err != nil {
		return catalog.Laboratory{}, err
	}
	return lab, nil
}

func (s *Store) UpdateLaboratory(ctx context.Context, id, name string) (catalog.Laboratory, error) {
	if s.db == nil {
		return catalog.Laboratory{}, errors.New("database connection unavailable")
	}
	var lab catalog.Laboratory
	err := s.db.QueryRowContext(ctx, `
		update laboratories set name = $2, updated_at = now()
		where id = $1
		returning id, name, created_at, updated_at
	`, id, name).Scan(&lab.ID, &lab.Name, &lab.CreatedAt, &lab.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Laboratory{}, catalog.ErrNotFound
	}
	if err != nil {
		return catalog.Laboratory{}, mapConstraintError(err, catalog.ErrNotFound)
	}
	return lab, nil
}

// DeleteLaboratory restricts deletion of referenced laboratories: the
// foreign keys from vessels and profiles surface as ErrConflict.
func (s *Store) DeleteLaboratory(ctx context.Context, id string) error {
	if s.db == nil {
		return errors.New("database connection unavailable")
	}
	res, err := s.db.ExecContext(ctx, `delete from laboratories where id = $1`, id)
	if err != nil {
		return mapConstraintError(err, catalog.ErrConflict)
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

func (s *Store) LaboratoriesByIDs(ctx context.Context, idList []string) ([]catalog.Laboratory, error) {
	if s.db == nil {
		return nil, errors.New("database connection unavailable")
	}
	if len(idList) == 0 {
		return nil, nil
	}
	query := fmt.Sprintf(`
		select id, name, created_at, updated_at
		from laboratories
		where id in (%s)
	`, inPlaceholders(len(idList)))
	rows, err := s.db.QueryContext(ctx, query, idArgs(idList)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var labs []catalog.Laboratory
	for rows.Next() {
		var lab catalog.Laboratory
		if err := rows.Scan(&lab.ID, &lab.Name, &lab.CreatedAt, &lab.UpdatedAt); err != nil {
			return nil, err
		}
		labs = append(labs, lab)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return labs, nil
}
