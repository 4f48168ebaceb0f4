package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"maricoleta.org/internal/catalog"
	"maricoleta.org/internal/ids"
)

func (s *Store) CreateVessel(ctx context.Context, vesselType string, laboratoryID *string) (catalog.Vessel, error) {
	if s.db == nil {
		return catalog.Vessel{}, errors.New("database connection unavailable")
	}
	var v catalog.Vessel
	row := s.db.QueryRowContext(ctx, `
		insert into vessels (id, type, laboratory_id)
		values ($1, $2, $3)
		returning id, type, laboratory_id, created_at, updated_at
	`, ids.New(), vesselType, laboratoryID)
	if err := row.Scan(&v.ID, &v.Type, &v.LaboratoryID, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return catalog.Vessel{}, mapConstraintError(err, catalog.ErrNotFound)
	}
	return v, nil
}

func (s *Store) ListVessels(ctx context.Context) ([]catalog.VesselView, error) {
	if s.db == nil {
		return nil, errors.New("database connection unavailable")
	}
	rows, err := s.db.QueryContext(ctx, `
		select v.id, v.type, v.laboratory_id, v.created_at, v.updated_at, l.name
		from vessels v
		left join laboratories l on l.id = v.laboratory_id
		order by v.created_at desc
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vessels []catalog.VesselView
	for rows.Next() {
		var v catalog.VesselView
		if err := rows.Scan(&v.ID, &v.Type, &v.LaboratoryID, &v.CreatedAt, &v.UpdatedAt, &v.LaboratoryName); err != nil {
			return nil, err
		}
		vessels = append(vessels, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return vessels, nil
}

func (s *Store) GetVessel(ctx context.Context, id string) (catalog.Vessel, error) {
	if s.db == nil {
		return catalog.Vessel{}, errors.New("database connection unavailable")
	}
	var v catalog.Vessel
	err := s.db.QueryRowContext(ctx, `
		select id, type, laboratory_id, created_at, updated_at
		from vessels
		where id = $1
	`, id).Scan(&v.ID, &v.Type, &v.LaboratoryID, &v.CreatedAt, &v.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Vessel{}, catalog.ErrNotFound
	}
	if err != nil {
		return catalog.Vessel{}, err
	}
	return v, nil
}

func (s *Store) UpdateVessel(ctx context.Context, id string, patch catalog.VesselPatch) (catalog.Vessel, error) {
	if s.db == nil {
		return catalog.Vessel{}, errors.New("database connection unavailable")
	}

	var (
		setClauses []string
		args       []any
		idx        = 1
	)
	if patch.Type != nil {
		setClauses = append(setClauses, fmt.Sprintf("type = $%d", idx))
		args = append(args, *patch.Type)
		idx++
	}
	if patch.LaboratoryID != nil {
		setClauses = append(setClauses, fmt.Sprintf("laboratory_id = nullif($%d, '')", idx))
		args = append(args, *patch.LaboratoryID)
		idx++
	}
	if len(setClauses) == 0 {
		return s.GetVessel(ctx, id)
	}
	setClauses = append(setClauses, "updated_at = now()")
	query := fmt.Sprintf(`
		update vessels set %s where id = $%d
		returning id, type, laboratory_id, created_at, updated_at
	`, strings.Join(setClauses, ", "), idx)
	args = append(args, id)

	var v catalog.Vessel
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&v.ID, &v.Type, &v.LaboratoryID, &v.CreatedAt, &v.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Vessel{}, catalog.ErrNotFound
	}
	if err != nil {
		return catalog.Vessel{}, mapConstraintError(err, catalog.ErrNotFound)
	}
	return v, nil
}

// DeleteVessel restricts deletion while collections still reference the
// vessel; those surface as ErrConflict.
func (s *Store) DeleteVessel(ctx context.Context, id string) error {
	if s.db == nil {
		return errors.New("database connection unavailable")
	}
	res, err := s.db.ExecContext(ctx, `delete from vessels where id = $1`, id)
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

func (s *Store) VesselsByIDs(ctx context.Context, idList []string) ([]catalog.Vessel, error) {
	if s.db == nil {
		return nil, errors.New("database connection unavailable")
	}
	if len(idList) == 0 {
		return nil, nil
	}
	query := fmt.Sprintf(`
		select id, type, laboratory_id, created_at, updated_at
		from vessels
		where id in (%s)
	`, inPlaceholders(len(idList)))
	rows, err := s.db.QueryContext(ctx, query, idArgs(idList)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vessels []catalog.Vessel
	for rows.Next() {
		var v catalog.Vessel
		if err := rows.Scan(&v.ID, &v.Type, &v.LaboratoryID, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		vessels = append(vessels, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return vessels, nil
}
