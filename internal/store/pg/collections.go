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

const collectionColumns = `
	id, date, location, scientific_name, common_name, length, weight,
	temperature, salinity, ph, dissolved_oxygen, turbidity, depth, notes,
	photo_1, photo_2, photo_3, vessel_id, owner_user_id, created_at, updated_at
`

func scanCollection(scan func(...any) error) (catalog.Collection, error) {
	var c catalog.Collection
	err := scan(
		&c.ID, &c.Date, &c.Location, &c.ScientificName, &c.CommonName,
		&c.Length, &c.Weight, &c.Temperature, &c.Salinity, &c.PH,
		&c.DissolvedOxygen, &c.Turbidity, &c.Depth, &c.Notes,
		&c.Photo1, &c.Photo2, &c.Photo3, &c.VesselID, &c.OwnerUserID,
		&c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (s *Store) CreateCollection(ctx context.Context, n catalog.NewCollection) (catalog.Collection, error) {
	if s.db == nil {
		return catalog.Collection{}, errors.New("database connection unavailable")
	}
	row := s.db.QueryRowContext(ctx, `
		insert into collections (
			id, date, location, scientific_name, common_name, length, weight,
			temperature, salinity, ph, dissolved_oxygen, turbidity, depth,
			notes, photo_1, photo_2, photo_3, vessel_id, owner_user_id
		)
		values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		returning `+collectionColumns+`
	`, ids.New(), n.Date, n.Location, n.ScientificName, n.CommonName, n.Length,
		n.Weight, n.Temperature, n.Salinity, n.PH, n.DissolvedOxygen,
		n.Turbidity, n.Depth, n.Notes, n.Photo1, n.Photo2, n.Photo3,
		n.VesselID, n.OwnerUserID)
	c, err := scanCollection(row.Scan)
	if err != nil {
		return catalog.Collection{}, mapConstraintError(err, catalog.ErrNotFound)
	}
	return c, nil
}

func (s *Store) ListCollections(ctx context.Context) ([]catalog.Collection, error) {
	if s.db == nil {
		return nil, errors.New("database connection unavailable")
	}
	return s.queryCollections(ctx, `
		select `+collectionColumns+`
		from collections
		order by created_at desc
	`)
}

func (s *Store) ListCollectionsByOwner(ctx context.Context, ownerID string) ([]catalog.Collection, error) {
	if s.db == nil {
		return nil, errors.New("database connection unavailable")
	}
	return s.queryCollections(ctx, `
		select `+collectionColumns+`
		from collections
		where owner_user_id = $1
		order by created_at desc
	`, ownerID)
}

func (s *Store) GetCollection(ctx context.Context, id string) (catalog.Collection, error) {
	if s.db == nil {
		return catalog.Collection{}, errors.New("database connection unavailable")
	}
	row := s.db.QueryRowContext(ctx, `
		select `+collectionColumns+`
		from collections
		where id = $1
	`, id)
	c, err := scanCollection(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Collection{}, catalog.ErrNotFound
	}
	if err != nil {
		return catalog.Collection{}, err
	}
	return c, nil
}

func (s *Store) UpdateCollection(ctx context.Context, id string, patch catalog.CollectionPatch) (catalog.Collection, error) {
	if s.db == nil {
		return catalog.Collection{}, errors.New("database connection unavailable")
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
	if patch.Date != nil {
		appendSet("date", *patch.Date)
	}
	if patch.Location != nil {
		appendSet("location", *patch.Location)
	}
	if patch.ScientificName != nil {
		appendSet("scientific_name", *patch.ScientificName)
	}
	if patch.CommonName != nil {
		appendSet("common_name", *patch.CommonName)
	}
	if patch.Length != nil {
		appendSet("length", *patch.Length)
	}
	if patch.Weight != nil {
		appendSet("weight", *patch.Weight)
	}
	if patch.Temperature != nil {
		appendSet("temperature", *patch.Temperature)
	}
	if patch.Salinity != nil {
		appendSet("salinity", *patch.Salinity)
	}
	if patch.PH != nil {
		appendSet("ph", *patch.PH)
	}
	if patch.DissolvedOxygen != nil {
		appendSet("dissolved_oxygen", *patch.DissolvedOxygen)
	}
	if patch.Turbidity != nil {
		appendSet("turbidity", *patch.Turbidity)
	}
	if patch.Depth != nil {
		appendSet("depth", *patch.Depth)
	}
	if patch.Notes != nil {
		appendSet("notes", *patch.Notes)
	}
	if patch.Photo1 != nil {
		appendSet("photo_1", *patch.Photo1)
	}
	if patch.Photo2 != nil {
		appendSet("photo_2", *patch.Photo2)
	}
	if patch.Photo3 != nil {
		appendSet("photo_3", *patch.Photo3)
	}
	if patch.VesselID != nil {
		setClauses = append(setClauses, fmt.Sprintf("vessel_id = nullif($%d, '')", idx))
		args = append(args, *patch.VesselID)
		idx++
	}
	if len(setClauses) == 0 {
		return s.GetCollection(ctx, id)
	}
	setClauses = append(setClauses, "updated_at = now()")
	query := fmt.Sprintf(`
		update collections set %s where id = $%d
		returning `+collectionColumns+`
	`, strings.Join(setClauses, ", "), idx)
	args = append(args, id)

	row := s.db.QueryRowContext(ctx, query, args...)
	c, err := scanCollection(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return catalog.Collection{}, catalog.ErrNotFound
	}
	if err != nil {
		return catalog.Collection{}, mapConstraintError(err, catalog.ErrNotFound)
	}
	return c, nil
}

func (s *Store) DeleteCollection(ctx context.Context, id string) error {
	if s.db == nil {
		return errors.New("database connection unavailable")
	}
	res, err := s.db.ExecContext(ctx, `delete from collections where id = $1`, id)
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

func (s *Store) queryCollections(ctx context.Context, query string, args ...any) ([]catalog.Collection, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cols []catalog.Collection
	for rows.Next() {
		c, err := scanCollection(rows.Scan)
		if err != nil {
			return nil, err
		}
		cols = append(cols, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cols, nil
}
