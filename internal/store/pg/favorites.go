package pg

import (
	"context"
	"database/sql"
	"errors"

	"maricoleta.org/internal/catalog"
)

func (s *Store) ListFavoritesByUser(ctx context.Context, userID string) ([]catalog.Favorite, error) {
	if s.db == nil {
		return nil, errors.New("database connection unavailable")
	}
	rows, err := s.db.QueryContext(ctx, `
		select user_id, collection_id, created_at
		from favorites
		where user_id = $1
		order by created_at desc
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favs []catalog.Favorite
	for rows.Next() {
		var f catalog.Favorite
		if err := rows.Scan(&f.UserID, &f.CollectionID, &f.CreatedAt); err != nil {
			return nil, err
		}
		favs = append(favs, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return favs, nil
}

func (s *Store) HasFavorite(ctx context.Context, userID, collectionID string) (bool, error) {
	if s.db == nil {
		return false, errors.New("database connection unavailable")
	}
	var one int
	err := s.db.QueryRowContext(ctx, `
		select 1 from favorites where user_id = $1 and collection_id = $2
	`, userID, collectionID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreateFavorite inserts the pair. A duplicate loses to the primary key and
// surfaces as ErrConflict so the service can treat it as a no-op; a missing
// user or collection surfaces as ErrNotFound.
func (s *Store) CreateFavorite(ctx context.Context, userID, collectionID string) (catalog.Favorite, error) {
	if s.db == nil {
		return catalog.Favorite{}, errors.New("database connection unavailable")
	}
	var f catalog.Favorite
	row := s.db.QueryRowContext(ctx, `
		insert into favorites (user_id, collection_id)
		values ($1, $2)
		returning user_id, collection_id, created_at
	`, userID, collectionID)
	if err := row.Scan(&f.UserID, &f.CollectionID, &f.CreatedAt); err != nil {
		return catalog.Favorite{}, mapConstraintError(err, catalog.ErrNotFound)
	}
	return f, nil
}

func (s *Store) DeleteFavorite(ctx context.Context, userID, collectionID string) error {
	if s.db == nil {
		return errors.New("database connection unavailable")
	}
	res, err := s.db.ExecContext(ctx, `
		delete from favorites where user_id = $1 and collection_id = $2
	`, userID, collectionID)
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

func (s *Store) CountFavoritesByUser(ctx context.Context, userID string) (int, error) {
	if s.db == nil {
		return 0, errors.New("database connection unavailable")
	}
	var count int
	err := s.db.QueryRowContext(ctx, `
		select count(*) from favorites where user_id = $1
	`, userID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
