package pg

import (
	"context"
	"errors"

	"maricoleta.org/internal/catalog"
)

// UserCollectionStats is the precomputed-aggregate path for the statistics
// view. The counting rules mirror the aggregator's raw-row fallback exactly:
// distinct non-blank trimmed scientific names, max created_at or null.
func (s *Store) UserCollectionStats(ctx context.Context, userID string) (catalog.UserStats, error) {
	if s.db == nil {
		return catalog.UserStats{}, errors.New("database connection unavailable")
	}
	var stats catalog.UserStats
	err := s.db.QueryRowContext(ctx, `
		select
			count(c.id),
			count(distinct nullif(btrim(c.scientific_name), '')),
			max(c.created_at),
			(select count(*) from favorites f where f.user_id = $1)
		from collections c
		where c.owner_user_id = $1
	`, userID).Scan(&stats.TotalCollections, &stats.UniqueSpecies, &stats.LastCollectionDate, &stats.TotalFavorites)
	if err != nil {
		return catalog.UserStats{}, err
	}
	return stats, nil
}
