package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// AggregateStore is the slice of persistence the aggregator needs: batched
// lookups by id set plus the raw rows backing the statistics fallback.
type AggregateStore interface {
	ProfilesByIDs(ctx context.Context, ids []string) ([]Profile, error)
	VesselsByIDs(ctx context.Context, ids []string) ([]Vessel, error)
	LaboratoriesByIDs(ctx context.Context, ids []string) ([]Laboratory, error)
	ListCollectionsByOwner(ctx context.Context, ownerID string) ([]Collection, error)
	CountFavoritesByUser(ctx context.Context, userID string) (int, error)
}

// Aggregator builds denormalized views and per-user statistics without
// store-side joins, for deployments where only simple filtered selects are
// available. Query count stays bounded at three round trips regardless of
// row count; the referenced parent rows are materialized in memory instead.
type Aggregator struct {
	store AggregateStore
}

func NewAggregator(store AggregateStore) *Aggregator {
	return &Aggregator{store: store}
}

// CollectionsWithDetails stitches each collection to its owner profile, the
// owner's laboratory and the vessel. Missing foreign keys resolve to nil
// sub-views, never to an error. Empty input performs no store calls.
func (a *Aggregator) CollectionsWithDetails(ctx context.Context, cols []Collection) ([]CollectionDetails, error) {
	if len(cols) == 0 {
		return []CollectionDetails{}, nil
	}

	ownerIDs := make([]string, 0, len(cols))
	vesselIDs := make([]string, 0, len(cols))
	seenOwner := make(map[string]struct{}, len(cols))
	seenVessel := make(map[string]struct{})
	for _, c := range cols {
		if _, ok := seenOwner[c.OwnerUserID]; !ok {
			seenOwner[c.OwnerUserID] = struct{}{}
			ownerIDs = append(ownerIDs, c.OwnerUserID)
		}
		if c.VesselID != nil {
			if _, ok := seenVessel[*c.VesselID]; !ok {
				seenVessel[*c.VesselID] = struct{}{}
				vesselIDs = append(vesselIDs, *c.VesselID)
			}
		}
	}

	profiles, err := a.store.ProfilesByIDs(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}
	byOwner := make(map[string]Profile, len(profiles))
	labIDs := make([]string, 0, len(profiles))
	seenLab := make(map[string]struct{})
	for _, p := range profiles {
		byOwner[p.ID] = p
		if p.LaboratoryID != nil {
			if _, ok := seenLab[*p.LaboratoryID]; !ok {
				seenLab[*p.LaboratoryID] = struct{}{}
				labIDs = append(labIDs, *p.LaboratoryID)
			}
		}
	}

	byVessel := make(map[string]Vessel)
	if len(vesselIDs) > 0 {
		vessels, err := a.store.VesselsByIDs(ctx, vesselIDs)
		if err != nil {
			return nil, err
		}
		for _, v := range vessels {
			byVessel[v.ID] = v
		}
	}

	byLab := make(map[string]Laboratory)
	if len(labIDs) > 0 {
		labs, err := a.store.LaboratoriesByIDs(ctx, labIDs)
		if err != nil {
			return nil, err
		}
		for _, l := range labs {
			byLab[l.ID] = l
		}
	}

	out := make([]CollectionDetails, 0, len(cols))
	for _, c := range cols {
		d := CollectionDetails{Collection: c}
		if p, ok := byOwner[c.OwnerUserID]; ok {
			owner := &CollectionOwner{ID: p.ID, Name: p.Name, Email: p.Email}
			if p.LaboratoryID != nil {
				if lab, ok := byLab[*p.LaboratoryID]; ok {
					owner.Laboratory = &lab
				}
			}
			d.Owner = owner
		}
		if c.VesselID != nil {
			if v, ok := byVessel[*c.VesselID]; ok {
				d.Vessel = &CollectionVessel{ID: v.ID, Type: v.Type}
			}
		}
		out = append(out, d)
	}
	return out, nil
}

// UserStatistics summarizes one user's collections and favorites. When the
// store advertises a precomputed aggregate it is preferred; otherwise the
// statistics are computed from raw rows. Both paths count the same way.
func (a *Aggregator) UserStatistics(ctx context.Context, userID string) (UserStats, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return UserStats{}, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	if ss, ok := a.store.(StatsStore); ok {
		return ss.UserCollectionStats(ctx, userID)
	}

	cols, err := a.store.ListCollectionsByOwner(ctx, userID)
	if err != nil {
		return UserStats{}, err
	}
	favs, err := a.store.CountFavoritesByUser(ctx, userID)
	if err != nil {
		return UserStats{}, err
	}

	species := make(map[string]struct{})
	var last *time.Time
	for _, c := range cols {
		if c.ScientificName != nil {
			if name := strings.TrimSpace(*c.ScientificName); name != "" {
				species[name] = struct{}{}
			}
		}
		created := c.CreatedAt
		if last == nil || created.After(*last) {
			last = &created
		}
	}
	return UserStats{
		TotalCollections:   len(cols),
		TotalFavorites:     favs,
		UniqueSpecies:      len(species),
		LastCollectionDate: last,
	}, nil
}

// UserStatistics is the service entry point for the statistics view.
func (s *Service) UserStatistics(ctx context.Context, userID string) (UserStats, error) {
	return s.agg.UserStatistics(ctx, userID)
}
