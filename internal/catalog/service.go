package catalog

import "errors"

// Service exposes the access-controlled catalog operations. Authorization
// that depends on the caller (owner-or-admin gating, admin-only surfaces)
// belongs to the API layer; the invariants that depend only on the target
// (admin protection, owner immutability) are enforced here so no caller can
// bypass them.
type Service struct {
	store Store
	roles *Resolver
	agg   *Aggregator
}

func NewService(store Store) (*Service, error) {
	if store == nil {
		return nil, errors.New("catalog store is required")
	}
	return &Service{
		store: store,
		roles: NewResolver(store),
		agg:   NewAggregator(store),
	}, nil
}

// Roles returns the shared role resolver.
func (s *Service) Roles() *Resolver { return s.roles }
