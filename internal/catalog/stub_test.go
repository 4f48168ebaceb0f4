package catalog

import (
	"context"
	"testing"
)

// stubStore implements Store with overridable function fields. Methods left
// nil return zero values; mutating methods record their name in calls so
// tests can assert that a refused operation never reached the store.
type stubStore struct {
	roleForUserFn func(context.Context, string) (Role, error)
	upsertRoleFn  func(context.Context, string, Role) error

	listProfilesFn        func(context.Context) ([]UserView, error)
	getUserViewFn         func(context.Context, string) (UserView, error)
	updateProfileFn       func(context.Context, string, ProfilePatch) error
	updateProfileStatusFn func(context.Context, string, bool) error
	profilesByIDsFn       func(context.Context, []string) ([]Profile, error)

	createLaboratoryFn  func(context.Context, string) (Laboratory, error)
	listLaboratoriesFn  func(context.Context) ([]Laboratory, error)
	getLaboratoryFn     func(context.Context, string) (Laboratory, error)
	updateLaboratoryFn  func(context.Context, string, string) (Laboratory, error)
	deleteLaboratoryFn  func(context.Context, string) error
	laboratoriesByIDsFn func(context.Context, []string) ([]Laboratory, error)

	createVesselFn func(context.Context, string, *string) (Vessel, error)
	listVesselsFn  func(context.Context) ([]VesselView, error)
	getVesselFn    func(context.Context, string) (Vessel, error)
	updateVesselFn func(context.Context, string, VesselPatch) (Vessel, error)
	deleteVesselFn func(context.Context, string) error
	vesselsByIDsFn func(context.Context, []string) ([]Vessel, error)

	createCollectionFn       func(context.Context, NewCollection) (Collection, error)
	listCollectionsFn        func(context.Context) ([]Collection, error)
	listCollectionsByOwnerFn func(context.Context, string) ([]Collection, error)
	getCollectionFn          func(context.Context, string) (Collection, error)
	updateCollectionFn       func(context.Context, string, CollectionPatch) (Collection, error)
	deleteCollectionFn       func(context.Context, string) error

	listFavoritesByUserFn  func(context.Context, string) ([]Favorite, error)
	hasFavoriteFn          func(context.Context, string, string) (bool, error)
	createFavoriteFn       func(context.Context, string, string) (Favorite, error)
	deleteFavoriteFn       func(context.Context, string, string) error
	countFavoritesByUserFn func(context.Context, string) (int, error)

	calls []string
}

var _ Store = (*stubStore)(nil)

func (s *stubStore) record(name string) { s.calls = append(s.calls, name) }

func (s *stubStore) called(name string) bool {
	for _, c := range s.calls {
		if c == name {
			return true
		}
	}
	return false
}

func (s *stubStore) RoleForUser(ctx context.Context, userID string) (Role, error) {
	if s.roleForUserFn != nil {
		return s.roleForUserFn(ctx, userID)
	}
	return "", ErrNotFound
}

func (s *stubStore) UpsertRole(ctx context.Context, userID string, role Role) error {
	s.record("UpsertRole")
	if s.upsertRoleFn != nil {
		return s.upsertRoleFn(ctx, userID, role)
	}
	return nil
}

func (s *stubStore) ListProfiles(ctx context.Context) ([]UserView, error) {
	if s.listProfilesFn != nil {
		return s.listProfilesFn(ctx)
	}
	return nil, nil
}

func (s *stubStore) GetUserView(ctx context.Context, id string) (UserView, error) {
	if s.getUserViewFn != nil {
		return s.getUserViewFn(ctx, id)
	}
	return UserView{Profile: Profile{ID: id}, Role: RoleResearcher}, nil
}

func (s *stubStore) UpdateProfile(ctx context.Context, id string, patch ProfilePatch) error {
	s.record("UpdateProfile")
	if s.updateProfileFn != nil {
		return s.updateProfileFn(ctx, id, patch)
	}
	return nil
}

func (s *stubStore) UpdateProfileStatus(ctx context.Context, id string, active bool) error {
	s.record("UpdateProfileStatus")
	if s.updateProfileStatusFn != nil {
		return s.updateProfileStatusFn(ctx, id, active)
	}
	return nil
}

func (s *stubStore) ProfilesByIDs(ctx context.Context, ids []string) ([]Profile, error) {
	if s.profilesByIDsFn != nil {
		return s.profilesByIDsFn(ctx, ids)
	}
	return nil, nil
}

func (s *stubStore) CreateLaboratory(ctx context.Context, name string) (Laboratory, error) {
	s.record("CreateLaboratory")
	if s.createLaboratoryFn != nil {
		return s.createLaboratoryFn(ctx, name)
	}
	return Laboratory{ID: "lab-1", Name: name}, nil
}

func (s *stubStore) ListLaboratories(ctx context.Context) ([]Laboratory, error) {
	if s.listLaboratoriesFn != nil {
		return s.listLaboratoriesFn(ctx)
	}
	return nil, nil
}

func (s *stubStore) GetLaboratory(ctx context.Context, id string) (Laboratory, error) {
	if s.getLaboratoryFn != nil {
		return s.getLaboratoryFn(ctx, id)
	}
	return Laboratory{ID: id}, nil
}

func (s *stubStore) UpdateLaboratory(ctx context.Context, id, name string) (Laboratory, error) {
	s.record("UpdateLaboratory")
	if s.updateLaboratoryFn != nil {
		return s.updateLaboratoryFn(ctx, id, name)
	}
	return Laboratory{ID: id, Name: name}, nil
}

func (s *stubStore) DeleteLaboratory(ctx context.Context, id string) error {
	s.record("DeleteLaboratory")
	if s.deleteLaboratoryFn != nil {
		return s.deleteLaboratoryFn(ctx, id)
	}
	return nil
}

func (s *stubStore) LaboratoriesByIDs(ctx context.Context, ids []string) ([]Laboratory, error) {
	if s.laboratoriesByIDsFn != nil {
		return s.laboratoriesByIDsFn(ctx, ids)
	}
	return nil, nil
}

func (s *stubStore) CreateVessel(ctx context.Context, vesselType string, laboratoryID *string) (Vessel, error) {
	s.record("CreateVessel")
	if s.createVesselFn != nil {
		return s.createVesselFn(ctx, vesselType, laboratoryID)
	}
	return Vessel{ID: "v-1", Type: vesselType, LaboratoryID: laboratoryID}, nil
}

func (s *stubStore) ListVessels(ctx context.Context) ([]VesselView, error) {
	if s.listVesselsFn != nil {
		return s.listVesselsFn(ctx)
	}
	return nil, nil
}

func (s *stubStore) GetVessel(ctx context.Context, id string) (Vessel, error) {
	if s.getVesselFn != nil {
		return s.getVesselFn(ctx, id)
	}
	return Vessel{ID: id}, nil
}

func (s *stubStore) UpdateVessel(ctx context.Context, id string, patch VesselPatch) (Vessel, error) {
	s.record("UpdateVessel")
	if s.updateVesselFn != nil {
		return s.updateVesselFn(ctx, id, patch)
	}
	return Vessel{ID: id}, nil
}

func (s *stubStore) DeleteVessel(ctx context.Context, id string) error {
	s.record("DeleteVessel")
	if s.deleteVesselFn != nil {
		return s.deleteVesselFn(ctx, id)
	}
	return nil
}

func (s *stubStore) VesselsByIDs(ctx context.Context, ids []string) ([]Vessel, error) {
	if s.vesselsByIDsFn != nil {
		return s.vesselsByIDsFn(ctx, ids)
	}
	return nil, nil
}

func (s *stubStore) CreateCollection(ctx context.Context, c NewCollection) (Collection, error) {
	s.record("CreateCollection")
	if s.createCollectionFn != nil {
		return s.createCollectionFn(ctx, c)
	}
	return Collection{ID: "c-1", OwnerUserID: c.OwnerUserID}, nil
}

func (s *stubStore) ListCollections(ctx context.Context) ([]Collection, error) {
	if s.listCollectionsFn != nil {
		return s.listCollectionsFn(ctx)
	}
	return nil, nil
}

func (s *stubStore) ListCollectionsByOwner(ctx context.Context, ownerID string) ([]Collection, error) {
	if s.listCollectionsByOwnerFn != nil {
		return s.listCollectionsByOwnerFn(ctx, ownerID)
	}
	return nil, nil
}

func (s *stubStore) GetCollection(ctx context.Context, id string) (Collection, error) {
	if s.getCollectionFn != nil {
		return s.getCollectionFn(ctx, id)
	}
	return Collection{ID: id}, nil
}

func (s *stubStore) UpdateCollection(ctx context.Context, id string, patch CollectionPatch) (Collection, error) {
	s.record("UpdateCollection")
	if s.updateCollectionFn != nil {
		return s.updateCollectionFn(ctx, id, patch)
	}
	return Collection{ID: id}, nil
}

func (s *stubStore) DeleteCollection(ctx context.Context, id string) error {
	s.record("DeleteCollection")
	if s.deleteCollectionFn != nil {
		return s.deleteCollectionFn(ctx, id)
	}
	return nil
}

func (s *stubStore) ListFavoritesByUser(ctx context.Context, userID string) ([]Favorite, error) {
	if s.listFavoritesByUserFn != nil {
		return s.listFavoritesByUserFn(ctx, userID)
	}
	return nil, nil
}

func (s *stubStore) HasFavorite(ctx context.Context, userID, collectionID string) (bool, error) {
	if s.hasFavoriteFn != nil {
		return s.hasFavoriteFn(ctx, userID, collectionID)
	}
	return false, nil
}

func (s *stubStore) CreateFavorite(ctx context.Context, userID, collectionID string) (Favorite, error) {
	s.record("CreateFavorite")
	if s.createFavoriteFn != nil {
		return s.createFavoriteFn(ctx, userID, collectionID)
	}
	return Favorite{UserID: userID, CollectionID: collectionID}, nil
}

func (s *stubStore) DeleteFavorite(ctx context.Context, userID, collectionID string) error {
	s.record("DeleteFavorite")
	if s.deleteFavoriteFn != nil {
		return s.deleteFavoriteFn(ctx, userID, collectionID)
	}
	return nil
}

func (s *stubStore) CountFavoritesByUser(ctx context.Context, userID string) (int, error) {
	if s.countFavoritesByUserFn != nil {
		return s.countFavoritesByUserFn(ctx, userID)
	}
	return 0, nil
}

func newTestService(t *testing.T, store Store) *Service {
	t.Helper()
	svc, err := NewService(store)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}
