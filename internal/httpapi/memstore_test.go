package httpapi

import (
	"context"
	"fmt"
	"sync"
	"time"

	"maricoleta.org/internal/catalog"
)

// memStore is an in-memory catalog.Store backing the end-to-end tests. It
// does not implement catalog.StatsStore, so statistics take the raw-row path.
type memStore struct {
	mu          sync.Mutex
	roles       map[string]catalog.Role
	profiles    map[string]catalog.Profile
	labs        map[string]catalog.Laboratory
	vessels     map[string]catalog.Vessel
	collections map[string]catalog.Collection
	favorites   map[string]catalog.Favorite
	seq         int
}

var _ catalog.Store = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{
		roles:       make(map[string]catalog.Role),
		profiles:    make(map[string]catalog.Profile),
		labs:        make(map[string]catalog.Laboratory),
		vessels:     make(map[string]catalog.Vessel),
		collections: make(map[string]catalog.Collection),
		favorites:   make(map[string]catalog.Favorite),
	}
}

func (m *memStore) nextID(prefix string) string {
	m.seq++
	return fmt.Sprintf("%s-%d", prefix, m.seq)
}

func favKey(userID, collectionID string) string {
	return userID + "/" + collectionID
}

func (m *memStore) seedProfile(id, name string, role catalog.Role) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[id] = catalog.Profile{
		ID: id, Name: name, Email: name + "@maricoleta.org", Active: true,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	if role != catalog.RoleResearcher {
		m.roles[id] = role
	}
}

func (m *memStore) RoleForUser(_ context.Context, userID string) (catalog.Role, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	role, ok := m.roles[userID]
	if !ok {
		return "", catalog.ErrNotFound
	}
	return role, nil
}

func (m *memStore) UpsertRole(_ context.Context, userID string, role catalog.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roles[userID] = role
	return nil
}

func (m *memStore) userView(p catalog.Profile) catalog.UserView {
	u := catalog.UserView{Profile: p, Role: catalog.RoleResearcher}
	if role, ok := m.roles[p.ID]; ok {
		u.Role = role
	}
	if p.LaboratoryID != nil {
		if lab, ok := m.labs[*p.LaboratoryID]; ok {
			u.LaboratoryName = &lab.Name
		}
	}
	return u
}

func (m *memStore) ListProfiles(_ context.Context) ([]catalog.UserView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var users []catalog.UserView
	for _, p := range m.profiles {
		users = append(users, m.userView(p))
	}
	return users, nil
}

func (m *memStore) GetUserView(_ context.Context, id string) (catalog.UserView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[id]
	if !ok {
		return catalog.UserView{}, catalog.ErrNotFound
	}
	return m.userView(p), nil
}

func (m *memStore) UpdateProfile(_ context.Context, id string, patch catalog.ProfilePatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[id]
	if !ok {
		return catalog.ErrNotFound
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = patch.Description
	}
	if patch.Position != nil {
		p.Position = patch.Position
	}
	if patch.PhotoURL != nil {
		p.PhotoURL = patch.PhotoURL
	}
	p.UpdatedAt = time.Now()
	m.profiles[id] = p
	return nil
}

func (m *memStore) UpdateProfileStatus(_ context.Context, id string, active bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[id]
	if !ok {
		return catalog.ErrNotFound
	}
	p.Active = active
	m.profiles[id] = p
	return nil
}

func (m *memStore) ProfilesByIDs(_ context.Context, ids []string) ([]catalog.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []catalog.Profile
	for _, id := range ids {
		if p, ok := m.profiles[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memStore) CreateLaboratory(_ context.Context, name string) (catalog.Laboratory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, lab := range m.labs {
		if lab.Name == name {
			return catalog.Laboratory{}, catalog.ErrConflict
		}
	}
	lab := catalog.Laboratory{ID: m.nextID("lab"), Name: name, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	m.labs[lab.ID] = lab
	return lab, nil
}

func (m *memStore) ListLaboratories(_ context.Context) ([]catalog.Laboratory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var labs []catalog.Laboratory
	for _, lab := range m.labs {
		labs = append(labs, lab)
	}
	return labs, nil
}

func (m *memStore) GetLaboratory(_ context.Context, id string) (catalog.Laboratory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	lab, ok := m.labs[id]
	if !ok {
		return catalog.Laboratory{}, catalog.ErrNotFound
	}
	return lab, nil
}

func (m *memStore) UpdateLaboratory(_ context.Context, id, name string) (catalog.Laboratory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	lab, ok := m.labs[id]
	if !ok {
		return catalog.Laboratory{}, catalog.ErrNotFound
	}
	lab.Name = name
	lab.UpdatedAt = time.Now()
	m.labs[id] = lab
	return lab, nil
}

func (m *memStore) DeleteLaboratory(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.labs[id]; !ok {
		return catalog.ErrNotFound
	}
	for _, v := range m.vessels {
		if v.LaboratoryID != nil && *v.LaboratoryID == id {
			return catalog.ErrConflict
		}
	}
	for _, p := range m.profiles {
		if p.LaboratoryID != nil && *p.LaboratoryID == id {
			return catalog.ErrConflict
		}
	}
	delete(m.labs, id)
	return nil
}

func (m *memStore) LaboratoriesByIDs(_ context.Context, ids []string) ([]catalog.Laboratory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []catalog.Laboratory
	for _, id := range ids {
		if lab, ok := m.labs[id]; ok {
			out = append(out, lab)
		}
	}
	return out, nil
}

func (m *memStore) CreateVessel(_ context.Context, vesselType string, laboratoryID *string) (catalog.Vessel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if laboratoryID != nil {
		if _, ok := m.labs[*laboratoryID]; !ok {
			return catalog.Vessel{}, catalog.ErrNotFound
		}
	}
	v := catalog.Vessel{ID: m.nextID("v"), Type: vesselType, LaboratoryID: laboratoryID, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	m.vessels[v.ID] = v
	return v, nil
}

func (m *memStore) ListVessels(_ context.Context) ([]catalog.VesselView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var views []catalog.VesselView
	for _, v := range m.vessels {
		view := catalog.VesselView{Vessel: v}
		if v.LaboratoryID != nil {
			if lab, ok := m.labs[*v.LaboratoryID]; ok {
				view.LaboratoryName = &lab.Name
			}
		}
		views = append(views, view)
	}
	return views, nil
}

func (m *memStore) GetVessel(_ context.Context, id string) (catalog.Vessel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.vessels[id]
	if !ok {
		return catalog.Vessel{}, catalog.ErrNotFound
	}
	return v, nil
}

func (m *memStore) UpdateVessel(_ context.Context, id string, patch catalog.VesselPatch) (catalog.Vessel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.vessels[id]
	if !ok {
		return catalog.Vessel{}, catalog.ErrNotFound
	}
	if patch.Type != nil {
		v.Type = *patch.Type
	}
	if patch.LaboratoryID != nil {
		if *patch.LaboratoryID == "" {
			v.LaboratoryID = nil
		} else {
			if _, ok := m.labs[*patch.LaboratoryID]; !ok {
				return catalog.Vessel{}, catalog.ErrNotFound
			}
			v.LaboratoryID = patch.LaboratoryID
		}
	}
	v.UpdatedAt = time.Now()
	m.vessels[id] = v
	return v, nil
}

func (m *memStore) DeleteVessel(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.vessels[id]; !ok {
		return catalog.ErrNotFound
	}
	for _, c := range m.collections {
		if c.VesselID != nil && *c.VesselID == id {
			return catalog.ErrConflict
		}
	}
	delete(m.vessels, id)
	return nil
}

func (m *memStore) VesselsByIDs(_ context.Context, ids []string) ([]catalog.Vessel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []catalog.Vessel
	for _, id := range ids {
		if v, ok := m.vessels[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *memStore) CreateCollection(_ context.Context, n catalog.NewCollection) (catalog.Collection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.profiles[n.OwnerUserID]; !ok {
		return catalog.Collection{}, catalog.ErrNotFound
	}
	if n.VesselID != nil {
		if _, ok := m.vessels[*n.VesselID]; !ok {
			return catalog.Collection{}, catalog.ErrNotFound
		}
	}
	date, err := time.Parse("2006-01-02", n.Date)
	if err != nil {
		return catalog.Collection{}, catalog.ErrInvalidInput
	}
	c := catalog.Collection{
		ID: m.nextID("c"), Date: date,
		Location: n.Location, ScientificName: n.ScientificName, CommonName: n.CommonName,
		Length: n.Length, Weight: n.Weight, Temperature: n.Temperature,
		Salinity: n.Salinity, PH: n.PH, DissolvedOxygen: n.DissolvedOxygen,
		Turbidity: n.Turbidity, Depth: n.Depth, Notes: n.Notes,
		Photo1: n.Photo1, Photo2: n.Photo2, Photo3: n.Photo3,
		VesselID: n.VesselID, OwnerUserID: n.OwnerUserID,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	m.collections[c.ID] = c
	return c, nil
}

func (m *memStore) ListCollections(_ context.Context) ([]catalog.Collection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var cols []catalog.Collection
	for _, c := range m.collections {
		cols = append(cols, c)
	}
	return cols, nil
}

func (m *memStore) ListCollectionsByOwner(_ context.Context, ownerID string) ([]catalog.Collection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var cols []catalog.Collection
	for _, c := range m.collections {
		if c.OwnerUserID == ownerID {
			cols = append(cols, c)
		}
	}
	return cols, nil
}

func (m *memStore) GetCollection(_ context.Context, id string) (catalog.Collection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.collections[id]
	if !ok {
		return catalog.Collection{}, catalog.ErrNotFound
	}
	return c, nil
}

func (m *memStore) UpdateCollection(_ context.Context, id string, patch catalog.CollectionPatch) (catalog.Collection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.collections[id]
	if !ok {
		return catalog.Collection{}, catalog.ErrNotFound
	}
	if patch.Date != nil {
		date, err := time.Parse("2006-01-02", *patch.Date)
		if err != nil {
			return catalog.Collection{}, catalog.ErrInvalidInput
		}
		c.Date = date
	}
	if patch.Location != nil {
		c.Location = patch.Location
	}
	if patch.ScientificName != nil {
		c.ScientificName = patch.ScientificName
	}
	if patch.CommonName != nil {
		c.CommonName = patch.CommonName
	}
	if patch.Notes != nil {
		c.Notes = patch.Notes
	}
	if patch.Depth != nil {
		c.Depth = patch.Depth
	}
	if patch.VesselID != nil {
		if *patch.VesselID == "" {
			c.VesselID = nil
		} else {
			if _, ok := m.vessels[*patch.VesselID]; !ok {
				return catalog.Collection{}, catalog.ErrNotFound
			}
			c.VesselID = patch.VesselID
		}
	}
	c.UpdatedAt = time.Now()
	m.collections[id] = c
	return c, nil
}

func (m *memStore) DeleteCollection(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.collections[id]; !ok {
		return catalog.ErrNotFound
	}
	delete(m.collections, id)
	for key := range m.favorites {
		if m.favorites[key].CollectionID == id {
			delete(m.favorites, key)
		}
	}
	return nil
}

func (m *memStore) ListFavoritesByUser(_ context.Context, userID string) ([]catalog.Favorite, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var favs []catalog.Favorite
	for _, f := range m.favorites {
		if f.UserID == userID {
			favs = append(favs, f)
		}
	}
	return favs, nil
}

func (m *memStore) HasFavorite(_ context.Context, userID, collectionID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.favorites[favKey(userID, collectionID)]
	return ok, nil
}

func (m *memStore) CreateFavorite(_ context.Context, userID, collectionID string) (catalog.Favorite, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.collections[collectionID]; !ok {
		return catalog.Favorite{}, catalog.ErrNotFound
	}
	key := favKey(userID, collectionID)
	if _, ok := m.favorites[key]; ok {
		return catalog.Favorite{}, catalog.ErrConflict
	}
	f := catalog.Favorite{UserID: userID, CollectionID: collectionID, CreatedAt: time.Now()}
	m.favorites[key] = f
	return f, nil
}

func (m *memStore) DeleteFavorite(_ context.Context, userID, collectionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := favKey(userID, collectionID)
	if _, ok := m.favorites[key]; !ok {
		return catalog.ErrNotFound
	}
	delete(m.favorites, key)
	return nil
}

func (m *memStore) CountFavoritesByUser(_ context.Context, userID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, f := range m.favorites {
		if f.UserID == userID {
			count++
		}
	}
	return count, nil
}
