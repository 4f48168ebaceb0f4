package catalog

import "context"

// ProfilePatch carries the mutable profile fields. Nil pointers leave the
// stored value untouched.
type ProfilePatch struct {
	Name        *string
	Description *string
	Position    *string
	PhotoURL    *string
}

// NewCollection is the caller-supplied payload for creating a collection.
// OwnerUserID must be the authenticated identity; the API surface enforces
// that trust boundary before the service is reached.
type NewCollection struct {
	Date            string
	Location        *string
	ScientificName  *string
	CommonName      *string
	Length          *float64
	Weight          *float64
	Temperature     *float64
	Salinity        *float64
	PH              *float64
	DissolvedOxygen *float64
	Turbidity       *float64
	Depth           *float64
	Notes           *string
	Photo1          *string
	Photo2          *string
	Photo3          *string
	VesselID        *string
	OwnerUserID     string
}

// CollectionPatch carries the mutable collection fields. The owner is not
// among them: owner_user_id never changes after creation.
type CollectionPatch struct {
	Date            *string
	Location        *string
	ScientificName  *string
	CommonName      *string
	Length          *float64
	Weight          *float64
	Temperature     *float64
	Salinity        *float64
	PH              *float64
	DissolvedOxygen *float64
	Turbidity       *float64
	Depth           *float64
	Notes           *string
	Photo1          *string
	Photo2          *string
	Photo3          *string
	VesselID        *string
}

// VesselPatch carries the mutable vessel fields.
type VesselPatch struct {
	Type         *string
	LaboratoryID *string
}

// Store describes the query gateway the catalog services run against.
// Filters are equality predicates; absence of a row surfaces as ErrNotFound,
// distinct from store failures, and uniqueness/referential violations as
// ErrConflict.
type Store interface {
	RoleStore

	// roles
	UpsertRole(ctx context.Context, userID string, role Role) error

	// profiles
	ListProfiles(ctx context.Context) ([]UserView, error)
	GetUserView(ctx context.Context, id string) (UserView, error)
	UpdateProfile(ctx context.Context, id string, patch ProfilePatch) error
	UpdateProfileStatus(ctx context.Context, id string, active bool) error
	ProfilesByIDs(ctx context.Context, ids []string) ([]Profile, error)

	// laboratories
	CreateLaboratory(ctx context.Context, name string) (Laboratory, error)
	ListLaboratories(ctx context.Context) ([]Laboratory, error)
	GetLaboratory(ctx context.Context, id string) (Laboratory, error)
	UpdateLaboratory(ctx context.Context, id, name string) (Laboratory, error)
	DeleteLaboratory(ctx context.Context, id string) error
	LaboratoriesByIDs(ctx context.Context, ids []string) ([]Laboratory, error)

	// vessels
	CreateVessel(ctx context.Context, vesselType string, laboratoryID *string) (Vessel, error)
	ListVessels(ctx context.Context) ([]VesselView, error)
	GetVessel(ctx context.Context, id string) (Vessel, error)
	UpdateVessel(ctx context.Context, id string, patch VesselPatch) (Vessel, error)
	DeleteVessel(ctx context.Context, id string) error
	VesselsByIDs(ctx context.Context, ids []string) ([]Vessel, error)

	// collections
	CreateCollection(ctx context.Context, c NewCollection) (Collection, error)
	ListCollections(ctx context.Context) ([]Collection, error)
	ListCollectionsByOwner(ctx context.Context, ownerID string) ([]Collection, error)
	GetCollection(ctx context.Context, id string) (Collection, error)
	UpdateCollection(ctx context.Context, id string, patch CollectionPatch) (Collection, error)
	DeleteCollection(ctx context.Context, id string) error

	// favorites
	ListFavoritesByUser(ctx context.Context, userID string) ([]Favorite, error)
	HasFavorite(ctx context.Context, userID, collectionID string) (bool, error)
	CreateFavorite(ctx context.Context, userID, collectionID string) (Favorite, error)
	DeleteFavorite(ctx context.Context, userID, collectionID string) error
	CountFavoritesByUser(ctx context.Context, userID string) (int, error)
}

// StatsStore is the optional precomputed-aggregate path. Stores that expose
// it are preferred by the aggregator; the raw-row fallback must agree with
// it exactly.
type StatsStore interface {
	UserCollectionStats(ctx context.Context, userID string) (UserStats, error)
}
