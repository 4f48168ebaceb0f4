package catalog

import "time"

// Laboratory is a research laboratory that vessels and profiles attach to.
type Laboratory struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Vessel is a boat or ship used on field campaigns.
type Vessel struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	LaboratoryID *string   `json:"laboratory_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// VesselView is a vessel with its laboratory name resolved for listings.
type VesselView struct {
	Vessel
	LaboratoryName *string `json:"laboratory_name,omitempty"`
}

// Profile is one registered researcher or administrator. The id is shared
// with the external identity provider; there is exactly one profile per
// authenticated identity.
type Profile struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Description  *string   `json:"description,omitempty"`
	Position     *string   `json:"position,omitempty"`
	Active       bool      `json:"active"`
	PhotoURL     *string   `json:"photo_url,omitempty"`
	LaboratoryID *string   `json:"laboratory_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserView is a profile with its resolved role and laboratory name.
type UserView struct {
	Profile
	Role           Role    `json:"role"`
	LaboratoryName *string `json:"laboratory_name,omitempty"`
}

// Collection is one field observation of a marine specimen ("coleta").
type Collection struct {
	ID              string    `json:"id"`
	Date            time.Time `json:"date"`
	Location        *string   `json:"location,omitempty"`
	ScientificName  *string   `json:"scientific_name,omitempty"`
	CommonName      *string   `json:"common_name,omitempty"`
	Length          *float64  `json:"length,omitempty"`
	Weight          *float64  `json:"weight,omitempty"`
	Temperature     *float64  `json:"temperature,omitempty"`
	Salinity        *float64  `json:"salinity,omitempty"`
	PH              *float64  `json:"ph,omitempty"`
	DissolvedOxygen *float64  `json:"dissolved_oxygen,omitempty"`
	Turbidity       *float64  `json:"turbidity,omitempty"`
	Depth           *float64  `json:"depth,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
	Photo1          *string   `json:"photo_1,omitempty"`
	Photo2          *string   `json:"photo_2,omitempty"`
	Photo3          *string   `json:"photo_3,omitempty"`
	VesselID        *string   `json:"vessel_id,omitempty"`
	OwnerUserID     string    `json:"owner_user_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CollectionOwner is the slice of the owner profile exposed on detail views.
type CollectionOwner struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Laboratory *Laboratory `json:"laboratory,omitempty"`
}

// CollectionVessel is the slice of the vessel exposed on detail views.
type CollectionVessel struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// CollectionDetails is the denormalized collection view: the collection plus
// its owner, the owner's laboratory and the vessel, assembled in application
// memory rather than via a store-side join.
type CollectionDetails struct {
	Collection
	Owner  *CollectionOwner  `json:"owner,omitempty"`
	Vessel *CollectionVessel `json:"vessel,omitempty"`
}

// Favorite marks a collection as favorited by a user. Identity is the
// (user, collection) pair; there is no update, only presence or absence.
type Favorite struct {
	UserID       string    `json:"user_id"`
	CollectionID string    `json:"collection_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserStats summarizes one researcher's activity.
type UserStats struct {
	TotalCollections   int        `json:"total_collections"`
	TotalFavorites     int        `json:"total_favorites"`
	UniqueSpecies      int        `json:"unique_species"`
	LastCollectionDate *time.Time `json:"last_collection_date"`
}
