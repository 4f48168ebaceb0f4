package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"maricoleta.org/internal/catalog"
)

type collectionPayload struct {
	Date            *string  `json:"date"`
	Location        *string  `json:"location"`
	ScientificName  *string  `json:"scientific_name"`
	CommonName      *string  `json:"common_name"`
	Length          *float64 `json:"length"`
	Weight          *float64 `json:"weight"`
	Temperature     *float64 `json:"temperature"`
	Salinity        *float64 `json:"salinity"`
	PH              *float64 `json:"ph"`
	DissolvedOxygen *float64 `json:"dissolved_oxygen"`
	Turbidity       *float64 `json:"turbidity"`
	Depth           *float64 `json:"depth"`
	Notes           *string  `json:"notes"`
	Photo1          *string  `json:"photo_1"`
	Photo2          *string  `json:"photo_2"`
	Photo3          *string  `json:"photo_3"`
	VesselID        *string  `json:"vessel_id"`
}

func (p collectionPayload) patch() catalog.CollectionPatch {
	return catalog.CollectionPatch{
		Date:            p.Date,
		Location:        p.Location,
		ScientificName:  p.ScientificName,
		CommonName:      p.CommonName,
		Length:          p.Length,
		Weight:          p.Weight,
		Temperature:     p.Temperature,
		Salinity:        p.Salinity,
		PH:              p.PH,
		DissolvedOxygen: p.DissolvedOxygen,
		Turbidity:       p.Turbidity,
		Depth:           p.Depth,
		Notes:           p.Notes,
		Photo1:          p.Photo1,
		Photo2:          p.Photo2,
		Photo3:          p.Photo3,
		VesselID:        p.VesselID,
	}
}

func (a *API) handleListCollections(w http.ResponseWriter, r *http.Request) {
	cols, err := a.catalog.ListCollections(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if cols == nil {
		cols = []catalog.Collection{}
	}
	writeJSON(w, http.StatusOK, cols)
}

func (a *API) handleListCollectionsWithDetails(w http.ResponseWriter, r *http.Request) {
	details, err := a.catalog.ListCollectionsWithDetails(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (a *API) handleListCollectionsByOwner(w http.ResponseWriter, r *http.Request) {
	cols, err := a.catalog.ListCollectionsByOwner(r.Context(), r.PathValue("ownerId"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if cols == nil {
		cols = []catalog.Collection{}
	}
	writeJSON(w, http.StatusOK, cols)
}

func (a *API) handleListCollectionsByOwnerWithDetails(w http.ResponseWriter, r *http.Request) {
	details, err := a.catalog.ListCollectionsByOwnerWithDetails(r.Context(), r.PathValue("ownerId"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (a *API) handleGetCollection(w http.ResponseWriter, r *http.Request) {
	col, err := a.catalog.GetCollection(r.Context(), r.PathValue("id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, col)
}

func (a *API) handleCreateCollection(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}
	var req collectionPayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "validation", err.Error())
		return
	}
	if req.Date == nil {
		writeError(w, http.StatusBadRequest, "validation", "date is required")
		return
	}

	// The owner is always the authenticated identity, never a payload field.
	n := catalog.NewCollection{
		Date:            *req.Date,
		Location:        req.Location,
		ScientificName:  req.ScientificName,
		CommonName:      req.CommonName,
		Length:          req.Length,
		Weight:          req.Weight,
		Temperature:     req.Temperature,
		Salinity:        req.Salinity,
		PH:              req.PH,
		DissolvedOxygen: req.DissolvedOxygen,
		Turbidity:       req.Turbidity,
		Depth:           req.Depth,
		Notes:           req.Notes,
		Photo1:          req.Photo1,
		Photo2:          req.Photo2,
		Photo3:          req.Photo3,
		VesselID:        req.VesselID,
		OwnerUserID:     p.UserID,
	}
	col, err := a.catalog.CreateCollection(r.Context(), n)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/v1/collections/%s", col.ID))
	writeJSON(w, http.StatusCreated, col)
}

// ensureOwnerOrAdmin loads the target collection and verifies the caller is
// its owner or an admin before any write is delegated.
func (a *API) ensureOwnerOrAdmin(w http.ResponseWriter, r *http.Request, id string) bool {
	p, ok := a.principal(w, r)
	if !ok {
		return false
	}
	if p.IsAdmin() {
		return true
	}
	col, err := a.catalog.GetCollection(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "resource not found")
		} else {
			handleServiceError(w, err)
		}
		return false
	}
	if col.OwnerUserID != p.UserID {
		writeError(w, http.StatusForbidden, "forbidden", "not the owner of this collection")
		return false
	}
	return true
}

func (a *API) handleUpdateCollection(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !a.ensureOwnerOrAdmin(w, r, id) {
		return
	}
	var req collectionPayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "validation", err.Error())
		return
	}
	col, err := a.catalog.UpdateCollection(r.Context(), id, req.patch())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, col)
}

func (a *API) handleDeleteCollection(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !a.ensureOwnerOrAdmin(w, r, id) {
		return
	}
	if err := a.catalog.DeleteCollection(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleAdminUpdateCollection(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.requireAdmin(w, r); !ok {
		return
	}
	id := r.PathValue("id")
	var req collectionPayload
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "validation", err.Error())
		return
	}
	col, err := a.catalog.AdminUpdateCollection(r.Context(), id, req.patch())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	_ = a.auditLog.Event(r.Context(), "collections.admin_update", map[string]string{
		"collection_id": col.ID,
		"owner_user_id": col.OwnerUserID,
	})
	writeJSON(w, http.StatusOK, col)
}

func (a *API) handleAdminDeleteCollection(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.requireAdmin(w, r); !ok {
		return
	}
	id := r.PathValue("id")
	if err := a.catalog.AdminDeleteCollection(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}
	_ = a.auditLog.Event(r.Context(), "collections.admin_delete", map[string]string{
		"collection_id": id,
	})
	w.WriteHeader(http.StatusNoContent)
}
