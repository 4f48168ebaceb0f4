package httpapi

import (
	"fmt"
	"net/http"

	"maricoleta.org/internal/catalog"
)

type laboratoryRequest struct {
	Name string `json:"name"`
}

type vesselRequest struct {
	Type         *string `json:"type"`
	LaboratoryID *string `json:"laboratory_id"`
}

// --- laboratories ---

func (a *API) handleListLaboratories(w http.ResponseWriter, r *http.Request) {
	labs, err := a.catalog.ListLaboratories(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if labs == nil {
		labs = []catalog.Laboratory{}
	}
	writeJSON(w, http.StatusOK, labs)
}

func (a *API) handleGetLaboratory(w http.ResponseWriter, r *http.Request) {
	lab, err := a.catalog.GetLaboratory(r.Context(), r.PathValue("id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lab)
}

func (a *API) handleCreateLaboratory(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.requireAdmin(w, r); !ok {
		return
	}
	var req laboratoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "validation", err.Error())
		return
	}
	lab, err := a.catalog.CreateLaboratory(r.Context(), req.Name)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	_ = a.auditLog.Event(r.Context(), "laboratories.create", map[string]string{
		"laboratory_id": lab.ID,
		"name":          lab.Name,
	})
	w.Header().Set("Location", fmt.Sprintf("/v1/laboratories/%s", lab.ID))
	writeJSON(w, http.StatusCreated, lab)
}

func (a *API) handleUpdateLaboratory(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.requireAdmin(w, r); !ok {
		return
	}
	id := r.PathValue("id")
	var req laboratoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "validation", err.Error())
		return
	}
	lab, err := a.catalog.UpdateLaboratory(r.Context(), id, req.Name)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	_ = a.auditLog.Event(r.Context(), "laboratories.update", map[string]string{
		"laboratory_id": lab.ID,
	})
	writeJSON(w, http.StatusOK, lab)
}

func (a *API) handleDeleteLaboratory(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.requireAdmin(w, r); !ok {
		return
	}
	id := r.PathValue("id")
	if err := a.catalog.DeleteLaboratory(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}
	_ = a.auditLog.Event(r.Context(), "laboratories.delete", map[string]string{
		"laboratory_id": id,
	})
	w.WriteHeader(http.StatusNoContent)
}

// --- vessels ---

func (a *API) handleListVessels(w http.ResponseWriter, r *http.Request) {
	vessels, err := a.catalog.ListVessels(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if vessels == nil {
		vessels = []catalog.VesselView{}
	}
	writeJSON(w, http.StatusOK, vessels)
}

func (a *API) handleGetVessel(w http.ResponseWriter, r *http.Request) {
	v, err := a.catalog.GetVessel(r.Context(), r.PathValue("id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (a *API) handleCreateVessel(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.requireAdmin(w, r); !ok {
		return
	}
	var req vesselRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "validation", err.Error())
		return
	}
	if req.Type == nil {
		writeError(w, http.StatusBadRequest, "validation", "vessel type is required")
		return
	}
	v, err := a.catalog.CreateVessel(r.Context(), *req.Type, req.LaboratoryID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	_ = a.auditLog.Event(r.Context(), "vessels.create", map[string]string{
		"vessel_id": v.ID,
		"type":      v.Type,
	})
	w.Header().Set("Location", fmt.Sprintf("/v1/vessels/%s", v.ID))
	writeJSON(w, http.StatusCreated, v)
}

func (a *API) handleUpdateVessel(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.requireAdmin(w, r); !ok {
		return
	}
	id := r.PathValue("id")
	var req vesselRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "validation", err.Error())
		return
	}
	v, err := a.catalog.UpdateVessel(r.Context(), id, catalog.VesselPatch{
		Type:         req.Type,
		LaboratoryID: req.LaboratoryID,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}
	_ = a.auditLog.Event(r.Context(), "vessels.update", map[string]string{
		"vessel_id": v.ID,
	})
	writeJSON(w, http.StatusOK, v)
}

func (a *API) handleDeleteVessel(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.requireAdmin(w, r); !ok {
		return
	}
	id := r.PathValue("id")
	if err := a.catalog.DeleteVessel(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}
	_ = a.auditLog.Event(r.Context(), "vessels.delete", map[string]string{
		"vessel_id": id,
	})
	w.WriteHeader(http.StatusNoContent)
}
