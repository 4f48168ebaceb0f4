package httpapi

import (
	"fmt"
	"net/http"

	"maricoleta.org/internal/catalog"
)

type updateProfileRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Position    *string `json:"position"`
	PhotoURL    *string `json:"photo_url"`
}

type updateRoleRequest struct {
	Role string `json:"role"`
}

type updateStatusRequest struct {
	Active *bool `json:"active"`
}

func (a *API) handleListResearchers(w http.ResponseWriter, r *http.Request) {
	users, err := a.catalog.ListResearchers(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (a *API) handleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := a.catalog.GetUser(r.Context(), r.PathValue("id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (a *API) handleUserStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := a.catalog.UserStatistics(r.Context(), r.PathValue("id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (a *API) handleUpdateUserProfile(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.requireAdmin(w, r); !ok {
		return
	}
	id := r.PathValue("id")
	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "validation", err.Error())
		return
	}
	user, err := a.catalog.UpdateProfile(r.Context(), id, catalog.ProfilePatch{
		Name:        req.Name,
		Description: req.Description,
		Position:    req.Position,
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}
	_ = a.auditLog.Event(r.Context(), "users.profile.update", map[string]string{
		"target_user_id": id,
	})
	writeJSON(w, http.StatusOK, user)
}

func (a *API) handleUpdateUserRole(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.requireAdmin(w, r); !ok {
		return
	}
	id := r.PathValue("id")
	var req updateRoleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "validation", err.Error())
		return
	}
	role, err := catalog.ParseRole(req.Role)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	user, err := a.catalog.UpdateRole(r.Context(), id, role)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	_ = a.auditLog.Event(r.Context(), "users.role.update", map[string]string{
		"target_user_id": id,
		"role":           string(role),
	})
	writeJSON(w, http.StatusOK, user)
}

func (a *API) handleUpdateUserStatus(w http.ResponseWriter, r *http.Request) {
	if _, ok := a.requireAdmin(w, r); !ok {
		return
	}
	id := r.PathValue("id")
	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "validation", err.Error())
		return
	}
	if req.Active == nil {
		writeError(w, http.StatusBadRequest, "validation", "active must be a boolean")
		return
	}
	user, err := a.catalog.UpdateStatus(r.Context(), id, *req.Active)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	_ = a.auditLog.Event(r.Context(), "users.status.update", map[string]string{
		"target_user_id": id,
		"active":         fmt.Sprintf("%t", *req.Active),
	})
	writeJSON(w, http.StatusOK, user)
}
