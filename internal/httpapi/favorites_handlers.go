package httpapi

import (
	"net/http"

	"maricoleta.org/internal/catalog"
)

func (a *API) handleListFavorites(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}
	favs, err := a.catalog.ListFavoritesByUser(r.Context(), p.UserID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if favs == nil {
		favs = []catalog.Favorite{}
	}
	writeJSON(w, http.StatusOK, favs)
}

func (a *API) handleCheckFavorite(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}
	favorited, err := a.catalog.CheckFavorite(r.Context(), p.UserID, r.PathValue("collectionId"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"favorited": favorited})
}

func (a *API) handleCreateFavorite(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}
	fav, err := a.catalog.CreateFavorite(r.Context(), p.UserID, r.PathValue("collectionId"))
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, fav)
}

func (a *API) handleDeleteFavorite(w http.ResponseWriter, r *http.Request) {
	p, ok := a.principal(w, r)
	if !ok {
		return
	}
	if err := a.catalog.DeleteFavorite(r.Context(), p.UserID, r.PathValue("collectionId")); err != nil {
		handleServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
