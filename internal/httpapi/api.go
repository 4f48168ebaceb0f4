package httpapi

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"maricoleta.org/internal/audit"
	"maricoleta.org/internal/auth"
	"maricoleta.org/internal/catalog"
	"maricoleta.org/internal/obs"
)

// ReadyProbe pings the store for the readiness endpoint.
type ReadyProbe struct {
	DB *sql.DB
}

func (rp ReadyProbe) Check(ctx context.Context) error {
	if rp.DB == nil {
		return nil
	}
	return rp.DB.PingContext(ctx)
}

// API is the HTTP surface over the catalog services. It owns the
// caller-dependent half of authorization: admin-only routes and
// owner-or-admin gating on collection writes.
type API struct {
	mux        *http.ServeMux
	catalog    *catalog.Service
	tokens     *auth.Tokens
	auditLog   *audit.Log
	readyProbe ReadyProbe
	version    string

	rateBurst    int
	ratePerSec   int
	maxBodyBytes int64
}

func New(svc *catalog.Service, tokens *auth.Tokens, rp ReadyProbe, version string) *API {
	a := &API{
		mux:          http.NewServeMux(),
		catalog:      svc,
		tokens:       tokens,
		auditLog:     audit.New(nil),
		readyProbe:   rp,
		version:      version,
		rateBurst:    20,
		ratePerSec:   10,
		maxBodyBytes: 1 << 20,
	}
	a.routes()
	return a
}

// SetRateLimit overrides the default per-IP throttle.
func (a *API) SetRateLimit(burst, perSec int) {
	a.rateBurst = burst
	a.ratePerSec = perSec
}

// SetMaxBodyBytes overrides the default request body cap.
func (a *API) SetMaxBodyBytes(n int64) {
	if n > 0 {
		a.maxBodyBytes = n
	}
}

func (a *API) routes() {
	// health/ready/info
	a.mux.HandleFunc("GET /healthz", a.healthz)
	a.mux.HandleFunc("GET /readyz", a.ready)
	a.mux.HandleFunc("GET /v1/info", a.info)

	// Prometheus metrics
	a.mux.Handle("GET /metrics", obs.Handler())

	// collections
	a.mux.HandleFunc("GET /v1/collections", a.handleListCollections)
	a.mux.HandleFunc("GET /v1/collections/details", a.handleListCollectionsWithDetails)
	a.mux.HandleFunc("GET /v1/collections/user/{ownerId}", a.handleListCollectionsByOwner)
	a.mux.HandleFunc("GET /v1/collections/user/{ownerId}/details", a.handleListCollectionsByOwnerWithDetails)
	a.mux.HandleFunc("GET /v1/collections/{id}", a.handleGetCollection)
	a.mux.HandleFunc("POST /v1/collections", a.handleCreateCollection)
	a.mux.HandleFunc("PUT /v1/collections/{id}", a.handleUpdateCollection)
	a.mux.HandleFunc("DELETE /v1/collections/{id}", a.handleDeleteCollection)
	a.mux.HandleFunc("PUT /v1/admin/collections/{id}", a.handleAdminUpdateCollection)
	a.mux.HandleFunc("DELETE /v1/admin/collections/{id}", a.handleAdminDeleteCollection)

	// laboratories
	a.mux.HandleFunc("GET /v1/laboratories", a.handleListLaboratories)
	a.mux.HandleFunc("GET /v1/laboratories/{id}", a.handleGetLaboratory)
	a.mux.HandleFunc("POST /v1/laboratories", a.handleCreateLaboratory)
	a.mux.HandleFunc("PUT /v1/laboratories/{id}", a.handleUpdateLaboratory)
	a.mux.HandleFunc("DELETE /v1/laboratories/{id}", a.handleDeleteLaboratory)

	// vessels
	a.mux.HandleFunc("GET /v1/vessels", a.handleListVessels)
	a.mux.HandleFunc("GET /v1/vessels/{id}", a.handleGetVessel)
	a.mux.HandleFunc("POST /v1/vessels", a.handleCreateVessel)
	a.mux.HandleFunc("PUT /v1/vessels/{id}", a.handleUpdateVessel)
	a.mux.HandleFunc("DELETE /v1/vessels/{id}", a.handleDeleteVessel)

	// favorites, scoped to the authenticated principal
	a.mux.HandleFunc("GET /v1/favorites", a.handleListFavorites)
	a.mux.HandleFunc("GET /v1/favorites/{collectionId}/check", a.handleCheckFavorite)
	a.mux.HandleFunc("POST /v1/favorites/{collectionId}", a.handleCreateFavorite)
	a.mux.HandleFunc("DELETE /v1/favorites/{collectionId}", a.handleDeleteFavorite)

	// users
	a.mux.HandleFunc("GET /v1/users", a.handleListResearchers)
	a.mux.HandleFunc("GET /v1/users/{id}", a.handleGetUser)
	a.mux.HandleFunc("GET /v1/users/{id}/statistics", a.handleUserStatistics)
	a.mux.HandleFunc("PUT /v1/users/{id}/profile", a.handleUpdateUserProfile)
	a.mux.HandleFunc("PUT /v1/users/{id}/role", a.handleUpdateUserRole)
	a.mux.HandleFunc("PUT /v1/users/{id}/status", a.handleUpdateUserStatus)
}

// Handler assembles the middleware chain around the mux.
func (a *API) Handler() http.Handler {
	var h http.Handler = a.mux
	h = a.withAuth(h)
	h = Logging(h)
	h = RequestID(h)
	h = RateLimit(h, a.rateBurst, a.ratePerSec)
	h = MaxBodyBytes(h, a.maxBodyBytes)
	h = CORS(h)
	h = SecurityHeaders(h)
	return obs.Instrument(h)
}

// --- health handlers ---

func (a *API) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "maricoleta-api",
		"version": a.version,
	})
}

func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	if err := a.readyProbe.Check(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"status": "not_ready",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ready"})
}

func (a *API) info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":    "maricoleta-api",
		"time":    time.Now().UTC().Format(time.RFC3339),
		"version": a.version,
	})
}
