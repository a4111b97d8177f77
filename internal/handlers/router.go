// Package handlers exposes the sync engine over HTTP for household
// clients.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pantrybase/pantrygo/internal/auth"
	"github.com/pantrybase/pantrygo/internal/config"
	"github.com/pantrybase/pantrygo/internal/gtin"
	"github.com/pantrybase/pantrygo/internal/inventory"
	"github.com/pantrybase/pantrygo/internal/models"
	"github.com/pantrybase/pantrygo/internal/ws"
)

// GTINSnapshots persists scanned product codes between runs.
type GTINSnapshots interface {
	SaveGTINRecords(records []models.GTINItem) error
}

// Router wraps the mux router and the engine services
type Router struct {
	*mux.Router
	store     *inventory.Store
	cache     *gtin.Cache
	session   *auth.SessionProvider
	snapshots GTINSnapshots
	hub       *ws.Hub
	cfg       *config.Config
}

// NewRouter creates a new HTTP router with all routes
func NewRouter(store *inventory.Store, cache *gtin.Cache, session *auth.SessionProvider, snapshots GTINSnapshots, hub *ws.Hub, cfg *config.Config) *Router {
	r := &Router{
		Router:    mux.NewRouter(),
		store:     store,
		cache:     cache,
		session:   session,
		snapshots: snapshots,
		hub:       hub,
		cfg:       cfg,
	}

	// Health check endpoint
	r.HandleFunc("/health", r.healthCheck).Methods("GET")

	// Auth routes
	authRoutes := r.PathPrefix("/auth").Subrouter()
	authRoutes.HandleFunc("/login", r.login).Methods("POST")
	authRoutes.HandleFunc("/session", r.installSession).Methods("POST")
	authRoutes.HandleFunc("/logout", r.logout).Methods("POST")

	// Protected API routes
	api := r.PathPrefix("/api").Subrouter()
	api.Use(auth.Middleware(cfg.JWTSecret))

	api.HandleFunc("/sync/state", r.syncState).Methods("GET")
	api.HandleFunc("/sync/resync", r.resync).Methods("POST")

	items := api.PathPrefix("/items").Subrouter()
	items.HandleFunc("", r.listItems).Methods("GET")
	items.HandleFunc("", r.createItem).Methods("POST")
	items.HandleFunc("/{id}", r.getItem).Methods("GET")
	items.HandleFunc("/{id}", r.updateItem).Methods("PUT")
	items.HandleFunc("/{id}", r.deleteItem).Methods("DELETE")

	api.HandleFunc("/scan/{code}", r.scanCode).Methods("GET")
	api.HandleFunc("/scan/{code}", r.recordScan).Methods("PUT")

	api.HandleFunc("/print/labels", r.printLabels).Methods("POST")

	// Websocket event stream
	r.HandleFunc("/ws", func(w http.ResponseWriter, req *http.Request) {
		ws.ServeWs(hub, w, req)
	})

	return r
}

// healthCheck returns the health status of the API
func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"sync":   r.store.State().String(),
	})
}

// syncState reports where the engine is in its lifecycle
func (r *Router) syncState(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"state":     r.store.State().String(),
		"uid":       r.store.UID(),
		"powerUser": r.store.IsPowerUser(),
	})
}

// resync re-runs reconciliation on demand
func (r *Router) resync(w http.ResponseWriter, req *http.Request) {
	if err := r.store.Resync(req.Context()); err != nil {
		respondError(w, http.StatusServiceUnavailable, "Resync failed: "+err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"state": r.store.State().String(),
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
