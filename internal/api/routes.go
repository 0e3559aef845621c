package api

import (
	"github.com/gorilla/mux"
)

// SetupRoutes configures all API routes.
func SetupRoutes(handler *Handler) *mux.Router {
	r := mux.NewRouter()

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/signal/{symbol}", handler.GetSignal).Methods("GET")
	api.HandleFunc("/position-size", handler.PositionSize).Methods("POST")
	api.HandleFunc("/account", handler.GetAccount).Methods("GET")

	return r
}
