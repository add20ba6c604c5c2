package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"avika/internal/model"
	"avika/internal/repository"
	"avika/internal/service"
	"avika/internal/transport/rest/handler"
	"avika/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	Catalog         *model.Catalog
	SessionStore    repository.SessionStore
	DialogueService *service.DialogueService
	WSHub           *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	sessionHandler := handler.NewSessionHandler(c.DialogueService)
	reportHandler := handler.NewReportHandler(c.DialogueService)
	catalogHandler := handler.NewCatalogHandler(c.Catalog)
	wsHandler := ws.NewHandler(c.WSHub, c.SessionStore)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/sessions", sessionHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}", sessionHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/sessions/{id}", sessionHandler.Delete).Methods("DELETE", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/messages", sessionHandler.Message).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/answers/{itemID}", sessionHandler.ManualAnswer).Methods("PUT", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/simulate", sessionHandler.Simulate).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{id}/report", reportHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/catalog", catalogHandler.Get).Methods("GET", "OPTIONS")

	// WebSocket routes
	v1.HandleFunc("/ws/sessions/{id}", wsHandler.AttachWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
