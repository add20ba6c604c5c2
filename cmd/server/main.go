package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"avika/internal/catalog"
	"avika/internal/config"
	"avika/internal/repository"
	"avika/internal/service"
	"avika/internal/transport/rest"
	"avika/internal/transport/ws"
)

func main() {
	log.Println("started")

	cfg := config.Load()
	log.Printf("AI Config:")
	log.Printf("  Classify:  %s", cfg.AI.Models.Classify)
	log.Printf("  Reply:     %s", cfg.AI.Models.Reply)
	log.Printf("  FollowUp:  %s", cfg.AI.Models.FollowUp)
	log.Printf("  Simulate:  %s", cfg.AI.Models.Simulate)
	if cfg.AI.IsEnabled() {
		log.Println("  API Key:   configured ✓")
	} else {
		log.Println("  API Key:   NOT SET (using mock provider)")
	}

	// Load questionnaire catalog
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatal("Failed to load catalog:", err)
	}
	log.Printf("Catalog loaded: %d items in %d categories", cat.Len(), len(cat.Categories))

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize store
	sessionStore := repository.NewSessionStore()

	// Initialize provider
	var provider service.Provider
	if cfg.AI.IsEnabled() {
		provider = service.NewGeminiProvider(cfg.AI)
	} else {
		provider = service.NewMockProvider()
	}

	// Initialize services
	reportSvc := service.NewReportService(cat)
	dialogueSvc := service.NewDialogueService(cat, sessionStore, provider, reportSvc, cfg.AI, cfg.Policy)

	// Inject presenter (wsHub implements service.Presenter)
	dialogueSvc.SetPresenter(wsHub)

	// Create router with container
	container := &rest.Container{
		Catalog:         cat,
		SessionStore:    sessionStore,
		DialogueService: dialogueSvc,
		WSHub:           wsHub,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		log.Println("Endpoints:")
		log.Println("  POST   /v1/sessions")
		log.Println("  GET    /v1/sessions/{id}")
		log.Println("  POST   /v1/sessions/{id}/messages")
		log.Println("  PUT    /v1/sessions/{id}/answers/{itemID}")
		log.Println("  POST   /v1/sessions/{id}/simulate")
		log.Println("  GET    /v1/sessions/{id}/report")
		log.Println("  DELETE /v1/sessions/{id}")
		log.Println("  GET    /v1/catalog")
		log.Println("  WS     /v1/ws/sessions/{id}")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
