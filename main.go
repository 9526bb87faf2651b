package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/traffbase/clickmap/authenticator"
	"github.com/traffbase/clickmap/config"
	"github.com/traffbase/clickmap/controllers"
	"github.com/traffbase/clickmap/database"
	"github.com/traffbase/clickmap/feed"
	appmiddleware "github.com/traffbase/clickmap/middleware"
	"github.com/traffbase/clickmap/repositories"
	"github.com/traffbase/clickmap/services"
)

func main() {
	// Load environment variables from .env file, if one exists
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Initialize repositories
	repos := repositories.NewRepositories(db)

	// External feed client
	feedClient := feed.NewClient(cfg.FeedAPIURL, cfg.FeedAPIKey, nil)

	// Initialize services
	srvs := services.NewServices(repos, feedClient)

	// Operator token manager
	auth := authenticator.NewManager(cfg.JWTSecret, cfg.JWTExpiry)

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs, auth, cfg)

	// Set up router
	r := setupRouter(ctrl, auth, repos, cfg)

	fmt.Printf("Clickmap backend starting on port %s\n", cfg.Port)
	fmt.Printf("Database: %s\n", cfg.DBPath)

	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, auth *authenticator.Manager, repos *repositories.Repositories, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(120 * time.Second)) // sync runs can take a while
	r.Use(chimiddleware.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Api-Key"},
	}))

	// PUBLIC ROUTES (no authentication required)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "ok", "service": "clickmap"}`)
	})

	r.Post("/api/auth/login", ctrl.Auth.Login)

	// Resolution API mode: optional shared-secret gate, requests logged
	r.Group(func(r chi.Router) {
		r.Use(appmiddleware.ResolveGate(cfg.ResolveAPIKey))
		r.Use(appmiddleware.RequestLogger(repos.RequestLog))
		r.Get("/api/tracker/sub_id", ctrl.Resolve.GetSubID)
		r.Post("/api/tracker/sub_id", ctrl.Resolve.GetSubID)
	})

	// Resolution redirect mode: unauthenticated, used directly by the tracker
	r.Get("/r", ctrl.Resolve.Redirect)
	r.Post("/r", ctrl.Resolve.Redirect)

	// PROTECTED ROUTES (operator authentication required)
	r.Group(func(r chi.Router) {
		r.Use(appmiddleware.RequireAuth(auth))
		r.Use(appmiddleware.RequestLogger(repos.RequestLog))

		r.Get("/api/auth/verify", ctrl.Auth.Verify)

		// Ingestion and mapping reads
		r.Route("/api/clicks", func(r chi.Router) {
			r.Post("/process", ctrl.Sync.ProcessClicks)
			r.Get("/data", ctrl.Sync.GetMappings)
		})

		// Resolution log
		r.Route("/api/resolutions", func(r chi.Router) {
			r.Get("/", ctrl.Logs.ListResolutionLogs)
			r.Delete("/cleanup", ctrl.Logs.CleanupResolutionLogs)
			r.Get("/{id}", ctrl.Logs.GetResolutionLog)
		})

		// Request log
		r.Route("/api/requests", func(r chi.Router) {
			r.Get("/", ctrl.Logs.ListRequestLogs)
			r.Delete("/cleanup", ctrl.Logs.CleanupRequestLogs)
			r.Get("/{id}", ctrl.Logs.GetRequestLog)
		})

		// Settings
		r.Route("/api/settings", func(r chi.Router) {
			r.Get("/", ctrl.Settings.GetSettings)
			r.Post("/", ctrl.Settings.UpdateSettings)
		})
	})

	return r
}
