package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/radosukala/worthle/internal/analytics"
	"github.com/radosukala/worthle/internal/auth"
	"github.com/radosukala/worthle/internal/authoring"
	"github.com/radosukala/worthle/internal/catalog"
	"github.com/radosukala/worthle/internal/database"
	"github.com/radosukala/worthle/internal/game"
	"github.com/radosukala/worthle/internal/middleware"
	"github.com/radosukala/worthle/internal/play"
	"github.com/radosukala/worthle/internal/streak"
)

func main() {
	// Initialize database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Load question catalogs. A catalog that fails validation is a build
	// defect, so startup stops here.
	repo, err := catalog.Load()
	if err != nil {
		log.Fatalf("Failed to load question catalogs: %v", err)
	}
	log.Printf("[catalog] loaded %d questions across %d pools", repo.Size(), repo.PoolCount())

	// Initialize services and handlers
	selector := game.NewSelector(repo)
	tracker := streak.NewTracker(streak.NewPostgresKV(db))
	playService := play.NewService(selector, tracker, play.NewStore(db))

	authHandler := auth.NewHandler()
	playHandler := play.NewHandler(playService)
	analyticsHandler := analytics.NewHandler(db)

	llmClient, model := authoring.NewClient()
	authoringHandler := authoring.NewHandler(llmClient, model)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/session", authHandler.CreateSession).Methods("POST")
	api.HandleFunc("/meta", playHandler.GetMeta).Methods("GET")
	api.HandleFunc("/questions", playHandler.GetQuestions).Methods("GET")
	api.HandleFunc("/share/{shareID}", playHandler.GetShared).Methods("GET")
	api.HandleFunc("/ping", analyticsHandler.Ping).Methods("POST")

	// Protected routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/games/complete", playHandler.CompleteGame).Methods("POST")
	protected.HandleFunc("/games/{shareID}/salary", playHandler.ComputeSalary).Methods("POST")
	protected.HandleFunc("/games/{shareID}/sentiment", playHandler.RecordSentiment).Methods("POST")
	protected.HandleFunc("/streak", playHandler.GetStreak).Methods("GET")
	protected.HandleFunc("/daily-identity", playHandler.GetDailyIdentity).Methods("GET")
	protected.HandleFunc("/daily-identity", playHandler.PutDailyIdentity).Methods("PUT")

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminMiddleware)
	admin.HandleFunc("/questions/draft", authoringHandler.DraftQuestions).Methods("POST")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Admin-Key"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
