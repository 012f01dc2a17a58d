package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"liftlog/workout-app/internal/advisor"
	"liftlog/workout-app/internal/api"
	"liftlog/workout-app/internal/config"
	"liftlog/workout-app/internal/repository"
	"liftlog/workout-app/internal/repository/memory"
	mongorepo "liftlog/workout-app/internal/repository/mongo"
	"liftlog/workout-app/internal/service"
	"liftlog/workout-app/internal/storage"
)

func main() {
	log.Println("Starting LiftLog Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Persistence: remote database or demo mode ---
	var profileRepo repository.ProfileRepository
	var workoutRepo repository.WorkoutRepository

	if cfg.Database.Configured() {
		dbClient, err := mongorepo.ConnectDB(cfg.Database.URI)
		if err != nil {
			log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
		}
		defer func() {
			log.Println("Disconnecting MongoDB...")
			if err := mongorepo.DisconnectDB(dbClient); err != nil {
				log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
			}
		}()
		appDB := dbClient.Database(cfg.Database.Name)
		log.Println("Database connection established.")

		go func() { // Run index creation in the background
			ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
			defer cancel()
			mongorepo.EnsureProfileIndexes(ctx, appDB.Collection("profiles"))
			mongorepo.EnsureWorkoutIndexes(ctx, appDB.Collection("workouts"))
			log.Println("Index creation process completed.")
		}()

		profileRepo = mongorepo.NewMongoProfileRepository(appDB)
		workoutRepo = mongorepo.NewMongoWorkoutRepository(appDB)
	} else {
		log.Println("WARN: No database configured; running in demo mode (in-memory, nothing survives restart).")
		profileRepo = memory.NewProfileRepository()
		workoutRepo = memory.NewWorkoutRepository()
	}

	// --- File Storage (optional) ---
	var fileStorage storage.FileStorage
	if cfg.S3.Configured() {
		fileStorage, err = storage.NewS3Storage(cfg.S3)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
		}
	} else {
		log.Println("WARN: No S3 storage configured; avatar uploads are disabled.")
	}

	// --- AI Coach (optional) ---
	var advisorClient advisor.Advisor
	if cfg.AI.Configured() {
		advisorClient = advisor.NewClient(cfg.AI.BaseURL, cfg.AI.APIKey, cfg.AI.Model, cfg.AI.Temperature)
		log.Printf("AI coach enabled (model: %s).", cfg.AI.Model)
	} else {
		log.Println("WARN: No AI API key configured; chat replies with a static fallback.")
	}

	// --- Initialize Services ---
	log.Println("Initializing services...")
	authService := service.NewAuthService(profileRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	profileService := service.NewProfileService(profileRepo, fileStorage)
	workoutService := service.NewWorkoutService(workoutRepo)
	advisorService := service.NewAdvisorService(advisorClient)

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret, authService, profileService, workoutService, advisorService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
