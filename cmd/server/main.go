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
	"github.com/patrickmn/go-cache"

	"alcyxob/fitmetric/internal/api"
	"alcyxob/fitmetric/internal/config"
	"alcyxob/fitmetric/internal/insight"
	"alcyxob/fitmetric/internal/jobs"
	"alcyxob/fitmetric/internal/repository/mongo"
	"alcyxob/fitmetric/internal/service"
)

func main() {
	log.Println("Starting FitMetric Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	log.Println("Ensuring database indexes...")
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		mongo.EnsurePlanIndexes(ctx, appDB.Collection("exercise_plans"))
		mongo.EnsureWorkoutIndexes(ctx, appDB.Collection("workouts"))
		mongo.EnsureMetricIndexes(ctx, appDB.Collection("daily_metrics"))
		mongo.EnsureExerciseIndexes(ctx, appDB.Collection("exercises"))
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Cache ---
	appCache := cache.New(cfg.Cache.DefaultTTL, cfg.Cache.CleanupInterval)

	// --- Initialize AI Insight Generator ---
	var generator insight.Generator
	if cfg.Gemini.APIKey != "" {
		generator, err = insight.NewGeminiGenerator(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize Gemini client: %v", err)
		}
		log.Printf("AI insight generation enabled (model %s).", cfg.Gemini.Model)
	} else {
		generator = insight.NewDisabledGenerator()
		log.Println("AI insight generation disabled: no API key configured.")
	}

	// --- Initialize n8n Webhook Client ---
	n8nClient := insight.NewN8NClient(cfg.N8N.BaseURL, cfg.N8N.Secret)
	if !n8nClient.Enabled() {
		log.Println("n8n automation disabled: no base URL configured.")
	}

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	userRepo := mongo.NewMongoUserRepository(appDB)
	planRepo := mongo.NewMongoPlanRepository(appDB)
	workoutRepo := mongo.NewMongoWorkoutRepository(appDB)
	metricRepo := mongo.NewMongoMetricRepository(appDB)
	exerciseRepo := mongo.NewMongoExerciseRepository(appDB)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	authService := service.NewAuthService(userRepo, generator, appCache, cfg.JWT.Secret, cfg.JWT.Expiration)
	planService := service.NewPlanService(planRepo, userRepo)
	workoutService := service.NewWorkoutService(workoutRepo, generator, n8nClient, appCache)
	metricService := service.NewMetricService(metricRepo, userRepo)
	exerciseService := service.NewExerciseService(exerciseRepo, appCache)

	// --- Seed Exercise Library ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		if err := exerciseService.SeedDefaults(ctx); err != nil {
			log.Printf("ERROR: Failed to seed exercise library: %v", err)
			return
		}
		log.Println("Exercise library seeded.")
	}()

	// --- Start Background Jobs ---
	notificationJob := jobs.NewNotificationJob(userRepo, workoutRepo, generator, n8nClient)
	if err := notificationJob.Start(); err != nil {
		log.Fatalf("FATAL: Could not start notification job: %v", err)
	}
	defer notificationJob.Stop()

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret, authService, planService, workoutService, metricService, exerciseService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

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
