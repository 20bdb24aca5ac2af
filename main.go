package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ascendai/backend/auth"
	"github.com/ascendai/backend/config"
	_ "github.com/ascendai/backend/docs"
	"github.com/ascendai/backend/gemini"
	"github.com/ascendai/backend/handlers"
	"github.com/ascendai/backend/jobsearch"
	"github.com/ascendai/backend/storage"
	"github.com/ascendai/backend/utils"
)

// @title AscendAI API
// @version 1.0
// @description AI-powered career assistant backend with resume parsing, job matching, ATS scoring, roadmap and interview preparation.

// @contact.name API Support
// @contact.email support@ascendai.dev

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load .env file if present (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Set Gin mode based on debug setting
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Uploads are written here and removed after each request
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	// Create context for initialization
	ctx := context.Background()

	// Initialize Firestore client
	log.Println("Initializing Firestore client...")
	firestoreClient, err := storage.NewFirestoreClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Firestore client: %v", err)
	}
	defer firestoreClient.Close()
	log.Println("Firestore client initialized successfully")

	// Initialize Gemini client
	log.Println("Initializing Gemini client...")
	geminiClient, err := gemini.NewClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}
	defer geminiClient.Close()
	log.Println("Gemini client initialized successfully")

	// Initialize supporting services
	jwtService := auth.NewJWTService(cfg)
	searchClient := jobsearch.NewClient(cfg)
	extractor := utils.NewDocumentExtractor()

	// Create handlers
	authHandler := handlers.NewAuthHandler(firestoreClient, jwtService)
	jobHandler := handlers.NewJobHandler(firestoreClient, firestoreClient, searchClient, geminiClient, extractor, cfg)
	atsHandler := handlers.NewATSHandler(geminiClient, extractor, cfg)
	roadmapHandler := handlers.NewRoadmapHandler(geminiClient, extractor, cfg)
	questionHandler := handlers.NewQuestionBankHandler(geminiClient, extractor, cfg)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// Configure CORS for the frontend
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Register routes
	api := router.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/signup", authHandler.Signup)
			authGroup.POST("/login", authHandler.Login)
			authGroup.GET("/profile/:userId", auth.OptionalAuthMiddleware(jwtService), authHandler.Profile)
		}

		jobGroup := api.Group("/jobs")
		{
			jobGroup.POST("/uploadresume", jobHandler.UploadResume)
			jobGroup.POST("/shortlist", jobHandler.ShortlistJob)
			jobGroup.GET("/shortlisted/:userId", jobHandler.ListShortlisted)
			jobGroup.DELETE("/shortlisted/:jobId", jobHandler.RemoveShortlisted)
		}

		api.POST("/ats-score/analyze", atsHandler.Analyze)

		api.POST("/roadmap/generate", roadmapHandler.Generate)

		questionGroup := api.Group("/question-bank")
		{
			questionGroup.POST("/generate-from-resume", questionHandler.GenerateFromResume)
			questionGroup.POST("/generate-from-role", questionHandler.GenerateFromRole)
			questionGroup.POST("/analyze", questionHandler.AnalyzeResponse)
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
