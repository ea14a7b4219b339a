package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "github.com/mealplan-simple/api/v1"
	"github.com/mealplan-simple/config"
	"github.com/mealplan-simple/database"
	"github.com/mealplan-simple/metrics"
	"github.com/mealplan-simple/middleware"
	"github.com/mealplan-simple/repositories"
	"github.com/mealplan-simple/services"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})

	// Connect to database and migrate schema
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("✅ Connected to database")

	// Wire repositories and services
	userRepo := repositories.NewUserRepository(db)
	mealRepo := repositories.NewMealRepository(db)
	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.TokenLifetime())
	authService := services.NewAuthService(userRepo, tokenService, cfg.BcryptCost)
	mealService := services.NewMealService(mealRepo)

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: false,
	}))

	// Request metrics
	collector := metrics.NewCollector()
	router.Use(collector.Middleware())
	router.GET("/metrics", collector.Handler())

	// API routes
	apiV1 := router.Group("/api/v1")
	v1.RegisterRoutes(apiV1, authService, mealService, tokenService)

	// Start server
	log.Printf("🚀 Meal Planner API starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
