package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/mealplan-simple/middleware"
	"github.com/mealplan-simple/services"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, auth *services.AuthService, meals *services.MealService, tokens *services.TokenService) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	authGate := middleware.AuthMiddleware(tokens)

	// Auth endpoints
	authController := NewAuthController(auth)
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", authController.Register)
		authGroup.POST("/login", authController.Login)
		// The gate applies only to session introspection and logout
		authGroup.GET("/me", authGate, authController.Me)
		authGroup.POST("/logout", authGate, authController.Logout)
	}

	// Meal endpoints - all protected by the auth gate
	mealController := NewMealController(meals)
	mealGroup := router.Group("/meals")
	mealGroup.Use(authGate)
	{
		mealGroup.GET("", mealController.List)
		mealGroup.POST("", mealController.Create)
		mealGroup.PUT("/:id", mealController.Update)
		mealGroup.DELETE("/:id", mealController.Delete)
	}
}
