package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mealplan-simple/dto"
	"github.com/mealplan-simple/middleware"
	"github.com/mealplan-simple/services"
)

// MealController exposes the weekly meal grid endpoints
type MealController struct {
	meals *services.MealService
}

// NewMealController creates a new meal controller
func NewMealController(meals *services.MealService) *MealController {
	return &MealController{meals: meals}
}

// List returns all meals of the authenticated user in grid order
func (ctrl *MealController) List(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	meals, err := ctrl.meals.List(userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, meals)
}

// Create upserts a meal into its weekly slot
func (ctrl *MealController) Create(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	var req dto.CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	meal, err := ctrl.meals.Upsert(userID, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, meal)
}

// Update modifies a meal by id, scoped to the authenticated owner
func (ctrl *MealController) Update(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	mealID := c.Param("id")
	if mealID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Meal ID is required"})
		return
	}

	var req dto.UpdateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	meal, err := ctrl.meals.UpdateByID(userID, mealID, req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, meal)
}

// Delete removes a meal by id, scoped to the authenticated owner
func (ctrl *MealController) Delete(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	mealID := c.Param("id")
	if mealID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Meal ID is required"})
		return
	}

	if err := ctrl.meals.DeleteByID(userID, mealID); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Meal deleted successfully"})
}
