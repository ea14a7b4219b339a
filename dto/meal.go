package dto

import (
	"github.com/mealplan-simple/models"
)

// CreateMealRequest represents an upsert into a weekly slot
type CreateMealRequest struct {
	DayOfWeek   models.DayOfWeek `json:"dayOfWeek"`
	MealType    models.MealType  `json:"mealType"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
}

// UpdateMealRequest represents an update of an existing meal by id
type UpdateMealRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
