package services

import (
	"errors"

	"github.com/mealplan-simple/dto"
	"github.com/mealplan-simple/models"
	"github.com/mealplan-simple/validation"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// MealStore is the slot persistence contract consumed by MealService
type MealStore interface {
	ListForUser(userID string) ([]models.Meal, error)
	Upsert(userID string, day models.DayOfWeek, mealType models.MealType, name string, description *string) (*models.Meal, error)
	UpdateOwned(userID, mealID, name string, description *string) (int64, error)
	FindOwned(userID, mealID string) (*models.Meal, error)
	DeleteOwned(userID, mealID string) (int64, error)
}

// MealService implements the weekly-grid operations, always scoped to the
// calling user
type MealService struct {
	meals MealStore
}

// NewMealService creates a meal service over the given slot store
func NewMealService(meals MealStore) *MealService {
	return &MealService{meals: meals}
}

// List returns all meals of the user in grid order
func (s *MealService) List(userID string) ([]models.Meal, error) {
	return s.meals.ListForUser(userID)
}

// Upsert assigns a meal to a slot, replacing whatever the slot held
func (s *MealService) Upsert(userID string, req dto.CreateMealRequest) (*models.Meal, error) {
	name, err := validation.ValidateMealSlot(req.DayOfWeek, req.MealType, req.Name)
	if err != nil {
		return nil, err
	}

	meal, err := s.meals.Upsert(userID, req.DayOfWeek, req.MealType, name, validation.NormalizeDescription(req.Description))
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"userId": userID,
		"day":    req.DayOfWeek,
		"type":   req.MealType,
	}).Info("meal slot upserted")
	return meal, nil
}

// UpdateByID updates a user-owned meal. A meal that does not exist and a
// meal owned by someone else are indistinguishable to the caller.
func (s *MealService) UpdateByID(userID, mealID string, req dto.UpdateMealRequest) (*models.Meal, error) {
	name, err := validation.ValidateMealName(req.Name)
	if err != nil {
		return nil, err
	}

	affected, err := s.meals.UpdateOwned(userID, mealID, name, validation.NormalizeDescription(req.Description))
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	meal, err := s.meals.FindOwned(userID, mealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return meal, nil
}

// DeleteByID deletes a user-owned meal
func (s *MealService) DeleteByID(userID, mealID string) error {
	affected, err := s.meals.DeleteOwned(userID, mealID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	logrus.WithFields(logrus.Fields{"userId": userID, "mealId": mealID}).Info("meal deleted")
	return nil
}
