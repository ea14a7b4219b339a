package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/mealplan-simple/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// slotOrder sorts meals by calendar day then meal type for the weekly grid
const slotOrder = `CASE day_of_week
		WHEN 'Monday' THEN 1 WHEN 'Tuesday' THEN 2 WHEN 'Wednesday' THEN 3
		WHEN 'Thursday' THEN 4 WHEN 'Friday' THEN 5 WHEN 'Saturday' THEN 6
		WHEN 'Sunday' THEN 7 END,
	CASE meal_type WHEN 'Breakfast' THEN 1 WHEN 'Lunch' THEN 2 WHEN 'Dinner' THEN 3 END`

// MealRepository handles database operations for meal slots
type MealRepository struct {
	db *gorm.DB
}

// NewMealRepository creates a new meal repository backed by the given handle
func NewMealRepository(db *gorm.DB) *MealRepository {
	return &MealRepository{db: db}
}

// ListForUser retrieves all meals of a user ordered Monday through Sunday,
// Breakfast before Lunch before Dinner
func (r *MealRepository) ListForUser(userID string) ([]models.Meal, error) {
	var meals []models.Meal
	result := r.db.Where("user_id = ?", userID).Order(slotOrder).Find(&meals)
	return meals, result.Error
}

// Upsert inserts a meal into its slot, or replaces the slot's
// name/description when the slot is already occupied. The conflict
// resolution happens in a single statement so concurrent writes to the
// same slot cannot create duplicates. The surviving row keeps its
// original id and createdAt.
func (r *MealRepository) Upsert(userID string, day models.DayOfWeek, mealType models.MealType, name string, description *string) (*models.Meal, error) {
	meal := models.Meal{
		ID:          uuid.NewString(),
		UserID:      userID,
		DayOfWeek:   day,
		MealType:    mealType,
		Name:        name,
		Description: description,
	}

	// RETURNING makes the conflict resolution and the read of the
	// surviving row a single statement: on conflict the stored id and
	// createdAt belong to the pre-existing slot, not to the candidate
	// insert.
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"}, {Name: "day_of_week"}, {Name: "meal_type"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"meal_name":   name,
			"description": description,
			"updated_at":  time.Now(),
		}),
	}, clause.Returning{}).Create(&meal).Error
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

// UpdateOwned updates name/description of a meal only when it belongs to
// the given user. Returns the number of rows affected; zero means the
// meal does not exist or is owned by someone else.
func (r *MealRepository) UpdateOwned(userID, mealID, name string, description *string) (int64, error) {
	result := r.db.Model(&models.Meal{}).
		Where("id = ? AND user_id = ?", mealID, userID).
		Updates(map[string]interface{}{
			"meal_name":   name,
			"description": description,
			"updated_at":  time.Now(),
		})
	return result.RowsAffected, result.Error
}

// FindOwned retrieves a meal by id scoped to its owner
func (r *MealRepository) FindOwned(userID, mealID string) (*models.Meal, error) {
	var meal models.Meal
	result := r.db.Where("id = ? AND user_id = ?", mealID, userID).First(&meal)
	if result.Error != nil {
		return nil, result.Error
	}
	return &meal, nil
}

// DeleteOwned deletes a meal by id scoped to its owner. Returns the
// number of rows affected.
func (r *MealRepository) DeleteOwned(userID, mealID string) (int64, error) {
	result := r.db.Where("id = ? AND user_id = ?", mealID, userID).Delete(&models.Meal{})
	return result.RowsAffected, result.Error
}
