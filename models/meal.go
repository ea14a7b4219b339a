package models

import (
	"time"
)

// DayOfWeek enumerates the seven weekday names used by the planner grid
type DayOfWeek string

const (
	Monday    DayOfWeek = "Monday"
	Tuesday   DayOfWeek = "Tuesday"
	Wednesday DayOfWeek = "Wednesday"
	Thursday  DayOfWeek = "Thursday"
	Friday    DayOfWeek = "Friday"
	Saturday  DayOfWeek = "Saturday"
	Sunday    DayOfWeek = "Sunday"
)

// Days lists all weekdays in calendar order (Monday first)
var Days = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// IsValid reports whether d is one of the seven weekday names
func (d DayOfWeek) IsValid() bool {
	for _, day := range Days {
		if d == day {
			return true
		}
	}
	return false
}

// MealType enumerates the three meal slots of a day
type MealType string

const (
	Breakfast MealType = "Breakfast"
	Lunch     MealType = "Lunch"
	Dinner    MealType = "Dinner"
)

// MealTypes lists meal types in their display order
var MealTypes = []MealType{Breakfast, Lunch, Dinner}

// IsValid reports whether m is Breakfast, Lunch or Dinner
func (m MealType) IsValid() bool {
	for _, mt := range MealTypes {
		if m == mt {
			return true
		}
	}
	return false
}

// Meal represents one planned meal. At most one meal exists per
// (user, day of week, meal type) slot; the composite unique index
// enforces this at the database level.
type Meal struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	UserID      string    `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_meal_slot"`
	DayOfWeek   DayOfWeek `json:"dayOfWeek" gorm:"size:10;not null;uniqueIndex:idx_meal_slot"`
	MealType    MealType  `json:"mealType" gorm:"size:10;not null;uniqueIndex:idx_meal_slot"`
	Name        string    `json:"name" gorm:"column:meal_name;size:150;not null"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	User User `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

// TableName matches the table name used by the production schema
func (Meal) TableName() string {
	return "meals"
}
