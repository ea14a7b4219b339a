package models

import (
	"time"
)

// User represents a registered account
type User struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid"`
	Username     string     `json:"username" gorm:"size:50;uniqueIndex;not null"`
	Email        string     `json:"email" gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string     `json:"-" gorm:"column:password_hash;size:255;not null"` // Hash is not exposed in JSON
	CreatedAt    time.Time  `json:"createdAt"`
	LastLoginAt  *time.Time `json:"lastLogin" gorm:"column:last_login"`
}

// TableName matches the table name used by the production schema
func (User) TableName() string {
	return "meal_planner_users"
}
