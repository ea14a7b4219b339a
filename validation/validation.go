package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mealplan-simple/models"
)

// Error is a user-correctable input failure. Handlers map every *Error
// to HTTP 400 and return the message verbatim.
type Error struct {
	msg string
}

func (e *Error) Error() string {
	return e.msg
}

func newError(msg string) *Error {
	return &Error{msg: msg}
}

var (
	ErrInvalidUsername  = newError("Username must be at least 4 characters long.")
	ErrInvalidEmail     = newError("Please provide a valid email address.")
	ErrWeakPassword     = newError("Password must be at least 8 characters and include 1 uppercase letter and 1 number.")
	ErrPasswordMismatch = newError("Password and confirm password do not match.")
	ErrMissingPassword  = newError("Password is required.")
	ErrInvalidDay       = newError("Invalid day of week.")
	ErrInvalidMealType  = newError("Invalid meal type. Must be Breakfast, Lunch, or Dinner.")
	ErrInvalidMealName  = newError("Meal name must be between 1 and 150 characters.")
)

var (
	emailRegex     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	digitRegex     = regexp.MustCompile(`[0-9]`)
)

// NormalizeEmail trims whitespace and lowercases an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Registration is a normalized, validated registration payload
type Registration struct {
	Username string
	Email    string
	Password string
}

// Login is a normalized, validated login payload
type Login struct {
	Email    string
	Password string
}

// ValidateRegistration normalizes and checks a registration payload.
// Checks run in a fixed order and the first failure is returned.
func ValidateRegistration(username, email, password, confirmPassword string) (*Registration, error) {
	username = strings.TrimSpace(username)
	email = NormalizeEmail(email)

	// Lengths count characters, not bytes
	if utf8.RuneCountInString(username) < 4 {
		return nil, ErrInvalidUsername
	}
	if !emailRegex.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if utf8.RuneCountInString(password) < 8 || !uppercaseRegex.MatchString(password) || !digitRegex.MatchString(password) {
		return nil, ErrWeakPassword
	}
	if password != confirmPassword {
		return nil, ErrPasswordMismatch
	}

	return &Registration{Username: username, Email: email, Password: password}, nil
}

// ValidateLogin normalizes and checks a login payload
func ValidateLogin(email, password string) (*Login, error) {
	email = NormalizeEmail(email)

	if !emailRegex.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if password == "" {
		return nil, ErrMissingPassword
	}

	return &Login{Email: email, Password: password}, nil
}

// ValidateMealName trims the name and checks its character count is in [1,150]
func ValidateMealName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if length := utf8.RuneCountInString(name); length == 0 || length > 150 {
		return "", ErrInvalidMealName
	}
	return name, nil
}

// ValidateMealSlot checks the slot coordinates and the meal name.
// Returns the trimmed name on success.
func ValidateMealSlot(day models.DayOfWeek, mealType models.MealType, name string) (string, error) {
	if !day.IsValid() {
		return "", ErrInvalidDay
	}
	if !mealType.IsValid() {
		return "", ErrInvalidMealType
	}
	return ValidateMealName(name)
}

// NormalizeDescription trims an optional description; empty becomes absent
func NormalizeDescription(description string) *string {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil
	}
	return &description
}
