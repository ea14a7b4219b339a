package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mealplan-simple/services"
	"github.com/mealplan-simple/validation"
	"github.com/sirupsen/logrus"
)

// handleServiceError maps service and validation errors to HTTP
// responses. Unexpected errors are logged and surfaced as a generic 500
// without internal detail.
func handleServiceError(c *gin.Context, err error) {
	var validationErr *validation.Error
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, services.ErrDuplicateCredential):
		c.JSON(http.StatusConflict, gin.H{"message": "User with this email or username already exists"})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	default:
		logrus.WithError(err).Error("unhandled internal error")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}
