package services

import (
	"errors"

	"github.com/mealplan-simple/dto"
	"github.com/mealplan-simple/models"
	"github.com/mealplan-simple/validation"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserStore is the credential persistence contract consumed by AuthService
type UserStore interface {
	FindByUsernameOrEmail(username, email string) (*models.User, error)
	Create(username, email, passwordHash string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByID(id string) (*models.User, error)
	TouchLastLogin(id string) error
}

// AuthService handles registration, login and session introspection
type AuthService struct {
	users      UserStore
	tokens     *TokenService
	bcryptCost int
}

// NewAuthService creates an auth service over the given user store
func NewAuthService(users UserStore, tokens *TokenService, bcryptCost int) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{users: users, tokens: tokens, bcryptCost: bcryptCost}
}

// Register validates the payload, creates the account and issues a token.
// The pre-insert duplicate check gives a fast answer, but a unique
// violation at insert time is treated as authoritative so concurrent
// registrations cannot both win.
func (s *AuthService) Register(req dto.RegisterRequest) (*dto.AuthResponse, error) {
	data, err := validation.ValidateRegistration(req.Username, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.FindByUsernameOrEmail(data.Username, data.Email); err == nil {
		return nil, ErrDuplicateCredential
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(data.Username, data.Email, string(hash))
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateCredential
		}
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"userId": user.ID, "username": user.Username}).
		Info("user registered")
	return &dto.AuthResponse{Token: token, User: *user}, nil
}

// Login authenticates a user by email and password and issues a token.
// Unknown email and wrong password produce the same error.
func (s *AuthService) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	data, err := validation.ValidateLogin(req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(data.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(data.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Fire-and-forget: a failed stamp never fails the login
	if err := s.users.TouchLastLogin(user.ID); err != nil {
		logrus.WithError(err).WithField("userId", user.ID).Warn("failed to update last login")
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	logrus.WithField("userId", user.ID).Info("user logged in")
	return &dto.AuthResponse{Token: token, User: *user}, nil
}

// CurrentUser retrieves the account behind an authenticated session
func (s *AuthService) CurrentUser(userID string) (*models.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// Logout stamps last login for bookkeeping. The token itself stays valid
// until it expires; discarding it is the client's job.
func (s *AuthService) Logout(userID string) {
	if err := s.users.TouchLastLogin(userID); err != nil {
		logrus.WithError(err).WithField("userId", userID).Warn("failed to update last login on logout")
	}
}
