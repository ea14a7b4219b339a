package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mealplan-simple/models"
	"github.com/mealplan-simple/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type memUserStore struct {
	users []*models.User
}

func (s *memUserStore) FindByUsernameOrEmail(username, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Username == username || u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *memUserStore) Create(username, email, passwordHash string) (*models.User, error) {
	for _, u := range s.users {
		if u.Username == username || u.Email == email {
			return nil, gorm.ErrDuplicatedKey
		}
	}
	user := &models.User{ID: uuid.NewString(), Username: username, Email: email, PasswordHash: passwordHash, CreatedAt: time.Now()}
	s.users = append(s.users, user)
	return user, nil
}

func (s *memUserStore) FindByEmail(email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *memUserStore) FindByID(id string) (*models.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *memUserStore) TouchLastLogin(id string) error {
	now := time.Now()
	for _, u := range s.users {
		if u.ID == id {
			u.LastLoginAt = &now
		}
	}
	return nil
}

type memMealStore struct {
	meals []*models.Meal
}

func (s *memMealStore) ListForUser(userID string) ([]models.Meal, error) {
	var out []models.Meal
	for _, d := range models.Days {
		for _, mt := range models.MealTypes {
			for _, m := range s.meals {
				if m.UserID == userID && m.DayOfWeek == d && m.MealType == mt {
					out = append(out, *m)
				}
			}
		}
	}
	return out, nil
}

func (s *memMealStore) Upsert(userID string, day models.DayOfWeek, mealType models.MealType, name string, description *string) (*models.Meal, error) {
	for _, m := range s.meals {
		if m.UserID == userID && m.DayOfWeek == day && m.MealType == mealType {
			m.Name = name
			m.Description = description
			m.UpdatedAt = time.Now()
			copied := *m
			return &copied, nil
		}
	}
	meal := &models.Meal{
		ID: uuid.NewString(), UserID: userID, DayOfWeek: day, MealType: mealType,
		Name: name, Description: description, CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	s.meals = append(s.meals, meal)
	copied := *meal
	return &copied, nil
}

func (s *memMealStore) UpdateOwned(userID, mealID, name string, description *string) (int64, error) {
	for _, m := range s.meals {
		if m.ID == mealID && m.UserID == userID {
			m.Name = name
			m.Description = description
			m.UpdatedAt = time.Now()
			return 1, nil
		}
	}
	return 0, nil
}

func (s *memMealStore) FindOwned(userID, mealID string) (*models.Meal, error) {
	for _, m := range s.meals {
		if m.ID == mealID && m.UserID == userID {
			copied := *m
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *memMealStore) DeleteOwned(userID, mealID string) (int64, error) {
	for i, m := range s.meals {
		if m.ID == mealID && m.UserID == userID {
			s.meals = append(s.meals[:i], s.meals[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func newTestAPI() *gin.Engine {
	gin.SetMode(gin.TestMode)

	tokens := services.NewTokenService("test-secret", time.Hour)
	auth := services.NewAuthService(&memUserStore{}, tokens, bcrypt.MinCost)
	meals := services.NewMealService(&memMealStore{})

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"), auth, meals, tokens)
	return router
}

func doJSON(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, router *gin.Engine, username, email string) (token string, userID string) {
	t.Helper()
	w := doJSON(router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username":        username,
		"email":           email,
		"password":        "Passw0rd",
		"confirmPassword": "Passw0rd",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token, resp.User.ID
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestAPI()
	w := doJSON(router, http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestRegisterNormalizesEmailAndHidesHash(t *testing.T) {
	router := newTestAPI()
	w := doJSON(router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username":        "planneruser",
		"email":           "A@B.com",
		"password":        "Passw0rd",
		"confirmPassword": "Passw0rd",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"email":"a@b.com"`)
	assert.NotContains(t, w.Body.String(), "password")
	assert.NotContains(t, w.Body.String(), "hash")
}

func TestRegisterValidationAndDuplicate(t *testing.T) {
	router := newTestAPI()

	w := doJSON(router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username":        "abc",
		"email":           "a@b.com",
		"password":        "Passw0rd",
		"confirmPassword": "Passw0rd",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	registerUser(t, router, "planneruser", "a@b.com")

	w = doJSON(router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username":        "planneruser",
		"email":           "a@b.com",
		"password":        "Passw0rd",
		"confirmPassword": "Passw0rd",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	router := newTestAPI()
	registerUser(t, router, "planneruser", "A@B.com")

	w := doJSON(router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "a@b.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestMeRequiresToken(t *testing.T) {
	router := newTestAPI()
	token, _ := registerUser(t, router, "planneruser", "a@b.com")

	w := doJSON(router, http.MethodGet, "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"planneruser"`)
}

func TestMealFlowEndToEnd(t *testing.T) {
	router := newTestAPI()
	token, _ := registerUser(t, router, "planneruser", "A@B.com")

	// Upsert the Monday/Breakfast slot twice
	w := doJSON(router, http.MethodPost, "/api/v1/meals", token, gin.H{
		"dayOfWeek": "Monday", "mealType": "Breakfast", "name": "Oatmeal",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(router, http.MethodPost, "/api/v1/meals", token, gin.H{
		"dayOfWeek": "Monday", "mealType": "Breakfast", "name": "Eggs",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Exactly one Monday/Breakfast slot remains, bearing the second name
	w = doJSON(router, http.MethodGet, "/api/v1/meals", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var meals []models.Meal
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &meals))
	require.Len(t, meals, 1)
	assert.Equal(t, "Eggs", meals[0].Name)
	mealID := meals[0].ID

	// A different user cannot delete the slot
	otherToken, _ := registerUser(t, router, "otheruser", "other@b.com")
	w = doJSON(router, http.MethodDelete, fmt.Sprintf("/api/v1/meals/%s", mealID), otherToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// The owner can
	w = doJSON(router, http.MethodDelete, fmt.Sprintf("/api/v1/meals/%s", mealID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "deleted")
}

func TestMealValidationErrors(t *testing.T) {
	router := newTestAPI()
	token, _ := registerUser(t, router, "planneruser", "a@b.com")

	w := doJSON(router, http.MethodPost, "/api/v1/meals", token, gin.H{
		"dayOfWeek": "Funday", "mealType": "Breakfast", "name": "Oatmeal",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid day of week")

	w = doJSON(router, http.MethodPost, "/api/v1/meals", token, gin.H{
		"dayOfWeek": "Monday", "mealType": "Brunch", "name": "Oatmeal",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(router, http.MethodPost, "/api/v1/meals", token, gin.H{
		"dayOfWeek": "Monday", "mealType": "Breakfast", "name": "   ",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMealUpdateScopedToOwner(t *testing.T) {
	router := newTestAPI()
	token, _ := registerUser(t, router, "planneruser", "a@b.com")
	otherToken, _ := registerUser(t, router, "otheruser", "other@b.com")

	w := doJSON(router, http.MethodPost, "/api/v1/meals", token, gin.H{
		"dayOfWeek": "Tuesday", "mealType": "Lunch", "name": "Salad",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var meal models.Meal
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &meal))

	w = doJSON(router, http.MethodPut, "/api/v1/meals/"+meal.ID, otherToken, gin.H{"name": "Hijacked"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, http.MethodPut, "/api/v1/meals/"+meal.ID, token, gin.H{"name": "Greek Salad"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Greek Salad")
}

func TestMealsRequireAuthentication(t *testing.T) {
	router := newTestAPI()

	w := doJSON(router, http.MethodGet, "/api/v1/meals", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodPost, "/api/v1/meals", "", gin.H{
		"dayOfWeek": "Monday", "mealType": "Breakfast", "name": "Oatmeal",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogout(t *testing.T) {
	router := newTestAPI()
	token, _ := registerUser(t, router, "planneruser", "a@b.com")

	w := doJSON(router, http.MethodPost, "/api/v1/auth/logout", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Logged out")
}
