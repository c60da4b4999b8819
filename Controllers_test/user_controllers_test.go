package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/umidaZ/bisp-reservation/controllers"
	"github.com/umidaZ/bisp-reservation/models"
)

func setupUserRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	userCtrl := controllers.NewUserController(db)
	router.POST("/register", userCtrl.Register)
	router.POST("/login", userCtrl.Login)
	return router
}

func TestRegisterCustomerCreatesProfile(t *testing.T) {
	db := setupTestDB(t)
	router := setupUserRouter(db)

	payload := map[string]string{
		"name":     "Dina",
		"email":    "dina@example.com",
		"password": "secret123",
		"role":     "customer",
		"phone":    "555-0102",
	}
	payloadBytes, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Registrasi customer ikut membuat profil customer
	var user models.User
	assert.NoError(t, db.Where("email = ?", "dina@example.com").First(&user).Error)

	var customer models.Customer
	assert.NoError(t, db.Where("user_id = ?", user.ID).First(&customer).Error)
	assert.Equal(t, "555-0102", customer.Phone)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	db := setupTestDB(t)
	router := setupUserRouter(db)

	payload := map[string]string{
		"name":     "Eve",
		"email":    "eve@example.com",
		"password": "secret123",
		"role":     "admin",
	}
	payloadBytes, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	// Admin tidak bisa dibuat lewat register publik
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	router := setupUserRouter(db)

	registerPayload := map[string]string{
		"name":     "Budi",
		"email":    "budi@example.com",
		"password": "secret123",
		"role":     "customer",
	}
	registerBytes, _ := json.Marshal(registerPayload)
	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(registerBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	loginPayload := map[string]string{"email": "budi@example.com", "password": "secret123"}
	loginBytes, _ := json.Marshal(loginPayload)
	req = httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(loginBytes))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status bool `json:"status"`
		Data   struct {
			Token    string `json:"token"`
			UserRole string `json:"user_role"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Status)
	assert.NotEmpty(t, resp.Data.Token)
	assert.Equal(t, "customer", resp.Data.UserRole)

	// Password salah -> 401
	badPayload := map[string]string{"email": "budi@example.com", "password": "wrong"}
	badBytes, _ := json.Marshal(badPayload)
	req = httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(badBytes))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
