package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/umidaZ/bisp-reservation/models"
	"github.com/umidaZ/bisp-reservation/router"
	"github.com/umidaZ/bisp-reservation/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

// TestEndToEndReservationFlow menguji flow utama:
// 1. Register operator + customer, login -> token
// 2. Operator membuat restoran + meja (kapasitas 4)
// 3. Customer booking 18:00-19:00 -> waiting
// 4. Slot 18:30-19:30 -> 409 SlotUnavailable
// 5. Slot 19:00-20:00 (back-to-back) -> sukses
// 6. Operator accept reservasi pertama
func TestEndToEndReservationFlow(t *testing.T) {
	db := setupIntegrationDB(t)
	r := router.SetupRouter(db)

	registerTest(t, r, "owner@example.com", "restaurant")
	registerTest(t, r, "diner@example.com", "customer")

	ownerToken := loginTest(t, r, "owner@example.com")
	customerToken := loginTest(t, r, "diner@example.com")

	restaurantID := createRestaurantTest(t, r, ownerToken)
	tableID := createTableTest(t, r, ownerToken, restaurantID)

	// Booking pertama 18:00-19:00 -> waiting
	code, body := createReservationTest(t, r, customerToken, tableID, "18:00", "19:00", 2)
	if code != http.StatusCreated {
		t.Fatalf("first reservation: expected 201, got %d, body=%s", code, body)
	}
	firstID := reservationIDFromBody(t, body)

	// Slot tumpang tindih -> 409
	code, _ = createReservationTest(t, r, customerToken, tableID, "18:30", "19:30", 2)
	assert.Equal(t, http.StatusConflict, code)

	// Back-to-back -> sukses
	code, _ = createReservationTest(t, r, customerToken, tableID, "19:00", "20:00", 2)
	assert.Equal(t, http.StatusCreated, code)

	// Kapasitas 4, minta 5 -> 400
	code, _ = createReservationTest(t, r, customerToken, tableID, "15:00", "16:00", 5)
	assert.Equal(t, http.StatusBadRequest, code)

	// Pre-flight availability untuk slot yang sudah terisi -> false
	assert.False(t, availabilityTest(t, r, tableID, "18:30", "19:30"))
	assert.True(t, availabilityTest(t, r, tableID, "16:00", "17:00"))

	// Operator accept reservasi pertama
	acceptReservationTest(t, r, ownerToken, firstID)

	// Operator melihat daftar reservasi restorannya
	reservations := listRestaurantReservationsTest(t, r, ownerToken, restaurantID)
	assert.Len(t, reservations, 2)

	// Customer menulis review, rating restoran dihitung ulang
	postReviewTest(t, r, customerToken, restaurantID, 5)

	var restaurant models.Restaurant
	assert.NoError(t, db.First(&restaurant, restaurantID).Error)
	assert.Equal(t, float64(5), restaurant.Rating)
	assert.Equal(t, 1, restaurant.NumReviews)
}

// Limiter global ikut handler chain semua route, termasuk /ping
func TestGlobalRateLimit(t *testing.T) {
	db := setupIntegrationDB(t)
	r := router.SetupRouter(db)

	for i := 0; i < 50; i++ {
		w := doJSON(r, http.MethodGet, "/ping", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(r, http.MethodGet, "/ping", "", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func setupIntegrationDB(t *testing.T) *gorm.DB {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Address{},
		&models.Cuisine{},
		&models.Restaurant{},
		&models.Table{},
		&models.Reservation{},
		&models.MenuCategory{},
		&models.MenuItem{},
		&models.Review{},
		&models.ReviewReply{},
		&models.Payment{},
		&models.PaymentStatus{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func doJSON(r *gin.Engine, method, url, token string, body interface{}) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		buf = bytes.NewBuffer(bodyBytes)
	} else {
		buf = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, url, buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerTest(t *testing.T, r *gin.Engine, email, role string) {
	w := doJSON(r, http.MethodPost, "/register", "", map[string]string{
		"name":     "Test User",
		"email":    email,
		"password": "secret123",
		"role":     role,
		"phone":    "555-0101",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("registerTest(%s): expected 201, got %d, body=%s", email, w.Code, w.Body.String())
	}
}

func loginTest(t *testing.T, r *gin.Engine, email string) string {
	w := doJSON(r, http.MethodPost, "/login", "", map[string]string{
		"email":    email,
		"password": "secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("loginTest(%s): expected 200, got %d, body=%s", email, w.Code, w.Body.String())
	}

	var resp struct {
		Status bool `json:"status"`
		Data   struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Data.Token == "" {
		t.Fatalf("loginTest(%s): token empty", email)
	}
	return resp.Data.Token
}

func createRestaurantTest(t *testing.T, r *gin.Engine, token string) uint {
	w := doJSON(r, http.MethodPost, "/api/restaurants", token, map[string]interface{}{
		"name":           "Warung Integrasi",
		"location":       "Tashkent",
		"contact_number": "555-0100",
		"is_halal":       true,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("createRestaurantTest: expected 201, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			ID uint `json:"id"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp.Data.ID
}

func createTableTest(t *testing.T, r *gin.Engine, token string, restaurantID uint) uint {
	url := "/api/restaurants/" + strconv.Itoa(int(restaurantID)) + "/tables"
	w := doJSON(r, http.MethodPost, url, token, map[string]int{
		"number":   1,
		"capacity": 4,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("createTableTest: expected 201, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			ID uint `json:"id"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp.Data.ID
}

func createReservationTest(t *testing.T, r *gin.Engine, token string, tableID uint, start, end string, guests int) (int, string) {
	w := doJSON(r, http.MethodPost, "/api/reservations", token, map[string]interface{}{
		"table_id":   tableID,
		"date":       "2030-06-01",
		"start_time": start,
		"end_time":   end,
		"num_guests": guests,
	})
	return w.Code, w.Body.String()
}

func reservationIDFromBody(t *testing.T, body string) uint {
	var resp struct {
		Data struct {
			ID uint `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal([]byte(body), &resp); err != nil || resp.Data.ID == 0 {
		t.Fatalf("reservationIDFromBody: cannot parse %s", body)
	}
	return resp.Data.ID
}

func availabilityTest(t *testing.T, r *gin.Engine, tableID uint, start, end string) bool {
	url := "/tables/" + strconv.Itoa(int(tableID)) +
		"/availability?date=2030-06-01&start_time=" + start + "&end_time=" + end
	w := doJSON(r, http.MethodGet, url, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("availabilityTest: expected 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Available bool `json:"available"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp.Data.Available
}

func acceptReservationTest(t *testing.T, r *gin.Engine, token string, reservationID uint) {
	url := "/api/reservations/" + strconv.Itoa(int(reservationID)) + "/status"
	w := doJSON(r, http.MethodPatch, url, token, map[string]string{
		"status": models.ReservationAccepted,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("acceptReservationTest: expected 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Data.Status != models.ReservationAccepted {
		t.Fatalf("acceptReservationTest: want accepted, got %s", resp.Data.Status)
	}
}

func listRestaurantReservationsTest(t *testing.T, r *gin.Engine, token string, restaurantID uint) []map[string]interface{} {
	url := "/api/restaurants/" + strconv.Itoa(int(restaurantID)) + "/reservations"
	w := doJSON(r, http.MethodGet, url, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("listRestaurantReservationsTest: expected 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Data []map[string]interface{} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp.Data
}

func postReviewTest(t *testing.T, r *gin.Engine, token string, restaurantID uint, rating int) {
	url := "/api/restaurants/" + strconv.Itoa(int(restaurantID)) + "/reviews"
	w := doJSON(r, http.MethodPost, url, token, map[string]interface{}{
		"rating":  rating,
		"comment": "Great food, smooth booking",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("postReviewTest: expected 201, got %d, body=%s", w.Code, w.Body.String())
	}
}
