package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/umidaZ/bisp-reservation/controllers"
	"github.com/umidaZ/bisp-reservation/middlewares"
	"github.com/umidaZ/bisp-reservation/models"
)

func setupTableRouter(db *gorm.DB, auth *testAuth) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	tableCtrl := controllers.NewTableController(db)

	router.GET("/restaurants/:restaurant_id/tables", tableCtrl.GetTablesByRestaurant)
	router.GET("/tables/:table_id", tableCtrl.GetTableByID)

	api := router.Group("/api")
	api.Use(auth.middleware)
	api.POST("/restaurants/:restaurant_id/tables",
		middlewares.RequireCapability(middlewares.CapTableManage), tableCtrl.CreateTable)
	api.PATCH("/tables/:table_id",
		middlewares.RequireCapability(middlewares.CapTableManage), tableCtrl.UpdateTable)

	return router
}

func TestCreateTable(t *testing.T) {
	db := setupTestDB(t)
	f := seedReservationFixture(t, db)
	auth := &testAuth{userID: f.ownerUser.ID, role: models.RoleRestaurant}
	router := setupTableRouter(db, auth)

	payload := map[string]int{"number": 2, "capacity": 6}
	payloadBytes, _ := json.Marshal(payload)

	url := "/api/restaurants/" + strconv.Itoa(int(f.restaurant.ID)) + "/tables"
	req := httptest.NewRequest(http.MethodPost, url, bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data struct {
			ID       uint `json:"id"`
			Number   int  `json:"number"`
			Capacity int  `json:"capacity"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Data.Number)
	assert.Equal(t, 6, resp.Data.Capacity)
}

func TestCreateTableForbiddenForCustomer(t *testing.T) {
	db := setupTestDB(t)
	f := seedReservationFixture(t, db)
	auth := &testAuth{userID: f.customerUser.ID, role: models.RoleCustomer}
	router := setupTableRouter(db, auth)

	payload := map[string]int{"number": 2, "capacity": 6}
	payloadBytes, _ := json.Marshal(payload)

	url := "/api/restaurants/" + strconv.Itoa(int(f.restaurant.ID)) + "/tables"
	req := httptest.NewRequest(http.MethodPost, url, bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetTablesByRestaurant(t *testing.T) {
	db := setupTestDB(t)
	f := seedReservationFixture(t, db)
	auth := &testAuth{}
	router := setupTableRouter(db, auth)

	second := models.Table{
		RestaurantID: f.restaurant.ID,
		Number:       2,
		Capacity:     2,
		TimeSlots:    models.TimeSlotList{},
	}
	assert.NoError(t, db.Create(&second).Error)

	url := "/restaurants/" + strconv.Itoa(int(f.restaurant.ID)) + "/tables"
	req := httptest.NewRequest(http.MethodGet, url, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message string `json:"message"`
		Data    []struct {
			Number int `json:"number"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "List of tables", resp.Message)
	assert.Len(t, resp.Data, 2)
	// Terurut nomor meja
	assert.Equal(t, 1, resp.Data[0].Number)
}

func TestUpdateTableCapacity(t *testing.T) {
	db := setupTestDB(t)
	f := seedReservationFixture(t, db)
	auth := &testAuth{userID: f.ownerUser.ID, role: models.RoleRestaurant}
	router := setupTableRouter(db, auth)

	payload := map[string]int{"capacity": 8}
	payloadBytes, _ := json.Marshal(payload)

	url := "/api/tables/" + strconv.Itoa(int(f.table.ID))
	req := httptest.NewRequest(http.MethodPatch, url, bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.Table
	assert.NoError(t, db.First(&stored, f.table.ID).Error)
	assert.Equal(t, 8, stored.Capacity)
}
