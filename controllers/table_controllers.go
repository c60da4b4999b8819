package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/umidaZ/bisp-reservation/models"
	"github.com/umidaZ/bisp-reservation/utils"
	"gorm.io/gorm"
)

type TableController struct {
	DB *gorm.DB
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db}
}

// CreateTable -> menambahkan meja baru ke restoran
func (tc *TableController) CreateTable(c *gin.Context) {
	restaurantIDStr := c.Param("restaurant_id")
	restaurantID, _ := strconv.Atoi(restaurantIDStr)

	if !canManageRestaurant(c, tc.DB, uint(restaurantID)) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var req struct {
		Number   int `json:"number" binding:"required,gt=0"`
		Capacity int `json:"capacity" binding:"required,gt=0"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var restaurant models.Restaurant
	if err := tc.DB.First(&restaurant, restaurantID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	table := models.Table{
		RestaurantID: restaurant.ID,
		Number:       req.Number,
		Capacity:     req.Capacity,
		TimeSlots:    models.TimeSlotList{},
	}

	if err := tc.DB.Create(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New table created: restaurant=%d number=%d capacity=%d",
		table.RestaurantID, table.Number, table.Capacity)
	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", table)
}

// GetTablesByRestaurant -> seluruh meja sebuah restoran (publik, untuk booking UI)
func (tc *TableController) GetTablesByRestaurant(c *gin.Context) {
	restaurantID := c.Param("restaurant_id")

	var tables []models.Table
	if err := tc.DB.Where("restaurant_id = ?", restaurantID).
		Order("number").
		Find(&tables).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

// GetTableByID -> detail satu meja termasuk booked windows
func (tc *TableController) GetTableByID(c *gin.Context) {
	tableID := c.Param("table_id")

	var table models.Table
	if err := tc.DB.First(&table, tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

// UpdateTable -> ubah nomor/kapasitas meja
func (tc *TableController) UpdateTable(c *gin.Context) {
	tableID := c.Param("table_id")

	var table models.Table
	if err := tc.DB.First(&table, tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if !canManageRestaurant(c, tc.DB, table.RestaurantID) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var req struct {
		Number   *int `json:"number"`
		Capacity *int `json:"capacity"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Number != nil {
		table.Number = *req.Number
	}
	if req.Capacity != nil {
		table.Capacity = *req.Capacity
	}

	if err := tc.DB.Save(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}

// DeleteTable -> menghapus meja
func (tc *TableController) DeleteTable(c *gin.Context) {
	tableID := c.Param("table_id")

	var table models.Table
	if err := tc.DB.First(&table, tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if !canManageRestaurant(c, tc.DB, table.RestaurantID) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	if err := tc.DB.Delete(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Table %d deleted", table.ID)
	utils.RespondJSON(c, http.StatusOK, "Table deleted", gin.H{"id": table.ID})
}
