package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/umidaZ/bisp-reservation/models"
	"github.com/umidaZ/bisp-reservation/utils"
	"gorm.io/gorm"
)

type CuisineController struct {
	DB *gorm.DB
}

func NewCuisineController(db *gorm.DB) *CuisineController {
	return &CuisineController{DB: db}
}

// GetAllCuisines -> daftar cuisine untuk filter pencarian
func (cc *CuisineController) GetAllCuisines(c *gin.Context) {
	var cuisines []models.Cuisine
	if err := cc.DB.Order("name").Find(&cuisines).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of cuisines", cuisines)
}

// CreateCuisine -> admin menambah cuisine baru
func (cc *CuisineController) CreateCuisine(c *gin.Context) {
	var req struct {
		Name                 string `json:"name" binding:"required"`
		FeaturedRestaurantID *uint  `json:"featured_restaurant_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	cuisine := models.Cuisine{
		Name:                 req.Name,
		Slug:                 utils.Slugify(req.Name),
		FeaturedRestaurantID: req.FeaturedRestaurantID,
	}

	if err := cc.DB.Create(&cuisine).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New cuisine created: %s", cuisine.Name)
	utils.RespondJSON(c, http.StatusCreated, "Cuisine created", cuisine)
}

// UpdateCuisine -> ganti nama / featured restaurant
func (cc *CuisineController) UpdateCuisine(c *gin.Context) {
	idStr := c.Param("cuisine_id")
	id, _ := strconv.Atoi(idStr)

	var cuisine models.Cuisine
	if err := cc.DB.First(&cuisine, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		Name                 *string `json:"name"`
		FeaturedRestaurantID *uint   `json:"featured_restaurant_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil {
		cuisine.Name = *req.Name
		cuisine.Slug = utils.Slugify(*req.Name)
	}
	if req.FeaturedRestaurantID != nil {
		cuisine.FeaturedRestaurantID = req.FeaturedRestaurantID
	}

	if err := cc.DB.Save(&cuisine).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Cuisine updated", cuisine)
}

// DeleteCuisine -> tolak kalau masih dipakai restoran
func (cc *CuisineController) DeleteCuisine(c *gin.Context) {
	idStr := c.Param("cuisine_id")
	id, _ := strconv.Atoi(idStr)

	var cuisine models.Cuisine
	if err := cc.DB.First(&cuisine, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var linked int64
	if err := cc.DB.Table("restaurant_cuisines").
		Where("cuisine_id = ?", cuisine.ID).
		Count(&linked).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if linked > 0 {
		utils.RespondError(c, http.StatusConflict,
			fmt.Errorf("cuisine cannot be deleted because it includes one or more restaurants"))
		return
	}

	if err := cc.DB.Delete(&cuisine).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Cuisine deleted", gin.H{"id": cuisine.ID})
}
