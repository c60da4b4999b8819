package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/umidaZ/bisp-reservation/models"
	"github.com/umidaZ/bisp-reservation/utils"
	"gorm.io/gorm"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

// GetMenuByRestaurant -> seluruh kategori beserta item-nya (publik)
func (mc *MenuController) GetMenuByRestaurant(c *gin.Context) {
	restaurantID := c.Param("restaurant_id")

	var categories []models.MenuCategory
	if err := mc.DB.Where("restaurant_id = ?", restaurantID).
		Order("name").
		Find(&categories).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	type categoryWithItems struct {
		models.MenuCategory
		Items []models.MenuItem `json:"items"`
	}

	menu := make([]categoryWithItems, 0, len(categories))
	for _, category := range categories {
		var items []models.MenuItem
		if err := mc.DB.Where("category_id = ?", category.ID).
			Order("name").
			Find(&items).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		menu = append(menu, categoryWithItems{MenuCategory: category, Items: items})
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant menu", menu)
}

// CreateCategory -> operator menambah kategori menu
func (mc *MenuController) CreateCategory(c *gin.Context) {
	restaurantIDStr := c.Param("restaurant_id")
	restaurantID, _ := strconv.Atoi(restaurantIDStr)

	if !canManageRestaurant(c, mc.DB, uint(restaurantID)) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var req struct {
		Name string `json:"name" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	category := models.MenuCategory{
		RestaurantID: uint(restaurantID),
		Name:         req.Name,
		Slug:         utils.Slugify(req.Name),
	}

	if err := mc.DB.Create(&category).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Menu category created", category)
}

// UpdateCategory -> ganti nama kategori
func (mc *MenuController) UpdateCategory(c *gin.Context) {
	catIDStr := c.Param("cat_id")
	catID, _ := strconv.Atoi(catIDStr)

	var category models.MenuCategory
	if err := mc.DB.First(&category, catID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if !canManageRestaurant(c, mc.DB, category.RestaurantID) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var req struct {
		Name string `json:"name" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	category.Name = req.Name
	category.Slug = utils.Slugify(req.Name)

	if err := mc.DB.Save(&category).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu category updated", category)
}

// DeleteCategory -> menghapus kategori beserta item-nya
func (mc *MenuController) DeleteCategory(c *gin.Context) {
	catIDStr := c.Param("cat_id")
	catID, _ := strconv.Atoi(catIDStr)

	var category models.MenuCategory
	if err := mc.DB.First(&category, catID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if !canManageRestaurant(c, mc.DB, category.RestaurantID) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	err := mc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", category.ID).
			Delete(&models.MenuItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu category deleted", gin.H{"id": category.ID})
}

// CreateItem -> menambah item ke kategori
func (mc *MenuController) CreateItem(c *gin.Context) {
	catIDStr := c.Param("cat_id")
	catID, _ := strconv.Atoi(catIDStr)

	var category models.MenuCategory
	if err := mc.DB.First(&category, catID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if !canManageRestaurant(c, mc.DB, category.RestaurantID) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var req struct {
		Name        string  `json:"name" binding:"required"`
		Description string  `json:"description"`
		UnitPrice   float64 `json:"unit_price" binding:"required,gte=1"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item := models.MenuItem{
		CategoryID:  category.ID,
		Name:        req.Name,
		Slug:        utils.Slugify(req.Name),
		Description: req.Description,
		UnitPrice:   req.UnitPrice,
	}

	if err := mc.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Menu item created", item)
}

// UpdateItem -> ubah nama/deskripsi/harga item
func (mc *MenuController) UpdateItem(c *gin.Context) {
	itemIDStr := c.Param("item_id")
	itemID, _ := strconv.Atoi(itemIDStr)

	var item models.MenuItem
	if err := mc.DB.Preload("Category").First(&item, itemID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if !canManageRestaurant(c, mc.DB, item.Category.RestaurantID) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var req struct {
		Name        *string  `json:"name"`
		Description *string  `json:"description"`
		UnitPrice   *float64 `json:"unit_price"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
		item.Slug = utils.Slugify(*req.Name)
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.UnitPrice != nil {
		item.UnitPrice = *req.UnitPrice
	}

	if err := mc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item updated", item)
}

// DeleteItem -> menghapus item menu
func (mc *MenuController) DeleteItem(c *gin.Context) {
	itemIDStr := c.Param("item_id")
	itemID, _ := strconv.Atoi(itemIDStr)

	var item models.MenuItem
	if err := mc.DB.Preload("Category").First(&item, itemID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if !canManageRestaurant(c, mc.DB, item.Category.RestaurantID) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	if err := mc.DB.Delete(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Menu item deleted", gin.H{"id": item.ID})
}
