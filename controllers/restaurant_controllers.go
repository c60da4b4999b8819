package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/umidaZ/bisp-reservation/models"
	"github.com/umidaZ/bisp-reservation/utils"
	"gorm.io/gorm"
)

type RestaurantController struct {
	DB *gorm.DB
}

func NewRestaurantController(db *gorm.DB) *RestaurantController {
	return &RestaurantController{DB: db}
}

// restaurantForUser mencari restoran milik user yang sedang login
func restaurantForUser(db *gorm.DB, userID uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := db.Where("user_id = ?", userID).First(&restaurant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("restaurant profile not found")
		}
		return nil, err
	}
	return &restaurant, nil
}

// canManageRestaurant -> pemilik restoran atau admin
func canManageRestaurant(c *gin.Context, db *gorm.DB, restaurantID uint) bool {
	roleInterface, _ := c.Get("role")
	if roleInterface == models.RoleAdmin {
		return true
	}

	userID, err := currentUserID(c)
	if err != nil {
		return false
	}

	restaurant, err := restaurantForUser(db, userID)
	if err != nil {
		return false
	}
	return restaurant.ID == restaurantID
}

// CreateRestaurant -> operator membuat profil restorannya (satu per user)
func (rc *RestaurantController) CreateRestaurant(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	type reqBody struct {
		Name          string   `json:"name" binding:"required"`
		Location      string   `json:"location" binding:"required"`
		Description   string   `json:"description"`
		ContactNumber string   `json:"contact_number" binding:"required"`
		Website       *string  `json:"website"`
		Instagram     *string  `json:"instagram"`
		Telegram      *string  `json:"telegram"`
		OpeningTime   *string  `json:"opening_time"`
		ClosingTime   *string  `json:"closing_time"`
		IsHalal       bool     `json:"is_halal"`
		CuisineIDs    []uint   `json:"cuisine_ids"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	restaurant := models.Restaurant{
		UserID:        userID,
		Name:          req.Name,
		Slug:          utils.Slugify(req.Name),
		Location:      req.Location,
		Description:   req.Description,
		ContactNumber: req.ContactNumber,
		Website:       req.Website,
		Instagram:     req.Instagram,
		Telegram:      req.Telegram,
		OpeningTime:   req.OpeningTime,
		ClosingTime:   req.ClosingTime,
		IsHalal:       req.IsHalal,
	}

	err = rc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&restaurant).Error; err != nil {
			return err
		}
		if len(req.CuisineIDs) > 0 {
			var cuisines []models.Cuisine
			if err := tx.Find(&cuisines, req.CuisineIDs).Error; err != nil {
				return err
			}
			return tx.Model(&restaurant).Association("Cuisines").Replace(cuisines)
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("New restaurant created: %s (user=%d)", restaurant.Name, userID)
	utils.RespondJSON(c, http.StatusCreated, "Restaurant created", restaurant)
}

// GetAllRestaurants -> listing publik dengan filter cuisine/location/search
func (rc *RestaurantController) GetAllRestaurants(c *gin.Context) {
	query := rc.DB.Preload("Cuisines").Model(&models.Restaurant{})

	if cuisine := c.Query("cuisine"); cuisine != "" {
		query = query.
			Joins("JOIN restaurant_cuisines rc ON rc.restaurant_id = restaurants.id").
			Joins("JOIN cuisines ON cuisines.id = rc.cuisine_id").
			Where("cuisines.slug = ?", cuisine)
	}
	if location := c.Query("location"); location != "" {
		query = query.Where("restaurants.location LIKE ?", "%"+location+"%")
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("restaurants.name LIKE ? OR restaurants.description LIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	var restaurants []models.Restaurant
	if err := query.Order("restaurants.rating DESC").Find(&restaurants).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of restaurants", restaurants)
}

// GetRestaurantByID -> detail satu restoran
func (rc *RestaurantController) GetRestaurantByID(c *gin.Context) {
	restaurantID := c.Param("restaurant_id")

	var restaurant models.Restaurant
	if err := rc.DB.Preload("Cuisines").First(&restaurant, restaurantID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant detail", restaurant)
}

// UpdateRestaurant -> pemilik/admin mengubah profil restoran
func (rc *RestaurantController) UpdateRestaurant(c *gin.Context) {
	idStr := c.Param("restaurant_id")
	id, _ := strconv.Atoi(idStr)

	if !canManageRestaurant(c, rc.DB, uint(id)) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var restaurant models.Restaurant
	if err := rc.DB.First(&restaurant, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	type reqBody struct {
		Name          *string `json:"name"`
		Location      *string `json:"location"`
		Description   *string `json:"description"`
		ContactNumber *string `json:"contact_number"`
		Website       *string `json:"website"`
		Instagram     *string `json:"instagram"`
		Telegram      *string `json:"telegram"`
		OpeningTime   *string `json:"opening_time"`
		ClosingTime   *string `json:"closing_time"`
		IsHalal       *bool   `json:"is_halal"`
		CuisineIDs    []uint  `json:"cuisine_ids"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil {
		restaurant.Name = *req.Name
		restaurant.Slug = utils.Slugify(*req.Name)
	}
	if req.Location != nil {
		restaurant.Location = *req.Location
	}
	if req.Description != nil {
		restaurant.Description = *req.Description
	}
	if req.ContactNumber != nil {
		restaurant.ContactNumber = *req.ContactNumber
	}
	if req.Website != nil {
		restaurant.Website = req.Website
	}
	if req.Instagram != nil {
		restaurant.Instagram = req.Instagram
	}
	if req.Telegram != nil {
		restaurant.Telegram = req.Telegram
	}
	if req.OpeningTime != nil {
		restaurant.OpeningTime = req.OpeningTime
	}
	if req.ClosingTime != nil {
		restaurant.ClosingTime = req.ClosingTime
	}
	if req.IsHalal != nil {
		restaurant.IsHalal = *req.IsHalal
	}

	err := rc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&restaurant).Error; err != nil {
			return err
		}
		if req.CuisineIDs != nil {
			var cuisines []models.Cuisine
			if err := tx.Find(&cuisines, req.CuisineIDs).Error; err != nil {
				return err
			}
			return tx.Model(&restaurant).Association("Cuisines").Replace(cuisines)
		}
		return nil
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant updated", restaurant)
}
