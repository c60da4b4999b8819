package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/umidaZ/bisp-reservation/models"
	"github.com/umidaZ/bisp-reservation/services"
	"github.com/umidaZ/bisp-reservation/utils"
	"gorm.io/gorm"
)

type ReviewController struct {
	DB     *gorm.DB
	Rating *services.RatingService
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{
		DB:     db,
		Rating: services.NewRatingService(db),
	}
}

// GetReviewsByRestaurant -> review publik sebuah restoran
func (rc *ReviewController) GetReviewsByRestaurant(c *gin.Context) {
	restaurantID := c.Param("restaurant_id")

	var reviews []models.Review
	if err := rc.DB.Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of reviews", reviews)
}

// CreateReview -> customer menulis review, rating restoran dihitung ulang
func (rc *ReviewController) CreateReview(c *gin.Context) {
	restaurantIDStr := c.Param("restaurant_id")
	restaurantID, _ := strconv.Atoi(restaurantIDStr)

	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	customer, err := customerForUser(rc.DB, userID)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var restaurant models.Restaurant
	if err := rc.DB.First(&restaurant, restaurantID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		Rating  int    `json:"rating" binding:"required,gte=1,lte=5"`
		Comment string `json:"comment" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	review := models.Review{
		RestaurantID: restaurant.ID,
		CustomerID:   customer.ID,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}

	if err := rc.DB.Create(&review).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := rc.Rating.RefreshRestaurantRating(restaurant.ID); err != nil {
		utils.ErrorLogger.Printf("Error refreshing rating for restaurant %d: %v", restaurant.ID, err)
	}

	utils.RespondJSON(c, http.StatusCreated, "Review created", review)
}

// DeleteReview -> penulis review atau admin, rating dihitung ulang
func (rc *ReviewController) DeleteReview(c *gin.Context) {
	reviewIDStr := c.Param("review_id")
	reviewID, _ := strconv.Atoi(reviewIDStr)

	var review models.Review
	if err := rc.DB.First(&review, reviewID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	roleInterface, _ := c.Get("role")
	if roleInterface != models.RoleAdmin {
		userID, err := currentUserID(c)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, err)
			return
		}
		customer, err := customerForUser(rc.DB, userID)
		if err != nil || customer.ID != review.CustomerID {
			utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
			return
		}
	}

	if err := rc.DB.Delete(&review).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := rc.Rating.RefreshRestaurantRating(review.RestaurantID); err != nil {
		utils.ErrorLogger.Printf("Error refreshing rating for restaurant %d: %v", review.RestaurantID, err)
	}

	utils.RespondJSON(c, http.StatusOK, "Review deleted", gin.H{"id": review.ID})
}

// CreateReply -> operator restoran membalas review
func (rc *ReviewController) CreateReply(c *gin.Context) {
	reviewIDStr := c.Param("review_id")
	reviewID, _ := strconv.Atoi(reviewIDStr)

	var review models.Review
	if err := rc.DB.First(&review, reviewID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if !canManageRestaurant(c, rc.DB, review.RestaurantID) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	var req struct {
		ReplyText string `json:"reply_text" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reply := models.ReviewReply{
		RestaurantID: review.RestaurantID,
		ReviewID:     review.ID,
		ReplyText:    req.ReplyText,
	}

	if err := rc.DB.Create(&reply).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Reply created", reply)
}

// GetRepliesByReview -> balasan untuk satu review (publik)
func (rc *ReviewController) GetRepliesByReview(c *gin.Context) {
	reviewID := c.Param("review_id")

	var replies []models.ReviewReply
	if err := rc.DB.Where("review_id = ?", reviewID).
		Order("created_at").
		Find(&replies).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of replies", replies)
}
