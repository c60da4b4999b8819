package services

import (
	"github.com/umidaZ/bisp-reservation/models"
	"gorm.io/gorm"
)

type RatingService struct {
	DB *gorm.DB
}

func NewRatingService(db *gorm.DB) *RatingService {
	return &RatingService{DB: db}
}

// RefreshRestaurantRating menghitung ulang rata-rata rating dan jumlah review
// sebuah restoran lalu menyimpannya sebagai kolom denormalized.
func (rs *RatingService) RefreshRestaurantRating(restaurantID uint) error {
	var count int64
	if err := rs.DB.Model(&models.Review{}).
		Where("restaurant_id = ?", restaurantID).
		Count(&count).Error; err != nil {
		return err
	}

	var avg float64
	if count > 0 {
		if err := rs.DB.Model(&models.Review{}).
			Where("restaurant_id = ?", restaurantID).
			Select("AVG(rating)").
			Scan(&avg).Error; err != nil {
			return err
		}
	}

	return rs.DB.Model(&models.Restaurant{}).
		Where("id = ?", restaurantID).
		Updates(map[string]interface{}{
			"rating":      avg,
			"num_reviews": count,
		}).Error
}
