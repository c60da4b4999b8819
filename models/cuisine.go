package models

import "time"

type Cuisine struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	Name                 string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Slug                 string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"slug"`
	FeaturedRestaurantID *uint     `json:"featured_restaurant_id,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}
