package models

import "time"

type MenuCategory struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	RestaurantID uint       `gorm:"not null;uniqueIndex:idx_restaurant_category_slug" json:"restaurant_id"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Name         string     `gorm:"type:varchar(255);not null" json:"name"`
	Slug         string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_restaurant_category_slug" json:"slug"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
