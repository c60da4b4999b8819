package models

import "time"

type Table struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	RestaurantID uint         `gorm:"not null;uniqueIndex:idx_restaurant_table_number" json:"restaurant_id"`
	Restaurant   Restaurant   `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Number       int          `gorm:"not null;uniqueIndex:idx_restaurant_table_number" json:"number"`
	Capacity     int          `gorm:"not null" json:"capacity"`
	TimeSlots    TimeSlotList `gorm:"type:text" json:"time_slots"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
