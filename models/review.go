package models

import "time"

type Review struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	RestaurantID uint       `gorm:"not null;index" json:"restaurant_id"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	CustomerID   uint       `gorm:"not null;index" json:"customer_id"`
	Customer     Customer   `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Rating       int        `gorm:"not null" json:"rating"`
	Comment      string     `gorm:"type:text;not null" json:"comment"`
	CreatedAt    time.Time  `json:"created_at"`
}

type ReviewReply struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	RestaurantID uint       `gorm:"not null;index" json:"restaurant_id"`
	Restaurant   Restaurant `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ReviewID     uint       `gorm:"not null;index" json:"review_id"`
	Review       Review     `gorm:"foreignKey:ReviewID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ReplyText    string     `gorm:"type:text;not null" json:"reply_text"`
	CreatedAt    time.Time  `json:"created_at"`
}
