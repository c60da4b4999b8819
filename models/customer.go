package models

import "time"

type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user"`
	Phone     string    `gorm:"type:varchar(30)" json:"phone"`
	BirthDate *string   `gorm:"type:varchar(10)" json:"birth_date,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Address struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	CustomerID uint     `gorm:"index;not null" json:"customer_id"`
	Customer   Customer `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Street     string   `gorm:"type:varchar(255);not null" json:"street"`
	City       string   `gorm:"type:varchar(255);not null" json:"city"`
}
