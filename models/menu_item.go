package models

import "time"

type MenuItem struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	CategoryID  uint         `gorm:"not null;index" json:"category_id"`
	Category    MenuCategory `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Name        string       `gorm:"type:varchar(255);not null" json:"name"`
	Slug        string       `gorm:"type:varchar(255);not null" json:"slug"`
	Description string       `gorm:"type:text" json:"description"`
	UnitPrice   float64      `gorm:"type:decimal(6,2);not null" json:"unit_price"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
