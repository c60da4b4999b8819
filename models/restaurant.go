package models

import "time"

type Restaurant struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	User          User      `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Slug          string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Location      string    `gorm:"type:varchar(255);not null" json:"location"`
	Description   string    `gorm:"type:text" json:"description"`
	ContactNumber string    `gorm:"type:varchar(20)" json:"contact_number"`
	Website       *string   `gorm:"type:varchar(200)" json:"website,omitempty"`
	Instagram     *string   `gorm:"type:varchar(100)" json:"instagram,omitempty"`
	Telegram      *string   `gorm:"type:varchar(100)" json:"telegram,omitempty"`
	OpeningTime   *string   `gorm:"type:varchar(5)" json:"opening_time,omitempty"`
	ClosingTime   *string   `gorm:"type:varchar(5)" json:"closing_time,omitempty"`
	IsHalal       bool      `gorm:"default:false" json:"is_halal"`
	Rating        float64   `gorm:"type:decimal(3,2);default:0" json:"rating"`
	NumReviews    int       `gorm:"default:0" json:"num_reviews"`
	Cuisines      []Cuisine `gorm:"many2many:restaurant_cuisines;" json:"cuisines,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
