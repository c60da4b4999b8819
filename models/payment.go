package models

import "time"

const (
	PaymentPending  = "pending"
	PaymentComplete = "complete"
	PaymentFailed   = "failed"
)

// Payment dicatat saja, tidak ada integrasi gateway
type Payment struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	CustomerID    uint        `gorm:"not null;index" json:"customer_id"`
	Customer      Customer    `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	RestaurantID  *uint       `gorm:"index" json:"restaurant_id,omitempty"`
	ReservationID *uint       `gorm:"uniqueIndex" json:"reservation_id,omitempty"`
	Reservation   Reservation `gorm:"foreignKey:ReservationID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Amount        float64     `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentMethod string      `gorm:"type:varchar(50);not null" json:"payment_method"`
	TransactionID string      `gorm:"type:varchar(100)" json:"transaction_id"`
	CreatedAt     time.Time   `json:"created_at"`
}

type PaymentStatus struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	ReservationID uint        `gorm:"uniqueIndex;not null" json:"reservation_id"`
	Reservation   Reservation `gorm:"foreignKey:ReservationID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Status        string      `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
