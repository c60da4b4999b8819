package models

import "time"

const (
	ReservationWaiting  = "waiting"
	ReservationAccepted = "accepted"
	ReservationRejected = "rejected"
)

type Reservation struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Code            string     `gorm:"type:varchar(36);uniqueIndex;not null" json:"code"`
	RestaurantID    uint       `gorm:"not null;index" json:"restaurant_id"`
	Restaurant      Restaurant `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	CustomerID      uint       `gorm:"not null;index" json:"customer_id"`
	Customer        Customer   `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	TableID         uint       `gorm:"not null;index:idx_table_date" json:"table_id"`
	Table           Table      `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Date            string     `gorm:"type:varchar(10);not null;index:idx_table_date" json:"date"`
	StartTime       string     `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime         string     `gorm:"type:varchar(5);not null" json:"end_time"`
	NumGuests       int        `gorm:"not null" json:"num_guests"`
	SpecialRequests *string    `gorm:"type:text" json:"special_requests,omitempty"`
	Status          string     `gorm:"type:varchar(10);not null;default:'waiting'" json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// IsTerminal -> reservasi accepted/rejected tidak bisa diubah lagi
func (r *Reservation) IsTerminal() bool {
	return r.Status == ReservationAccepted || r.Status == ReservationRejected
}

func ValidReservationStatus(status string) bool {
	switch status {
	case ReservationWaiting, ReservationAccepted, ReservationRejected:
		return true
	}
	return false
}
