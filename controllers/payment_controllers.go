package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/umidaZ/bisp-reservation/models"
	"github.com/umidaZ/bisp-reservation/utils"
	"gorm.io/gorm"
)

// PaymentController hanya mencatat pembayaran, tidak ada integrasi gateway.
type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

// CreatePayment -> mencatat pembayaran untuk sebuah reservasi
func (pc *PaymentController) CreatePayment(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	customer, err := customerForUser(pc.DB, userID)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		ReservationID uint    `json:"reservation_id" binding:"required"`
		Amount        float64 `json:"amount" binding:"required,gte=0"`
		PaymentMethod string  `json:"payment_method" binding:"required"`
		TransactionID string  `json:"transaction_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var reservation models.Reservation
	if err := pc.DB.First(&reservation, req.ReservationID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if reservation.CustomerID != customer.ID {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	payment := models.Payment{
		CustomerID:    customer.ID,
		RestaurantID:  &reservation.RestaurantID,
		ReservationID: &reservation.ID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
	}

	// Payment + status record dibuat bersama
	err = pc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		var status models.PaymentStatus
		err := tx.Where("reservation_id = ?", reservation.ID).First(&status).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			status = models.PaymentStatus{
				ReservationID: reservation.ID,
				Status:        models.PaymentComplete,
			}
			return tx.Create(&status).Error
		}
		if err != nil {
			return err
		}

		status.Status = models.PaymentComplete
		return tx.Save(&status).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Payment recorded: reservation=%d amount=%.2f method=%s",
		reservation.ID, payment.Amount, payment.PaymentMethod)
	utils.RespondJSON(c, http.StatusCreated, "Payment recorded", payment)
}

// GetPayment -> detail satu pembayaran
func (pc *PaymentController) GetPayment(c *gin.Context) {
	idStr := c.Param("payment_id")
	id, _ := strconv.Atoi(idStr)

	var payment models.Payment
	if err := pc.DB.First(&payment, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Payment detail", payment)
}

// GetPaymentStatusByReservation -> status pembayaran sebuah reservasi
func (pc *PaymentController) GetPaymentStatusByReservation(c *gin.Context) {
	idStr := c.Param("reservation_id")
	id, _ := strconv.Atoi(idStr)

	var status models.PaymentStatus
	err := pc.DB.Where("reservation_id = ?", id).First(&status).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondJSON(c, http.StatusOK, "Payment status", gin.H{
			"reservation_id": id,
			"status":         models.PaymentPending,
		})
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Payment status", status)
}
