package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/umidaZ/bisp-reservation/models"
	"github.com/umidaZ/bisp-reservation/services"
	"github.com/umidaZ/bisp-reservation/utils"
	"gorm.io/gorm"
)

type ReservationController struct {
	DB        *gorm.DB
	Scheduler *services.ReservationScheduler
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{
		DB:        db,
		Scheduler: services.NewReservationScheduler(db),
	}
}

// CreateReservation -> customer mengajukan reservasi; validasi slot dan
// penyimpanan dilakukan scheduler.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	customer, err := customerForUser(rc.DB, userID)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		TableID         uint    `json:"table_id" binding:"required"`
		Date            string  `json:"date" binding:"required"`
		StartTime       string  `json:"start_time" binding:"required"`
		EndTime         string  `json:"end_time" binding:"required"`
		NumGuests       int     `json:"num_guests" binding:"required,gt=0"`
		SpecialRequests *string `json:"special_requests"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	// Restoran diturunkan dari meja supaya keduanya pasti konsisten
	var table models.Table
	if err := rc.DB.First(&table, req.TableID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, services.ErrTableNotFound)
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	reservation, err := rc.Scheduler.ValidateAndCreate(services.ReservationCandidate{
		RestaurantID:    table.RestaurantID,
		CustomerID:      customer.ID,
		TableID:         req.TableID,
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		NumGuests:       req.NumGuests,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		utils.RespondError(c, services.HTTPStatus(err), err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Reservation created", reservation)
}

// GetMyReservations -> semua reservasi milik customer yang login
func (rc *ReservationController) GetMyReservations(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	customer, err := customerForUser(rc.DB, userID)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	reservations, err := rc.Scheduler.ListForCustomer(customer.ID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

// GetReservationByID -> pemilik reservasi, pemilik restoran atau admin
func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	idStr := c.Param("reservation_id")
	id, _ := strconv.Atoi(idStr)

	reservation, err := rc.Scheduler.GetByID(uint(id))
	if err != nil {
		utils.RespondError(c, services.HTTPStatus(err), err)
		return
	}

	if !rc.canViewReservation(c, reservation) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservation detail", reservation)
}

// UpdateReservationStatus -> operator restoran / admin accept atau reject
func (rc *ReservationController) UpdateReservationStatus(c *gin.Context) {
	idStr := c.Param("reservation_id")
	id, _ := strconv.Atoi(idStr)

	var req struct {
		Status string `json:"status" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservation, err := rc.Scheduler.GetByID(uint(id))
	if err != nil {
		utils.RespondError(c, services.HTTPStatus(err), err)
		return
	}

	if !canManageRestaurant(c, rc.DB, reservation.RestaurantID) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	updated, err := rc.Scheduler.UpdateStatus(uint(id), req.Status)
	if err != nil {
		utils.RespondError(c, services.HTTPStatus(err), err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservation status updated", updated)
}

// CheckAvailability -> pre-flight check sebelum submit reservasi (publik)
func (rc *ReservationController) CheckAvailability(c *gin.Context) {
	tableIDStr := c.Param("table_id")
	tableID, _ := strconv.Atoi(tableIDStr)

	date := c.Query("date")
	startTime := c.Query("start_time")
	endTime := c.Query("end_time")

	available, err := rc.Scheduler.CheckAvailability(uint(tableID), date, startTime, endTime)
	if err != nil {
		utils.RespondError(c, services.HTTPStatus(err), err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Availability checked", gin.H{
		"table_id":   tableID,
		"date":       date,
		"start_time": startTime,
		"end_time":   endTime,
		"available":  available,
	})
}

// GetReservationsByRestaurant -> daftar reservasi untuk operator restoran
func (rc *ReservationController) GetReservationsByRestaurant(c *gin.Context) {
	idStr := c.Param("restaurant_id")
	id, _ := strconv.Atoi(idStr)

	if !canManageRestaurant(c, rc.DB, uint(id)) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	reservations, err := rc.Scheduler.ListForRestaurant(uint(id))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

// GetReservationsByTable -> daftar reservasi satu meja, opsional ?date=
func (rc *ReservationController) GetReservationsByTable(c *gin.Context) {
	tableIDStr := c.Param("table_id")
	tableID, _ := strconv.Atoi(tableIDStr)

	var table models.Table
	if err := rc.DB.First(&table, tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if !canManageRestaurant(c, rc.DB, table.RestaurantID) {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	reservations, err := rc.Scheduler.ListForTable(uint(tableID), c.Query("date"))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

func (rc *ReservationController) canViewReservation(c *gin.Context, reservation *models.Reservation) bool {
	if canManageRestaurant(c, rc.DB, reservation.RestaurantID) {
		return true
	}

	userID, err := currentUserID(c)
	if err != nil {
		return false
	}
	customer, err := customerForUser(rc.DB, userID)
	if err != nil {
		return false
	}
	return customer.ID == reservation.CustomerID
}
