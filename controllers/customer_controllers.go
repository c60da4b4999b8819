package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/umidaZ/bisp-reservation/models"
	"github.com/umidaZ/bisp-reservation/utils"
	"gorm.io/gorm"
)

type CustomerController struct {
	DB *gorm.DB
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

// customerForUser mencari profil customer milik user yang sedang login
func customerForUser(db *gorm.DB, userID uint) (*models.Customer, error) {
	var customer models.Customer
	if err := db.Where("user_id = ?", userID).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("customer profile not found")
		}
		return nil, err
	}
	return &customer, nil
}

// GetMe -> profil customer yang sedang login
func (cc *CustomerController) GetMe(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	customer, err := customerForUser(cc.DB, userID)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if err := cc.DB.Preload("User").First(customer, customer.ID).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer detail", customer)
}

// UpdateMe -> update phone / birth_date
func (cc *CustomerController) UpdateMe(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	type reqBody struct {
		Phone     *string `json:"phone"`
		BirthDate *string `json:"birth_date"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customer, err := customerForUser(cc.DB, userID)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.BirthDate != nil {
		customer.BirthDate = req.BirthDate
	}

	if err := cc.DB.Save(customer).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer updated", customer)
}

// AddAddress -> menambah alamat untuk customer yang sedang login
func (cc *CustomerController) AddAddress(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	type reqBody struct {
		Street string `json:"street" binding:"required"`
		City   string `json:"city" binding:"required"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	customer, err := customerForUser(cc.DB, userID)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	address := models.Address{
		CustomerID: customer.ID,
		Street:     req.Street,
		City:       req.City,
	}

	if err := cc.DB.Create(&address).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Address added", address)
}

// ListAddresses -> alamat milik customer yang sedang login
func (cc *CustomerController) ListAddresses(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	}

	customer, err := customerForUser(cc.DB, userID)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var addresses []models.Address
	if err := cc.DB.Where("customer_id = ?", customer.ID).Find(&addresses).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of addresses", addresses)
}
