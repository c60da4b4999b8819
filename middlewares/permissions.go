package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/umidaZ/bisp-reservation/models"
	"github.com/umidaZ/bisp-reservation/utils"
)

// Capability adalah satu operasi yang bisa di-grant ke sebuah role.
// Semua keputusan role ada di tabel ini, controller tinggal membaca hasilnya.
type Capability string

const (
	CapReservationCreate  Capability = "reservation:create"
	CapReservationManage  Capability = "reservation:manage"
	CapReservationViewOwn Capability = "reservation:view-own"
	CapTableManage        Capability = "table:manage"
	CapRestaurantManage   Capability = "restaurant:manage"
	CapCuisineManage      Capability = "cuisine:manage"
	CapMenuManage         Capability = "menu:manage"
	CapReviewPost         Capability = "review:post"
	CapReviewReply        Capability = "review:reply"
	CapPaymentRecord      Capability = "payment:record"
	CapCustomerSelf       Capability = "customer:self"
)

var capabilityTable = map[string]map[Capability]bool{
	models.RoleAdmin: {
		CapReservationCreate:  true,
		CapReservationManage:  true,
		CapReservationViewOwn: true,
		CapTableManage:        true,
		CapRestaurantManage:   true,
		CapCuisineManage:      true,
		CapMenuManage:         true,
		CapReviewPost:         true,
		CapReviewReply:        true,
		CapPaymentRecord:      true,
		CapCustomerSelf:       true,
	},
	models.RoleRestaurant: {
		CapReservationManage: true,
		CapTableManage:       true,
		CapRestaurantManage:  true,
		CapMenuManage:        true,
		CapReviewReply:       true,
	},
	models.RoleCustomer: {
		CapReservationCreate:  true,
		CapReservationViewOwn: true,
		CapReviewPost:         true,
		CapPaymentRecord:      true,
		CapCustomerSelf:       true,
	},
}

// Allowed -> (role, capability) => allow/deny
func Allowed(role string, cap Capability) bool {
	caps, ok := capabilityTable[role]
	if !ok {
		return false
	}
	return caps[cap]
}

// RequireCapability menolak request di boundary kalau role tidak punya
// capability yang diminta. Scheduler dan service lain tetap role-agnostic.
func RequireCapability(cap Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleInterface, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
			c.Abort()
			return
		}

		role, _ := roleInterface.(string)
		if !Allowed(role, cap) {
			utils.RespondError(c, http.StatusForbidden,
				fmt.Errorf("role %s is not allowed to perform %s", role, cap))
			c.Abort()
			return
		}

		c.Next()
	}
}
