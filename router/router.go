package router

import (
	"github.com/gin-gonic/gin"
	"github.com/umidaZ/bisp-reservation/controllers"
	"github.com/umidaZ/bisp-reservation/middlewares"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	// Rate limiter global per IP (50 request per detik); harus terpasang
	// sebelum route didaftarkan supaya ikut masuk handler chain
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	// Inisialisasi controller
	userCtrl := controllers.NewUserController(db)
	customerCtrl := controllers.NewCustomerController(db)
	restaurantCtrl := controllers.NewRestaurantController(db)
	cuisineCtrl := controllers.NewCuisineController(db)
	tableCtrl := controllers.NewTableController(db)
	reservationCtrl := controllers.NewReservationController(db)
	menuCtrl := controllers.NewMenuController(db)
	reviewCtrl := controllers.NewReviewController(db)
	paymentCtrl := controllers.NewPaymentController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter untuk login/register
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Discovery (tanpa auth)
	r.GET("/restaurants", restaurantCtrl.GetAllRestaurants)
	r.GET("/restaurants/:restaurant_id", restaurantCtrl.GetRestaurantByID)
	r.GET("/restaurants/:restaurant_id/tables", tableCtrl.GetTablesByRestaurant)
	r.GET("/restaurants/:restaurant_id/menu", menuCtrl.GetMenuByRestaurant)
	r.GET("/restaurants/:restaurant_id/reviews", reviewCtrl.GetReviewsByRestaurant)
	r.GET("/reviews/:review_id/replies", reviewCtrl.GetRepliesByReview)
	r.GET("/cuisines", cuisineCtrl.GetAllCuisines)
	r.GET("/tables/:table_id", tableCtrl.GetTableByID)

	// Pre-flight availability check untuk booking UI
	r.GET("/tables/:table_id/availability", reservationCtrl.CheckAvailability)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())

	api.GET("/profile", userCtrl.GetProfile)

	// CUSTOMER PROFILE
	api.GET("/customers/me",
		middlewares.RequireCapability(middlewares.CapCustomerSelf), customerCtrl.GetMe)
	api.PATCH("/customers/me",
		middlewares.RequireCapability(middlewares.CapCustomerSelf), customerCtrl.UpdateMe)
	api.GET("/customers/me/addresses",
		middlewares.RequireCapability(middlewares.CapCustomerSelf), customerCtrl.ListAddresses)
	api.POST("/customers/me/addresses",
		middlewares.RequireCapability(middlewares.CapCustomerSelf), customerCtrl.AddAddress)

	// RESERVATIONS
	api.POST("/reservations",
		middlewares.RequireCapability(middlewares.CapReservationCreate), reservationCtrl.CreateReservation)
	api.GET("/reservations",
		middlewares.RequireCapability(middlewares.CapReservationViewOwn), reservationCtrl.GetMyReservations)
	api.GET("/reservations/:reservation_id", reservationCtrl.GetReservationByID)
	api.PATCH("/reservations/:reservation_id/status",
		middlewares.RequireCapability(middlewares.CapReservationManage), reservationCtrl.UpdateReservationStatus)
	api.GET("/restaurants/:restaurant_id/reservations",
		middlewares.RequireCapability(middlewares.CapReservationManage), reservationCtrl.GetReservationsByRestaurant)
	api.GET("/tables/:table_id/reservations",
		middlewares.RequireCapability(middlewares.CapReservationManage), reservationCtrl.GetReservationsByTable)

	// RESTAURANTS
	api.POST("/restaurants",
		middlewares.RequireCapability(middlewares.CapRestaurantManage), restaurantCtrl.CreateRestaurant)
	api.PATCH("/restaurants/:restaurant_id",
		middlewares.RequireCapability(middlewares.CapRestaurantManage), restaurantCtrl.UpdateRestaurant)

	// CUISINES (admin only)
	api.POST("/cuisines",
		middlewares.RequireCapability(middlewares.CapCuisineManage), cuisineCtrl.CreateCuisine)
	api.PATCH("/cuisines/:cuisine_id",
		middlewares.RequireCapability(middlewares.CapCuisineManage), cuisineCtrl.UpdateCuisine)
	api.DELETE("/cuisines/:cuisine_id",
		middlewares.RequireCapability(middlewares.CapCuisineManage), cuisineCtrl.DeleteCuisine)

	// TABLES
	api.POST("/restaurants/:restaurant_id/tables",
		middlewares.RequireCapability(middlewares.CapTableManage), tableCtrl.CreateTable)
	api.PATCH("/tables/:table_id",
		middlewares.RequireCapability(middlewares.CapTableManage), tableCtrl.UpdateTable)
	api.DELETE("/tables/:table_id",
		middlewares.RequireCapability(middlewares.CapTableManage), tableCtrl.DeleteTable)

	// MENUS
	api.POST("/restaurants/:restaurant_id/categories",
		middlewares.RequireCapability(middlewares.CapMenuManage), menuCtrl.CreateCategory)
	api.PATCH("/categories/:cat_id",
		middlewares.RequireCapability(middlewares.CapMenuManage), menuCtrl.UpdateCategory)
	api.DELETE("/categories/:cat_id",
		middlewares.RequireCapability(middlewares.CapMenuManage), menuCtrl.DeleteCategory)
	api.POST("/categories/:cat_id/items",
		middlewares.RequireCapability(middlewares.CapMenuManage), menuCtrl.CreateItem)
	api.PATCH("/items/:item_id",
		middlewares.RequireCapability(middlewares.CapMenuManage), menuCtrl.UpdateItem)
	api.DELETE("/items/:item_id",
		middlewares.RequireCapability(middlewares.CapMenuManage), menuCtrl.DeleteItem)

	// REVIEWS
	api.POST("/restaurants/:restaurant_id/reviews",
		middlewares.RequireCapability(middlewares.CapReviewPost), reviewCtrl.CreateReview)
	api.DELETE("/reviews/:review_id", reviewCtrl.DeleteReview)
	api.POST("/reviews/:review_id/replies",
		middlewares.RequireCapability(middlewares.CapReviewReply), reviewCtrl.CreateReply)

	// PAYMENTS (dicatat saja, tanpa gateway)
	api.POST("/payments",
		middlewares.RequireCapability(middlewares.CapPaymentRecord), paymentCtrl.CreatePayment)
	api.GET("/payments/:payment_id", paymentCtrl.GetPayment)
	api.GET("/reservations/:reservation_id/payment-status", paymentCtrl.GetPaymentStatusByReservation)

	return r
}
