package routes

import (
	"hms/controllers"
	middlewares "hms/middleware"
	"hms/models"
	"hms/services"
	"hms/storage"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// AppServices gom các service được wire sẵn từ main
type AppServices struct {
	Store     storage.Store
	Bookings  *services.BookingService
	Billing   *services.BillingService
	Timeline  *services.TimelineService
	Dashboard *services.DashboardService
	Hub       *services.BookingEventHub
}

func SetupRoutes(router *gin.Engine, app AppServices) {
	bookingController := controllers.NewBookingController(app.Bookings, app.Store, app.Hub)
	roomController := controllers.NewRoomController(app.Store, app.Bookings, app.Timeline)
	dashboardController := controllers.NewDashboardController(app.Dashboard)
	customerController := controllers.NewCustomerController(app.Store)
	staffController := controllers.NewStaffController(app.Store)
	serviceController := controllers.NewServiceController(app.Store)
	invoiceController := controllers.NewInvoiceController(app.Store, app.Billing)

	manager := models.StaffRoleManager
	receptionist := models.StaffRoleReceptionist

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", staffController.Login)
	v1.POST("/auth/register", middlewares.AuthMiddleware(manager), staffController.Register)
	v1.GET("/staffs", middlewares.AuthMiddleware(manager), staffController.GetStaffs)
	v1.PUT("/staffs/:id", middlewares.AuthMiddleware(manager), staffController.UpdateStaff)

	v1.GET("/bookings", middlewares.AuthMiddleware(manager, receptionist), bookingController.GetBookings)
	v1.POST("/bookings", middlewares.AuthMiddleware(manager, receptionist), bookingController.CreateBooking)
	v1.GET("/bookings/:id", middlewares.AuthMiddleware(manager, receptionist), bookingController.GetBookingDetail)
	v1.PUT("/bookings/:id", middlewares.AuthMiddleware(manager, receptionist), bookingController.UpdateBooking)
	v1.PUT("/bookings/:id/checkin", middlewares.AuthMiddleware(manager, receptionist), bookingController.CheckIn)
	v1.PUT("/bookings/:id/checkout", middlewares.AuthMiddleware(manager, receptionist), bookingController.CheckOut)
	v1.PUT("/bookings/:id/cancel", middlewares.AuthMiddleware(manager, receptionist), bookingController.CancelBooking)
	v1.POST("/checkRoom", middlewares.AuthMiddleware(manager, receptionist), bookingController.CheckAvailability)

	v1.GET("/rooms", middlewares.AuthMiddleware(manager, receptionist), roomController.GetRooms)
	v1.POST("/rooms", middlewares.AuthMiddleware(manager), roomController.CreateRoom)
	v1.GET("/rooms/:id", middlewares.AuthMiddleware(manager, receptionist), roomController.GetRoomDetail)
	v1.PUT("/rooms/:id", middlewares.AuthMiddleware(manager), roomController.UpdateRoom)
	v1.GET("/timeline", middlewares.AuthMiddleware(manager, receptionist), roomController.GetTimeline)

	v1.GET("/dashboard", middlewares.AuthMiddleware(manager, receptionist), dashboardController.GetSummary)

	v1.GET("/customers", middlewares.AuthMiddleware(manager, receptionist), customerController.GetCustomers)
	v1.POST("/customers", middlewares.AuthMiddleware(manager, receptionist), customerController.CreateCustomer)
	v1.GET("/customers/:id", middlewares.AuthMiddleware(manager, receptionist), customerController.GetCustomerDetail)
	v1.PUT("/customers/:id", middlewares.AuthMiddleware(manager, receptionist), customerController.UpdateCustomer)

	v1.GET("/services", middlewares.AuthMiddleware(manager, receptionist), serviceController.GetServices)
	v1.POST("/services", middlewares.AuthMiddleware(manager), serviceController.CreateService)
	v1.PUT("/services/:id", middlewares.AuthMiddleware(manager), serviceController.UpdateService)

	v1.GET("/invoices", middlewares.AuthMiddleware(manager, receptionist), invoiceController.GetInvoices)
	v1.GET("/invoices/:id", middlewares.AuthMiddleware(manager, receptionist), invoiceController.GetInvoiceDetail)
	v1.PUT("/invoices/:id/pay", middlewares.AuthMiddleware(manager, receptionist), invoiceController.PayInvoice)

	// ws: đẩy sự kiện vòng đời đơn cho lịch phòng và màn hình tổng quan
	v1.GET("/ws", func(c *gin.Context) {
		app.Hub.HandleRequest(c.Writer, c.Request)
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
