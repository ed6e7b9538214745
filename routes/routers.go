package routes

import (
	"khachsan/constants"
	"khachsan/controllers"
	middlewares "khachsan/middleware"
	"khachsan/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client) {

	inventoryService := services.NewInventoryService(services.InventoryServiceOptions{DB: db})
	bookingService := services.NewBookingService(services.BookingServiceOptions{DB: db})
	offerService := services.NewOfferService(services.OfferServiceOptions{DB: db})
	maintenanceService := services.NewMaintenanceService(services.MaintenanceServiceOptions{DB: db})

	availabilityController := controllers.NewAvailabilityController(inventoryService, redisCli)
	bookingController := controllers.NewBookingController(bookingService, redisCli)
	offerController := controllers.NewOfferController(offerService)
	systemController := controllers.NewSystemController(maintenanceService)

	v1 := router.Group("/api/v1")

	// Availability (chỉ đọc)
	v1.GET("/khachsan/:ma_khach_san/availability", availabilityController.GetHotelAvailability)
	v1.GET("/khachsan/:ma_khach_san/loaiphong/:ma_loai_phong/availability", availabilityController.GetRoomTypeAvailability)

	// Đặt phòng an toàn
	v1.POST("/khachsan/book-room-safe", bookingController.BookRoomSafe)
	v1.GET("/booking/:id", bookingController.GetBookingDetail)
	v1.GET("/booking", bookingController.GetBookings)

	// Ưu đãi
	v1.POST("/promotion-offers/book", offerController.BookWithOffer)
	v1.POST("/promotion-offers", middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleAdmin), offerController.CreateOffer)
	v1.PUT("/promotion-offers/:id/cancel", middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleAdmin), offerController.CancelOffer)
	v1.GET("/promotion-offers", offerController.GetOffers)

	// Sweep bảo trì, gọi bởi admin hoặc scheduler ngoài
	v1.POST("/system/auto-checkout", middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleAdmin), systemController.AutoCheckout)
	v1.POST("/system/auto-cancel-pending", middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleAdmin), systemController.AutoCancelPending)

	// Catalog
	v1.POST("/khachsan", middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleAdmin), controllers.CreateHotel)
	v1.GET("/khachsan", controllers.GetHotels)
	v1.GET("/khachsan/:ma_khach_san/phong", controllers.GetHotelRooms)
	v1.POST("/loaiphong", middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleAdmin), controllers.CreateRoomType)
	v1.POST("/phong", middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleAdmin), controllers.CreateRoom)
	v1.PUT("/phong/:id/deactivate", middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleAdmin), controllers.DeactivateRoom)
}
