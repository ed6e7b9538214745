package main

import (
	"log"
	"net/http"
	"os"

	"khachsan/config"
	"khachsan/jobs"
	"khachsan/models"
	"khachsan/routes"
	"khachsan/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.RoomType{},
		&models.Room{},
		&models.Booking{},
		&models.PromotionOffer{},
	); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrateTables()

	maintenanceService := services.NewMaintenanceService(services.MaintenanceServiceOptions{
		DB: config.DB,
	})
	jobs.SetMaintenanceRunner(maintenanceService)

	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}
	defer c.Stop()

	routes.SetupRoutes(router, config.DB, config.RedisClient)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
