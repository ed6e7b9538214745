package services

import (
	"testing"
	"time"

	"khachsan/constants"
	"khachsan/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// sqlite in-memory sống theo connection, giới hạn pool về 1
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.RoomType{},
		&models.Room{},
		&models.Booking{},
		&models.PromotionOffer{},
	))

	return db
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

// seedRoomType tạo một khách sạn với một loại phòng và numRooms phòng active
func seedRoomType(t *testing.T, db *gorm.DB, basePrice float64, numRooms int) (models.Hotel, models.RoomType, []models.Room) {
	t.Helper()

	hotel := models.Hotel{Name: "Khách sạn Hoa Sen", Address: "Đà Nẵng", Status: constants.StatusActive}
	require.NoError(t, db.Create(&hotel).Error)

	roomType := models.RoomType{
		HotelID:   hotel.ID,
		Name:      "Standard",
		BasePrice: basePrice,
		MaxPeople: 2,
		Status:    constants.StatusActive,
	}
	require.NoError(t, db.Create(&roomType).Error)

	rooms := make([]models.Room, 0, numRooms)
	for i := 0; i < numRooms; i++ {
		room := models.Room{
			HotelID:    hotel.ID,
			RoomTypeID: roomType.ID,
			RoomName:   "P10" + string(rune('1'+i)),
			Status:     constants.RoomStatusActive,
		}
		require.NoError(t, db.Create(&room).Error)
		rooms = append(rooms, room)
	}

	return hotel, roomType, rooms
}

func seedUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	user := models.User{Name: "Nguyễn Văn A", Email: "a@example.com", PhoneNumber: "0905123456"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func countBookings(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&count).Error)
	return count
}
