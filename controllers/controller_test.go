package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"khachsan/constants"
	"khachsan/models"
	"khachsan/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

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

// setupRouter đăng ký thẳng các route cần test, không qua Redis
func setupRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	inventory := services.NewInventoryService(services.InventoryServiceOptions{DB: db})
	booking := services.NewBookingService(services.BookingServiceOptions{DB: db})
	maintenance := services.NewMaintenanceService(services.MaintenanceServiceOptions{DB: db})

	availabilityCtrl := NewAvailabilityController(inventory, nil)
	bookingCtrl := NewBookingController(booking, nil)
	systemCtrl := NewSystemController(maintenance)

	router := gin.New()
	api := router.Group("/api/v1")
	api.GET("/khachsan/:ma_khach_san/availability", availabilityCtrl.GetHotelAvailability)
	api.GET("/khachsan/:ma_khach_san/loaiphong/:ma_loai_phong/availability", availabilityCtrl.GetRoomTypeAvailability)
	api.POST("/khachsan/book-room-safe", bookingCtrl.BookRoomSafe)
	api.POST("/system/auto-checkout", systemCtrl.AutoCheckout)
	api.POST("/system/auto-cancel-pending", systemCtrl.AutoCancelPending)
	return router
}

func seedHotelWithRooms(t *testing.T, db *gorm.DB, numRooms int) (models.Hotel, models.RoomType) {
	t.Helper()

	hotel := models.Hotel{Name: "Khách sạn Biển Xanh", Address: "Nha Trang", Status: constants.StatusActive}
	require.NoError(t, db.Create(&hotel).Error)

	roomType := models.RoomType{
		HotelID:   hotel.ID,
		Name:      "Deluxe",
		BasePrice: 800000,
		MaxPeople: 2,
		Status:    constants.StatusActive,
	}
	require.NoError(t, db.Create(&roomType).Error)

	for i := 0; i < numRooms; i++ {
		room := models.Room{
			HotelID:    hotel.ID,
			RoomTypeID: roomType.ID,
			RoomName:   fmt.Sprintf("P20%d", i+1),
			Status:     constants.RoomStatusActive,
		}
		require.NoError(t, db.Create(&room).Error)
	}

	return hotel, roomType
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestGetHotelAvailability(t *testing.T) {
	db := setupTestDB(t)
	hotel, roomType := seedHotelWithRooms(t, db, 2)
	router := setupRouter(t, db)

	var room models.Room
	require.NoError(t, db.Where("room_type_id = ?", roomType.ID).
		Order("id ASC").First(&room).Error)

	checkIn, _ := time.Parse("2006-01-02", "2024-06-01")
	checkOut, _ := time.Parse("2006-01-02", "2024-06-05")
	booking := models.Booking{
		RoomID:       &room.ID,
		HotelID:      hotel.ID,
		RoomTypeID:   roomType.ID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Status:       constants.BookingStatusConfirmed,
		GuestPhone:   "0905123456",
	}
	require.NoError(t, db.Create(&booking).Error)

	path := fmt.Sprintf("/api/v1/khachsan/%d/availability?ngay_checkin=2024-06-02&ngay_checkout=2024-06-04", hotel.ID)
	w := doRequest(t, router, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)

	var data struct {
		HotelID   uint `json:"ma_khach_san"`
		RoomTypes []struct {
			RoomTypeID     uint `json:"ma_loai_phong"`
			TotalRooms     int  `json:"total_rooms"`
			BookedRooms    int  `json:"booked_rooms"`
			AvailableRooms int  `json:"available_rooms"`
			IsLow          bool `json:"is_low_availability"`
			IsSoldOut      bool `json:"is_sold_out"`
		} `json:"loai_phong"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, hotel.ID, data.HotelID)
	require.Len(t, data.RoomTypes, 1)
	assert.Equal(t, 2, data.RoomTypes[0].TotalRooms)
	assert.Equal(t, 1, data.RoomTypes[0].BookedRooms)
	assert.Equal(t, 1, data.RoomTypes[0].AvailableRooms)
	assert.True(t, data.RoomTypes[0].IsLow)
	assert.False(t, data.RoomTypes[0].IsSoldOut)
}

func TestGetHotelAvailabilityRejectsBadInput(t *testing.T) {
	db := setupTestDB(t)
	hotel, _ := seedHotelWithRooms(t, db, 1)
	router := setupRouter(t, db)

	// checkout trước checkin
	path := fmt.Sprintf("/api/v1/khachsan/%d/availability?ngay_checkin=2024-06-05&ngay_checkout=2024-06-01", hotel.ID)
	w := doRequest(t, router, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, decodeEnvelope(t, w).Success)

	// ma_khach_san không phải số
	w = doRequest(t, router, http.MethodGet,
		"/api/v1/khachsan/abc/availability?ngay_checkin=2024-06-01&ngay_checkout=2024-06-05", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// thiếu ngày
	w = doRequest(t, router, http.MethodGet,
		fmt.Sprintf("/api/v1/khachsan/%d/availability?ngay_checkin=2024-06-01", hotel.ID), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookRoomSafeEndpoint(t *testing.T) {
	db := setupTestDB(t)
	hotel, roomType := seedHotelWithRooms(t, db, 1)
	router := setupRouter(t, db)

	body := gin.H{
		"ma_khach_san":  hotel.ID,
		"ma_loai_phong": roomType.ID,
		"ngay_checkin":  "2024-06-01",
		"ngay_checkout": "2024-06-03",
		"so_khach":      2,
		"sdt_khach":     "0905123456",
	}

	w := doRequest(t, router, http.MethodPost, "/api/v1/khachsan/book-room-safe", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)

	var created struct {
		ID     uint                    `json:"id"`
		Status constants.BookingStatus `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, constants.BookingStatusPending, created.Status)

	// Phòng duy nhất đã bị giữ, request trùng ngày phải nhận sold_out
	w = doRequest(t, router, http.MethodPost, "/api/v1/khachsan/book-room-safe", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	env = decodeEnvelope(t, w)
	assert.False(t, env.Success)
	var reason struct {
		Reason string `json:"reason"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &reason))
	assert.Equal(t, "sold_out", reason.Reason)
}

func TestBookRoomSafeValidation(t *testing.T) {
	db := setupTestDB(t)
	seedHotelWithRooms(t, db, 1)
	router := setupRouter(t, db)

	// thiếu trường bắt buộc
	w := doRequest(t, router, http.MethodPost, "/api/v1/khachsan/book-room-safe",
		gin.H{"ngay_checkin": "2024-06-01"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// khoảng ngày rỗng
	w = doRequest(t, router, http.MethodPost, "/api/v1/khachsan/book-room-safe", gin.H{
		"ma_khach_san":  1,
		"ma_loai_phong": 1,
		"ngay_checkin":  "2024-06-03",
		"ngay_checkout": "2024-06-03",
		"so_khach":      1,
		"sdt_khach":     "0905123456",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSystemSweepEndpoints(t *testing.T) {
	db := setupTestDB(t)
	hotel, roomType := seedHotelWithRooms(t, db, 1)
	router := setupRouter(t, db)

	var room models.Room
	require.NoError(t, db.Where("room_type_id = ?", roomType.ID).First(&room).Error)

	overdue := models.Booking{
		RoomID:       &room.ID,
		HotelID:      hotel.ID,
		RoomTypeID:   roomType.ID,
		CheckInDate:  time.Now().AddDate(0, 0, -3),
		CheckOutDate: time.Now().AddDate(0, 0, -1),
		Status:       constants.BookingStatusCheckedIn,
		GuestPhone:   "0905123456",
	}
	require.NoError(t, db.Create(&overdue).Error)

	w := doRequest(t, router, http.MethodPost, "/api/v1/system/auto-checkout", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	env := decodeEnvelope(t, w)
	var sweep struct {
		Affected int64 `json:"affected"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &sweep))
	assert.EqualValues(t, 1, sweep.Affected)

	// Lượt hai không còn gì để sweep
	w = doRequest(t, router, http.MethodPost, "/api/v1/system/auto-checkout", nil)
	env = decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(env.Data, &sweep))
	assert.EqualValues(t, 0, sweep.Affected)

	w = doRequest(t, router, http.MethodPost, "/api/v1/system/auto-cancel-pending", nil)
	require.Equal(t, http.StatusOK, w.Code)
}
