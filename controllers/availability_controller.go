package controllers

import (
	"log"
	"strconv"
	"time"

	"khachsan/config"
	"khachsan/dto"
	"khachsan/errors"
	"khachsan/response"
	"khachsan/services"
	"khachsan/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// AvailabilityController phục vụ các endpoint availability (chỉ đọc)
type AvailabilityController struct {
	inventory *services.InventoryService
	rdb       *redis.Client
}

func NewAvailabilityController(inventory *services.InventoryService, rdb *redis.Client) *AvailabilityController {
	return &AvailabilityController{inventory: inventory, rdb: rdb}
}

func parseAvailabilityParams(c *gin.Context) (uint, time.Time, time.Time, bool) {
	hotelID, err := strconv.ParseUint(c.Param("ma_khach_san"), 10, 32)
	if err != nil || hotelID == 0 {
		response.BadRequest(c, "ma_khach_san không hợp lệ")
		return 0, time.Time{}, time.Time{}, false
	}

	checkIn, checkOut, err := validator.ParseDateRange(c.Query("ngay_checkin"), c.Query("ngay_checkout"))
	if err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return 0, time.Time{}, time.Time{}, false
	}

	return uint(hotelID), checkIn, checkOut, true
}

// GetHotelAvailability trả về availability theo từng loại phòng của khách sạn
// GET /khachsan/:ma_khach_san/availability?ngay_checkin&ngay_checkout
func (ac *AvailabilityController) GetHotelAvailability(c *gin.Context) {
	hotelID, checkIn, checkOut, ok := parseAvailabilityParams(c)
	if !ok {
		return
	}

	cacheKey := services.AvailabilityCacheKey(hotelID, c.Query("ngay_checkin"), c.Query("ngay_checkout"))

	if ac.rdb != nil {
		var cached dto.HotelAvailabilityResponse
		if err := services.GetFromRedis(config.Ctx, ac.rdb, cacheKey, &cached); err == nil && len(cached.RoomTypes) > 0 {
			response.Success(c, cached)
			return
		}
	}

	result, err := ac.inventory.GetHotelAvailability(hotelID, checkIn, checkOut)
	if err != nil {
		response.ServerError(c)
		return
	}

	if ac.rdb != nil {
		if err := services.SetToRedis(config.Ctx, ac.rdb, cacheKey, result, time.Minute); err != nil {
			log.Printf("Lỗi khi lưu availability vào Redis: %v", err)
		}
	}

	response.Success(c, result)
}

// GetRoomTypeAvailability trả về availability của một loại phòng
// GET /khachsan/:ma_khach_san/loaiphong/:ma_loai_phong/availability
func (ac *AvailabilityController) GetRoomTypeAvailability(c *gin.Context) {
	hotelID, checkIn, checkOut, ok := parseAvailabilityParams(c)
	if !ok {
		return
	}

	roomTypeID, err := strconv.ParseUint(c.Param("ma_loai_phong"), 10, 32)
	if err != nil || roomTypeID == 0 {
		response.BadRequest(c, "ma_loai_phong không hợp lệ")
		return
	}

	result, err := ac.inventory.GetAvailability(hotelID, uint(roomTypeID), checkIn, checkOut)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, result)
}
