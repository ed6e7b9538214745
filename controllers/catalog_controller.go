package controllers

import (
	"strconv"

	"khachsan/config"
	"khachsan/constants"
	"khachsan/dto"
	"khachsan/models"
	"khachsan/response"
	"khachsan/validator"

	"github.com/gin-gonic/gin"
)

// CreateHotel tạo khách sạn mới
func CreateHotel(c *gin.Context) {
	var request dto.CreateHotelRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateStruct(&request); err != nil {
		response.ValidationError(c, appErrorMessage(err))
		return
	}

	hotel := models.Hotel{
		Name:         request.Name,
		Address:      request.Address,
		Province:     request.Province,
		District:     request.District,
		TimeCheckIn:  request.TimeCheckIn,
		TimeCheckOut: request.TimeCheckOut,
		Status:       constants.StatusActive,
	}
	if err := config.DB.Create(&hotel).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, hotel)
}

// GetHotels liệt kê khách sạn active kèm loại phòng
func GetHotels(c *gin.Context) {
	var hotels []models.Hotel
	if err := config.DB.Preload("RoomTypes").
		Where("status = ?", constants.StatusActive).
		Order("id ASC").Find(&hotels).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, hotels)
}

// CreateRoomType tạo loại phòng cho một khách sạn
func CreateRoomType(c *gin.Context) {
	var request dto.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateStruct(&request); err != nil {
		response.ValidationError(c, appErrorMessage(err))
		return
	}

	var hotel models.Hotel
	if err := config.DB.First(&hotel, request.HotelID).Error; err != nil {
		response.NotFound(c)
		return
	}

	roomType := models.RoomType{
		HotelID:   request.HotelID,
		Name:      request.Name,
		BasePrice: request.BasePrice,
		MaxPeople: request.MaxPeople,
		NumBed:    request.NumBed,
		Acreage:   request.Acreage,
		Status:    constants.StatusActive,
	}
	if err := config.DB.Create(&roomType).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, roomType)
}

// CreateRoom tạo phòng vật lý thuộc một loại phòng
func CreateRoom(c *gin.Context) {
	var request dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateStruct(&request); err != nil {
		response.ValidationError(c, appErrorMessage(err))
		return
	}

	var roomType models.RoomType
	if err := config.DB.First(&roomType, request.RoomTypeID).Error; err != nil {
		response.NotFound(c)
		return
	}
	if roomType.HotelID != request.HotelID {
		response.BadRequest(c, "ma_khach_san không khớp với loại phòng")
		return
	}

	room := models.Room{
		HotelID:    request.HotelID,
		RoomTypeID: request.RoomTypeID,
		RoomName:   request.RoomName,
		Status:     constants.RoomStatusActive,
	}
	if err := config.DB.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, room)
}

// DeactivateRoom vô hiệu hóa phòng. Phòng không bị xóa để giữ các booking
// đang sống trên phòng đó.
func DeactivateRoom(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, "id không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, uint(id)).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := config.DB.Model(&room).Update("status", constants.RoomStatusInactive).Error; err != nil {
		response.ServerError(c)
		return
	}

	room.Status = constants.RoomStatusInactive
	response.SuccessWithMessage(c, "Đã vô hiệu hóa phòng", room)
}

// GetHotelRooms liệt kê phòng của một khách sạn
func GetHotelRooms(c *gin.Context) {
	hotelID, err := strconv.ParseUint(c.Param("ma_khach_san"), 10, 32)
	if err != nil || hotelID == 0 {
		response.BadRequest(c, "ma_khach_san không hợp lệ")
		return
	}

	var rooms []models.Room
	if err := config.DB.Preload("RoomType").
		Where("hotel_id = ?", uint(hotelID)).
		Order("id ASC").Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, rooms)
}
