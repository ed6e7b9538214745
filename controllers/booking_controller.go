package controllers

import (
	goerrors "errors"
	"log"
	"strconv"

	"khachsan/config"
	"khachsan/dto"
	"khachsan/errors"
	"khachsan/response"
	"khachsan/services"
	"khachsan/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// BookingController phục vụ đường đặt phòng an toàn và tra cứu booking
type BookingController struct {
	booking *services.BookingService
	rdb     *redis.Client
}

func NewBookingController(booking *services.BookingService, rdb *redis.Client) *BookingController {
	return &BookingController{booking: booking, rdb: rdb}
}

// BookRoomSafe đặt một phòng với khóa chống double-booking
// POST /khachsan/book-room-safe
func (bc *BookingController) BookRoomSafe(c *gin.Context) {
	var request dto.BookRoomRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidateStruct(&request); err != nil {
		response.ValidationError(c, appErrorMessage(err))
		return
	}

	checkIn, checkOut, err := validator.ParseDateRange(request.CheckInDate, request.CheckOutDate)
	if err != nil {
		response.ValidationError(c, appErrorMessage(err))
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	if userID == nil && request.UserID != 0 {
		uid := request.UserID
		userID = &uid
	}
	if userID == nil && request.GuestPhone == "" {
		response.BadRequest(c, "Cần ma_nguoi_dung hoặc thông tin khách")
		return
	}

	booking, err := bc.booking.BookRoomWithLock(services.BookRoomInput{
		HotelID:    request.HotelID,
		RoomTypeID: request.RoomTypeID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		UserID:     userID,
		GuestCount: request.GuestCount,
		TotalPrice: request.TotalPrice,
		GuestName:  request.GuestName,
		GuestEmail: request.GuestEmail,
		GuestPhone: request.GuestPhone,
	})
	if err != nil {
		if goerrors.Is(err, errors.ErrSoldOut) {
			response.BadRequestWithData(c, "Đã hết phòng trong khoảng thời gian này",
				gin.H{"reason": "sold_out"})
			return
		}
		response.ServerError(c)
		return
	}

	bc.invalidateAvailability(request.HotelID)

	response.Created(c, convertToBookingResponse(booking))
}

// GetBookingDetail lấy chi tiết một booking
// GET /booking/:id
func (bc *BookingController) GetBookingDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, "id không hợp lệ")
		return
	}

	booking, err := bc.booking.GetBookingByID(uint(id))
	if err != nil {
		if goerrors.Is(err, errors.ErrBookingNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, convertToBookingResponse(booking))
}

// GetBookings liệt kê booking theo khách sạn/trạng thái, có phân trang
// GET /booking?ma_khach_san&status&page&limit
func (bc *BookingController) GetBookings(c *gin.Context) {
	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	var hotelID uint
	if hotelStr := c.Query("ma_khach_san"); hotelStr != "" {
		parsed, err := strconv.ParseUint(hotelStr, 10, 32)
		if err != nil {
			response.BadRequest(c, "ma_khach_san không hợp lệ")
			return
		}
		hotelID = uint(parsed)
	}

	status, ok := parseBookingStatus(c.Query("status"))
	if !ok {
		response.BadRequest(c, "status không hợp lệ")
		return
	}

	bookings, total, err := bc.booking.ListBookings(hotelID, status, page, limit)
	if err != nil {
		response.ServerError(c)
		return
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		bookingResponses = append(bookingResponses, convertToBookingResponse(&bookings[i]))
	}

	response.SuccessWithPagination(c, bookingResponses, page, limit, int(total))
}

func (bc *BookingController) invalidateAvailability(hotelID uint) {
	if bc.rdb == nil {
		return
	}
	if err := services.InvalidateHotelAvailability(config.Ctx, bc.rdb, hotelID); err != nil {
		log.Printf("Lỗi khi xóa cache availability: %v", err)
	}
}
