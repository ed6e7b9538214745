package controllers

import (
	"strings"

	"khachsan/constants"
	"khachsan/dto"
	"khachsan/errors"
	"khachsan/models"
	"khachsan/services"
	"khachsan/validator"

	"github.com/gin-gonic/gin"
)

// appErrorMessage lấy message hiển thị từ AppError, fallback về chuỗi lỗi gốc
func appErrorMessage(err error) string {
	if appErr := errors.GetAppError(err); appErr != nil {
		return appErr.Message
	}
	return err.Error()
}

// currentUserID đọc userID từ Authorization header nếu có, trả về nil nếu
// request không đăng nhập
func currentUserID(c *gin.Context) (*uint, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, true
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	userID, _, err := services.GetUserIDFromToken(tokenString)
	if err != nil {
		return nil, false
	}
	return &userID, true
}

func convertToBookingResponse(booking *models.Booking) dto.BookingResponse {
	resp := dto.BookingResponse{
		ID:             booking.ID,
		RoomID:         booking.RoomID,
		HotelID:        booking.HotelID,
		RoomTypeID:     booking.RoomTypeID,
		UserID:         booking.UserID,
		OfferID:        booking.OfferID,
		CheckInDate:    booking.CheckInDate.Format(validator.DateLayout),
		CheckOutDate:   booking.CheckOutDate.Format(validator.DateLayout),
		Status:         booking.Status,
		TotalPrice:     booking.TotalPrice,
		CancelReason:   booking.CancelReason,
		ActualCheckOut: booking.ActualCheckOut,
		CreatedAt:      booking.CreatedAt,
	}
	if booking.Room != nil {
		resp.RoomName = booking.Room.RoomName
	}
	return resp
}

func parseBookingStatus(s string) (constants.BookingStatus, bool) {
	if s == "" {
		return "", true
	}
	status := constants.BookingStatus(s)
	switch status {
	case constants.BookingStatusPending, constants.BookingStatusConfirmed,
		constants.BookingStatusCheckedIn, constants.BookingStatusCheckedOut,
		constants.BookingStatusCancelled, constants.BookingStatusCompleted:
		return status, true
	}
	return "", false
}
