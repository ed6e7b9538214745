package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	ErrCodeInvalidRole  ErrorCode = "INVALID_ROLE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidDate   ErrorCode = "INVALID_DATE"

	// Database errors
	ErrCodeDBError    ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound ErrorCode = "DB_NOT_FOUND"

	// Business errors
	ErrCodeSoldOut           ErrorCode = "SOLD_OUT"
	ErrCodeOfferUnavailable  ErrorCode = "OFFER_UNAVAILABLE"
	ErrCodeInvalidTransition ErrorCode = "INVALID_TRANSITION"
	ErrCodeInvalidOperation  ErrorCode = "INVALID_OPERATION"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// GetAppError lấy AppError từ error, nil nếu không phải
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

var (
	// Booking errors
	ErrSoldOut         = errors.New("không còn phòng trống trong khoảng thời gian này")
	ErrBookingNotFound = errors.New("booking not found")

	// Offer errors
	ErrOfferUnavailable = errors.New("ưu đãi không khả dụng")
	ErrOfferNotFound    = errors.New("offer not found")

	// Catalog errors
	ErrHotelNotFound    = errors.New("hotel not found")
	ErrRoomTypeNotFound = errors.New("room type not found")
	ErrRoomNotFound     = errors.New("room not found")
)
