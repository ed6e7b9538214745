package validator

import (
	"time"

	"khachsan/errors"

	"github.com/go-playground/validator/v10"
)

// DateLayout là định dạng ngày trên wire (ISO calendar date)
const DateLayout = "2006-01-02"

var validate = validator.New()

// ValidateStruct chạy các rule `validate` tag trên request DTO
func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Dữ liệu không hợp lệ", err)
	}
	return nil
}

// ParseDate parse chuỗi ngày ISO, trả về AppError nếu sai định dạng
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDate,
			"Ngày không hợp lệ, vui lòng sử dụng định dạng yyyy-mm-dd", err)
	}
	return t, nil
}

// ParseDateRange parse và kiểm tra thứ tự cặp ngày checkin/checkout.
// checkOut <= checkIn bị từ chối trước khi chạm database.
func ParseDateRange(checkInStr, checkOutStr string) (time.Time, time.Time, error) {
	if checkInStr == "" || checkOutStr == "" {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeRequiredField,
			"ngay_checkin và ngay_checkout là bắt buộc", nil)
	}

	checkIn, err := ParseDate(checkInStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	checkOut, err := ParseDate(checkOutStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeValidation,
			"Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	return checkIn, checkOut, nil
}

// ValidateID kiểm tra ID dương
func ValidateID(id uint, field string) error {
	if id == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, field+" không được để trống", nil)
	}
	return nil
}

// ParseTime parse chuỗi thời gian RFC3339 cho start_time/end_time của offer
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat,
			"Thời gian không hợp lệ, vui lòng sử dụng định dạng RFC3339", err)
	}
	return t, nil
}
