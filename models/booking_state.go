package models

import (
	"khachsan/constants"
	"khachsan/errors"
)

// bookingTransitions là bảng chuyển trạng thái hợp lệ duy nhất của booking.
// Mọi thay đổi trạng thái phải đi qua Transition, không gán trực tiếp.
var bookingTransitions = map[constants.BookingStatus][]constants.BookingStatus{
	constants.BookingStatusPending: {
		constants.BookingStatusConfirmed,
		constants.BookingStatusCancelled,
	},
	constants.BookingStatusConfirmed: {
		constants.BookingStatusCheckedIn,
		constants.BookingStatusCancelled,
	},
	constants.BookingStatusCheckedIn: {
		constants.BookingStatusCheckedOut,
	},
	constants.BookingStatusCheckedOut: {
		constants.BookingStatusCompleted,
	},
	// cancelled và completed là trạng thái cuối
	constants.BookingStatusCancelled: {},
	constants.BookingStatusCompleted: {},
}

// CanTransition kiểm tra có được phép chuyển từ trạng thái hiện tại sang
// trạng thái đích không
func CanTransition(from, to constants.BookingStatus) bool {
	for _, allowed := range bookingTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Transition chuyển trạng thái booking, trả về lỗi nếu chuyển không hợp lệ
func (b *Booking) Transition(to constants.BookingStatus) error {
	if !CanTransition(b.Status, to) {
		return errors.NewAppError(errors.ErrCodeInvalidTransition,
			"Không thể chuyển trạng thái từ "+string(b.Status)+" sang "+string(to), nil)
	}
	b.Status = to
	return nil
}

// IsTerminal cho biết trạng thái có phải trạng thái cuối không
func IsTerminal(s constants.BookingStatus) bool {
	return len(bookingTransitions[s]) == 0
}
