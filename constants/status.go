package constants

// BookingStatus là tập trạng thái đóng của booking.
// Mọi so sánh trạng thái trong hệ thống đều đi qua các hằng này,
// không dùng chuỗi tự do.
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusCheckedIn  BookingStatus = "checked_in"
	BookingStatusCheckedOut BookingStatus = "checked_out"
	BookingStatusCancelled  BookingStatus = "cancelled"
	BookingStatusCompleted  BookingStatus = "completed"
)

// ActiveBookingStatuses là các trạng thái chiếm phòng khi tính availability
// và khi kiểm tra overlap lúc đặt phòng.
var ActiveBookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCheckedIn,
}

// Room status
const (
	RoomStatusInactive = 0
	RoomStatusActive   = 1
)

// Hotel / RoomType status
const (
	StatusInactive = 0
	StatusActive   = 1
)

// User role
const (
	RoleUser         = 0
	RoleSuperAdmin   = 1
	RoleAdmin        = 2
	RoleReceptionist = 3
)

// PendingTimeout: booking pending quá số phút này sẽ bị sweep hủy
const PendingTimeoutMinutes = 15

// CancelReasonTimeout là lý do hệ thống gán khi auto hủy booking pending
const CancelReasonTimeout = "Hết hạn giữ phòng, hệ thống tự động hủy"
