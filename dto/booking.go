package dto

import (
	"time"

	"khachsan/constants"
)

// BookRoomRequest là body của POST /khachsan/book-room-safe
type BookRoomRequest struct {
	HotelID      uint    `json:"ma_khach_san" validate:"required"`
	RoomTypeID   uint    `json:"ma_loai_phong" validate:"required"`
	CheckInDate  string  `json:"ngay_checkin" validate:"required"`
	CheckOutDate string  `json:"ngay_checkout" validate:"required"`
	UserID       uint    `json:"ma_nguoi_dung"`
	GuestCount   int     `json:"so_khach" validate:"gte=1"`
	TotalPrice   float64 `json:"tong_tien" validate:"gte=0"`
	GuestName    string  `json:"ten_khach,omitempty"`
	GuestEmail   string  `json:"email_khach,omitempty"`
	GuestPhone   string  `json:"sdt_khach,omitempty"`
}

// BookingResponse là thông tin booking trả về cho client
type BookingResponse struct {
	ID             uint                    `json:"id"`
	RoomID         *uint                   `json:"ma_phong,omitempty"`
	RoomName       string                  `json:"ten_phong,omitempty"`
	HotelID        uint                    `json:"ma_khach_san"`
	RoomTypeID     uint                    `json:"ma_loai_phong"`
	UserID         *uint                   `json:"ma_nguoi_dung,omitempty"`
	OfferID        *uint                   `json:"ma_uu_dai,omitempty"`
	CheckInDate    string                  `json:"ngay_checkin"`
	CheckOutDate   string                  `json:"ngay_checkout"`
	Status         constants.BookingStatus `json:"status"`
	TotalPrice     float64                 `json:"tong_tien"`
	CancelReason   string                  `json:"ly_do_huy,omitempty"`
	ActualCheckOut *time.Time              `json:"checkout_thuc_te,omitempty"`
	CreatedAt      time.Time               `json:"createdAt"`
}

// SweepResponse là kết quả một lượt sweep bảo trì
type SweepResponse struct {
	Affected int64 `json:"affected"`
}
