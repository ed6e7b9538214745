package models

import (
	"time"

	"khachsan/constants"
)

// Booking là bản ghi đặt phòng. Với đường đặt phòng trực tiếp RoomID luôn
// khác nil; với đường ưu đãi RoomID là nil và OfferID khác nil (phòng được
// coi là đã giữ trước bởi chính offer).
//
// Bất biến cốt lõi: hai booking cùng RoomID với trạng thái trong
// constants.ActiveBookingStatuses không được có khoảng [CheckInDate,
// CheckOutDate) giao nhau.
type Booking struct {
	ID             uint                    `json:"id" gorm:"primaryKey"`
	RoomID         *uint                   `json:"roomId" gorm:"index"`
	HotelID        uint                    `json:"hotelId" gorm:"index"`
	RoomTypeID     uint                    `json:"roomTypeId" gorm:"index"`
	UserID         *uint                   `json:"userId"`
	OfferID        *uint                   `json:"offerId"`
	GuestName      string                  `json:"guestName,omitempty"`
	GuestEmail     string                  `json:"guestEmail,omitempty"`
	GuestPhone     string                  `json:"guestPhone,omitempty"`
	CheckInDate    time.Time               `json:"checkInDate" gorm:"index"`
	CheckOutDate   time.Time               `json:"checkOutDate" gorm:"index"`
	Adults         int                     `json:"adults" gorm:"default:1"`
	Children       int                     `json:"children" gorm:"default:0"`
	Status         constants.BookingStatus `json:"status" gorm:"size:32;index"`
	TotalPrice     float64                 `json:"totalPrice"`
	CancelReason   string                  `json:"cancelReason,omitempty"`
	ActualCheckOut *time.Time              `json:"actualCheckOut,omitempty"`
	CreatedAt      time.Time               `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time               `gorm:"autoUpdateTime" json:"updatedAt"`
	Room           *Room                   `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	Hotel          *Hotel                  `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
	User           *User                   `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Offer          *PromotionOffer         `json:"offer,omitempty" gorm:"foreignKey:OfferID"`
}

// Nights tính số đêm của booking theo khoảng nửa mở [checkIn, checkOut)
func (b *Booking) Nights() int {
	return int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
}

// Overlaps kiểm tra khoảng ngày của booking có giao với [checkIn, checkOut)
// không. Check-in tính, check-out không tính: trả phòng sáng ngày nào thì
// phòng nhận khách mới được từ ngày đó.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return b.CheckInDate.Before(checkOut) && b.CheckOutDate.After(checkIn)
}
