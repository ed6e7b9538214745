package models

import (
	"time"

	"khachsan/constants"
)

// Room là phòng vật lý. Phòng không bao giờ bị xóa, chỉ bị vô hiệu hóa
// (status = 0) để giữ lịch sử booking.
type Room struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	HotelID    uint      `json:"hotelId" gorm:"index"`
	RoomTypeID uint      `json:"roomTypeId" gorm:"index"`
	RoomName   string    `json:"roomName"`
	Status     int       `json:"status" gorm:"default:1"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Hotel      *Hotel    `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
	RoomType   *RoomType `json:"roomType,omitempty" gorm:"foreignKey:RoomTypeID"`
}

func (r *Room) IsActive() bool {
	return r.Status == constants.RoomStatusActive
}
