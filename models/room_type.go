package models

import (
	"time"
)

// RoomType là đơn vị khách hàng xem và đặt: availability được báo cáo
// theo loại phòng, không theo từng phòng vật lý.
type RoomType struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	HotelID   uint      `json:"hotelId" gorm:"index"`
	Name      string    `json:"name"`
	BasePrice float64   `json:"basePrice"` // Giá cơ bản mỗi đêm
	MaxPeople int       `json:"maxPeople"`
	NumBed    int       `json:"numBed"`
	Acreage   int       `json:"acreage"`
	Status    int       `json:"status" gorm:"default:1"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Hotel     *Hotel    `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
	Rooms     []Room    `json:"rooms,omitempty" gorm:"foreignKey:RoomTypeID"`
}
