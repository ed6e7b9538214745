package models

import (
	"fmt"
	"time"
)

type Hotel struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	OwnerID      uint       `json:"ownerId"`
	Name         string     `json:"name"`
	Address      string     `json:"address"`
	Province     string     `json:"province"`
	District     string     `json:"district"`
	TimeCheckIn  string     `json:"timeCheckIn"`  // Giờ nhận phòng, ví dụ "14:00"
	TimeCheckOut string     `json:"timeCheckOut"` // Giờ trả phòng, ví dụ "12:00"
	Status       int        `json:"status" gorm:"default:1"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	RoomTypes    []RoomType `json:"roomTypes,omitempty" gorm:"foreignKey:HotelID"`
	Rooms        []Room     `json:"rooms,omitempty" gorm:"foreignKey:HotelID"`
}

func (h *Hotel) ValidateStatus() error {
	if h.Status < 0 || h.Status > 1 {
		return fmt.Errorf("invalid status: %d, must be either 0 or 1", h.Status)
	}
	return nil
}
