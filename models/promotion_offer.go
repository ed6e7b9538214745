package models

import (
	"fmt"
	"time"
)

// PromotionOffer là ưu đãi giảm giá có thời hạn, giới hạn số lượng, gắn với
// một (khách sạn, loại phòng). AvailableRooms là bộ đếm riêng của offer,
// không được âm và phải về đúng 0 khi IsActive tắt do hết suất.
type PromotionOffer struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	HotelID         uint      `json:"hotelId" gorm:"index"`
	RoomTypeID      uint      `json:"roomTypeId" gorm:"index"`
	Name            string    `json:"name"`
	DiscountedPrice float64   `json:"discountedPrice"` // Giá ưu đãi mỗi đêm
	TotalRooms      int       `json:"totalRooms"`
	AvailableRooms  int       `json:"availableRooms"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	IsActive        bool      `json:"isActive" gorm:"default:true"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Hotel           *Hotel    `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
	RoomType        *RoomType `json:"roomType,omitempty" gorm:"foreignKey:RoomTypeID"`
}

// IsBookable kiểm tra offer có nhận booking tại thời điểm now không
func (o *PromotionOffer) IsBookable(now time.Time) bool {
	if !o.IsActive || o.AvailableRooms <= 0 {
		return false
	}
	return !now.Before(o.StartTime) && now.Before(o.EndTime)
}

func (o *PromotionOffer) Validate() error {
	if o.TotalRooms <= 0 {
		return fmt.Errorf("invalid totalRooms: %d, must be positive", o.TotalRooms)
	}
	if !o.EndTime.After(o.StartTime) {
		return fmt.Errorf("endTime must be after startTime")
	}
	if o.DiscountedPrice < 0 {
		return fmt.Errorf("discountedPrice must not be negative")
	}
	return nil
}
