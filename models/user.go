package models

import "time"

// User tối giản: hệ thống auth đầy đủ nằm ở service khác,
// ở đây chỉ cần định danh cho booking và claims trong token.
type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Role        int       `json:"role"`
	Status      int       `json:"status" gorm:"default:1"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
