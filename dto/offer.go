package dto

// BookOfferRequest là body của POST /promotion-offers/book
type BookOfferRequest struct {
	OfferID      uint   `json:"ma_uu_dai" validate:"required"`
	UserID       uint   `json:"ma_nguoi_dung" validate:"required"`
	CheckInDate  string `json:"ngay_checkin" validate:"required"`
	CheckOutDate string `json:"ngay_checkout" validate:"required"`
	Adults       int    `json:"nguoi_lon" validate:"gte=1"`
	Children     int    `json:"tre_em" validate:"gte=0"`
}

// CreateOfferRequest là body của POST /promotion-offers
type CreateOfferRequest struct {
	HotelID         uint    `json:"ma_khach_san" validate:"required"`
	RoomTypeID      uint    `json:"ma_loai_phong" validate:"required"`
	Name            string  `json:"ten_uu_dai" validate:"required"`
	DiscountedPrice float64 `json:"gia_uu_dai" validate:"gte=0"`
	TotalRooms      int     `json:"total_rooms" validate:"required,gte=1"`
	StartTime       string  `json:"start_time" validate:"required"`
	EndTime         string  `json:"end_time" validate:"required"`
}

// OfferResponse là thông tin offer trả về cho client
type OfferResponse struct {
	ID              uint    `json:"id"`
	HotelID         uint    `json:"ma_khach_san"`
	RoomTypeID      uint    `json:"ma_loai_phong"`
	Name            string  `json:"ten_uu_dai"`
	DiscountedPrice float64 `json:"gia_uu_dai"`
	TotalRooms      int     `json:"total_rooms"`
	AvailableRooms  int     `json:"available_rooms"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	IsActive        bool    `json:"is_active"`
}

// BookOfferResponse gộp booking và offer sau khi đặt thành công
type BookOfferResponse struct {
	Booking BookingResponse `json:"booking"`
	Offer   OfferResponse   `json:"offer"`
}
