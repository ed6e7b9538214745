package dto

// CreateHotelRequest là body của POST /khachsan
type CreateHotelRequest struct {
	Name         string `json:"name" validate:"required"`
	Address      string `json:"address"`
	Province     string `json:"province"`
	District     string `json:"district"`
	TimeCheckIn  string `json:"timeCheckIn"`
	TimeCheckOut string `json:"timeCheckOut"`
}

// CreateRoomTypeRequest là body của POST /loaiphong
type CreateRoomTypeRequest struct {
	HotelID   uint    `json:"ma_khach_san" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	BasePrice float64 `json:"basePrice" validate:"gte=0"`
	MaxPeople int     `json:"maxPeople" validate:"gte=1"`
	NumBed    int     `json:"numBed" validate:"gte=0"`
	Acreage   int     `json:"acreage" validate:"gte=0"`
}

// CreateRoomRequest là body của POST /phong
type CreateRoomRequest struct {
	HotelID    uint   `json:"ma_khach_san" validate:"required"`
	RoomTypeID uint   `json:"ma_loai_phong" validate:"required"`
	RoomName   string `json:"roomName" validate:"required"`
}
