package dto

// AvailabilityResponse là kết quả tính availability cho một loại phòng
// trong một khoảng ngày
type AvailabilityResponse struct {
	HotelID        uint   `json:"ma_khach_san"`
	RoomTypeID     uint   `json:"ma_loai_phong"`
	RoomTypeName   string `json:"ten_loai_phong,omitempty"`
	CheckInDate    string `json:"ngay_checkin"`
	CheckOutDate   string `json:"ngay_checkout"`
	TotalRooms     int    `json:"total_rooms"`
	BookedRooms    int    `json:"booked_rooms"`
	AvailableRooms int    `json:"available_rooms"`
}

// RoomTypeAvailability là availability của một loại phòng trong báo cáo
// toàn khách sạn, kèm cờ cảnh báo cho UI
type RoomTypeAvailability struct {
	RoomTypeID        uint    `json:"ma_loai_phong"`
	RoomTypeName      string  `json:"ten_loai_phong"`
	BasePrice         float64 `json:"gia_co_ban"`
	TotalRooms        int     `json:"total_rooms"`
	BookedRooms       int     `json:"booked_rooms"`
	AvailableRooms    int     `json:"available_rooms"`
	IsLowAvailability bool    `json:"is_low_availability"`
	IsSoldOut         bool    `json:"is_sold_out"`
}

// HotelAvailabilityResponse là availability toàn khách sạn theo từng loại phòng
type HotelAvailabilityResponse struct {
	HotelID      uint                   `json:"ma_khach_san"`
	CheckInDate  string                 `json:"ngay_checkin"`
	CheckOutDate string                 `json:"ngay_checkout"`
	RoomTypes    []RoomTypeAvailability `json:"loai_phong"`
}
