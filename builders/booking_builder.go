package builders

import (
	"time"

	"khachsan/constants"
	"khachsan/models"
)

// BookingBuilder giúp tạo booking theo từng bước
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder tạo instance mới của BookingBuilder
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{},
	}
}

// WithHotel thêm khách sạn
func (b *BookingBuilder) WithHotel(hotelID uint) *BookingBuilder {
	b.booking.HotelID = hotelID
	return b
}

// WithRoomType thêm loại phòng
func (b *BookingBuilder) WithRoomType(roomTypeID uint) *BookingBuilder {
	b.booking.RoomTypeID = roomTypeID
	return b
}

// WithRoom thêm phòng được gán
func (b *BookingBuilder) WithRoom(roomID uint) *BookingBuilder {
	b.booking.RoomID = &roomID
	return b
}

// WithOffer thêm ưu đãi (đường đặt qua offer không gán phòng)
func (b *BookingBuilder) WithOffer(offerID uint) *BookingBuilder {
	b.booking.OfferID = &offerID
	return b
}

// WithUser thêm thông tin user
func (b *BookingBuilder) WithUser(userID *uint) *BookingBuilder {
	b.booking.UserID = userID
	return b
}

// WithGuestInfo thêm thông tin khách
func (b *BookingBuilder) WithGuestInfo(guestName, guestPhone, guestEmail string) *BookingBuilder {
	b.booking.GuestName = guestName
	b.booking.GuestPhone = guestPhone
	b.booking.GuestEmail = guestEmail
	return b
}

// WithDates thêm khoảng ngày [checkIn, checkOut)
func (b *BookingBuilder) WithDates(checkIn, checkOut time.Time) *BookingBuilder {
	b.booking.CheckInDate = checkIn
	b.booking.CheckOutDate = checkOut
	return b
}

// WithGuests thêm số khách
func (b *BookingBuilder) WithGuests(adults, children int) *BookingBuilder {
	b.booking.Adults = adults
	b.booking.Children = children
	return b
}

// WithStatus thêm trạng thái
func (b *BookingBuilder) WithStatus(status constants.BookingStatus) *BookingBuilder {
	b.booking.Status = status
	return b
}

// WithTotalPrice thêm tổng giá
func (b *BookingBuilder) WithTotalPrice(totalPrice float64) *BookingBuilder {
	b.booking.TotalPrice = totalPrice
	return b
}

// Build tạo booking hoàn chỉnh
func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
