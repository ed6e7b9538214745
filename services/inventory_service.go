package services

import (
	"time"

	"khachsan/constants"
	"khachsan/dto"
	"khachsan/models"
	"khachsan/services/logger"
	"khachsan/validator"

	"gorm.io/gorm"
)

// InventoryService tính availability theo loại phòng.
// Chỉ đọc, không ghi.
type InventoryService struct {
	db     *gorm.DB
	logger logger.Logger
}

type InventoryServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewInventoryService(opts InventoryServiceOptions) *InventoryService {
	l := opts.Logger
	if l == nil {
		l = logger.NewNamedLogger(logger.InfoLevel, "inventory")
	}
	return &InventoryService{db: opts.DB, logger: l}
}

// countBookedRooms đếm số phòng (distinct) của một loại phòng có ít nhất một
// booking đang chiếm chỗ giao với [checkIn, checkOut). Phép so overlap nửa mở:
// booking chiếm chỗ khi check_in_date < checkOut và check_out_date > checkIn.
func (s *InventoryService) countBookedRooms(hotelID, roomTypeID uint, checkIn, checkOut time.Time) (int64, error) {
	var booked int64
	err := s.db.Model(&models.Booking{}).
		Where("hotel_id = ? AND room_type_id = ? AND room_id IS NOT NULL", hotelID, roomTypeID).
		Where("status IN ?", constants.ActiveBookingStatuses).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn).
		Distinct("room_id").
		Count(&booked).Error
	return booked, err
}

func (s *InventoryService) countActiveRooms(hotelID, roomTypeID uint) (int64, error) {
	var total int64
	err := s.db.Model(&models.Room{}).
		Where("hotel_id = ? AND room_type_id = ? AND status = ?", hotelID, roomTypeID, constants.RoomStatusActive).
		Count(&total).Error
	return total, err
}

// GetAvailability trả về total/booked/available của một loại phòng trong
// khoảng [checkIn, checkOut)
func (s *InventoryService) GetAvailability(hotelID, roomTypeID uint, checkIn, checkOut time.Time) (*dto.AvailabilityResponse, error) {
	total, err := s.countActiveRooms(hotelID, roomTypeID)
	if err != nil {
		return nil, err
	}

	booked, err := s.countBookedRooms(hotelID, roomTypeID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	available := int(total - booked)
	// Phòng bị vô hiệu hóa không còn trong total nhưng booking đang sống
	// trên phòng đó vẫn được đếm vào booked, nên hiệu có thể âm
	if available < 0 {
		s.logger.Info("available âm (total=%d, booked=%d) cho loại phòng %d, chặn về 0", total, booked, roomTypeID)
		available = 0
	}

	return &dto.AvailabilityResponse{
		HotelID:        hotelID,
		RoomTypeID:     roomTypeID,
		CheckInDate:    checkIn.Format(validator.DateLayout),
		CheckOutDate:   checkOut.Format(validator.DateLayout),
		TotalRooms:     int(total),
		BookedRooms:    int(booked),
		AvailableRooms: available,
	}, nil
}

// GetHotelAvailability lặp GetAvailability cho từng loại phòng của khách sạn,
// gắn thêm cờ cảnh báo cho UI
func (s *InventoryService) GetHotelAvailability(hotelID uint, checkIn, checkOut time.Time) (*dto.HotelAvailabilityResponse, error) {
	var roomTypes []models.RoomType
	if err := s.db.Where("hotel_id = ? AND status = ?", hotelID, constants.StatusActive).
		Order("id ASC").Find(&roomTypes).Error; err != nil {
		return nil, err
	}

	result := &dto.HotelAvailabilityResponse{
		HotelID:      hotelID,
		CheckInDate:  checkIn.Format(validator.DateLayout),
		CheckOutDate: checkOut.Format(validator.DateLayout),
		RoomTypes:    make([]dto.RoomTypeAvailability, 0, len(roomTypes)),
	}

	for _, rt := range roomTypes {
		avail, err := s.GetAvailability(hotelID, rt.ID, checkIn, checkOut)
		if err != nil {
			return nil, err
		}

		result.RoomTypes = append(result.RoomTypes, dto.RoomTypeAvailability{
			RoomTypeID:        rt.ID,
			RoomTypeName:      rt.Name,
			BasePrice:         rt.BasePrice,
			TotalRooms:        avail.TotalRooms,
			BookedRooms:       avail.BookedRooms,
			AvailableRooms:    avail.AvailableRooms,
			IsLowAvailability: avail.AvailableRooms > 0 && avail.AvailableRooms <= 2,
			IsSoldOut:         avail.AvailableRooms == 0,
		})
	}

	return result, nil
}
