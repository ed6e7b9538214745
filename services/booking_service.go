package services

import (
	goerrors "errors"
	"time"

	"khachsan/builders"
	"khachsan/constants"
	"khachsan/errors"
	"khachsan/models"
	"khachsan/services/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingService là đường đặt phòng an toàn: khóa hàng phòng, kiểm tra lại
// overlap trong cùng transaction rồi mới insert booking.
type BookingService struct {
	db     *gorm.DB
	logger logger.Logger
}

type BookingServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	l := opts.Logger
	if l == nil {
		l = logger.NewNamedLogger(logger.InfoLevel, "booking")
	}
	return &BookingService{db: opts.DB, logger: l}
}

// BookRoomInput là đầu vào của BookRoomWithLock
type BookRoomInput struct {
	HotelID    uint
	RoomTypeID uint
	CheckIn    time.Time
	CheckOut   time.Time
	UserID     *uint
	GuestCount int
	TotalPrice float64
	GuestName  string
	GuestEmail string
	GuestPhone string
}

// supportsRowLock: sqlite (dùng trong test) không có FOR UPDATE,
// transaction của sqlite vốn chỉ có một writer nên vẫn tuần tự
func supportsRowLock(db *gorm.DB) bool {
	return db.Dialector.Name() != "sqlite"
}

// BookRoomWithLock đặt một phòng của (khách sạn, loại phòng) cho khoảng
// [CheckIn, CheckOut).
//
// Trong một transaction:
//  1. khóa FOR UPDATE toàn bộ phòng active của loại phòng (khóa cả tập
//     ứng viên mới tuần tự hóa được hai request cùng loại phòng; chỉ khóa
//     phòng được chọn thì transaction thua cuộc vẫn đọc overlap cũ)
//  2. đọc lại danh sách phòng đang bị chiếm trong khoảng ngày
//  3. chọn phòng trống có ID nhỏ nhất
//  4. insert booking trạng thái pending
//
// Hết phòng trả về errors.ErrSoldOut, transaction rollback, không để lại
// trạng thái dở dang.
func (s *BookingService) BookRoomWithLock(input BookRoomInput) (*models.Booking, error) {
	var booking *models.Booking

	err := s.db.Transaction(func(tx *gorm.DB) error {
		roomQuery := tx.
			Where("hotel_id = ? AND room_type_id = ? AND status = ?",
				input.HotelID, input.RoomTypeID, constants.RoomStatusActive).
			Order("id ASC")
		if supportsRowLock(tx) {
			roomQuery = roomQuery.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var rooms []models.Room
		if err := roomQuery.Find(&rooms).Error; err != nil {
			return err
		}
		if len(rooms) == 0 {
			return errors.ErrSoldOut
		}

		roomIDs := make([]uint, 0, len(rooms))
		for _, r := range rooms {
			roomIDs = append(roomIDs, r.ID)
		}

		var bookedIDs []uint
		if err := tx.Model(&models.Booking{}).
			Where("room_id IN ?", roomIDs).
			Where("status IN ?", constants.ActiveBookingStatuses).
			Where("check_in_date < ? AND check_out_date > ?", input.CheckOut, input.CheckIn).
			Distinct().
			Pluck("room_id", &bookedIDs).Error; err != nil {
			return err
		}

		booked := make(map[uint]bool, len(bookedIDs))
		for _, id := range bookedIDs {
			booked[id] = true
		}

		// rooms đã sắp theo ID tăng dần, phòng trống đầu tiên là phòng
		// có ID nhỏ nhất
		var chosen *models.Room
		for i := range rooms {
			if !booked[rooms[i].ID] {
				chosen = &rooms[i]
				break
			}
		}
		if chosen == nil {
			return errors.ErrSoldOut
		}

		totalPrice := input.TotalPrice
		if totalPrice <= 0 {
			var roomType models.RoomType
			if err := tx.First(&roomType, input.RoomTypeID).Error; err != nil {
				return err
			}
			nights := int(input.CheckOut.Sub(input.CheckIn).Hours() / 24)
			totalPrice = roomType.BasePrice * float64(nights)
		}

		b := builders.NewBookingBuilder().
			WithHotel(input.HotelID).
			WithRoomType(input.RoomTypeID).
			WithRoom(chosen.ID).
			WithUser(input.UserID).
			WithGuestInfo(input.GuestName, input.GuestPhone, input.GuestEmail).
			WithDates(input.CheckIn, input.CheckOut).
			WithGuests(input.GuestCount, 0).
			WithStatus(constants.BookingStatusPending).
			WithTotalPrice(totalPrice).
			Build()

		if err := tx.Create(b).Error; err != nil {
			return err
		}

		booking = b
		return nil
	})

	if err != nil {
		if !goerrors.Is(err, errors.ErrSoldOut) {
			s.logger.Error("BookRoomWithLock thất bại: %v", err)
		}
		return nil, err
	}

	s.logger.Info("Đã đặt phòng %d cho khoảng %s - %s",
		*booking.RoomID, input.CheckIn.Format("2006-01-02"), input.CheckOut.Format("2006-01-02"))
	return booking, nil
}

// GetBookingByID lấy booking theo ID kèm phòng
func (s *BookingService) GetBookingByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("Room").First(&booking, id).Error; err != nil {
		if goerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// ListBookings lọc booking theo khách sạn/trạng thái, có phân trang
func (s *BookingService) ListBookings(hotelID uint, status constants.BookingStatus, page, limit int) ([]models.Booking, int64, error) {
	query := s.db.Model(&models.Booking{})
	if hotelID != 0 {
		query = query.Where("hotel_id = ?", hotelID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []models.Booking
	if err := query.Preload("Room").
		Order("updated_at DESC").
		Offset(page * limit).Limit(limit).
		Find(&bookings).Error; err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}
