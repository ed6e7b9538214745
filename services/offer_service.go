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

// OfferService là đường đặt phòng qua ưu đãi: phòng được coi là đã giữ
// trước bởi chính offer nên booking vào thẳng trạng thái confirmed, và
// "khóa" ở đây là update có điều kiện trên chính hàng offer.
type OfferService struct {
	db     *gorm.DB
	logger logger.Logger
}

type OfferServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewOfferService(opts OfferServiceOptions) *OfferService {
	l := opts.Logger
	if l == nil {
		l = logger.NewNamedLogger(logger.InfoLevel, "offer")
	}
	return &OfferService{db: opts.DB, logger: l}
}

// BookOfferInput là đầu vào của BookWithOffer
type BookOfferInput struct {
	OfferID  uint
	UserID   uint
	CheckIn  time.Time
	CheckOut time.Time
	Adults   int
	Children int
}

// BookWithOffer đặt phòng theo ưu đãi trong một transaction:
//  1. đọc lại hàng offer với khóa FOR UPDATE, kiểm tra is_active,
//     start_time <= now < end_time và available_rooms > 0
//  2. insert booking trạng thái confirmed, giá = số đêm × giá ưu đãi
//  3. trừ available_rooms 1 đơn vị bằng một câu UPDATE có guard
//     available_rooms > 0; về 0 thì tắt is_active trong cùng câu lệnh
//
// Bất kỳ bước nào hỏng thì rollback toàn bộ, bộ đếm không bao giờ âm.
func (s *OfferService) BookWithOffer(input BookOfferInput) (*models.Booking, *models.PromotionOffer, error) {
	var (
		booking *models.Booking
		offer   models.PromotionOffer
	)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		offerQuery := tx
		if supportsRowLock(tx) {
			offerQuery = offerQuery.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		if err := offerQuery.First(&offer, input.OfferID).Error; err != nil {
			if goerrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.ErrOfferNotFound
			}
			return err
		}

		if !offer.IsBookable(time.Now()) {
			return errors.ErrOfferUnavailable
		}

		nights := int(input.CheckOut.Sub(input.CheckIn).Hours() / 24)
		userID := input.UserID

		b := builders.NewBookingBuilder().
			WithHotel(offer.HotelID).
			WithRoomType(offer.RoomTypeID).
			WithOffer(offer.ID).
			WithUser(&userID).
			WithDates(input.CheckIn, input.CheckOut).
			WithGuests(input.Adults, input.Children).
			WithStatus(constants.BookingStatusConfirmed).
			WithTotalPrice(offer.DiscountedPrice * float64(nights)).
			Build()

		if err := tx.Create(b).Error; err != nil {
			return err
		}

		// Cả hai biểu thức SET cùng đọc giá trị available_rooms trước
		// update, nên is_active tắt đúng lúc bộ đếm chạm 0
		res := tx.Model(&models.PromotionOffer{}).
			Where("id = ? AND available_rooms > 0", offer.ID).
			Updates(map[string]interface{}{
				"available_rooms": gorm.Expr("available_rooms - 1"),
				"is_active":       gorm.Expr("available_rooms - 1 > 0"),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errors.ErrOfferUnavailable
		}

		if err := tx.First(&offer, offer.ID).Error; err != nil {
			return err
		}

		booking = b
		return nil
	})

	if err != nil {
		if !goerrors.Is(err, errors.ErrOfferUnavailable) && !goerrors.Is(err, errors.ErrOfferNotFound) {
			s.logger.Error("BookWithOffer thất bại: %v", err)
		}
		return nil, nil, err
	}

	s.logger.Info("Đã đặt theo ưu đãi %d, còn lại %d suất", offer.ID, offer.AvailableRooms)
	return booking, &offer, nil
}

// CreateOffer tạo ưu đãi mới, available_rooms khởi tạo bằng total_rooms
func (s *OfferService) CreateOffer(offer *models.PromotionOffer) error {
	if err := offer.Validate(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), err)
	}
	offer.AvailableRooms = offer.TotalRooms
	offer.IsActive = true
	return s.db.Create(offer).Error
}

// CancelOffer tắt ưu đãi theo yêu cầu của chủ khách sạn
func (s *OfferService) CancelOffer(offerID uint) (*models.PromotionOffer, error) {
	var offer models.PromotionOffer
	if err := s.db.First(&offer, offerID).Error; err != nil {
		if goerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrOfferNotFound
		}
		return nil, err
	}

	if err := s.db.Model(&offer).Update("is_active", false).Error; err != nil {
		return nil, err
	}
	offer.IsActive = false
	return &offer, nil
}

// ListOffers liệt kê ưu đãi, lọc theo khách sạn nếu có
func (s *OfferService) ListOffers(hotelID uint) ([]models.PromotionOffer, error) {
	query := s.db.Model(&models.PromotionOffer{}).Order("id ASC")
	if hotelID != 0 {
		query = query.Where("hotel_id = ?", hotelID)
	}
	var offers []models.PromotionOffer
	if err := query.Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}
