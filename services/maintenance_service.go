package services

import (
	"time"

	"khachsan/constants"
	"khachsan/models"
	"khachsan/services/logger"

	"gorm.io/gorm"
)

// MaintenanceService gom hai lượt sweep định kỳ trên bảng booking.
// Cả hai đều là một câu UPDATE lọc theo trạng thái + mốc thời gian nên
// chạy lại lần nữa sẽ không còn hàng nào khớp (idempotent).
type MaintenanceService struct {
	db     *gorm.DB
	logger logger.Logger
}

type MaintenanceServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewMaintenanceService(opts MaintenanceServiceOptions) *MaintenanceService {
	l := opts.Logger
	if l == nil {
		l = logger.NewNamedLogger(logger.InfoLevel, "maintenance")
	}
	return &MaintenanceService{db: opts.DB, logger: l}
}

// AutoCheckout chuyển mọi booking checked_in có ngày trả phòng trước hôm
// nay sang checked_out, kèm timestamp checkout thực tế
func (s *MaintenanceService) AutoCheckout() (int64, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	res := s.db.Model(&models.Booking{}).
		Where("status = ? AND check_out_date < ?", constants.BookingStatusCheckedIn, today).
		Updates(map[string]interface{}{
			"status":           constants.BookingStatusCheckedOut,
			"actual_check_out": now,
		})
	if res.Error != nil {
		s.logger.Error("AutoCheckout thất bại: %v", res.Error)
		return 0, res.Error
	}

	if res.RowsAffected > 0 {
		s.logger.Info("AutoCheckout: %d booking đã được trả phòng", res.RowsAffected)
	}
	return res.RowsAffected, nil
}

// AutoCancelPending hủy mọi booking pending tạo quá thời hạn giữ phòng
func (s *MaintenanceService) AutoCancelPending() (int64, error) {
	cutoff := time.Now().Add(-time.Duration(constants.PendingTimeoutMinutes) * time.Minute)

	res := s.db.Model(&models.Booking{}).
		Where("status = ? AND created_at < ?", constants.BookingStatusPending, cutoff).
		Updates(map[string]interface{}{
			"status":        constants.BookingStatusCancelled,
			"cancel_reason": constants.CancelReasonTimeout,
		})
	if res.Error != nil {
		s.logger.Error("AutoCancelPending thất bại: %v", res.Error)
		return 0, res.Error
	}

	if res.RowsAffected > 0 {
		s.logger.Info("AutoCancelPending: %d booking pending quá hạn đã bị hủy", res.RowsAffected)
	}
	return res.RowsAffected, nil
}
