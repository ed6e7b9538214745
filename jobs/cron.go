package jobs

import (
	"log"

	"github.com/robfig/cron/v3"
)

// MaintenanceRunner định nghĩa interface cho hai lượt sweep bảo trì
type MaintenanceRunner interface {
	AutoCheckout() (int64, error)
	AutoCancelPending() (int64, error)
}

var maintenanceRunner MaintenanceRunner

// SetMaintenanceRunner thiết lập implementation cho MaintenanceRunner
func SetMaintenanceRunner(runner MaintenanceRunner) {
	maintenanceRunner = runner
}

// InitCronJobs đăng ký các cron jobs và start scheduler.
// Caller giữ *cron.Cron để Stop khi shutdown.
func InitCronJobs(c *cron.Cron) error {
	// Auto checkout chạy đầu mỗi giờ
	if _, err := c.AddFunc("0 * * * *", func() {
		if maintenanceRunner == nil {
			log.Printf("Lỗi: MaintenanceRunner chưa được thiết lập")
			return
		}
		if _, err := maintenanceRunner.AutoCheckout(); err != nil {
			log.Printf("Lỗi khi auto checkout: %v", err)
		}
	}); err != nil {
		return err
	}

	// Hủy booking pending quá hạn chạy mỗi 5 phút
	if _, err := c.AddFunc("*/5 * * * *", func() {
		if maintenanceRunner == nil {
			log.Printf("Lỗi: MaintenanceRunner chưa được thiết lập")
			return
		}
		if _, err := maintenanceRunner.AutoCancelPending(); err != nil {
			log.Printf("Lỗi khi auto hủy booking pending: %v", err)
		}
	}); err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
