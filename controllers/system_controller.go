package controllers

import (
	"khachsan/dto"
	"khachsan/response"
	"khachsan/services"

	"github.com/gin-gonic/gin"
)

// SystemController phơi hai lượt sweep bảo trì ra HTTP cho scheduler
// ngoài/admin; cùng code path với cron trong process
type SystemController struct {
	maintenance *services.MaintenanceService
}

func NewSystemController(maintenance *services.MaintenanceService) *SystemController {
	return &SystemController{maintenance: maintenance}
}

// AutoCheckout trả phòng mọi booking checked_in đã quá ngày checkout
// POST /system/auto-checkout
func (sc *SystemController) AutoCheckout(c *gin.Context) {
	affected, err := sc.maintenance.AutoCheckout()
	if err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, dto.SweepResponse{Affected: affected})
}

// AutoCancelPending hủy mọi booking pending quá hạn giữ phòng
// POST /system/auto-cancel-pending
func (sc *SystemController) AutoCancelPending(c *gin.Context) {
	affected, err := sc.maintenance.AutoCancelPending()
	if err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, dto.SweepResponse{Affected: affected})
}
