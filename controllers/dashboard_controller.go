package controllers

import (
	"log"
	"time"

	"hms/config"
	"hms/response"
	"hms/services"

	"github.com/gin-gonic/gin"
)

// DashboardController handler cho màn hình tổng quan lễ tân
type DashboardController struct {
	dashboard *services.DashboardService
}

func NewDashboardController(dashboard *services.DashboardService) *DashboardController {
	return &DashboardController{dashboard: dashboard}
}

// GetSummary trả về số liệu tổng quan. Cache Redis ngắn vì số liệu đổi
// theo từng thao tác check-in / check-out.
func (ctrl *DashboardController) GetSummary(c *gin.Context) {
	rdb := config.RedisClient

	if rdb != nil {
		var cached services.DashboardSummary
		if err := services.GetFromRedis(config.Ctx, rdb, cacheKeyDashboard, &cached); err == nil && !cached.GeneratedAt.IsZero() {
			response.Success(c, cached)
			return
		}
	}

	summary, err := ctrl.dashboard.Summary(c.Request.Context())
	if err != nil {
		response.ServerError(c)
		return
	}

	if rdb != nil {
		if err := services.SetToRedis(config.Ctx, rdb, cacheKeyDashboard, summary, 30*time.Second); err != nil {
			log.Printf("Lỗi khi lưu số liệu tổng quan vào Redis: %v", err)
		}
	}

	response.Success(c, summary)
}
