package controllers

import (
	"context"
	"strconv"

	"hms/config"
	"hms/errors"
	"hms/response"
	"hms/services"

	"github.com/gin-gonic/gin"
)

// Khóa cache Redis cho các danh sách hay đọc
const (
	cacheKeyBookings  = "bookings:all"
	cacheKeyRooms     = "rooms:all"
	cacheKeyCustomers = "customers:all"
	cacheKeyDashboard = "dashboard:summary"
)

// CacheSweeper dọn toàn bộ khóa cache danh sách theo lịch, đề phòng
// một lần invalidation bị bỏ sót giữa các lần ghi
type CacheSweeper struct{}

func NewCacheSweeper() *CacheSweeper {
	return &CacheSweeper{}
}

// SweepListCaches xóa các khóa cache danh sách; trả về lỗi đầu tiên
// gặp phải, các khóa còn lại vẫn được dọn
func (s *CacheSweeper) SweepListCaches(ctx context.Context) error {
	rdb := config.RedisClient
	if rdb == nil {
		return nil
	}
	var firstErr error
	for _, key := range []string{cacheKeyBookings, cacheKeyRooms, cacheKeyCustomers, cacheKeyDashboard} {
		if err := services.DeleteFromRedis(ctx, rdb, key); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// handleError ánh xạ lỗi nghiệp vụ sang response HTTP
func handleError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		response.ServerError(c)
		return
	}

	switch appErr.Code {
	case errors.ErrCodeRoomConflict:
		response.Conflict(c)
	case errors.ErrCodeNotFound:
		response.NotFound(c)
	case errors.ErrCodeInvalidInterval, errors.ErrCodeInvalidTransition,
		errors.ErrCodeRoomUnavailable, errors.ErrCodeValidation,
		errors.ErrCodeRequiredField, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidRole:
		response.BadRequest(c, appErr.Message)
	case errors.ErrCodeInvoiceCreation:
		response.Error(c, 0, appErr.Message)
	case errors.ErrCodeUnauthorized, errors.ErrCodeInvalidToken, errors.ErrCodeMissingToken:
		response.Unauthorized(c)
	default:
		response.ServerError(c)
	}
}

// parsePagination đọc page/limit từ query, mặc định page=0 limit=10
func parsePagination(c *gin.Context) (int, int) {
	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}
	return page, limit
}

// paginate cắt trang trên slice đã lọc
func paginate[T any](items []T, page, limit int) []T {
	start := page * limit
	end := start + limit
	if start >= len(items) {
		return []T{}
	}
	if end > len(items) {
		return items[start:]
	}
	return items[start:end]
}
