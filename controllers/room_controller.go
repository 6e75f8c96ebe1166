package controllers

import (
	"log"
	"strconv"
	"strings"
	"time"

	"hms/config"
	"hms/dto"
	"hms/models"
	"hms/response"
	"hms/services"
	"hms/storage"
	"hms/validator"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/schollz/closestmatch"
)

// RoomController nhóm các handler cho phòng và lịch phòng tháng
type RoomController struct {
	store    storage.Store
	bookings *services.BookingService
	timeline *services.TimelineService
}

func NewRoomController(store storage.Store, bookings *services.BookingService, timeline *services.TimelineService) *RoomController {
	return &RoomController{store: store, bookings: bookings, timeline: timeline}
}

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// matchRoomType tìm loại phòng khớp gần đúng với từ khóa tìm kiếm
func matchRoomType(query string, roomTypes []models.RoomType) uint {
	if len(roomTypes) == 0 {
		return 0
	}

	names := make([]string, 0, len(roomTypes))
	byName := make(map[string]uint, len(roomTypes))
	for _, rt := range roomTypes {
		normalized := normalizeInput(rt.Name)
		names = append(names, normalized)
		byName[normalized] = rt.ID
	}

	matcher := createMatcher(names)
	closest := matcher.Closest(normalizeInput(query))
	if closest == "" {
		return 0
	}
	return byName[closest]
}

// GetRooms trả về danh sách phòng, hỗ trợ lọc theo tên, trạng thái và
// từ khóa loại phòng (khớp gần đúng, không phân biệt dấu)
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	var allRooms []models.Room

	rdb := config.RedisClient
	if rdb != nil {
		if err := services.GetFromRedis(config.Ctx, rdb, cacheKeyRooms, &allRooms); err != nil {
			log.Printf("Lỗi khi đọc cache phòng: %v", err)
		}
	}

	if len(allRooms) == 0 {
		var err error
		allRooms, err = ctrl.store.ListRooms(c.Request.Context())
		if err != nil {
			response.ServerError(c)
			return
		}
		if rdb != nil {
			if err := services.SetToRedis(config.Ctx, rdb, cacheKeyRooms, allRooms, 10*time.Minute); err != nil {
				log.Printf("Lỗi khi lưu danh sách phòng vào Redis: %v", err)
			}
		}
	}

	nameFilter := c.Query("name")
	statusFilter := c.Query("status")
	keyword := c.Query("keyword")

	var keywordTypeID uint
	if keyword != "" {
		roomTypes, err := ctrl.store.ListRoomTypes(c.Request.Context())
		if err != nil {
			response.ServerError(c)
			return
		}
		keywordTypeID = matchRoomType(keyword, roomTypes)
	}

	filtered := make([]models.Room, 0, len(allRooms))
	for _, room := range allRooms {
		if nameFilter != "" && !strings.Contains(normalizeInput(room.RoomName), normalizeInput(nameFilter)) {
			continue
		}
		if statusFilter != "" {
			parsedStatus, err := strconv.Atoi(statusFilter)
			if err == nil && room.Status != parsedStatus {
				continue
			}
		}
		if keywordTypeID != 0 && room.RoomTypeID != keywordTypeID {
			continue
		}
		filtered = append(filtered, room)
	}

	page, limit := parsePagination(c)
	total := len(filtered)
	pageItems := paginate(filtered, page, limit)

	response.SuccessWithPagination(c, dto.ToRoomResponses(pageItems), page, limit, total)
}

// GetRoomDetail trả về chi tiết phòng kèm các đơn đang giữ phòng hiện tại
func (ctrl *RoomController) GetRoomDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	room, err := ctrl.store.GetRoom(c.Request.Context(), uint(id))
	if err != nil {
		handleError(c, err)
		return
	}

	stays := ctrl.bookings.CurrentStays(room.RoomID)
	response.Success(c, gin.H{
		"room":            dto.ToRoomResponse(*room),
		"currentBookings": dto.ToBookingResponses(stays),
	})
}

// CreateRoom tạo phòng mới
func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	room := &models.Room{
		RoomName:   req.RoomName,
		RoomTypeID: req.RoomTypeID,
		Price:      req.Price,
		Discount:   req.Discount,
		NumBed:     req.NumBed,
		People:     req.People,
		Acreage:    req.Acreage,
		Note:       req.Note,
	}
	if err := validator.ValidateRoom(room); err != nil {
		handleError(c, err)
		return
	}

	if err := ctrl.store.SaveRoom(c.Request.Context(), room); err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCache()
	response.Success(c, dto.ToRoomResponse(*room))
}

// UpdateRoom cập nhật thông tin phòng
func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	room, err := ctrl.store.GetRoom(c.Request.Context(), uint(id))
	if err != nil {
		handleError(c, err)
		return
	}

	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if req.RoomName != nil {
		room.RoomName = *req.RoomName
	}
	if req.RoomTypeID != nil {
		room.RoomTypeID = *req.RoomTypeID
	}
	if req.Price != nil {
		room.Price = *req.Price
	}
	if req.Discount != nil {
		room.Discount = *req.Discount
	}
	if req.Status != nil {
		room.Status = *req.Status
	}
	if req.NumBed != nil {
		room.NumBed = *req.NumBed
	}
	if req.People != nil {
		room.People = *req.People
	}
	if req.Acreage != nil {
		room.Acreage = *req.Acreage
	}
	if req.Note != nil {
		room.Note = *req.Note
	}

	if err := validator.ValidateRoom(room); err != nil {
		handleError(c, err)
		return
	}

	if err := ctrl.store.UpdateRoom(c.Request.Context(), room); err != nil {
		response.ServerError(c)
		return
	}

	invalidateRoomCache()
	response.Success(c, dto.ToRoomResponse(*room))
}

// GetTimeline trả về lưới lịch phòng của một tháng. Mặc định là tháng
// hiện tại nếu không truyền year/month.
func (ctrl *RoomController) GetTimeline(c *gin.Context) {
	now := time.Now()
	year := now.Year()
	month := int(now.Month())

	if yearStr := c.Query("year"); yearStr != "" {
		if parsedYear, err := strconv.Atoi(yearStr); err == nil {
			year = parsedYear
		}
	}
	if monthStr := c.Query("month"); monthStr != "" {
		parsedMonth, err := strconv.Atoi(monthStr)
		if err != nil || parsedMonth < 1 || parsedMonth > 12 {
			response.BadRequest(c, "Tháng không hợp lệ")
			return
		}
		month = parsedMonth
	}

	timeline, err := ctrl.timeline.MonthView(c.Request.Context(), year, time.Month(month))
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, timeline)
}

func invalidateRoomCache() {
	rdb := config.RedisClient
	if rdb == nil {
		return
	}
	for _, key := range []string{cacheKeyRooms, cacheKeyDashboard} {
		if err := services.DeleteFromRedis(config.Ctx, rdb, key); err != nil {
			log.Printf("Lỗi khi xóa cache %s: %v", key, err)
		}
	}
}
