package controllers

import (
	"log"
	"sort"
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

	"github.com/gin-gonic/gin"
)

// BookingController nhóm các handler cho vòng đời đơn đặt phòng
type BookingController struct {
	bookings *services.BookingService
	store    storage.Store
	hub      *services.BookingEventHub
}

func NewBookingController(bookings *services.BookingService, store storage.Store, hub *services.BookingEventHub) *BookingController {
	return &BookingController{bookings: bookings, store: store, hub: hub}
}

// invalidateBookingCache xóa cache danh sách sau mỗi thao tác ghi
func invalidateBookingCache() {
	rdb := config.RedisClient
	if rdb == nil {
		return
	}
	for _, key := range []string{cacheKeyBookings, cacheKeyDashboard} {
		if err := services.DeleteFromRedis(config.Ctx, rdb, key); err != nil {
			log.Printf("Lỗi khi xóa cache %s: %v", key, err)
		}
	}
}

// GetBookings trả về danh sách đơn đặt phòng, lọc và phân trang trên
// bản cache Redis
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	var allBookings []models.Booking

	rdb := config.RedisClient
	if rdb != nil {
		if err := services.GetFromRedis(config.Ctx, rdb, cacheKeyBookings, &allBookings); err != nil {
			log.Printf("Lỗi khi đọc cache đơn đặt phòng: %v", err)
		}
	}

	if len(allBookings) == 0 {
		var err error
		allBookings, err = ctrl.store.ListBookings(c.Request.Context())
		if err != nil {
			response.ServerError(c)
			return
		}
		if rdb != nil {
			if err := services.SetToRedis(config.Ctx, rdb, cacheKeyBookings, allBookings, 10*time.Minute); err != nil {
				log.Printf("Lỗi khi lưu danh sách đơn vào Redis: %v", err)
			}
		}
	}

	statusFilter := c.Query("status")
	roomFilter := c.Query("roomId")
	phoneFilter := c.Query("phoneNumber")
	codeFilter := c.Query("bookingCode")

	filtered := make([]models.Booking, 0, len(allBookings))
	for _, b := range allBookings {
		if statusFilter != "" {
			parsedStatus, err := strconv.Atoi(statusFilter)
			if err == nil && b.Status != parsedStatus {
				continue
			}
		}
		if roomFilter != "" {
			parsedRoom, err := strconv.Atoi(roomFilter)
			if err == nil && b.RoomID != uint(parsedRoom) {
				continue
			}
		}
		if phoneFilter != "" && !strings.Contains(b.Customer.PhoneNumber, phoneFilter) {
			continue
		}
		if codeFilter != "" && !strings.Contains(strings.ToLower(b.BookingCode), strings.ToLower(codeFilter)) {
			continue
		}
		filtered = append(filtered, b)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].UpdatedAt.After(filtered[j].UpdatedAt)
	})

	page, limit := parsePagination(c)
	total := len(filtered)
	pageItems := paginate(filtered, page, limit)

	response.SuccessWithPagination(c, dto.ToBookingResponses(pageItems), page, limit, total)
}

// GetBookingDetail trả về chi tiết một đơn kèm dịch vụ đã dùng
func (ctrl *BookingController) GetBookingDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	booking, err := ctrl.store.GetBooking(c.Request.Context(), uint(id))
	if err != nil {
		handleError(c, err)
		return
	}

	usages, err := ctrl.store.ListServiceUsages(c.Request.Context(), booking.ID)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"booking":  dto.ToBookingResponse(*booking),
		"services": dto.ToServiceUsageResponses(usages),
	})
}

// CreateBooking tạo đơn đặt phòng mới
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	interval, err := validator.ParseBookingDates(req.CheckIn, req.CheckOut)
	if err != nil {
		handleError(c, err)
		return
	}

	staffID := req.StaffID
	if staffID == 0 {
		if id, exists := c.Get("staffID"); exists {
			staffID = id.(uint)
		}
	}

	booking, err := ctrl.bookings.Create(c.Request.Context(), services.CreateBookingInput{
		RoomID:     req.RoomID,
		CustomerID: req.CustomerID,
		StaffID:    staffID,
		Interval:   interval,
		Note:       req.Note,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	invalidateBookingCache()
	ctrl.hub.Publish("created", booking)
	response.Success(c, dto.ToBookingResponse(*booking))
}

// UpdateBooking sửa đơn còn ở trạng thái đã đặt
func (ctrl *BookingController) UpdateBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	input := services.UpdateBookingInput{
		Note:    req.Note,
		StaffID: req.StaffID,
	}
	if req.CheckIn != "" || req.CheckOut != "" {
		if req.CheckIn == "" || req.CheckOut == "" {
			response.BadRequest(c, "Phải gửi đủ cả ngày nhận và ngày trả phòng")
			return
		}
		interval, err := validator.ParseBookingDates(req.CheckIn, req.CheckOut)
		if err != nil {
			handleError(c, err)
			return
		}
		input.Interval = &interval
	}

	booking, err := ctrl.bookings.Update(c.Request.Context(), uint(id), input)
	if err != nil {
		handleError(c, err)
		return
	}

	invalidateBookingCache()
	ctrl.hub.Publish("updated", booking)
	response.Success(c, dto.ToBookingResponse(*booking))
}

// CheckIn nhận phòng
func (ctrl *BookingController) CheckIn(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	booking, err := ctrl.bookings.CheckIn(c.Request.Context(), uint(id))
	if err != nil {
		handleError(c, err)
		return
	}

	invalidateBookingCache()
	ctrl.hub.Publish("checked_in", booking)
	response.Success(c, dto.ToBookingResponse(*booking))
}

// CheckOut trả phòng, chốt tiền và tạo hóa đơn
func (ctrl *BookingController) CheckOut(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var req dto.CheckOutRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	charges := make([]services.ServiceCharge, 0, len(req.Services))
	for _, s := range req.Services {
		charges = append(charges, services.ServiceCharge{
			ServiceID: s.ServiceID,
			Quantity:  s.Quantity,
		})
	}

	booking, invoice, err := ctrl.bookings.CheckOut(c.Request.Context(), uint(id), charges)
	if err != nil {
		handleError(c, err)
		return
	}

	invalidateBookingCache()
	ctrl.hub.Publish("checked_out", booking)
	response.Success(c, gin.H{
		"booking": dto.ToBookingResponse(*booking),
		"invoice": dto.ToInvoiceResponse(*invoice),
	})
}

// CancelBooking hủy đơn
func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	booking, err := ctrl.bookings.Cancel(c.Request.Context(), uint(id))
	if err != nil {
		handleError(c, err)
		return
	}

	invalidateBookingCache()
	ctrl.hub.Publish("cancelled", booking)
	response.Success(c, dto.ToBookingResponse(*booking))
}

// CheckAvailability kiểm tra một phòng còn trống trong khoảng đã cho không
func (ctrl *BookingController) CheckAvailability(c *gin.Context) {
	var req dto.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	interval, err := validator.ParseBookingDates(req.CheckIn, req.CheckOut)
	if err != nil {
		handleError(c, err)
		return
	}

	available := ctrl.bookings.IsAvailable(req.RoomID, interval, 0)
	response.Success(c, gin.H{"available": available})
}
