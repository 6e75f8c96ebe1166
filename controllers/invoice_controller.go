package controllers

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"hms/dto"
	"hms/models"
	"hms/response"
	"hms/services"
	"hms/storage"

	"github.com/gin-gonic/gin"
)

// InvoiceController nhóm các handler cho hóa đơn
type InvoiceController struct {
	store   storage.Store
	billing *services.BillingService
}

func NewInvoiceController(store storage.Store, billing *services.BillingService) *InvoiceController {
	return &InvoiceController{store: store, billing: billing}
}

// GetInvoices trả về danh sách hóa đơn, lọc theo mã, trạng thái và
// khoảng ngày tạo
func (ctrl *InvoiceController) GetInvoices(c *gin.Context) {
	allInvoices, err := ctrl.store.ListInvoices(c.Request.Context())
	if err != nil {
		response.ServerError(c)
		return
	}

	codeFilter := c.Query("invoiceCode")
	statusFilter := c.Query("status")
	fromDateStr := c.Query("fromDate")
	toDateStr := c.Query("toDate")

	filtered := make([]models.Invoice, 0, len(allInvoices))
	for _, invoice := range allInvoices {
		if codeFilter != "" && !strings.Contains(strings.ToLower(invoice.InvoiceCode), strings.ToLower(codeFilter)) {
			continue
		}
		if statusFilter != "" {
			parsedStatus, err := strconv.Atoi(statusFilter)
			if err == nil && invoice.Status != parsedStatus {
				continue
			}
		}
		if fromDateStr != "" {
			fromDate, err := time.ParseInLocation("02/01/2006", fromDateStr, time.Local)
			if err != nil {
				response.BadRequest(c, "Sai định dạng fromDate")
				return
			}
			if invoice.CreatedAt.Before(fromDate) {
				continue
			}
		}
		if toDateStr != "" {
			toDate, err := time.ParseInLocation("02/01/2006", toDateStr, time.Local)
			if err != nil {
				response.BadRequest(c, "Sai định dạng toDate")
				return
			}
			if invoice.CreatedAt.After(toDate.AddDate(0, 0, 1)) {
				continue
			}
		}
		filtered = append(filtered, invoice)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	page, limit := parsePagination(c)
	total := len(filtered)
	pageItems := paginate(filtered, page, limit)

	response.SuccessWithPagination(c, dto.ToInvoiceResponses(pageItems), page, limit, total)
}

// GetInvoiceDetail trả về chi tiết hóa đơn kèm đơn đặt phòng
func (ctrl *InvoiceController) GetInvoiceDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	invoice, err := ctrl.store.GetInvoice(c.Request.Context(), uint(id))
	if err != nil {
		handleError(c, err)
		return
	}

	usages, err := ctrl.store.ListServiceUsages(c.Request.Context(), invoice.BookingID)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"invoice":  dto.ToInvoiceResponse(*invoice),
		"booking":  dto.ToBookingResponse(invoice.Booking),
		"services": dto.ToServiceUsageResponses(usages),
	})
}

// PayInvoice ghi nhận hóa đơn đã thanh toán
func (ctrl *InvoiceController) PayInvoice(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	invoice, err := ctrl.billing.MarkPaid(c.Request.Context(), uint(id))
	if err != nil {
		handleError(c, err)
		return
	}

	invalidateBookingCache()
	response.Success(c, dto.ToInvoiceResponse(*invoice))
}
