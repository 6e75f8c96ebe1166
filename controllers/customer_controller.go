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
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// CustomerController nhóm các handler cho hồ sơ khách hàng
type CustomerController struct {
	store storage.Store
}

func NewCustomerController(store storage.Store) *CustomerController {
	return &CustomerController{store: store}
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0 // Nếu cả hai chuỗi đều rỗng, tương đồng là 100%
	}

	similarity := 1.0 - float64(distance)/maxLen
	return similarity
}

type scoredCustomer struct {
	customer models.Customer
	score    float64
}

// scoreCustomer chấm điểm một khách hàng theo từ khóa đã chuẩn hóa.
// Tên so gần đúng để chịu được lỗi gõ thiếu dấu, số điện thoại và CCCD
// so khớp tiền tố.
func scoreCustomer(query string, customer models.Customer) float64 {
	name := normalizeInput(customer.Name)
	if strings.Contains(name, query) {
		return 1.0
	}
	if strings.HasPrefix(customer.PhoneNumber, query) || strings.HasPrefix(customer.CCCD, query) {
		return 1.0
	}

	var best float64
	for _, word := range strings.Fields(name) {
		if similarity := calculateSimilarity(query, word); similarity > best {
			best = similarity
		}
	}
	if similarity := calculateSimilarity(query, name); similarity > best {
		best = similarity
	}
	return best
}

// GetCustomers trả về danh sách khách hàng, tìm kiếm gần đúng theo tên,
// số điện thoại hoặc CCCD
func (ctrl *CustomerController) GetCustomers(c *gin.Context) {
	var allCustomers []models.Customer

	rdb := config.RedisClient
	if rdb != nil {
		if err := services.GetFromRedis(config.Ctx, rdb, cacheKeyCustomers, &allCustomers); err != nil {
			log.Printf("Lỗi khi đọc cache khách hàng: %v", err)
		}
	}

	if len(allCustomers) == 0 {
		var err error
		allCustomers, err = ctrl.store.ListCustomers(c.Request.Context())
		if err != nil {
			response.ServerError(c)
			return
		}
		if rdb != nil {
			if err := services.SetToRedis(config.Ctx, rdb, cacheKeyCustomers, allCustomers, 10*time.Minute); err != nil {
				log.Printf("Lỗi khi lưu danh sách khách hàng vào Redis: %v", err)
			}
		}
	}

	query := c.Query("search")
	filtered := allCustomers

	if query != "" {
		normalizedQuery := normalizeInput(query)

		scored := make([]scoredCustomer, 0, len(allCustomers))
		for _, customer := range allCustomers {
			score := scoreCustomer(normalizedQuery, customer)
			if score > 0.6 {
				scored = append(scored, scoredCustomer{customer: customer, score: score})
			}
		}

		sort.SliceStable(scored, func(i, j int) bool {
			return scored[i].score > scored[j].score
		})

		filtered = make([]models.Customer, 0, len(scored))
		for _, sc := range scored {
			filtered = append(filtered, sc.customer)
		}
	}

	page, limit := parsePagination(c)
	total := len(filtered)
	pageItems := paginate(filtered, page, limit)

	customerResponses := make([]dto.CustomerResponse, 0, len(pageItems))
	for _, customer := range pageItems {
		customerResponses = append(customerResponses, dto.ToCustomerResponse(customer))
	}

	response.SuccessWithPagination(c, customerResponses, page, limit, total)
}

// GetCustomerDetail trả về chi tiết một khách hàng
func (ctrl *CustomerController) GetCustomerDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	customer, err := ctrl.store.GetCustomer(c.Request.Context(), uint(id))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, dto.ToCustomerResponse(*customer))
}

// CreateCustomer tạo hồ sơ khách hàng mới
func (ctrl *CustomerController) CreateCustomer(c *gin.Context) {
	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	customer := &models.Customer{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		CCCD:        req.CCCD,
		Address:     req.Address,
	}
	if err := validator.ValidateCustomer(customer); err != nil {
		handleError(c, err)
		return
	}

	if err := ctrl.store.SaveCustomer(c.Request.Context(), customer); err != nil {
		response.ServerError(c)
		return
	}

	invalidateCustomerCache()
	response.Success(c, dto.ToCustomerResponse(*customer))
}

// UpdateCustomer cập nhật hồ sơ khách hàng
func (ctrl *CustomerController) UpdateCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	customer, err := ctrl.store.GetCustomer(c.Request.Context(), uint(id))
	if err != nil {
		handleError(c, err)
		return
	}

	var req dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		customer.PhoneNumber = *req.PhoneNumber
	}
	if req.CCCD != nil {
		customer.CCCD = *req.CCCD
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}

	if err := validator.ValidateCustomer(customer); err != nil {
		handleError(c, err)
		return
	}

	if err := ctrl.store.UpdateCustomer(c.Request.Context(), customer); err != nil {
		response.ServerError(c)
		return
	}

	invalidateCustomerCache()
	response.Success(c, dto.ToCustomerResponse(*customer))
}

func invalidateCustomerCache() {
	rdb := config.RedisClient
	if rdb == nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, rdb, cacheKeyCustomers); err != nil {
		log.Printf("Lỗi khi xóa cache %s: %v", cacheKeyCustomers, err)
	}
}
