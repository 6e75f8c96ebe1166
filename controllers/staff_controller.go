package controllers

import (
	"strconv"

	"hms/dto"
	"hms/models"
	"hms/response"
	"hms/services"
	"hms/storage"
	"hms/validator"

	"github.com/gin-gonic/gin"
)

// StaffController nhóm các handler cho tài khoản nhân viên
type StaffController struct {
	store storage.Store
}

func NewStaffController(store storage.Store) *StaffController {
	return &StaffController{store: store}
}

// Login đăng nhập bằng email + mật khẩu, trả về access token
func (ctrl *StaffController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	staff, err := ctrl.store.GetStaffByEmail(c.Request.Context(), req.Email)
	if err != nil || !services.CheckPassword(staff.Password, req.Password) {
		response.BadRequest(c, "Email hoặc mật khẩu không đúng")
		return
	}

	accessToken, err := services.GenerateToken(services.StaffInfo{
		StaffId: staff.ID,
		Role:    staff.Role,
	}, 3*24*60, true)
	if err != nil {
		response.ServerError(c)
		return
	}

	services.SetTokenCookies(c, accessToken)
	response.Success(c, dto.LoginResponse{
		AccessToken: accessToken,
		Staff:       dto.ToStaffResponse(*staff),
	})
}

// Register tạo tài khoản nhân viên mới, chỉ quản lý được phép gọi
func (ctrl *StaffController) Register(c *gin.Context) {
	var req dto.RegisterStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if err := validator.ValidatePassword(req.Password); err != nil {
		handleError(c, err)
		return
	}

	role := req.Role
	if role == 0 {
		role = models.StaffRoleReceptionist
	}

	staff := &models.Staff{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Role:        role,
		Status:      1,
	}
	if err := validator.ValidateStaff(staff); err != nil {
		handleError(c, err)
		return
	}

	hashedPassword, err := services.HashPassword(req.Password)
	if err != nil {
		response.ServerError(c)
		return
	}
	staff.Password = hashedPassword

	if err := ctrl.store.SaveStaff(c.Request.Context(), staff); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.ToStaffResponse(*staff))
}

// GetStaffs trả về danh sách nhân viên
func (ctrl *StaffController) GetStaffs(c *gin.Context) {
	staffList, err := ctrl.store.ListStaff(c.Request.Context())
	if err != nil {
		response.ServerError(c)
		return
	}

	page, limit := parsePagination(c)
	total := len(staffList)
	pageItems := paginate(staffList, page, limit)

	staffResponses := make([]dto.StaffResponse, 0, len(pageItems))
	for _, staff := range pageItems {
		staffResponses = append(staffResponses, dto.ToStaffResponse(staff))
	}

	response.SuccessWithPagination(c, staffResponses, page, limit, total)
}

// UpdateStaff cập nhật thông tin nhân viên
func (ctrl *StaffController) UpdateStaff(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	staff, err := ctrl.store.GetStaff(c.Request.Context(), uint(id))
	if err != nil {
		handleError(c, err)
		return
	}

	var req dto.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if req.Name != nil {
		staff.Name = *req.Name
	}
	if req.PhoneNumber != nil {
		staff.PhoneNumber = *req.PhoneNumber
	}
	if req.Role != nil {
		staff.Role = *req.Role
	}
	if req.Status != nil {
		staff.Status = *req.Status
	}

	if err := validator.ValidateStaff(staff); err != nil {
		handleError(c, err)
		return
	}

	if err := ctrl.store.UpdateStaff(c.Request.Context(), staff); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.ToStaffResponse(*staff))
}
