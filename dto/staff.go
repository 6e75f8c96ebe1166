package dto

import "hms/models"

// RegisterStaffRequest là DTO cho request tạo tài khoản nhân viên
type RegisterStaffRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password" binding:"required"`
	Role        int    `json:"role"`
}

// LoginRequest là DTO cho request đăng nhập
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse là DTO cho response đăng nhập
type LoginResponse struct {
	AccessToken string        `json:"accessToken"`
	Staff       StaffResponse `json:"staff"`
}

// UpdateStaffRequest là DTO cho request cập nhật nhân viên
type UpdateStaffRequest struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phoneNumber"`
	Role        *int    `json:"role"`
	Status      *int    `json:"status"`
}

// StaffResponse là DTO cho response của nhân viên
type StaffResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Role        int    `json:"role"`
	Status      int    `json:"status"`
}

// ToStaffResponse chuyển model sang DTO response
func ToStaffResponse(s models.Staff) StaffResponse {
	return StaffResponse{
		ID:          s.ID,
		Name:        s.Name,
		Email:       s.Email,
		PhoneNumber: s.PhoneNumber,
		Role:        s.Role,
		Status:      s.Status,
	}
}
