package dto

import "hms/models"

// CreateCustomerRequest là DTO cho request tạo khách hàng
type CreateCustomerRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber" binding:"required,vnphone"`
	CCCD        string `json:"cccd"`
	Address     string `json:"address"`
}

// UpdateCustomerRequest là DTO cho request cập nhật khách hàng
type UpdateCustomerRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phoneNumber"`
	CCCD        *string `json:"cccd"`
	Address     *string `json:"address"`
}

// CustomerResponse là DTO cho response của khách hàng
type CustomerResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	CCCD        string `json:"cccd"`
	Address     string `json:"address"`
	CreatedAt   string `json:"createdAt"`
}

// ToCustomerResponse chuyển model sang DTO response
func ToCustomerResponse(c models.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		CCCD:        c.CCCD,
		Address:     c.Address,
		CreatedAt:   c.CreatedAt.Format(DateTimeLayout),
	}
}
