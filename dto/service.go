package dto

import "hms/models"

// CreateServiceRequest là DTO cho request tạo dịch vụ
type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	Description string  `json:"description"`
}

// UpdateServiceRequest là DTO cho request cập nhật dịch vụ
type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Status      *int     `json:"status"`
}

// ServiceResponse là DTO cho response của dịch vụ
type ServiceResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Status      int     `json:"status"`
}

// ServiceUsageResponse một dòng dịch vụ đã dùng trong đơn
type ServiceUsageResponse struct {
	ServiceID   uint    `json:"serviceId"`
	ServiceName string  `json:"serviceName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Amount      float64 `json:"amount"`
}

// ToServiceResponse chuyển model sang DTO response
func ToServiceResponse(s models.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Price:       s.Price,
		Description: s.Description,
		Status:      s.Status,
	}
}

// ToServiceUsageResponses chuyển danh sách dịch vụ đã dùng sang DTO
func ToServiceUsageResponses(usages []models.ServiceUsage) []ServiceUsageResponse {
	responses := make([]ServiceUsageResponse, 0, len(usages))
	for _, u := range usages {
		responses = append(responses, ServiceUsageResponse{
			ServiceID:   u.ServiceID,
			ServiceName: u.Service.Name,
			Quantity:    u.Quantity,
			UnitPrice:   u.UnitPrice,
			Amount:      u.Amount(),
		})
	}
	return responses
}
