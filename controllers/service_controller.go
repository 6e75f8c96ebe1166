package controllers

import (
	"strconv"

	"hms/dto"
	"hms/models"
	"hms/response"
	"hms/storage"
	"hms/validator"

	"github.com/gin-gonic/gin"
)

// ServiceController nhóm các handler cho dịch vụ kèm theo
type ServiceController struct {
	store storage.Store
}

func NewServiceController(store storage.Store) *ServiceController {
	return &ServiceController{store: store}
}

// GetServices trả về danh sách dịch vụ
func (ctrl *ServiceController) GetServices(c *gin.Context) {
	servicesList, err := ctrl.store.ListServices(c.Request.Context())
	if err != nil {
		response.ServerError(c)
		return
	}

	serviceResponses := make([]dto.ServiceResponse, 0, len(servicesList))
	for _, service := range servicesList {
		serviceResponses = append(serviceResponses, dto.ToServiceResponse(service))
	}

	response.Success(c, serviceResponses)
}

// CreateService tạo dịch vụ mới
func (ctrl *ServiceController) CreateService(c *gin.Context) {
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	service := &models.Service{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Status:      1,
	}
	if err := validator.ValidateService(service); err != nil {
		handleError(c, err)
		return
	}

	if err := ctrl.store.SaveService(c.Request.Context(), service); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.ToServiceResponse(*service))
}

// UpdateService cập nhật dịch vụ
func (ctrl *ServiceController) UpdateService(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	service, err := ctrl.store.GetService(c.Request.Context(), uint(id))
	if err != nil {
		handleError(c, err)
		return
	}

	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Status != nil {
		service.Status = *req.Status
	}

	if err := validator.ValidateService(service); err != nil {
		handleError(c, err)
		return
	}

	if err := ctrl.store.UpdateService(c.Request.Context(), service); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.ToServiceResponse(*service))
}
