package dto

import (
	"hms/models"
)

// CreateBookingRequest là DTO cho request tạo đơn đặt phòng
type CreateBookingRequest struct {
	RoomID     uint   `json:"roomId" binding:"required"`
	CustomerID uint   `json:"customerId" binding:"required"`
	StaffID    uint   `json:"staffId"`
	CheckIn    string `json:"checkIn" binding:"required"`
	CheckOut   string `json:"checkOut" binding:"required"`
	Note       string `json:"note"`
}

// UpdateBookingRequest là DTO cho request sửa đơn còn ở trạng thái đã đặt
type UpdateBookingRequest struct {
	CheckIn  string  `json:"checkIn"`
	CheckOut string  `json:"checkOut"`
	Note     *string `json:"note"`
	StaffID  *uint   `json:"staffId"`
}

// ServiceChargeRequest một dòng dịch vụ tính vào hóa đơn lúc trả phòng
type ServiceChargeRequest struct {
	ServiceID uint `json:"serviceId" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// CheckOutRequest là DTO cho request trả phòng
type CheckOutRequest struct {
	Services []ServiceChargeRequest `json:"services"`
}

// ActorResponse là DTO cho thông tin khách / nhân viên đi kèm đơn
type ActorResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// BookingRoomResponse là DTO rút gọn của phòng trong response đơn
type BookingRoomResponse struct {
	ID       uint    `json:"id"`
	RoomName string  `json:"roomName"`
	Price    float64 `json:"price"`
	Discount float64 `json:"discount"`
}

// BookingResponse là DTO cho response của đơn đặt phòng
type BookingResponse struct {
	ID            uint                `json:"id"`
	BookingCode   string              `json:"bookingCode"`
	Room          BookingRoomResponse `json:"room"`
	Customer      ActorResponse       `json:"customer"`
	Staff         ActorResponse       `json:"staff"`
	CheckIn       string              `json:"checkIn"`
	CheckOut      string              `json:"checkOut"`
	Nights        int                 `json:"nights"`
	Status        int                 `json:"status"`
	StatusLabel   string              `json:"statusLabel"`
	TotalAmount   *float64            `json:"totalAmount,omitempty"`
	PaymentStatus int                 `json:"paymentStatus"`
	Note          string              `json:"note"`
	CreatedAt     string              `json:"createdAt"`
	UpdatedAt     string              `json:"updatedAt"`
}

// ToBookingResponse chuyển model sang DTO response
func ToBookingResponse(b models.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		BookingCode: b.BookingCode,
		Room: BookingRoomResponse{
			ID:       b.Room.RoomID,
			RoomName: b.Room.RoomName,
			Price:    b.Room.Price,
			Discount: b.Room.Discount,
		},
		Customer: ActorResponse{
			ID:          b.Customer.ID,
			Name:        b.Customer.Name,
			Email:       b.Customer.Email,
			PhoneNumber: b.Customer.PhoneNumber,
		},
		Staff: ActorResponse{
			ID:          b.Staff.ID,
			Name:        b.Staff.Name,
			Email:       b.Staff.Email,
			PhoneNumber: b.Staff.PhoneNumber,
		},
		CheckIn:       b.CheckIn.Format(DateTimeLayout),
		CheckOut:      b.CheckOut.Format(DateTimeLayout),
		Nights:        b.Interval().Nights(),
		Status:        b.Status,
		StatusLabel:   models.BookingStatusLabel(b.Status),
		TotalAmount:   b.TotalAmount,
		PaymentStatus: b.PaymentStatus,
		Note:          b.Note,
		CreatedAt:     b.CreatedAt.Format(DateTimeLayout),
		UpdatedAt:     b.UpdatedAt.Format(DateTimeLayout),
	}
}

// ToBookingResponses chuyển danh sách model sang DTO
func ToBookingResponses(bookings []models.Booking) []BookingResponse {
	responses := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, ToBookingResponse(b))
	}
	return responses
}
