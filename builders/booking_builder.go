package builders

import (
	"hms/constants"
	"hms/models"
)

// BookingBuilder giúp tạo đơn đặt phòng theo từng bước
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder tạo instance mới của BookingBuilder, đơn khởi tạo
// ở trạng thái đã đặt và chưa thanh toán
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{
			Status:        constants.BookingStatusReserved,
			PaymentStatus: constants.PaymentStatusPending,
		},
	}
}

// WithRoom thêm thông tin phòng
func (b *BookingBuilder) WithRoom(roomID uint) *BookingBuilder {
	b.booking.RoomID = roomID
	return b
}

// WithCustomer thêm thông tin khách
func (b *BookingBuilder) WithCustomer(customerID uint) *BookingBuilder {
	b.booking.CustomerID = customerID
	return b
}

// WithStaff thêm nhân viên lập đơn
func (b *BookingBuilder) WithStaff(staffID uint) *BookingBuilder {
	b.booking.StaffID = staffID
	return b
}

// WithInterval thêm khoảng thời gian lưu trú
func (b *BookingBuilder) WithInterval(iv models.Interval) *BookingBuilder {
	b.booking.CheckIn = iv.CheckIn
	b.booking.CheckOut = iv.CheckOut
	return b
}

// WithStatus thêm trạng thái
func (b *BookingBuilder) WithStatus(status int) *BookingBuilder {
	b.booking.Status = status
	return b
}

// WithNote thêm ghi chú
func (b *BookingBuilder) WithNote(note string) *BookingBuilder {
	b.booking.Note = note
	return b
}

// Build tạo đơn hoàn chỉnh
func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
