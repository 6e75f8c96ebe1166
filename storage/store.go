package storage

import (
	"context"
	"time"

	"hms/models"
)

// Store là lớp lưu trữ phía sau engine đặt phòng. Engine chỉ phụ thuộc
// interface này; bản GORM/Postgres dùng khi chạy thật, bản in-memory
// dùng cho test và chạy local.
type Store interface {
	BookingStore
	RoomStore
	CustomerStore
	StaffStore
	ServiceStore
	InvoiceStore
}

type BookingStore interface {
	SaveBooking(ctx context.Context, b *models.Booking) error
	UpdateBooking(ctx context.Context, b *models.Booking) error
	DeleteBooking(ctx context.Context, id uint) error
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
	// ListActiveBookings trả về các đơn còn giữ phòng (đã đặt / đang ở),
	// dùng để nạp lại sổ phòng khi khởi động
	ListActiveBookings(ctx context.Context) ([]models.Booking, error)
}

type RoomStore interface {
	SaveRoom(ctx context.Context, r *models.Room) error
	UpdateRoom(ctx context.Context, r *models.Room) error
	GetRoom(ctx context.Context, id uint) (*models.Room, error)
	ListRooms(ctx context.Context) ([]models.Room, error)
	ListRoomTypes(ctx context.Context) ([]models.RoomType, error)
	SaveRoomType(ctx context.Context, t *models.RoomType) error
}

type CustomerStore interface {
	SaveCustomer(ctx context.Context, c *models.Customer) error
	UpdateCustomer(ctx context.Context, c *models.Customer) error
	GetCustomer(ctx context.Context, id uint) (*models.Customer, error)
	ListCustomers(ctx context.Context) ([]models.Customer, error)
}

type StaffStore interface {
	SaveStaff(ctx context.Context, s *models.Staff) error
	UpdateStaff(ctx context.Context, s *models.Staff) error
	GetStaff(ctx context.Context, id uint) (*models.Staff, error)
	GetStaffByEmail(ctx context.Context, email string) (*models.Staff, error)
	ListStaff(ctx context.Context) ([]models.Staff, error)
}

type ServiceStore interface {
	SaveService(ctx context.Context, s *models.Service) error
	UpdateService(ctx context.Context, s *models.Service) error
	GetService(ctx context.Context, id uint) (*models.Service, error)
	ListServices(ctx context.Context) ([]models.Service, error)
	SaveServiceUsage(ctx context.Context, u *models.ServiceUsage) error
	ListServiceUsages(ctx context.Context, bookingID uint) ([]models.ServiceUsage, error)
}

type InvoiceStore interface {
	SaveInvoice(ctx context.Context, inv *models.Invoice) error
	UpdateInvoice(ctx context.Context, inv *models.Invoice) error
	GetInvoice(ctx context.Context, id uint) (*models.Invoice, error)
	ListInvoices(ctx context.Context) ([]models.Invoice, error)
	// ListInvoicesBetween các hóa đơn tạo trong [from, to)
	ListInvoicesBetween(ctx context.Context, from, to time.Time) ([]models.Invoice, error)
}
