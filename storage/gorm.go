package storage

import (
	"context"
	"time"

	"hms/constants"
	apperrors "hms/errors"
	"hms/models"

	"gorm.io/gorm"
)

// GormStore cài đặt Store trên GORM/Postgres
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// AutoMigrate tạo bảng cho toàn bộ model
func (s *GormStore) AutoMigrate() error {
	return s.db.AutoMigrate(
		&models.RoomType{}, &models.Room{}, &models.Customer{}, &models.Staff{},
		&models.Service{}, &models.ServiceUsage{}, &models.Booking{}, &models.Invoice{},
	)
}

func notFound(err error, what string) error {
	if err == gorm.ErrRecordNotFound {
		return apperrors.NewNotFound(what)
	}
	return apperrors.NewAppError(apperrors.ErrCodeDBError, "Lỗi truy vấn dữ liệu", err)
}

// --- Booking ---

func (s *GormStore) SaveBooking(ctx context.Context, b *models.Booking) error {
	return s.db.WithContext(ctx).Create(b).Error
}

func (s *GormStore) UpdateBooking(ctx context.Context, b *models.Booking) error {
	return s.db.WithContext(ctx).Save(b).Error
}

func (s *GormStore) DeleteBooking(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.Booking{}, id).Error
}

func (s *GormStore) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	var b models.Booking
	if err := s.db.WithContext(ctx).
		Preload("Room").Preload("Customer").Preload("Staff").
		First(&b, id).Error; err != nil {
		return nil, notFound(err, "đơn đặt phòng")
	}
	return &b, nil
}

func (s *GormStore) ListBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.WithContext(ctx).
		Preload("Room").Preload("Customer").
		Order("updated_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *GormStore) ListActiveBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.WithContext(ctx).
		Preload("Customer").
		Where("status IN ?", []int{constants.BookingStatusReserved, constants.BookingStatusCheckedIn}).
		Order("check_in").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// --- Room ---

func (s *GormStore) SaveRoom(ctx context.Context, r *models.Room) error {
	return s.db.WithContext(ctx).Create(r).Error
}

func (s *GormStore) UpdateRoom(ctx context.Context, r *models.Room) error {
	return s.db.WithContext(ctx).Save(r).Error
}

func (s *GormStore) GetRoom(ctx context.Context, id uint) (*models.Room, error) {
	var r models.Room
	if err := s.db.WithContext(ctx).Preload("RoomType").First(&r, id).Error; err != nil {
		return nil, notFound(err, "phòng")
	}
	return &r, nil
}

func (s *GormStore) ListRooms(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.db.WithContext(ctx).Preload("RoomType").Order("room_name").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *GormStore) ListRoomTypes(ctx context.Context) ([]models.RoomType, error) {
	var types []models.RoomType
	if err := s.db.WithContext(ctx).Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (s *GormStore) SaveRoomType(ctx context.Context, t *models.RoomType) error {
	return s.db.WithContext(ctx).Create(t).Error
}

// --- Customer ---

func (s *GormStore) SaveCustomer(ctx context.Context, c *models.Customer) error {
	return s.db.WithContext(ctx).Create(c).Error
}

func (s *GormStore) UpdateCustomer(ctx context.Context, c *models.Customer) error {
	return s.db.WithContext(ctx).Save(c).Error
}

func (s *GormStore) GetCustomer(ctx context.Context, id uint) (*models.Customer, error) {
	var c models.Customer
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, notFound(err, "khách hàng")
	}
	return &c, nil
}

func (s *GormStore) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// --- Staff ---

func (s *GormStore) SaveStaff(ctx context.Context, st *models.Staff) error {
	return s.db.WithContext(ctx).Create(st).Error
}

func (s *GormStore) UpdateStaff(ctx context.Context, st *models.Staff) error {
	return s.db.WithContext(ctx).Save(st).Error
}

func (s *GormStore) GetStaff(ctx context.Context, id uint) (*models.Staff, error) {
	var st models.Staff
	if err := s.db.WithContext(ctx).First(&st, id).Error; err != nil {
		return nil, notFound(err, "nhân viên")
	}
	return &st, nil
}

func (s *GormStore) GetStaffByEmail(ctx context.Context, email string) (*models.Staff, error) {
	var st models.Staff
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&st).Error; err != nil {
		return nil, notFound(err, "nhân viên")
	}
	return &st, nil
}

func (s *GormStore) ListStaff(ctx context.Context) ([]models.Staff, error) {
	var staff []models.Staff
	if err := s.db.WithContext(ctx).Order("name").Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

// --- Service ---

func (s *GormStore) SaveService(ctx context.Context, sv *models.Service) error {
	return s.db.WithContext(ctx).Create(sv).Error
}

func (s *GormStore) UpdateService(ctx context.Context, sv *models.Service) error {
	return s.db.WithContext(ctx).Save(sv).Error
}

func (s *GormStore) GetService(ctx context.Context, id uint) (*models.Service, error) {
	var sv models.Service
	if err := s.db.WithContext(ctx).First(&sv, id).Error; err != nil {
		return nil, notFound(err, "dịch vụ")
	}
	return &sv, nil
}

func (s *GormStore) ListServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := s.db.WithContext(ctx).Order("name").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (s *GormStore) SaveServiceUsage(ctx context.Context, u *models.ServiceUsage) error {
	return s.db.WithContext(ctx).Create(u).Error
}

func (s *GormStore) ListServiceUsages(ctx context.Context, bookingID uint) ([]models.ServiceUsage, error) {
	var usages []models.ServiceUsage
	if err := s.db.WithContext(ctx).Preload("Service").
		Where("booking_id = ?", bookingID).Find(&usages).Error; err != nil {
		return nil, err
	}
	return usages, nil
}

// --- Invoice ---

func (s *GormStore) SaveInvoice(ctx context.Context, inv *models.Invoice) error {
	return s.db.WithContext(ctx).Create(inv).Error
}

func (s *GormStore) UpdateInvoice(ctx context.Context, inv *models.Invoice) error {
	return s.db.WithContext(ctx).Save(inv).Error
}

func (s *GormStore) GetInvoice(ctx context.Context, id uint) (*models.Invoice, error) {
	var inv models.Invoice
	if err := s.db.WithContext(ctx).Preload("Booking").First(&inv, id).Error; err != nil {
		return nil, notFound(err, "hóa đơn")
	}
	return &inv, nil
}

func (s *GormStore) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

func (s *GormStore) ListInvoicesBetween(ctx context.Context, from, to time.Time) ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := s.db.WithContext(ctx).
		Where("created_at >= ? AND created_at < ?", from, to).
		Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}
