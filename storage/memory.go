package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	apperrors "hms/errors"
	"hms/models"
)

// MemoryStore cài đặt Store trên map trong bộ nhớ, bảo vệ bằng mutex.
// Dùng cho test và chạy local không cần Postgres.
type MemoryStore struct {
	mu sync.RWMutex

	bookings      map[uint]models.Booking
	rooms         map[uint]models.Room
	roomTypes     map[uint]models.RoomType
	customers     map[uint]models.Customer
	staff         map[uint]models.Staff
	services      map[uint]models.Service
	serviceUsages map[uint]models.ServiceUsage
	invoices      map[uint]models.Invoice

	nextID uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		bookings:      make(map[uint]models.Booking),
		rooms:         make(map[uint]models.Room),
		roomTypes:     make(map[uint]models.RoomType),
		customers:     make(map[uint]models.Customer),
		staff:         make(map[uint]models.Staff),
		services:      make(map[uint]models.Service),
		serviceUsages: make(map[uint]models.ServiceUsage),
		invoices:      make(map[uint]models.Invoice),
	}
}

func (s *MemoryStore) nextIDLocked() uint {
	s.nextID++
	return s.nextID
}

// --- Booking ---

func (s *MemoryStore) SaveBooking(ctx context.Context, b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.ID == 0 {
		b.ID = s.nextIDLocked()
	}
	if b.BookingCode == "" {
		b.BookingCode = fmt.Sprintf("MP%05d", b.ID)
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	b.UpdatedAt = time.Now()
	s.bookings[b.ID] = *b
	return nil
}

func (s *MemoryStore) UpdateBooking(ctx context.Context, b *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[b.ID]; !ok {
		return apperrors.NewNotFound("đơn đặt phòng")
	}
	b.UpdatedAt = time.Now()
	s.bookings[b.ID] = *b
	return nil
}

func (s *MemoryStore) DeleteBooking(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.bookings, id)
	return nil
}

func (s *MemoryStore) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, apperrors.NewNotFound("đơn đặt phòng")
	}
	if room, ok := s.rooms[b.RoomID]; ok {
		b.Room = room
	}
	if customer, ok := s.customers[b.CustomerID]; ok {
		b.Customer = customer
	}
	return &b, nil
}

func (s *MemoryStore) ListBookings(ctx context.Context) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bookings := make([]models.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		if room, ok := s.rooms[b.RoomID]; ok {
			b.Room = room
		}
		if customer, ok := s.customers[b.CustomerID]; ok {
			b.Customer = customer
		}
		bookings = append(bookings, b)
	}
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].UpdatedAt.After(bookings[j].UpdatedAt)
	})
	return bookings, nil
}

func (s *MemoryStore) ListActiveBookings(ctx context.Context) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var bookings []models.Booking
	for _, b := range s.bookings {
		if b.IsActive() {
			if customer, ok := s.customers[b.CustomerID]; ok {
				b.Customer = customer
			}
			bookings = append(bookings, b)
		}
	}
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CheckIn.Before(bookings[j].CheckIn)
	})
	return bookings, nil
}

// --- Room ---

func (s *MemoryStore) SaveRoom(ctx context.Context, r *models.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.RoomID == 0 {
		r.RoomID = s.nextIDLocked()
	}
	s.rooms[r.RoomID] = *r
	return nil
}

func (s *MemoryStore) UpdateRoom(ctx context.Context, r *models.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rooms[r.RoomID]; !ok {
		return apperrors.NewNotFound("phòng")
	}
	s.rooms[r.RoomID] = *r
	return nil
}

func (s *MemoryStore) GetRoom(ctx context.Context, id uint) (*models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rooms[id]
	if !ok {
		return nil, apperrors.NewNotFound("phòng")
	}
	if t, ok := s.roomTypes[r.RoomTypeID]; ok {
		r.RoomType = t
	}
	return &r, nil
}

func (s *MemoryStore) ListRooms(ctx context.Context) ([]models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rooms := make([]models.Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		if t, ok := s.roomTypes[r.RoomTypeID]; ok {
			r.RoomType = t
		}
		rooms = append(rooms, r)
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].RoomName < rooms[j].RoomName })
	return rooms, nil
}

func (s *MemoryStore) ListRoomTypes(ctx context.Context) ([]models.RoomType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	types := make([]models.RoomType, 0, len(s.roomTypes))
	for _, t := range s.roomTypes {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i].ID < types[j].ID })
	return types, nil
}

func (s *MemoryStore) SaveRoomType(ctx context.Context, t *models.RoomType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.ID == 0 {
		t.ID = s.nextIDLocked()
	}
	s.roomTypes[t.ID] = *t
	return nil
}

// --- Customer ---

func (s *MemoryStore) SaveCustomer(ctx context.Context, c *models.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == 0 {
		c.ID = s.nextIDLocked()
	}
	c.CreatedAt = time.Now()
	s.customers[c.ID] = *c
	return nil
}

func (s *MemoryStore) UpdateCustomer(ctx context.Context, c *models.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.customers[c.ID]; !ok {
		return apperrors.NewNotFound("khách hàng")
	}
	s.customers[c.ID] = *c
	return nil
}

func (s *MemoryStore) GetCustomer(ctx context.Context, id uint) (*models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.customers[id]
	if !ok {
		return nil, apperrors.NewNotFound("khách hàng")
	}
	return &c, nil
}

func (s *MemoryStore) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	customers := make([]models.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		customers = append(customers, c)
	}
	sort.Slice(customers, func(i, j int) bool { return customers[i].ID < customers[j].ID })
	return customers, nil
}

// --- Staff ---

func (s *MemoryStore) SaveStaff(ctx context.Context, st *models.Staff) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st.ID == 0 {
		st.ID = s.nextIDLocked()
	}
	s.staff[st.ID] = *st
	return nil
}

func (s *MemoryStore) UpdateStaff(ctx context.Context, st *models.Staff) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.staff[st.ID]; !ok {
		return apperrors.NewNotFound("nhân viên")
	}
	s.staff[st.ID] = *st
	return nil
}

func (s *MemoryStore) GetStaff(ctx context.Context, id uint) (*models.Staff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.staff[id]
	if !ok {
		return nil, apperrors.NewNotFound("nhân viên")
	}
	return &st, nil
}

func (s *MemoryStore) GetStaffByEmail(ctx context.Context, email string) (*models.Staff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.staff {
		if st.Email == email {
			return &st, nil
		}
	}
	return nil, apperrors.NewNotFound("nhân viên")
}

func (s *MemoryStore) ListStaff(ctx context.Context) ([]models.Staff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	staff := make([]models.Staff, 0, len(s.staff))
	for _, st := range s.staff {
		staff = append(staff, st)
	}
	sort.Slice(staff, func(i, j int) bool { return staff[i].ID < staff[j].ID })
	return staff, nil
}

// --- Service ---

func (s *MemoryStore) SaveService(ctx context.Context, sv *models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sv.ID == 0 {
		sv.ID = s.nextIDLocked()
	}
	s.services[sv.ID] = *sv
	return nil
}

func (s *MemoryStore) UpdateService(ctx context.Context, sv *models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.services[sv.ID]; !ok {
		return apperrors.NewNotFound("dịch vụ")
	}
	s.services[sv.ID] = *sv
	return nil
}

func (s *MemoryStore) GetService(ctx context.Context, id uint) (*models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sv, ok := s.services[id]
	if !ok {
		return nil, apperrors.NewNotFound("dịch vụ")
	}
	return &sv, nil
}

func (s *MemoryStore) ListServices(ctx context.Context) ([]models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	services := make([]models.Service, 0, len(s.services))
	for _, sv := range s.services {
		services = append(services, sv)
	}
	sort.Slice(services, func(i, j int) bool { return services[i].ID < services[j].ID })
	return services, nil
}

func (s *MemoryStore) SaveServiceUsage(ctx context.Context, u *models.ServiceUsage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == 0 {
		u.ID = s.nextIDLocked()
	}
	u.CreatedAt = time.Now()
	s.serviceUsages[u.ID] = *u
	return nil
}

func (s *MemoryStore) ListServiceUsages(ctx context.Context, bookingID uint) ([]models.ServiceUsage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var usages []models.ServiceUsage
	for _, u := range s.serviceUsages {
		if u.BookingID == bookingID {
			if sv, ok := s.services[u.ServiceID]; ok {
				u.Service = sv
			}
			usages = append(usages, u)
		}
	}
	sort.Slice(usages, func(i, j int) bool { return usages[i].ID < usages[j].ID })
	return usages, nil
}

// --- Invoice ---

func (s *MemoryStore) SaveInvoice(ctx context.Context, inv *models.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if inv.ID == 0 {
		inv.ID = s.nextIDLocked()
	}
	if inv.InvoiceCode == "" {
		inv.InvoiceCode = fmt.Sprintf("HD%05d", inv.ID)
	}
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = time.Now()
	}
	inv.UpdatedAt = time.Now()
	s.invoices[inv.ID] = *inv
	return nil
}

func (s *MemoryStore) UpdateInvoice(ctx context.Context, inv *models.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.invoices[inv.ID]; !ok {
		return apperrors.NewNotFound("hóa đơn")
	}
	inv.UpdatedAt = time.Now()
	s.invoices[inv.ID] = *inv
	return nil
}

func (s *MemoryStore) GetInvoice(ctx context.Context, id uint) (*models.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inv, ok := s.invoices[id]
	if !ok {
		return nil, apperrors.NewNotFound("hóa đơn")
	}
	if b, ok := s.bookings[inv.BookingID]; ok {
		inv.Booking = b
	}
	return &inv, nil
}

func (s *MemoryStore) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	invoices := make([]models.Invoice, 0, len(s.invoices))
	for _, inv := range s.invoices {
		invoices = append(invoices, inv)
	}
	sort.Slice(invoices, func(i, j int) bool {
		return invoices[i].CreatedAt.After(invoices[j].CreatedAt)
	})
	return invoices, nil
}

func (s *MemoryStore) ListInvoicesBetween(ctx context.Context, from, to time.Time) ([]models.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var invoices []models.Invoice
	for _, inv := range s.invoices {
		if !inv.CreatedAt.Before(from) && inv.CreatedAt.Before(to) {
			invoices = append(invoices, inv)
		}
	}
	sort.Slice(invoices, func(i, j int) bool { return invoices[i].ID < invoices[j].ID })
	return invoices, nil
}
