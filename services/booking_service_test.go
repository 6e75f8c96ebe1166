package services

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"hms/constants"
	"hms/errors"
	"hms/models"
	"hms/storage"
)

// failingBilling giả lập bên hóa đơn gặp sự cố để kiểm tra rollback
type failingBilling struct{}

func (f *failingBilling) CreateInvoice(ctx context.Context, booking *models.Booking, roomCharge, serviceCharge float64) (*models.Invoice, error) {
	return nil, stderrors.New("billing unavailable")
}

func (f *failingBilling) MarkPaid(ctx context.Context, invoiceID uint) (*models.Invoice, error) {
	return nil, stderrors.New("billing unavailable")
}

type bookingTestEnv struct {
	store      *storage.MemoryStore
	ledger     *RoomLedger
	svc        *BookingService
	roomID     uint
	customerID uint
	staffID    uint
	serviceID  uint
}

var testNow = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

func newBookingTestEnv(t *testing.T, billing BillingCollaborator) *bookingTestEnv {
	t.Helper()
	ctx := context.Background()
	store := storage.NewMemoryStore()

	room := &models.Room{RoomName: "P.101", Price: 1000000, Discount: 10, Status: constants.RoomStatusAvailable}
	if err := store.SaveRoom(ctx, room); err != nil {
		t.Fatalf("SaveRoom() error: %v", err)
	}
	customer := &models.Customer{Name: "Nguyễn Văn An", PhoneNumber: "0912345678"}
	if err := store.SaveCustomer(ctx, customer); err != nil {
		t.Fatalf("SaveCustomer() error: %v", err)
	}
	staff := &models.Staff{Name: "Lễ tân", Email: "letan@example.com", Role: models.StaffRoleReceptionist}
	if err := store.SaveStaff(ctx, staff); err != nil {
		t.Fatalf("SaveStaff() error: %v", err)
	}
	laundry := &models.Service{Name: "Giặt ủi", Price: 50000, Status: constants.ServiceStatusActive}
	if err := store.SaveService(ctx, laundry); err != nil {
		t.Fatalf("SaveService() error: %v", err)
	}

	ledger := NewRoomLedger()
	if billing == nil {
		billing = NewBillingService(store)
	}
	svc := NewBookingService(BookingServiceOptions{
		Store:   store,
		Ledger:  ledger,
		Billing: billing,
		Now:     func() time.Time { return testNow },
	})
	return &bookingTestEnv{
		store:      store,
		ledger:     ledger,
		svc:        svc,
		roomID:     room.RoomID,
		customerID: customer.ID,
		staffID:    staff.ID,
		serviceID:  laundry.ID,
	}
}

func (e *bookingTestEnv) create(t *testing.T, checkIn, checkOut time.Time) *models.Booking {
	t.Helper()
	booking, err := e.svc.Create(context.Background(), CreateBookingInput{
		RoomID:     e.roomID,
		CustomerID: e.customerID,
		StaffID:    e.staffID,
		Interval:   models.Interval{CheckIn: checkIn, CheckOut: checkOut},
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	return booking
}

func TestBookingService_Create(t *testing.T) {
	env := newBookingTestEnv(t, nil)

	booking := env.create(t, day(5, 14), day(8, 12))
	if booking.Status != constants.BookingStatusReserved {
		t.Errorf("status = %d, want %d", booking.Status, constants.BookingStatusReserved)
	}
	if booking.BookingCode == "" {
		t.Errorf("booking code not assigned")
	}
	if booking.Customer.Name != "Nguyễn Văn An" {
		t.Errorf("customer not attached, got %q", booking.Customer.Name)
	}

	stored, err := env.store.GetBooking(context.Background(), booking.ID)
	if err != nil {
		t.Fatalf("GetBooking() error: %v", err)
	}
	if stored.Status != constants.BookingStatusReserved {
		t.Errorf("stored status = %d, want %d", stored.Status, constants.BookingStatusReserved)
	}
}

func TestBookingService_CreateConflict(t *testing.T) {
	env := newBookingTestEnv(t, nil)
	env.create(t, day(5, 14), day(8, 12))

	_, err := env.svc.Create(context.Background(), CreateBookingInput{
		RoomID:     env.roomID,
		CustomerID: env.customerID,
		Interval:   models.Interval{CheckIn: day(7, 14), CheckOut: day(9, 12)},
	})
	if !stderrors.Is(err, errors.ErrRoomConflict) {
		t.Fatalf("Create() error = %v, want ErrRoomConflict", err)
	}

	// đơn bị từ chối không được để lại bản ghi nào
	bookings, err := env.store.ListBookings(context.Background())
	if err != nil {
		t.Fatalf("ListBookings() error: %v", err)
	}
	if len(bookings) != 1 {
		t.Errorf("stored bookings = %d, want 1", len(bookings))
	}
}

func TestBookingService_CreateBackToBack(t *testing.T) {
	env := newBookingTestEnv(t, nil)
	first := env.create(t, day(5, 14), day(8, 12))

	// nhận phòng đúng lúc đơn trước trả phòng
	second := env.create(t, first.CheckOut, day(10, 12))
	if second.ID == first.ID {
		t.Fatalf("expected a second booking")
	}
}

func TestBookingService_CreateInvertedInterval(t *testing.T) {
	env := newBookingTestEnv(t, nil)
	_, err := env.svc.Create(context.Background(), CreateBookingInput{
		RoomID:     env.roomID,
		CustomerID: env.customerID,
		Interval:   models.Interval{CheckIn: day(8, 12), CheckOut: day(5, 14)},
	})
	if !stderrors.Is(err, errors.ErrInvalidInterval) {
		t.Fatalf("Create() error = %v, want ErrInvalidInterval", err)
	}

	// khoảng đảo ngược không giao với gì, không được để nó lọt vào sổ
	bookings, err := env.store.ListBookings(context.Background())
	if err != nil {
		t.Fatalf("ListBookings() error: %v", err)
	}
	if len(bookings) != 0 {
		t.Errorf("stored bookings = %d, want 0", len(bookings))
	}
}

func TestBookingService_CreatePastCheckIn(t *testing.T) {
	env := newBookingTestEnv(t, nil)
	_, err := env.svc.Create(context.Background(), CreateBookingInput{
		RoomID:     env.roomID,
		CustomerID: env.customerID,
		Interval:   models.Interval{CheckIn: testNow.Add(-time.Hour), CheckOut: day(3, 12)},
	})
	if !stderrors.Is(err, errors.ErrInvalidInterval) {
		t.Errorf("Create() error = %v, want ErrInvalidInterval", err)
	}
}

func TestBookingService_CreateRoomNotBookable(t *testing.T) {
	env := newBookingTestEnv(t, nil)
	ctx := context.Background()

	room, err := env.store.GetRoom(ctx, env.roomID)
	if err != nil {
		t.Fatalf("GetRoom() error: %v", err)
	}
	room.Status = constants.RoomStatusMaintenance
	if err := env.store.UpdateRoom(ctx, room); err != nil {
		t.Fatalf("UpdateRoom() error: %v", err)
	}

	_, err = env.svc.Create(ctx, CreateBookingInput{
		RoomID:     env.roomID,
		CustomerID: env.customerID,
		Interval:   models.Interval{CheckIn: day(5, 14), CheckOut: day(8, 12)},
	})
	if !stderrors.Is(err, errors.ErrRoomUnavailable) {
		t.Errorf("Create() error = %v, want ErrRoomUnavailable", err)
	}
}

func TestBookingService_CheckIn(t *testing.T) {
	env := newBookingTestEnv(t, nil)
	booking := env.create(t, day(5, 14), day(8, 12))

	checkedIn, err := env.svc.CheckIn(context.Background(), booking.ID)
	if err != nil {
		t.Fatalf("CheckIn() error: %v", err)
	}
	if checkedIn.Status != constants.BookingStatusCheckedIn {
		t.Errorf("status = %d, want %d", checkedIn.Status, constants.BookingStatusCheckedIn)
	}

	if _, err := env.svc.CheckIn(context.Background(), booking.ID); !stderrors.Is(err, errors.ErrInvalidTransition) {
		t.Errorf("second CheckIn() error = %v, want ErrInvalidTransition", err)
	}
}

func TestBookingService_CheckOut(t *testing.T) {
	env := newBookingTestEnv(t, nil)
	ctx := context.Background()
	booking := env.create(t, day(5, 14), day(8, 12))
	if _, err := env.svc.CheckIn(ctx, booking.ID); err != nil {
		t.Fatalf("CheckIn() error: %v", err)
	}

	settled, invoice, err := env.svc.CheckOut(ctx, booking.ID, []ServiceCharge{
		{ServiceID: env.serviceID, Quantity: 2},
	})
	if err != nil {
		t.Fatalf("CheckOut() error: %v", err)
	}

	// 3 đêm × 1.000.000 × 90% + 2 × 50.000
	const wantRoom, wantService = 2700000.0, 100000.0
	if invoice.RoomCharge != wantRoom {
		t.Errorf("RoomCharge = %.0f, want %.0f", invoice.RoomCharge, wantRoom)
	}
	if invoice.ServiceCharge != wantService {
		t.Errorf("ServiceCharge = %.0f, want %.0f", invoice.ServiceCharge, wantService)
	}
	if invoice.TotalAmount != wantRoom+wantService {
		t.Errorf("TotalAmount = %.0f, want %.0f", invoice.TotalAmount, wantRoom+wantService)
	}
	if invoice.InvoiceCode == "" {
		t.Errorf("invoice code not assigned")
	}

	if settled.Status != constants.BookingStatusSettled {
		t.Errorf("status = %d, want %d", settled.Status, constants.BookingStatusSettled)
	}
	if settled.TotalAmount == nil || *settled.TotalAmount != wantRoom+wantService {
		t.Errorf("booking TotalAmount = %v, want %.0f", settled.TotalAmount, wantRoom+wantService)
	}

	// phòng phải trống trở lại ngay sau khi trả
	if !env.svc.IsAvailable(env.roomID, booking.Interval(), 0) {
		t.Errorf("room still blocked after check-out")
	}

	usages, err := env.store.ListServiceUsages(ctx, booking.ID)
	if err != nil {
		t.Fatalf("ListServiceUsages() error: %v", err)
	}
	if len(usages) != 1 || usages[0].Quantity != 2 {
		t.Errorf("service usages = %+v, want one line with quantity 2", usages)
	}
}

func TestBookingService_CheckOutInvoiceFailureRollsBack(t *testing.T) {
	env := newBookingTestEnv(t, &failingBilling{})
	ctx := context.Background()
	booking := env.create(t, day(5, 14), day(8, 12))
	if _, err := env.svc.CheckIn(ctx, booking.ID); err != nil {
		t.Fatalf("CheckIn() error: %v", err)
	}

	_, _, err := env.svc.CheckOut(ctx, booking.ID, nil)
	if !stderrors.Is(err, errors.ErrInvoiceCreation) {
		t.Fatalf("CheckOut() error = %v, want ErrInvoiceCreation", err)
	}

	// trạng thái và sổ phòng phải như trước khi check-out
	stored, err := env.store.GetBooking(ctx, booking.ID)
	if err != nil {
		t.Fatalf("GetBooking() error: %v", err)
	}
	if stored.Status != constants.BookingStatusCheckedIn {
		t.Errorf("status = %d, want %d after rollback", stored.Status, constants.BookingStatusCheckedIn)
	}
	if stored.TotalAmount != nil {
		t.Errorf("TotalAmount = %v, want nil after rollback", stored.TotalAmount)
	}
	if env.svc.IsAvailable(env.roomID, booking.Interval(), 0) {
		t.Errorf("room released despite failed check-out")
	}
}

func TestBookingService_CheckOutRequiresCheckedIn(t *testing.T) {
	env := newBookingTestEnv(t, nil)
	booking := env.create(t, day(5, 14), day(8, 12))

	if _, _, err := env.svc.CheckOut(context.Background(), booking.ID, nil); !stderrors.Is(err, errors.ErrInvalidTransition) {
		t.Errorf("CheckOut() error = %v, want ErrInvalidTransition", err)
	}
}

func TestBookingService_Cancel(t *testing.T) {
	env := newBookingTestEnv(t, nil)
	booking := env.create(t, day(5, 14), day(8, 12))

	cancelled, err := env.svc.Cancel(context.Background(), booking.ID)
	if err != nil {
		t.Fatalf("Cancel() error: %v", err)
	}
	if cancelled.Status != constants.BookingStatusCancelled {
		t.Errorf("status = %d, want %d", cancelled.Status, constants.BookingStatusCancelled)
	}
	if !env.svc.IsAvailable(env.roomID, booking.Interval(), 0) {
		t.Errorf("room still blocked after cancel")
	}

	// đơn đã hủy vẫn nằm trong lịch sử
	if _, err := env.store.GetBooking(context.Background(), booking.ID); err != nil {
		t.Errorf("cancelled booking removed from storage: %v", err)
	}
}

func TestBookingService_Update(t *testing.T) {
	env := newBookingTestEnv(t, nil)
	ctx := context.Background()
	first := env.create(t, day(5, 14), day(8, 12))
	second := env.create(t, day(10, 14), day(12, 12))

	// dời đơn 2 đè lên đơn 1
	conflict := models.Interval{CheckIn: day(7, 14), CheckOut: day(9, 12)}
	if _, err := env.svc.Update(ctx, second.ID, UpdateBookingInput{Interval: &conflict}); !stderrors.Is(err, errors.ErrRoomConflict) {
		t.Fatalf("Update() error = %v, want ErrRoomConflict", err)
	}

	// dời sang khoảng trống thì được
	free := models.Interval{CheckIn: day(15, 14), CheckOut: day(17, 12)}
	updated, err := env.svc.Update(ctx, second.ID, UpdateBookingInput{Interval: &free})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if !updated.CheckIn.Equal(free.CheckIn) || !updated.CheckOut.Equal(free.CheckOut) {
		t.Errorf("interval not updated: %v -> %v", updated.CheckIn, updated.CheckOut)
	}

	// khoảng cũ của đơn 2 phải trống trở lại
	if !env.svc.IsAvailable(env.roomID, models.Interval{CheckIn: day(10, 14), CheckOut: day(12, 12)}, 0) {
		t.Errorf("old interval still blocked after update")
	}

	// đơn đã nhận phòng thì không sửa được nữa
	if _, err := env.svc.CheckIn(ctx, first.ID); err != nil {
		t.Fatalf("CheckIn() error: %v", err)
	}
	note := "đổi ý"
	if _, err := env.svc.Update(ctx, first.ID, UpdateBookingInput{Note: &note}); !stderrors.Is(err, errors.ErrInvalidTransition) {
		t.Errorf("Update() on checked-in booking error = %v, want ErrInvalidTransition", err)
	}
}

// flakyStore giả lập storage hỏng ở bước ghi cập nhật
type flakyStore struct {
	*storage.MemoryStore
	failUpdate bool
}

func (s *flakyStore) UpdateBooking(ctx context.Context, b *models.Booking) error {
	if s.failUpdate {
		return stderrors.New("db down")
	}
	return s.MemoryStore.UpdateBooking(ctx, b)
}

func TestBookingService_UpdateStoreFailureRestoresLedger(t *testing.T) {
	ctx := context.Background()
	store := &flakyStore{MemoryStore: storage.NewMemoryStore()}

	room := &models.Room{RoomName: "P.101", Price: 1000000, Status: constants.RoomStatusAvailable}
	if err := store.SaveRoom(ctx, room); err != nil {
		t.Fatalf("SaveRoom() error: %v", err)
	}
	customer := &models.Customer{Name: "Nguyễn Văn An", PhoneNumber: "0912345678"}
	if err := store.SaveCustomer(ctx, customer); err != nil {
		t.Fatalf("SaveCustomer() error: %v", err)
	}

	svc := NewBookingService(BookingServiceOptions{
		Store:   store,
		Ledger:  NewRoomLedger(),
		Billing: NewBillingService(store.MemoryStore),
		Now:     func() time.Time { return testNow },
	})

	oldInterval := models.Interval{CheckIn: day(5, 14), CheckOut: day(8, 12)}
	booking, err := svc.Create(ctx, CreateBookingInput{
		RoomID:     room.RoomID,
		CustomerID: customer.ID,
		Interval:   oldInterval,
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	store.failUpdate = true
	newInterval := models.Interval{CheckIn: day(15, 14), CheckOut: day(17, 12)}
	if _, err := svc.Update(ctx, booking.ID, UpdateBookingInput{Interval: &newInterval}); err == nil {
		t.Fatalf("Update() succeeded despite store failure")
	}

	// sổ phòng phải quay về khoảng cũ, khớp với những gì storage còn giữ
	if svc.IsAvailable(room.RoomID, oldInterval, 0) {
		t.Errorf("old interval released while storage still holds it")
	}
	if !svc.IsAvailable(room.RoomID, newInterval, 0) {
		t.Errorf("new interval blocked after failed update")
	}

	store.failUpdate = false
	stored, err := store.GetBooking(ctx, booking.ID)
	if err != nil {
		t.Fatalf("GetBooking() error: %v", err)
	}
	if !stored.CheckIn.Equal(oldInterval.CheckIn) || !stored.CheckOut.Equal(oldInterval.CheckOut) {
		t.Errorf("stored interval = %v -> %v, want unchanged", stored.CheckIn, stored.CheckOut)
	}
}

func TestBookingService_CurrentStays(t *testing.T) {
	env := newBookingTestEnv(t, nil)

	// nhận phòng đúng thời điểm hiện tại, đơn thứ hai còn ở tương lai
	current := env.create(t, testNow, day(3, 12))
	env.create(t, day(10, 14), day(12, 12))

	stays := env.svc.CurrentStays(env.roomID)
	if len(stays) != 1 {
		t.Fatalf("CurrentStays() = %d bookings, want 1", len(stays))
	}
	if stays[0].ID != current.ID {
		t.Errorf("booking ID = %d, want %d", stays[0].ID, current.ID)
	}
	if stays[0].Customer.Name != "Nguyễn Văn An" {
		t.Errorf("customer not attached to stay")
	}
}

func TestBookingService_LoadLedger(t *testing.T) {
	env := newBookingTestEnv(t, nil)
	ctx := context.Background()
	booking := env.create(t, day(5, 14), day(8, 12))

	// server mới khởi động: sổ trống, nạp lại từ storage
	fresh := NewRoomLedger()
	svc := NewBookingService(BookingServiceOptions{
		Store:   env.store,
		Ledger:  fresh,
		Billing: NewBillingService(env.store),
		Now:     func() time.Time { return testNow },
	})
	if err := svc.LoadLedger(ctx); err != nil {
		t.Fatalf("LoadLedger() error: %v", err)
	}
	if svc.IsAvailable(env.roomID, booking.Interval(), 0) {
		t.Errorf("reloaded ledger lost active booking")
	}
}
