package services

import (
	"context"
	"sync"
	"time"

	"hms/builders"
	"hms/constants"
	"hms/errors"
	"hms/models"
	"hms/services/logger"
	"hms/storage"
)

// BillingCollaborator là cổng sang hệ thống hóa đơn. Mỗi lần check-out
// tạo đúng một hóa đơn; sau đó hóa đơn thuộc về bên billing, engine
// không sửa hóa đơn đã chốt.
type BillingCollaborator interface {
	CreateInvoice(ctx context.Context, booking *models.Booking, roomCharge, serviceCharge float64) (*models.Invoice, error)
	MarkPaid(ctx context.Context, invoiceID uint) (*models.Invoice, error)
}

// CreateBookingInput dữ liệu tạo đơn đặt phòng mới
type CreateBookingInput struct {
	RoomID     uint
	CustomerID uint
	StaffID    uint
	Interval   models.Interval
	Note       string
}

// UpdateBookingInput các trường được phép sửa khi đơn còn ở trạng thái đã đặt
type UpdateBookingInput struct {
	Interval *models.Interval
	Note     *string
	StaffID  *uint
}

// ServiceCharge một dòng dịch vụ khách dùng, tính vào hóa đơn lúc check-out
type ServiceCharge struct {
	ServiceID uint
	Quantity  int
}

// BookingServiceOptions các phụ thuộc của BookingService
type BookingServiceOptions struct {
	Store   storage.Store
	Ledger  *RoomLedger
	Billing BillingCollaborator
	Logger  logger.Logger
	Now     func() time.Time
}

// BookingService điều khiển vòng đời đơn đặt phòng: tạo (sau khi qua cổng
// sổ phòng), nhận phòng, trả phòng kèm tạo hóa đơn, hủy. Mutex của service
// bảo đảm cặp kiểm-tra-rồi-chèn trên sổ phòng và storage đi cùng nhau.
type BookingService struct {
	mu      sync.Mutex
	store   storage.Store
	ledger  *RoomLedger
	billing BillingCollaborator
	logger  logger.Logger
	now     func() time.Time
}

// Thời gian chờ tối đa cho lần gọi tạo hóa đơn trong check-out
const invoiceTimeout = 10 * time.Second

func NewBookingService(opts BookingServiceOptions) *BookingService {
	s := &BookingService{
		store:   opts.Store,
		ledger:  opts.Ledger,
		billing: opts.Billing,
		logger:  opts.Logger,
		now:     opts.Now,
	}
	if s.logger == nil {
		s.logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// LoadLedger nạp lại sổ phòng từ storage, gọi một lần khi khởi động
func (s *BookingService) LoadLedger(ctx context.Context) error {
	bookings, err := s.store.ListActiveBookings(ctx)
	if err != nil {
		return err
	}
	s.ledger.Load(bookings)
	s.logger.Info("Đã nạp sổ phòng: %d đơn đang giữ phòng", len(bookings))
	return nil
}

// Create tạo đơn mới ở trạng thái đã đặt sau khi qua cổng chống trùng lịch.
// Khi trùng lịch trả về ConflictError, việc gợi ý phòng khác là chuyện
// của màn hình, không tự thử lại ở đây.
func (s *BookingService) Create(ctx context.Context, input CreateBookingInput) (*models.Booking, error) {
	if !input.Interval.CheckOut.After(input.Interval.CheckIn) {
		return nil, errors.NewInvalidInterval("Ngày trả phòng phải sau ngày nhận phòng")
	}
	if input.Interval.CheckIn.Before(s.now()) {
		return nil, errors.NewInvalidInterval("Ngày nhận phòng không được nhỏ hơn thời điểm hiện tại")
	}

	room, err := s.store.GetRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}
	if !room.Bookable() {
		return nil, errors.NewAppError(errors.ErrCodeRoomUnavailable,
			"Phòng đang bảo trì hoặc ngừng khai thác", errors.ErrRoomUnavailable)
	}
	customer, err := s.store.GetCustomer(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if input.StaffID != 0 {
		if _, err := s.store.GetStaff(ctx, input.StaffID); err != nil {
			return nil, err
		}
	}

	booking := builders.NewBookingBuilder().
		WithRoom(input.RoomID).
		WithCustomer(input.CustomerID).
		WithStaff(input.StaffID).
		WithInterval(input.Interval).
		WithNote(input.Note).
		Build()
	// Gắn sẵn khách hàng để bản sao trong sổ phòng có tên hiển thị
	booking.Customer = *customer

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ledger.IsAvailable(input.RoomID, input.Interval, 0) {
		return nil, errors.NewRoomConflict(input.RoomID)
	}
	if err := s.store.SaveBooking(ctx, booking); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể lưu đơn đặt phòng", err)
	}
	if err := s.ledger.Add(booking); err != nil {
		// Cổng sổ phòng từ chối: gỡ bản ghi vừa lưu rồi báo trùng lịch
		if delErr := s.store.DeleteBooking(ctx, booking.ID); delErr != nil {
			s.logger.Error("Không thể gỡ đơn %d sau khi sổ phòng từ chối: %v", booking.ID, delErr)
		}
		return nil, err
	}

	s.logger.Info("Tạo đơn %s: phòng %d, %s -> %s", booking.BookingCode, booking.RoomID,
		booking.CheckIn.Format("02/01/2006 15:04"), booking.CheckOut.Format("02/01/2006 15:04"))
	return booking, nil
}

// CheckIn chuyển đơn từ đã đặt sang đang ở
func (s *BookingService) CheckIn(ctx context.Context, bookingID uint) (*models.Booking, error) {
	booking, err := s.store.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := models.GetBookingState(booking.Status).CheckIn(booking); err != nil {
		return nil, err
	}
	if err := s.store.UpdateBooking(ctx, booking); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật đơn đặt phòng", err)
	}
	if err := s.ledger.Update(booking); err != nil {
		s.logger.Warn("SỰ CỐ NHẤT QUÁN DỮ LIỆU: không thể ghi check-in của đơn %d vào sổ phòng: %v", booking.ID, err)
	}
	s.logger.Info("Check-in đơn %s (phòng %d)", booking.BookingCode, booking.RoomID)
	return booking, nil
}

// CheckOut chuyển đơn sang đã trả, tính tiền phòng + dịch vụ và tạo đúng
// một hóa đơn. Nếu tạo hóa đơn thất bại thì trạng thái và sổ phòng được
// khôi phục như cũ; rollback hỏng là sự cố nhất quán dữ liệu và được log
// ở mức cảnh báo cao nhất.
func (s *BookingService) CheckOut(ctx context.Context, bookingID uint, charges []ServiceCharge) (*models.Booking, *models.Invoice, error) {
	booking, err := s.store.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, nil, err
	}
	prevStatus := booking.Status
	if err := models.GetBookingState(booking.Status).CheckOut(booking); err != nil {
		return nil, nil, err
	}

	room, err := s.store.GetRoom(ctx, booking.RoomID)
	if err != nil {
		return nil, nil, err
	}

	roomCharge := float64(booking.Interval().Nights()) * room.NightPrice()

	var serviceCharge float64
	usages := make([]models.ServiceUsage, 0, len(charges))
	for _, charge := range charges {
		sv, err := s.store.GetService(ctx, charge.ServiceID)
		if err != nil {
			return nil, nil, err
		}
		qty := charge.Quantity
		if qty <= 0 {
			qty = 1
		}
		serviceCharge += sv.Price * float64(qty)
		usages = append(usages, models.ServiceUsage{
			BookingID: booking.ID,
			ServiceID: sv.ID,
			Quantity:  qty,
			UnitPrice: sv.Price,
		})
	}

	total := roomCharge + serviceCharge
	booking.TotalAmount = &total
	s.ledger.Remove(booking.ID)

	invoiceCtx, cancel := context.WithTimeout(ctx, invoiceTimeout)
	defer cancel()
	invoice, err := s.billing.CreateInvoice(invoiceCtx, booking, roomCharge, serviceCharge)
	if err != nil {
		booking.Status = prevStatus
		booking.TotalAmount = nil
		if addErr := s.ledger.Add(booking); addErr != nil {
			s.logger.Warn("SỰ CỐ NHẤT QUÁN DỮ LIỆU: không thể khôi phục đơn %d vào sổ phòng sau lỗi hóa đơn: %v", booking.ID, addErr)
		}
		return nil, nil, errors.NewInvoiceCreation(err)
	}

	if err := s.store.UpdateBooking(ctx, booking); err != nil {
		s.logger.Warn("SỰ CỐ NHẤT QUÁN DỮ LIỆU: hóa đơn %s đã tạo nhưng đơn %d chưa ghi được trạng thái đã trả: %v",
			invoice.InvoiceCode, booking.ID, err)
		return nil, nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật đơn đặt phòng", err)
	}

	for i := range usages {
		if err := s.store.SaveServiceUsage(ctx, &usages[i]); err != nil {
			s.logger.Error("Không lưu được dịch vụ đã dùng của đơn %d: %v", booking.ID, err)
		}
	}

	s.logger.Info("Check-out đơn %s: tiền phòng %.0f, dịch vụ %.0f, hóa đơn %s",
		booking.BookingCode, roomCharge, serviceCharge, invoice.InvoiceCode)
	return booking, invoice, nil
}

// Cancel hủy đơn khi chưa trả phòng; đơn được giữ lại với trạng thái đã hủy
func (s *BookingService) Cancel(ctx context.Context, bookingID uint) (*models.Booking, error) {
	booking, err := s.store.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := models.GetBookingState(booking.Status).Cancel(booking); err != nil {
		return nil, err
	}
	if err := s.store.UpdateBooking(ctx, booking); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật đơn đặt phòng", err)
	}
	s.ledger.Remove(booking.ID)
	s.logger.Info("Hủy đơn %s (phòng %d)", booking.BookingCode, booking.RoomID)
	return booking, nil
}

// Update sửa đơn khi còn ở trạng thái đã đặt. Đổi khoảng thời gian phải
// qua lại phép kiểm trùng lịch, loại trừ chính đơn này.
func (s *BookingService) Update(ctx context.Context, bookingID uint, input UpdateBookingInput) (*models.Booking, error) {
	booking, err := s.store.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != constants.BookingStatusReserved {
		return nil, errors.NewInvalidTransition("Chỉ sửa được đơn đang ở trạng thái đã đặt")
	}

	if input.Note != nil {
		booking.Note = *input.Note
	}
	if input.StaffID != nil {
		booking.StaffID = *input.StaffID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := booking.Interval()
	if input.Interval != nil {
		booking.CheckIn = input.Interval.CheckIn
		booking.CheckOut = input.Interval.CheckOut
		if err := s.ledger.Update(booking); err != nil {
			return nil, err
		}
	}
	if err := s.store.UpdateBooking(ctx, booking); err != nil {
		// Trả khoảng cũ về sổ phòng, nếu không khoảng vừa nhả sẽ bị
		// đơn khác chiếm trong khi storage vẫn giữ khoảng cũ
		if input.Interval != nil {
			booking.CheckIn = prev.CheckIn
			booking.CheckOut = prev.CheckOut
			if restoreErr := s.ledger.Update(booking); restoreErr != nil {
				s.logger.Warn("SỰ CỐ NHẤT QUÁN DỮ LIỆU: không thể khôi phục khoảng cũ của đơn %d sau lỗi ghi: %v", booking.ID, restoreErr)
			}
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật đơn đặt phòng", err)
	}
	return booking, nil
}

// IsAvailable cho màn hình kiểm tra nhanh phòng trống
func (s *BookingService) IsAvailable(roomID uint, iv models.Interval, excludeID uint) bool {
	return s.ledger.IsAvailable(roomID, iv, excludeID)
}

// CurrentStays các đơn đang chứa thời điểm hiện tại của một phòng
// (ai đang giữ phòng này ngay lúc này)
func (s *BookingService) CurrentStays(roomID uint) []models.Booking {
	return s.ledger.ActiveBookingsForRoom(roomID, s.now())
}
