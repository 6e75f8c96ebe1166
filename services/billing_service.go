package services

import (
	"context"
	"time"

	"hms/constants"
	"hms/errors"
	"hms/models"
	"hms/storage"
)

// BillingService cài đặt BillingCollaborator trên storage.
// Tách riêng để engine đặt phòng chỉ thấy interface, còn việc
// đánh mã hóa đơn và theo dõi thanh toán nằm hết ở đây.
type BillingService struct {
	store storage.InvoiceStore
}

func NewBillingService(store storage.InvoiceStore) *BillingService {
	return &BillingService{store: store}
}

// CreateInvoice tạo hóa đơn cho một lần trả phòng
func (s *BillingService) CreateInvoice(ctx context.Context, booking *models.Booking, roomCharge, serviceCharge float64) (*models.Invoice, error) {
	invoice := &models.Invoice{
		BookingID:     booking.ID,
		RoomCharge:    roomCharge,
		ServiceCharge: serviceCharge,
		TotalAmount:   roomCharge + serviceCharge,
		Status:        constants.PaymentStatusPending,
		StaffID:       booking.StaffID,
	}
	if err := s.store.SaveInvoice(ctx, invoice); err != nil {
		return nil, err
	}
	return invoice, nil
}

// MarkPaid ghi nhận hóa đơn đã thanh toán; gọi lại trên hóa đơn đã
// thanh toán là no-op
func (s *BillingService) MarkPaid(ctx context.Context, invoiceID uint) (*models.Invoice, error) {
	invoice, err := s.store.GetInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.Status == constants.PaymentStatusPaid {
		return invoice, nil
	}
	now := time.Now()
	invoice.Status = constants.PaymentStatusPaid
	invoice.PaymentDate = &now
	if err := s.store.UpdateInvoice(ctx, invoice); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể cập nhật hóa đơn", err)
	}
	return invoice, nil
}
