package services

import (
	"context"
	"time"

	"hms/constants"
	"hms/services/logger"
)

// OverdueService quét các lượt ở quá hạn trả phòng để nhắc lễ tân.
// Chạy định kỳ qua cron và phát cảnh báo lên websocket.
type OverdueService struct {
	ledger *RoomLedger
	hub    *BookingEventHub
	logger logger.Logger
	now    func() time.Time
}

func NewOverdueService(ledger *RoomLedger, hub *BookingEventHub, lg logger.Logger) *OverdueService {
	if lg == nil {
		lg = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &OverdueService{ledger: ledger, hub: hub, logger: lg, now: time.Now}
}

// ReportOverdueStays tìm các đơn đang ở đã quá giờ trả phòng, log và
// phát cảnh báo tới các màn hình
func (s *OverdueService) ReportOverdueStays(ctx context.Context) error {
	now := s.now()
	count := 0

	for _, bookings := range s.ledger.Snapshot() {
		for _, b := range bookings {
			if b.Status != constants.BookingStatusCheckedIn || !b.CheckOut.Before(now) {
				continue
			}
			count++
			s.logger.Warn("Đơn %s (phòng %d) quá hạn trả phòng từ %s",
				b.BookingCode, b.RoomID, b.CheckOut.Format("02/01/2006 15:04"))
			if s.hub != nil {
				s.hub.Publish("overdue", &b)
			}
		}
	}

	if count > 0 {
		s.logger.Info("Phát hiện %d lượt ở quá hạn trả phòng", count)
	}
	return nil
}
