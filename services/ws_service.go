package services

import (
	"net/http"
	"time"

	"hms/models"
	"hms/services/logger"

	json "github.com/goccy/go-json"
	"github.com/olahol/melody"
)

// BookingEvent gói tin đẩy qua websocket mỗi khi một đơn đổi trạng thái,
// để màn hình lịch phòng và tổng quan cập nhật không cần polling
type BookingEvent struct {
	Type        string    `json:"type"` // created / checked_in / checked_out / cancelled / updated
	BookingID   uint      `json:"bookingId"`
	BookingCode string    `json:"bookingCode"`
	RoomID      uint      `json:"roomId"`
	Status      int       `json:"status"`
	StatusLabel string    `json:"statusLabel"`
	At          time.Time `json:"at"`
}

// BookingEventHub phát sự kiện đặt phòng tới mọi client websocket
type BookingEventHub struct {
	m      *melody.Melody
	logger logger.Logger
}

func NewBookingEventHub(lg logger.Logger) *BookingEventHub {
	if lg == nil {
		lg = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &BookingEventHub{
		m:      melody.New(),
		logger: lg,
	}
}

// HandleRequest nâng cấp HTTP request lên websocket
func (h *BookingEventHub) HandleRequest(w http.ResponseWriter, r *http.Request) error {
	return h.m.HandleRequest(w, r)
}

// Publish phát một sự kiện vòng đời đơn đặt phòng tới mọi client.
// Lỗi broadcast chỉ log, không chặn luồng nghiệp vụ.
func (h *BookingEventHub) Publish(eventType string, b *models.Booking) {
	event := BookingEvent{
		Type:        eventType,
		BookingID:   b.ID,
		BookingCode: b.BookingCode,
		RoomID:      b.RoomID,
		Status:      b.Status,
		StatusLabel: models.BookingStatusLabel(b.Status),
		At:          time.Now(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("Không thể mã hóa sự kiện đặt phòng: %v", err)
		return
	}
	if err := h.m.Broadcast(data); err != nil {
		h.logger.Error("Không thể phát sự kiện đặt phòng: %v", err)
	}
}

// Close đóng mọi kết nối websocket khi server tắt
func (h *BookingEventHub) Close() error {
	return h.m.Close()
}
