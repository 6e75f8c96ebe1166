package services

import (
	"context"
	"time"

	"hms/constants"
	"hms/models"
	"hms/storage"
)

// ActiveStay một lượt khách đang giữ phòng, kèm nhãn cho màn hình tổng quan
type ActiveStay struct {
	BookingID    uint      `json:"bookingId"`
	BookingCode  string    `json:"bookingCode"`
	RoomID       uint      `json:"roomId"`
	RoomName     string    `json:"roomName"`
	CustomerName string    `json:"customerName"`
	CheckIn      time.Time `json:"checkIn"`
	CheckOut     time.Time `json:"checkOut"`
	Label        string    `json:"label"` // Đang ở / Sắp trả / Quá hạn
}

// DayRevenue doanh thu của một ngày, dùng cho biểu đồ 7 ngày gần nhất
type DayRevenue struct {
	Date    string  `json:"date"` // dd/MM
	Revenue float64 `json:"revenue"`
}

// DashboardSummary số liệu màn hình tổng quan lễ tân
type DashboardSummary struct {
	TodayRevenue   float64      `json:"todayRevenue"`
	TodayInvoices  int          `json:"todayInvoices"`
	RoomsInUse     int          `json:"roomsInUse"`
	TotalRooms     int          `json:"totalRooms"`
	ReservedAhead  int          `json:"reservedAhead"`
	ActiveStays    []ActiveStay `json:"activeStays"`
	RevenueByDay   []DayRevenue `json:"revenueByDay"`
	GeneratedAt    time.Time    `json:"generatedAt"`
}

// DashboardService gom số liệu tổng quan từ sổ phòng và storage.
// Mọi con số được tính lại tại thời điểm gọi, không có cache số liệu
// riêng (cache nằm ở tầng controller nếu cần).
type DashboardService struct {
	store  storage.Store
	ledger *RoomLedger
	now    func() time.Time
}

func NewDashboardService(store storage.Store, ledger *RoomLedger, now func() time.Time) *DashboardService {
	if now == nil {
		now = time.Now
	}
	return &DashboardService{store: store, ledger: ledger, now: now}
}

// Summary dựng số liệu tổng quan: doanh thu hôm nay theo hóa đơn đã
// tạo trong ngày, số phòng đang có khách theo sổ phòng, danh sách lượt
// ở kèm nhãn và doanh thu 7 ngày gần nhất.
func (s *DashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	now := s.now()
	today := dayStart(now)
	tomorrow := today.AddDate(0, 0, 1)
	weekAgo := today.AddDate(0, 0, -6)

	invoices, err := s.store.ListInvoicesBetween(ctx, weekAgo, tomorrow)
	if err != nil {
		return nil, err
	}
	rooms, err := s.store.ListRooms(ctx)
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{
		TotalRooms:   len(rooms),
		GeneratedAt:  now,
		ActiveStays:  []ActiveStay{},
		RevenueByDay: make([]DayRevenue, 0, 7),
	}

	revenueByDay := make(map[string]float64, 7)
	for _, inv := range invoices {
		day := dayStart(inv.CreatedAt)
		revenueByDay[day.Format("02/01")] += inv.TotalAmount
		if !day.Before(today) {
			summary.TodayRevenue += inv.TotalAmount
			summary.TodayInvoices++
		}
	}
	for d := weekAgo; !d.After(today); d = d.AddDate(0, 0, 1) {
		key := d.Format("02/01")
		summary.RevenueByDay = append(summary.RevenueByDay, DayRevenue{
			Date:    key,
			Revenue: revenueByDay[key],
		})
	}

	roomNames := make(map[uint]string, len(rooms))
	for _, r := range rooms {
		roomNames[r.RoomID] = r.RoomName
	}

	snapshot := s.ledger.Snapshot()
	inUse := make(map[uint]bool)
	for roomID, bookings := range snapshot {
		for _, b := range bookings {
			switch b.Status {
			case constants.BookingStatusCheckedIn:
				inUse[roomID] = true
				summary.ActiveStays = append(summary.ActiveStays, ActiveStay{
					BookingID:    b.ID,
					BookingCode:  b.BookingCode,
					RoomID:       roomID,
					RoomName:     roomNames[roomID],
					CustomerName: b.Customer.Name,
					CheckIn:      b.CheckIn,
					CheckOut:     b.CheckOut,
					Label:        stayLabel(b, now),
				})
			case constants.BookingStatusReserved:
				summary.ReservedAhead++
			}
		}
	}
	summary.RoomsInUse = len(inUse)

	return summary, nil
}

// stayLabel nhãn tình trạng của lượt ở: quá hạn khi đã qua giờ trả,
// sắp trả khi trả trong hôm nay, còn lại là đang ở
func stayLabel(b models.Booking, now time.Time) string {
	switch {
	case b.CheckOut.Before(now):
		return "Quá hạn"
	case dayStart(b.CheckOut).Equal(dayStart(now)):
		return "Sắp trả"
	default:
		return "Đang ở"
	}
}
