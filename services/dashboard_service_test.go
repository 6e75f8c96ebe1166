package services

import (
	"context"
	"testing"
	"time"

	"hms/constants"
	"hms/models"
	"hms/storage"
)

func saveDashboardInvoice(t *testing.T, store *storage.MemoryStore, createdAt time.Time, total float64) {
	t.Helper()
	inv := &models.Invoice{
		BookingID:   1,
		TotalAmount: total,
		Status:      constants.PaymentStatusPending,
		CreatedAt:   createdAt,
	}
	if err := store.SaveInvoice(context.Background(), inv); err != nil {
		t.Fatalf("SaveInvoice() error: %v", err)
	}
}

func TestDashboardService_Summary(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	roomNames := []string{"P.101", "P.102", "P.103", "P.104"}
	roomIDs := make([]uint, 0, len(roomNames))
	for _, name := range roomNames {
		r := &models.Room{RoomName: name, Status: constants.RoomStatusAvailable}
		if err := store.SaveRoom(ctx, r); err != nil {
			t.Fatalf("SaveRoom() error: %v", err)
		}
		roomIDs = append(roomIDs, r.RoomID)
	}

	// hai hóa đơn hôm nay, một trong tuần, một rơi ra ngoài cửa sổ 7 ngày
	saveDashboardInvoice(t, store, now.Add(-time.Hour), 2000000)
	saveDashboardInvoice(t, store, time.Date(2026, 3, 10, 1, 0, 0, 0, time.UTC), 500000)
	saveDashboardInvoice(t, store, time.Date(2026, 3, 7, 15, 0, 0, 0, time.UTC), 1000000)
	saveDashboardInvoice(t, store, time.Date(2026, 3, 3, 15, 0, 0, 0, time.UTC), 9000000)

	ledger := NewRoomLedger()
	stays := []*models.Booking{
		{ID: 11, RoomID: roomIDs[0], Status: constants.BookingStatusCheckedIn,
			CheckIn: day(9, 14), CheckOut: day(12, 12), Customer: models.Customer{Name: "Khách Ở"}},
		{ID: 12, RoomID: roomIDs[1], Status: constants.BookingStatusCheckedIn,
			CheckIn: day(5, 14), CheckOut: day(9, 12), Customer: models.Customer{Name: "Khách Trễ"}},
		{ID: 13, RoomID: roomIDs[2], Status: constants.BookingStatusCheckedIn,
			CheckIn: day(8, 14), CheckOut: day(10, 12), Customer: models.Customer{Name: "Khách Sắp Đi"}},
		{ID: 14, RoomID: roomIDs[0], Status: constants.BookingStatusReserved,
			CheckIn: day(20, 14), CheckOut: day(22, 12)},
	}
	for _, b := range stays {
		if err := ledger.Add(b); err != nil {
			t.Fatalf("ledger.Add(%d) error: %v", b.ID, err)
		}
	}

	summary, err := NewDashboardService(store, ledger, func() time.Time { return now }).Summary(ctx)
	if err != nil {
		t.Fatalf("Summary() error: %v", err)
	}

	if summary.TodayRevenue != 2500000 {
		t.Errorf("TodayRevenue = %.0f, want 2500000", summary.TodayRevenue)
	}
	if summary.TodayInvoices != 2 {
		t.Errorf("TodayInvoices = %d, want 2", summary.TodayInvoices)
	}
	if summary.TotalRooms != 4 {
		t.Errorf("TotalRooms = %d, want 4", summary.TotalRooms)
	}
	if summary.RoomsInUse != 3 {
		t.Errorf("RoomsInUse = %d, want 3", summary.RoomsInUse)
	}
	if summary.ReservedAhead != 1 {
		t.Errorf("ReservedAhead = %d, want 1", summary.ReservedAhead)
	}

	if len(summary.RevenueByDay) != 7 {
		t.Fatalf("RevenueByDay length = %d, want 7", len(summary.RevenueByDay))
	}
	if summary.RevenueByDay[0].Date != "04/03" || summary.RevenueByDay[6].Date != "10/03" {
		t.Errorf("window = %s..%s, want 04/03..10/03",
			summary.RevenueByDay[0].Date, summary.RevenueByDay[6].Date)
	}
	byDate := make(map[string]float64, 7)
	for _, d := range summary.RevenueByDay {
		byDate[d.Date] = d.Revenue
	}
	if byDate["10/03"] != 2500000 {
		t.Errorf("revenue 10/03 = %.0f, want 2500000", byDate["10/03"])
	}
	if byDate["07/03"] != 1000000 {
		t.Errorf("revenue 07/03 = %.0f, want 1000000", byDate["07/03"])
	}
	// hóa đơn ngày 03/03 nằm ngoài cửa sổ
	if byDate["04/03"] != 0 {
		t.Errorf("revenue 04/03 = %.0f, want 0", byDate["04/03"])
	}

	labels := make(map[uint]string, len(summary.ActiveStays))
	names := make(map[uint]string, len(summary.ActiveStays))
	for _, stay := range summary.ActiveStays {
		labels[stay.BookingID] = stay.Label
		names[stay.BookingID] = stay.RoomName
	}
	if len(labels) != 3 {
		t.Fatalf("ActiveStays = %d, want 3", len(summary.ActiveStays))
	}
	wantLabels := map[uint]string{11: "Đang ở", 12: "Quá hạn", 13: "Sắp trả"}
	for id, want := range wantLabels {
		if labels[id] != want {
			t.Errorf("stay %d label = %q, want %q", id, labels[id], want)
		}
	}
	if names[11] != "P.101" {
		t.Errorf("stay 11 room name = %q, want %q", names[11], "P.101")
	}
}

func TestStayLabel(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		checkOut time.Time
		want     string
	}{
		{name: "past checkout is overdue", checkOut: day(9, 12), want: "Quá hạn"},
		{name: "later today is leaving", checkOut: day(10, 12), want: "Sắp trả"},
		{name: "future day is staying", checkOut: day(12, 12), want: "Đang ở"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := models.Booking{CheckIn: day(5, 14), CheckOut: tt.checkOut}
			if got := stayLabel(b, now); got != tt.want {
				t.Errorf("stayLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}
