package services

import (
	"context"
	"time"

	"hms/constants"
	"hms/models"
	"hms/storage"
)

// TimelineSegment một vệt đơn đặt phòng trên lưới tháng. StartIndex và
// EndIndex tính theo ngày trong tháng, gốc 0, EndIndex bao gồm cả ngày
// trả phòng (khách vẫn chiếm phòng buổi sáng hôm trả).
type TimelineSegment struct {
	BookingID    uint   `json:"bookingId"`
	BookingCode  string `json:"bookingCode"`
	CustomerName string `json:"customerName"`
	Status       int    `json:"status"`
	StatusLabel  string `json:"statusLabel"`
	StartIndex   int    `json:"startIndex"`
	EndIndex     int    `json:"endIndex"`
	// ClippedStart/ClippedEnd đánh dấu vệt bị cắt bởi biên tháng,
	// màn hình vẽ mũi tên thay vì bo tròn đầu vệt
	ClippedStart bool `json:"clippedStart"`
	ClippedEnd   bool `json:"clippedEnd"`
}

// RoomTimeline dòng lịch của một phòng trong tháng
type RoomTimeline struct {
	RoomID   uint              `json:"roomId"`
	RoomName string            `json:"roomName"`
	Status   int               `json:"status"`
	Segments []TimelineSegment `json:"segments"`
}

// MonthTimeline lưới lịch phòng của một tháng
type MonthTimeline struct {
	Year  int            `json:"year"`
	Month int            `json:"month"`
	Days  int            `json:"days"`
	Rooms []RoomTimeline `json:"rooms"`
}

// TimelineService chiếu các đơn đặt phòng lên lưới tháng cho màn hình
// lịch phòng. Kết quả được tính lại từ đầu mỗi lần gọi, không giữ trạng
// thái giữa các tháng.
type TimelineService struct {
	store storage.Store
}

func NewTimelineService(store storage.Store) *TimelineService {
	return &TimelineService{store: store}
}

// MonthView dựng lưới lịch của tháng year/month. Mọi phòng đều có một
// dòng, kể cả phòng không có đơn nào; đơn đã hủy không được vẽ; đơn
// tràn qua biên tháng bị cắt tại biên chứ không bỏ.
func (s *TimelineService) MonthView(ctx context.Context, year int, month time.Month) (*MonthTimeline, error) {
	rooms, err := s.store.ListRooms(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.store.ListBookings(ctx)
	if err != nil {
		return nil, err
	}

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	monthEnd := monthStart.AddDate(0, 1, 0)
	days := monthEnd.AddDate(0, 0, -1).Day()

	segmentsByRoom := make(map[uint][]TimelineSegment)
	for _, b := range bookings {
		if b.Status == constants.BookingStatusCancelled {
			continue
		}
		seg, ok := projectSegment(b, monthStart, monthEnd, days)
		if !ok {
			continue
		}
		segmentsByRoom[b.RoomID] = append(segmentsByRoom[b.RoomID], seg)
	}

	timeline := &MonthTimeline{
		Year:  year,
		Month: int(month),
		Days:  days,
		Rooms: make([]RoomTimeline, 0, len(rooms)),
	}
	for _, room := range rooms {
		segments := segmentsByRoom[room.RoomID]
		if segments == nil {
			segments = []TimelineSegment{}
		}
		timeline.Rooms = append(timeline.Rooms, RoomTimeline{
			RoomID:   room.RoomID,
			RoomName: room.RoomName,
			Status:   room.Status,
			Segments: segments,
		})
	}
	return timeline, nil
}

// projectSegment chiếu một đơn lên cửa sổ [monthStart, monthEnd).
// Ngày trả phòng vẫn chiếm một ô, nên đơn chạm tháng bằng đúng ngày
// trả cũng hiện lên với một ô duy nhất.
func projectSegment(b models.Booking, monthStart, monthEnd time.Time, days int) (TimelineSegment, bool) {
	lastDay := dayStart(b.CheckOut)
	if b.CheckIn.Compare(monthEnd) >= 0 || lastDay.Before(monthStart) {
		return TimelineSegment{}, false
	}

	seg := TimelineSegment{
		BookingID:    b.ID,
		BookingCode:  b.BookingCode,
		CustomerName: b.Customer.Name,
		Status:       b.Status,
		StatusLabel:  models.BookingStatusLabel(b.Status),
	}
	if b.CheckIn.Before(monthStart) {
		seg.StartIndex = 0
		seg.ClippedStart = true
	} else {
		seg.StartIndex = b.CheckIn.Day() - 1
	}
	if lastDay.Compare(monthEnd) >= 0 {
		seg.EndIndex = days - 1
		seg.ClippedEnd = true
	} else {
		seg.EndIndex = lastDay.Day() - 1
	}
	return seg, true
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
