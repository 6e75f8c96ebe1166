package services

import (
	"sort"
	"sync"
	"time"

	"hms/errors"
	"hms/models"
)

// RoomLedger là sổ phòng: chỉ mục các đơn còn giữ phòng (đã đặt / đang ở)
// theo từng phòng. Đây là cổng duy nhất chống đặt trùng: kiểm tra và
// chèn được thực hiện như một thao tác nguyên tử dưới cùng một khóa.
// Đơn đã trả / đã hủy không nằm trong sổ, lịch sử vẫn ở storage.
type RoomLedger struct {
	mu      sync.RWMutex
	entries map[uint][]models.Booking // roomID -> đơn active, xếp theo CheckIn
}

func NewRoomLedger() *RoomLedger {
	return &RoomLedger{
		entries: make(map[uint][]models.Booking),
	}
}

// Load nạp lại sổ từ danh sách đơn (chỉ nhận đơn còn giữ phòng),
// dùng khi khởi động server
func (l *RoomLedger) Load(bookings []models.Booking) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = make(map[uint][]models.Booking)
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		l.entries[b.RoomID] = append(l.entries[b.RoomID], b)
	}
	for roomID := range l.entries {
		sortByCheckIn(l.entries[roomID])
	}
}

// IsAvailable kiểm tra phòng còn trống trong khoảng iv không.
// excludeID loại một đơn khỏi phép kiểm (dùng khi sửa chính đơn đó),
// truyền 0 nếu không cần.
func (l *RoomLedger) IsAvailable(roomID uint, iv models.Interval, excludeID uint) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.isAvailableLocked(roomID, iv, excludeID)
}

func (l *RoomLedger) isAvailableLocked(roomID uint, iv models.Interval, excludeID uint) bool {
	for _, b := range l.entries[roomID] {
		if b.ID == excludeID {
			continue
		}
		if b.Interval().Overlaps(iv) {
			return false
		}
	}
	return true
}

// Add chèn đơn vào sổ sau khi kiểm tra trùng lịch dưới cùng một khóa.
// Trả về ConflictError nếu khoảng thời gian giao với một đơn active khác
// của cùng phòng.
func (l *RoomLedger) Add(b *models.Booking) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.isAvailableLocked(b.RoomID, b.Interval(), b.ID) {
		return errors.NewRoomConflict(b.RoomID)
	}
	l.entries[b.RoomID] = append(l.entries[b.RoomID], *b)
	sortByCheckIn(l.entries[b.RoomID])
	return nil
}

// Remove gỡ đơn khỏi sổ khi đơn rời tập active (đã trả / đã hủy).
// Gọi trên đơn không còn trong sổ là no-op.
func (l *RoomLedger) Remove(bookingID uint) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for roomID, bookings := range l.entries {
		for i, b := range bookings {
			if b.ID == bookingID {
				l.entries[roomID] = append(bookings[:i], bookings[i+1:]...)
				return
			}
		}
	}
}

// Update thay khoảng thời gian của một đơn đang trong sổ, vẫn dưới một
// khóa với phép kiểm trùng lịch
func (l *RoomLedger) Update(b *models.Booking) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.isAvailableLocked(b.RoomID, b.Interval(), b.ID) {
		return errors.NewRoomConflict(b.RoomID)
	}
	for roomID, bookings := range l.entries {
		for i, old := range bookings {
			if old.ID == b.ID {
				if roomID == b.RoomID {
					bookings[i] = *b
					sortByCheckIn(bookings)
					return nil
				}
				l.entries[roomID] = append(bookings[:i], bookings[i+1:]...)
				l.entries[b.RoomID] = append(l.entries[b.RoomID], *b)
				sortByCheckIn(l.entries[b.RoomID])
				return nil
			}
		}
	}
	l.entries[b.RoomID] = append(l.entries[b.RoomID], *b)
	sortByCheckIn(l.entries[b.RoomID])
	return nil
}

// ActiveBookingsForRoom các đơn của phòng đang chứa thời điểm asOf
// (ai đang ở phòng này)
func (l *RoomLedger) ActiveBookingsForRoom(roomID uint, asOf time.Time) []models.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var result []models.Booking
	for _, b := range l.entries[roomID] {
		if b.Interval().Contains(asOf) {
			result = append(result, b)
		}
	}
	return result
}

// Snapshot bản sao toàn bộ sổ cho các consumer chỉ đọc (timeline,
// dashboard); không bao giờ lộ slice nội bộ
func (l *RoomLedger) Snapshot() map[uint][]models.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()
	snapshot := make(map[uint][]models.Booking, len(l.entries))
	for roomID, bookings := range l.entries {
		copied := make([]models.Booking, len(bookings))
		copy(copied, bookings)
		snapshot[roomID] = copied
	}
	return snapshot
}

func sortByCheckIn(bookings []models.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CheckIn.Before(bookings[j].CheckIn)
	})
}
