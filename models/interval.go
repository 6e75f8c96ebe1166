package models

import (
	"time"

	"hms/errors"
)

// Interval biểu diễn khoảng thời gian lưu trú nửa mở [CheckIn, CheckOut).
// Nhờ quy ước nửa mở, hai đơn nối lưng nhau (trả phòng đúng lúc đơn sau
// nhận phòng) không bị coi là trùng lịch.
type Interval struct {
	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`
}

// NewInterval tạo Interval, từ chối khoảng rỗng hoặc đảo ngược
func NewInterval(checkIn, checkOut time.Time) (Interval, error) {
	if !checkOut.After(checkIn) {
		return Interval{}, errors.NewInvalidInterval("Ngày trả phòng phải sau ngày nhận phòng")
	}
	return Interval{CheckIn: checkIn, CheckOut: checkOut}, nil
}

// Overlaps kiểm tra hai khoảng có giao nhau không (nửa mở)
func (iv Interval) Overlaps(other Interval) bool {
	return iv.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(iv.CheckOut)
}

// Contains kiểm tra thời điểm t có nằm trong khoảng không (nửa mở)
func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.CheckIn) && t.Before(iv.CheckOut)
}

// Nights số đêm lưu trú, tối thiểu 1 (nhận và trả trong cùng ngày vẫn tính 1 đêm)
func (iv Interval) Nights() int {
	n := iv.calendarDays()
	if n < 1 {
		return 1
	}
	return n
}

// DaysSpanned số ngày lịch mà đơn chiếm trên lưới phòng, tính cả ngày trả
// phòng (phòng chỉ trống một phần trong ngày trả, quy ước của lưới cũ).
func (iv Interval) DaysSpanned() int {
	return iv.calendarDays() + 1
}

func (iv Interval) calendarDays() int {
	return int(dateOf(iv.CheckOut).Sub(dateOf(iv.CheckIn)).Hours() / 24)
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
