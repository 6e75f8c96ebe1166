package models

import (
	"hms/constants"
	"hms/errors"
)

// BookingState định nghĩa interface cho các trạng thái đặt phòng. Mọi
// chuyển trạng thái đều phải đi qua bảng trạng thái đóng này, không còn
// chỗ cho mã trạng thái tự do như các màn hình cũ.
type BookingState interface {
	CheckIn(b *Booking) error
	CheckOut(b *Booking) error
	Cancel(b *Booking) error
}

// ReservedState trạng thái đã đặt, chờ nhận phòng
type ReservedState struct{}

func (s *ReservedState) CheckIn(b *Booking) error {
	b.Status = constants.BookingStatusCheckedIn
	return nil
}

func (s *ReservedState) CheckOut(b *Booking) error {
	return errors.NewInvalidTransition("Đơn chưa nhận phòng, không thể check-out")
}

func (s *ReservedState) Cancel(b *Booking) error {
	b.Status = constants.BookingStatusCancelled
	return nil
}

// CheckedInState trạng thái đang ở
type CheckedInState struct{}

func (s *CheckedInState) CheckIn(b *Booking) error {
	return errors.NewInvalidTransition("Đơn đã nhận phòng rồi")
}

func (s *CheckedInState) CheckOut(b *Booking) error {
	b.Status = constants.BookingStatusSettled
	return nil
}

func (s *CheckedInState) Cancel(b *Booking) error {
	b.Status = constants.BookingStatusCancelled
	return nil
}

// SettledState trạng thái đã trả phòng và lên hóa đơn (terminal)
type SettledState struct{}

func (s *SettledState) CheckIn(b *Booking) error {
	return errors.NewInvalidTransition("Đơn đã trả phòng")
}

func (s *SettledState) CheckOut(b *Booking) error {
	return errors.NewInvalidTransition("Đơn đã trả phòng rồi")
}

func (s *SettledState) Cancel(b *Booking) error {
	return errors.NewInvalidTransition("Không thể hủy đơn đã trả phòng")
}

// CancelledState trạng thái đã hủy (terminal)
type CancelledState struct{}

func (s *CancelledState) CheckIn(b *Booking) error {
	return errors.NewInvalidTransition("Không thể nhận phòng cho đơn đã hủy")
}

func (s *CancelledState) CheckOut(b *Booking) error {
	return errors.NewInvalidTransition("Không thể check-out đơn đã hủy")
}

func (s *CancelledState) Cancel(b *Booking) error {
	return errors.NewInvalidTransition("Đơn đã hủy rồi")
}

// GetBookingState trả về state tương ứng với trạng thái đơn
func GetBookingState(status int) BookingState {
	switch status {
	case constants.BookingStatusReserved:
		return &ReservedState{}
	case constants.BookingStatusCheckedIn:
		return &CheckedInState{}
	case constants.BookingStatusSettled:
		return &SettledState{}
	case constants.BookingStatusCancelled:
		return &CancelledState{}
	default:
		return &CancelledState{}
	}
}

// BookingStatusLabel nhãn hiển thị của trạng thái
func BookingStatusLabel(status int) string {
	switch status {
	case constants.BookingStatusReserved:
		return "Đã đặt"
	case constants.BookingStatusCheckedIn:
		return "Đang ở"
	case constants.BookingStatusSettled:
		return "Đã trả"
	case constants.BookingStatusCancelled:
		return "Đã huỷ"
	default:
		return "Không rõ"
	}
}
