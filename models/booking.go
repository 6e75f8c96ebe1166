package models

import (
	"fmt"
	"time"

	"hms/constants"

	"gorm.io/gorm"
)

type Booking struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	BookingCode   string    `json:"bookingCode" gorm:"unique;size:20"` // Mã nhận phòng, vd MP17251
	RoomID        uint      `json:"roomId" gorm:"index"`
	Room          Room      `json:"room" gorm:"foreignKey:RoomID"`
	CustomerID    uint      `json:"customerId"`
	Customer      Customer  `json:"customer" gorm:"foreignKey:CustomerID"`
	StaffID       uint      `json:"staffId"`
	Staff         Staff     `json:"staff" gorm:"foreignKey:StaffID"`
	CheckIn       time.Time `json:"checkIn" gorm:"index"`
	CheckOut      time.Time `json:"checkOut" gorm:"index"`
	Status        int       `json:"status"`
	Note          string    `json:"note"`
	TotalAmount   *float64  `json:"totalAmount"` // Chỉ có giá trị sau khi check-out
	PaymentStatus int       `json:"paymentStatus"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Interval khoảng lưu trú [CheckIn, CheckOut) của đơn
func (b *Booking) Interval() Interval {
	return Interval{CheckIn: b.CheckIn, CheckOut: b.CheckOut}
}

// IsActive đơn còn giữ phòng (đã đặt hoặc đang ở)
func (b *Booking) IsActive() bool {
	return b.Status == constants.BookingStatusReserved || b.Status == constants.BookingStatusCheckedIn
}

// IsTerminal đơn đã kết thúc vòng đời
func (b *Booking) IsTerminal() bool {
	return b.Status == constants.BookingStatusSettled || b.Status == constants.BookingStatusCancelled
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.BookingCode == "" {
		b.BookingCode = fmt.Sprintf("MP%d", time.Now().UnixNano()%100000000)
	}
	return nil
}
