package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Invoice struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	InvoiceCode   string     `json:"invoiceCode" gorm:"unique;size:20"` // Mã hóa đơn duy nhất
	BookingID     uint       `json:"bookingId" gorm:"index"`
	Booking       Booking    `json:"booking" gorm:"foreignKey:BookingID"`
	RoomCharge    float64    `json:"roomCharge"`
	ServiceCharge float64    `json:"serviceCharge"`
	TotalAmount   float64    `json:"totalAmount"`
	Status        int        `json:"status"` // 0: Chưa thanh toán, 1: Đã thanh toán
	PaymentDate   *time.Time `json:"paymentDate,omitempty"`
	StaffID       uint       `json:"staffId"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (invoice *Invoice) BeforeCreate(tx *gorm.DB) (err error) {
	if invoice.InvoiceCode == "" {
		invoice.InvoiceCode = fmt.Sprintf("HD%d", time.Now().Unix())

		var count int64
		if err := tx.Model(&Invoice{}).Where("invoice_code = ?", invoice.InvoiceCode).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("InvoiceCode đã tồn tại, hãy thử lại")
		}
	}
	return nil
}
