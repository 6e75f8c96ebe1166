package models

import "time"

// Service dịch vụ kèm theo (giặt ủi, minibar, đưa đón...)
type Service struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Status      int       `json:"status" gorm:"default:1"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// ServiceUsage dịch vụ khách đã dùng trong một đơn đặt phòng, chốt giá
// tại thời điểm sử dụng
type ServiceUsage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	BookingID uint      `json:"bookingId" gorm:"index"`
	ServiceID uint      `json:"serviceId"`
	Service   Service   `json:"service" gorm:"foreignKey:ServiceID"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unitPrice"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// Amount thành tiền của dòng dịch vụ
func (u *ServiceUsage) Amount() float64 {
	return u.UnitPrice * float64(u.Quantity)
}
