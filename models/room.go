package models

import (
	"fmt"
	"time"

	"hms/constants"
)

type Room struct {
	RoomID     uint      `json:"id" gorm:"primaryKey;column:room_id"`
	RoomName   string    `json:"roomName"`
	RoomTypeID uint      `json:"roomTypeId"`
	RoomType   RoomType  `json:"roomType" gorm:"foreignKey:RoomTypeID"`
	Price      float64   `json:"price"`    // Giá mỗi đêm
	Discount   float64   `json:"discount"` // Phần trăm giảm giá, 0..100
	Status     int       `json:"status" gorm:"default:1"`
	NumBed     int       `json:"numBed"`
	People     int       `json:"people"`
	Acreage    int       `json:"acreage"`
	Note       string    `json:"note"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (r *Room) ValidateStatus() error {
	if r.Status < constants.RoomStatusAvailable || r.Status > constants.RoomStatusClosed {
		return fmt.Errorf("invalid status: %d", r.Status)
	}
	return nil
}

// Bookable phòng có nhận đơn mới được không (trạng thái vận hành)
func (r *Room) Bookable() bool {
	return r.Status == constants.RoomStatusAvailable
}

// NightPrice giá một đêm sau giảm giá
func (r *Room) NightPrice() float64 {
	return r.Price * (100 - r.Discount) / 100
}

type RoomType struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
