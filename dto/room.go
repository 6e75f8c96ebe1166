package dto

import "hms/models"

// CreateRoomRequest là DTO cho request tạo phòng
type CreateRoomRequest struct {
	RoomName   string  `json:"roomName" binding:"required"`
	RoomTypeID uint    `json:"roomTypeId"`
	Price      float64 `json:"price" binding:"required"`
	Discount   float64 `json:"discount"`
	NumBed     int     `json:"numBed"`
	People     int     `json:"people"`
	Acreage    int     `json:"acreage"`
	Note       string  `json:"note"`
}

// UpdateRoomRequest là DTO cho request cập nhật phòng
type UpdateRoomRequest struct {
	RoomName   *string  `json:"roomName"`
	RoomTypeID *uint    `json:"roomTypeId"`
	Price      *float64 `json:"price"`
	Discount   *float64 `json:"discount"`
	Status     *int     `json:"status"`
	NumBed     *int     `json:"numBed"`
	People     *int     `json:"people"`
	Acreage    *int     `json:"acreage"`
	Note       *string  `json:"note"`
}

// AvailabilityRequest là DTO cho request kiểm tra phòng trống
type AvailabilityRequest struct {
	RoomID   uint   `json:"roomId" binding:"required"`
	CheckIn  string `json:"checkIn" binding:"required"`
	CheckOut string `json:"checkOut" binding:"required"`
}

// RoomResponse là DTO cho response của phòng
type RoomResponse struct {
	ID         uint    `json:"id"`
	RoomName   string  `json:"roomName"`
	RoomTypeID uint    `json:"roomTypeId"`
	RoomType   string  `json:"roomType"`
	Price      float64 `json:"price"`
	Discount   float64 `json:"discount"`
	NightPrice float64 `json:"nightPrice"`
	Status     int     `json:"status"`
	NumBed     int     `json:"numBed"`
	People     int     `json:"people"`
	Acreage    int     `json:"acreage"`
	Note       string  `json:"note"`
}

// ToRoomResponse chuyển model sang DTO response
func ToRoomResponse(r models.Room) RoomResponse {
	return RoomResponse{
		ID:         r.RoomID,
		RoomName:   r.RoomName,
		RoomTypeID: r.RoomTypeID,
		RoomType:   r.RoomType.Name,
		Price:      r.Price,
		Discount:   r.Discount,
		NightPrice: r.NightPrice(),
		Status:     r.Status,
		NumBed:     r.NumBed,
		People:     r.People,
		Acreage:    r.Acreage,
		Note:       r.Note,
	}
}

// ToRoomResponses chuyển danh sách model sang DTO
func ToRoomResponses(rooms []models.Room) []RoomResponse {
	responses := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		responses = append(responses, ToRoomResponse(r))
	}
	return responses
}
