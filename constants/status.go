package constants

// Booking status, giữ nguyên mã 1..4 của các màn hình cũ
const (
	BookingStatusReserved  = 1
	BookingStatusCheckedIn = 2
	BookingStatusSettled   = 3
	BookingStatusCancelled = 4
)

// Room status (trạng thái vận hành, độc lập với việc phòng đang có khách)
const (
	RoomStatusAvailable   = 1
	RoomStatusMaintenance = 2
	RoomStatusClosed      = 3
)

// Payment status
const (
	PaymentStatusPending = 0
	PaymentStatusPaid    = 1
)

// Staff status
const (
	StaffStatusActive   = 1
	StaffStatusInactive = 0
)

// Service status
const (
	ServiceStatusActive   = 1
	ServiceStatusInactive = 0
)
