package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidRole  ErrorCode = "INVALID_ROLE"

	// Booking errors
	ErrCodeInvalidInterval   ErrorCode = "INVALID_INTERVAL"
	ErrCodeRoomConflict      ErrorCode = "ROOM_CONFLICT"
	ErrCodeInvalidTransition ErrorCode = "INVALID_TRANSITION"
	ErrCodeInvoiceCreation   ErrorCode = "INVOICE_CREATION"
	ErrCodeNotFound          ErrorCode = "NOT_FOUND"
	ErrCodeRoomUnavailable   ErrorCode = "ROOM_UNAVAILABLE"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// Sentinel errors cho nghiệp vụ đặt phòng. Dùng với errors.Is.
var (
	ErrInvalidInterval   = errors.New("invalid interval")
	ErrRoomConflict      = errors.New("room already booked for this interval")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrInvoiceCreation   = errors.New("invoice creation failed")
	ErrNotFound          = errors.New("record not found")
	ErrRoomUnavailable   = errors.New("room not operational")

	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidInput = errors.New("invalid input")
)

// NewInvalidInterval lỗi khoảng thời gian đặt phòng không hợp lệ
func NewInvalidInterval(message string) *AppError {
	return NewAppError(ErrCodeInvalidInterval, message, ErrInvalidInterval)
}

// NewRoomConflict lỗi trùng lịch đặt phòng
func NewRoomConflict(roomID uint) *AppError {
	return NewAppError(ErrCodeRoomConflict,
		fmt.Sprintf("Phòng %d đã được đặt trong khoảng thời gian này", roomID), ErrRoomConflict)
}

// NewInvalidTransition lỗi chuyển trạng thái không hợp lệ
func NewInvalidTransition(message string) *AppError {
	return NewAppError(ErrCodeInvalidTransition, message, ErrInvalidTransition)
}

// NewInvoiceCreation lỗi tạo hóa đơn khi check-out, trạng thái đặt phòng đã được khôi phục
func NewInvoiceCreation(err error) *AppError {
	return NewAppError(ErrCodeInvoiceCreation, "Không thể tạo hóa đơn, đơn đặt phòng đã được khôi phục", errors.Join(ErrInvoiceCreation, err))
}

// NewNotFound lỗi không tìm thấy bản ghi
func NewNotFound(what string) *AppError {
	return NewAppError(ErrCodeNotFound, fmt.Sprintf("Không tìm thấy %s", what), ErrNotFound)
}
