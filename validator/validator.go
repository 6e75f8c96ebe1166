package validator

import (
	"regexp"
	"time"

	"hms/errors"
	"hms/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators đăng ký các rule riêng với validator của gin,
// gọi một lần khi khởi động
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("vnphone", func(fl validator.FieldLevel) bool {
			return isValidPhone(fl.Field().String())
		})
	}
}

// ValidateCustomer validate thông tin khách hàng
func ValidateCustomer(customer *models.Customer) error {
	if customer.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách hàng không được để trống", nil)
	}

	if customer.PhoneNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại không được để trống", nil)
	}

	if !isValidPhone(customer.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeValidation, "Số điện thoại không hợp lệ", nil)
	}

	if customer.Email != "" && !isValidEmail(customer.Email) {
		return errors.NewAppError(errors.ErrCodeValidation, "Email không hợp lệ", nil)
	}

	if customer.CCCD != "" && !isValidIDNumber(customer.CCCD) {
		return errors.NewAppError(errors.ErrCodeValidation, "Số CMND/CCCD không hợp lệ", nil)
	}

	return nil
}

// ValidateStaff validate thông tin nhân viên
func ValidateStaff(staff *models.Staff) error {
	if staff.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên nhân viên không được để trống", nil)
	}

	if staff.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email đăng nhập không được để trống", nil)
	}

	if !isValidEmail(staff.Email) {
		return errors.NewAppError(errors.ErrCodeValidation, "Email không hợp lệ", nil)
	}

	if staff.Role < 1 || staff.Role > 2 {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role không hợp lệ", nil)
	}

	return nil
}

// ValidatePassword kiểm tra mật khẩu hợp lệ
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}
	return nil
}

// ValidateRoom validate thông tin phòng
func ValidateRoom(room *models.Room) error {
	if room.RoomName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên phòng không được để trống", nil)
	}

	if room.Price < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Giá phòng không được âm", nil)
	}

	if room.Discount < 0 || room.Discount > 100 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mức giảm giá phải nằm trong khoảng từ 0 đến 100", nil)
	}

	if err := room.ValidateStatus(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Trạng thái phòng không hợp lệ", err)
	}

	return nil
}

// ValidateService validate thông tin dịch vụ
func ValidateService(service *models.Service) error {
	if service.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên dịch vụ không được để trống", nil)
	}

	if service.Price < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Giá dịch vụ không được âm", nil)
	}

	return nil
}

// ParseBookingDates parse cặp ngày nhận / trả phòng theo định dạng màn hình
// và dựng Interval. Mọi kiểm tra thứ tự nằm ở models.NewInterval.
func ParseBookingDates(checkIn, checkOut string) (models.Interval, error) {
	const layout = "02/01/2006 15:04"

	from, err := time.ParseInLocation(layout, checkIn, time.Local)
	if err != nil {
		return models.Interval{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày nhận phòng không hợp lệ", err)
	}

	to, err := time.ParseInLocation(layout, checkOut, time.Local)
	if err != nil {
		return models.Interval{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Ngày trả phòng không hợp lệ", err)
	}

	return models.NewInterval(from, to)
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10}$`)
	return phoneRegex.MatchString(phone)
}

// isValidIDNumber kiểm tra số CMND/CCCD hợp lệ
func isValidIDNumber(id string) bool {
	idRegex := regexp.MustCompile(`^[0-9]{9}$|^[0-9]{12}$`)
	return idRegex.MatchString(id)
}
