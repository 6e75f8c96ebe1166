package validator

import (
	"testing"
	"time"

	"hms/models"
)

func TestParseBookingDates(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		wantErr  bool
	}{
		{name: "valid pair", checkIn: "10/03/2026 14:00", checkOut: "12/03/2026 12:00"},
		{name: "bad check-in format", checkIn: "2026-03-10", checkOut: "12/03/2026 12:00", wantErr: true},
		{name: "bad check-out format", checkIn: "10/03/2026 14:00", checkOut: "trưa mai", wantErr: true},
		{name: "reversed dates", checkIn: "12/03/2026 12:00", checkOut: "10/03/2026 14:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iv, err := ParseBookingDates(tt.checkIn, tt.checkOut)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBookingDates() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			want := time.Date(2026, 3, 10, 14, 0, 0, 0, time.Local)
			if !iv.CheckIn.Equal(want) {
				t.Errorf("CheckIn = %v, want %v", iv.CheckIn, want)
			}
		})
	}
}

func TestValidateCustomer(t *testing.T) {
	tests := []struct {
		name     string
		customer models.Customer
		wantErr  bool
	}{
		{name: "valid", customer: models.Customer{Name: "Nguyễn Văn An", PhoneNumber: "0912345678"}},
		{name: "valid with email and cccd", customer: models.Customer{
			Name: "Trần Thị Bình", PhoneNumber: "0987654321", Email: "binh@example.com", CCCD: "012345678901"}},
		{name: "missing name", customer: models.Customer{PhoneNumber: "0912345678"}, wantErr: true},
		{name: "missing phone", customer: models.Customer{Name: "Nguyễn Văn An"}, wantErr: true},
		{name: "phone too short", customer: models.Customer{Name: "Nguyễn Văn An", PhoneNumber: "09123"}, wantErr: true},
		{name: "bad email", customer: models.Customer{Name: "Nguyễn Văn An", PhoneNumber: "0912345678", Email: "not-an-email"}, wantErr: true},
		{name: "bad cccd length", customer: models.Customer{Name: "Nguyễn Văn An", PhoneNumber: "0912345678", CCCD: "12345"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCustomer(&tt.customer)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCustomer() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateRoom(t *testing.T) {
	tests := []struct {
		name    string
		room    models.Room
		wantErr bool
	}{
		{name: "valid", room: models.Room{RoomName: "P.101", Price: 1000000, Discount: 10, Status: 1}},
		{name: "missing name", room: models.Room{Price: 1000000, Status: 1}, wantErr: true},
		{name: "negative price", room: models.Room{RoomName: "P.101", Price: -1, Status: 1}, wantErr: true},
		{name: "discount over 100", room: models.Room{RoomName: "P.101", Discount: 101, Status: 1}, wantErr: true},
		{name: "unknown status", room: models.Room{RoomName: "P.101", Status: 9}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRoom(&tt.room)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRoom() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateStaff(t *testing.T) {
	tests := []struct {
		name    string
		staff   models.Staff
		wantErr bool
	}{
		{name: "valid", staff: models.Staff{Name: "Quản lý", Email: "quanly@example.com", Role: models.StaffRoleManager}},
		{name: "missing email", staff: models.Staff{Name: "Quản lý", Role: 1}, wantErr: true},
		{name: "bad role", staff: models.Staff{Name: "Quản lý", Email: "quanly@example.com", Role: 5}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStaff(&tt.staff)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStaff() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
