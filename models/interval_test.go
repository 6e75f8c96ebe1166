package models

import (
	"testing"
	"time"
)

func date(day, hour int) time.Time {
	return time.Date(2026, 3, day, hour, 0, 0, 0, time.UTC)
}

func TestNewInterval(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		wantErr  bool
	}{
		{name: "valid interval", checkIn: date(10, 14), checkOut: date(12, 12), wantErr: false},
		{name: "zero-length interval rejected", checkIn: date(10, 14), checkOut: date(10, 14), wantErr: true},
		{name: "reversed interval rejected", checkIn: date(12, 12), checkOut: date(10, 14), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInterval(tt.checkIn, tt.checkOut)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewInterval() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestInterval_Overlaps(t *testing.T) {
	base := Interval{CheckIn: date(10, 14), CheckOut: date(15, 12)}

	tests := []struct {
		name  string
		other Interval
		want  bool
	}{
		{name: "identical", other: base, want: true},
		{name: "contained inside", other: Interval{CheckIn: date(11, 0), CheckOut: date(12, 0)}, want: true},
		{name: "overlaps start", other: Interval{CheckIn: date(8, 0), CheckOut: date(11, 0)}, want: true},
		{name: "overlaps end", other: Interval{CheckIn: date(14, 0), CheckOut: date(20, 0)}, want: true},
		{name: "fully before", other: Interval{CheckIn: date(1, 0), CheckOut: date(5, 0)}, want: false},
		{name: "fully after", other: Interval{CheckIn: date(20, 0), CheckOut: date(25, 0)}, want: false},
		// quy ước nửa mở: đơn sau nhận phòng đúng lúc đơn trước trả phòng
		{name: "back to back after", other: Interval{CheckIn: date(15, 12), CheckOut: date(18, 0)}, want: false},
		{name: "back to back before", other: Interval{CheckIn: date(8, 0), CheckOut: date(10, 14)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			// phép giao có tính đối xứng
			if got := tt.other.Overlaps(base); got != tt.want {
				t.Errorf("Overlaps() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInterval_Contains(t *testing.T) {
	iv := Interval{CheckIn: date(10, 14), CheckOut: date(15, 12)}

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{name: "at check-in", at: date(10, 14), want: true},
		{name: "inside", at: date(12, 0), want: true},
		{name: "at check-out excluded", at: date(15, 12), want: false},
		{name: "before", at: date(10, 13), want: false},
		{name: "after", at: date(16, 0), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := iv.Contains(tt.at); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestInterval_Nights(t *testing.T) {
	tests := []struct {
		name string
		iv   Interval
		want int
	}{
		{name: "three nights", iv: Interval{CheckIn: date(10, 14), CheckOut: date(13, 12)}, want: 3},
		{name: "one night", iv: Interval{CheckIn: date(10, 14), CheckOut: date(11, 12)}, want: 1},
		// nhận và trả trong cùng ngày vẫn tính một đêm
		{name: "same day minimum one night", iv: Interval{CheckIn: date(10, 8), CheckOut: date(10, 20)}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.iv.Nights(); got != tt.want {
				t.Errorf("Nights() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestInterval_DaysSpanned(t *testing.T) {
	tests := []struct {
		name string
		iv   Interval
		want int
	}{
		// ngày trả phòng vẫn chiếm một ô trên lưới
		{name: "three nights span four days", iv: Interval{CheckIn: date(10, 14), CheckOut: date(13, 12)}, want: 4},
		{name: "same day spans one day", iv: Interval{CheckIn: date(10, 8), CheckOut: date(10, 20)}, want: 1},
		{name: "one night spans two days", iv: Interval{CheckIn: date(10, 14), CheckOut: date(11, 12)}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.iv.DaysSpanned(); got != tt.want {
				t.Errorf("DaysSpanned() = %d, want %d", got, tt.want)
			}
		})
	}
}
