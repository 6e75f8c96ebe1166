package models

import (
	"errors"
	"testing"

	"hms/constants"
	apperrors "hms/errors"
)

func TestBookingStateTransitions(t *testing.T) {
	tests := []struct {
		name       string
		from       int
		action     string
		wantStatus int
		wantErr    bool
	}{
		{name: "reserved check-in", from: constants.BookingStatusReserved, action: "checkin", wantStatus: constants.BookingStatusCheckedIn},
		{name: "reserved cancel", from: constants.BookingStatusReserved, action: "cancel", wantStatus: constants.BookingStatusCancelled},
		{name: "reserved check-out rejected", from: constants.BookingStatusReserved, action: "checkout", wantErr: true},
		{name: "checked-in check-out", from: constants.BookingStatusCheckedIn, action: "checkout", wantStatus: constants.BookingStatusSettled},
		{name: "checked-in cancel", from: constants.BookingStatusCheckedIn, action: "cancel", wantStatus: constants.BookingStatusCancelled},
		{name: "checked-in check-in rejected", from: constants.BookingStatusCheckedIn, action: "checkin", wantErr: true},
		{name: "settled check-in rejected", from: constants.BookingStatusSettled, action: "checkin", wantErr: true},
		{name: "settled check-out rejected", from: constants.BookingStatusSettled, action: "checkout", wantErr: true},
		{name: "settled cancel rejected", from: constants.BookingStatusSettled, action: "cancel", wantErr: true},
		{name: "cancelled check-in rejected", from: constants.BookingStatusCancelled, action: "checkin", wantErr: true},
		{name: "cancelled check-out rejected", from: constants.BookingStatusCancelled, action: "checkout", wantErr: true},
		{name: "cancelled cancel rejected", from: constants.BookingStatusCancelled, action: "cancel", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.from}
			state := GetBookingState(b.Status)

			var err error
			switch tt.action {
			case "checkin":
				err = state.CheckIn(b)
			case "checkout":
				err = state.CheckOut(b)
			case "cancel":
				err = state.Cancel(b)
			}

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if !errors.Is(err, apperrors.ErrInvalidTransition) {
					t.Errorf("error = %v, want ErrInvalidTransition", err)
				}
				if b.Status != tt.from {
					t.Errorf("status changed to %d on rejected transition", b.Status)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if b.Status != tt.wantStatus {
				t.Errorf("status = %d, want %d", b.Status, tt.wantStatus)
			}
		})
	}
}

func TestBookingStatusLabel(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{constants.BookingStatusReserved, "Đã đặt"},
		{constants.BookingStatusCheckedIn, "Đang ở"},
		{constants.BookingStatusSettled, "Đã trả"},
		{constants.BookingStatusCancelled, "Đã huỷ"},
		{99, "Không rõ"},
	}
	for _, tt := range tests {
		if got := BookingStatusLabel(tt.status); got != tt.want {
			t.Errorf("BookingStatusLabel(%d) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestBookingActiveAndTerminal(t *testing.T) {
	active := []int{constants.BookingStatusReserved, constants.BookingStatusCheckedIn}
	terminal := []int{constants.BookingStatusSettled, constants.BookingStatusCancelled}

	for _, status := range active {
		b := &Booking{Status: status}
		if !b.IsActive() || b.IsTerminal() {
			t.Errorf("status %d: IsActive()=%v IsTerminal()=%v, want true/false", status, b.IsActive(), b.IsTerminal())
		}
	}
	for _, status := range terminal {
		b := &Booking{Status: status}
		if b.IsActive() || !b.IsTerminal() {
			t.Errorf("status %d: IsActive()=%v IsTerminal()=%v, want false/true", status, b.IsActive(), b.IsTerminal())
		}
	}
}
