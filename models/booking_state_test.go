package models

import (
	"testing"
	"time"

	"khachsan/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    constants.BookingStatus
		to      constants.BookingStatus
		allowed bool
	}{
		{"pending sang confirmed", constants.BookingStatusPending, constants.BookingStatusConfirmed, true},
		{"pending sang cancelled", constants.BookingStatusPending, constants.BookingStatusCancelled, true},
		{"pending không được checked_in", constants.BookingStatusPending, constants.BookingStatusCheckedIn, false},
		{"confirmed sang checked_in", constants.BookingStatusConfirmed, constants.BookingStatusCheckedIn, true},
		{"confirmed sang cancelled", constants.BookingStatusConfirmed, constants.BookingStatusCancelled, true},
		{"confirmed không được completed", constants.BookingStatusConfirmed, constants.BookingStatusCompleted, false},
		{"checked_in sang checked_out", constants.BookingStatusCheckedIn, constants.BookingStatusCheckedOut, true},
		{"checked_in không được cancelled", constants.BookingStatusCheckedIn, constants.BookingStatusCancelled, false},
		{"checked_out sang completed", constants.BookingStatusCheckedOut, constants.BookingStatusCompleted, true},
		{"cancelled là trạng thái cuối", constants.BookingStatusCancelled, constants.BookingStatusPending, false},
		{"completed là trạng thái cuối", constants.BookingStatusCompleted, constants.BookingStatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := &Booking{Status: tt.from}
			err := booking.Transition(tt.to)
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.to, booking.Status)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.from, booking.Status)
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(constants.BookingStatusCancelled))
	assert.True(t, IsTerminal(constants.BookingStatusCompleted))
	assert.False(t, IsTerminal(constants.BookingStatusPending))
	assert.False(t, IsTerminal(constants.BookingStatusCheckedOut))
}

func TestBookingOverlaps(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		require.NoError(t, err)
		return d
	}

	booking := &Booking{
		CheckInDate:  day("2024-06-01"),
		CheckOutDate: day("2024-06-03"),
	}

	// Khoảng nửa mở: checkout ngày 3 thì ngày 3 nhận khách mới được
	assert.True(t, booking.Overlaps(day("2024-06-02"), day("2024-06-04")))
	assert.True(t, booking.Overlaps(day("2024-05-30"), day("2024-06-02")))
	assert.True(t, booking.Overlaps(day("2024-06-01"), day("2024-06-03")))
	assert.False(t, booking.Overlaps(day("2024-06-03"), day("2024-06-05")))
	assert.False(t, booking.Overlaps(day("2024-05-30"), day("2024-06-01")))
}

func TestBookingNights(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		require.NoError(t, err)
		return d
	}

	booking := &Booking{
		CheckInDate:  day("2024-06-01"),
		CheckOutDate: day("2024-06-04"),
	}
	assert.Equal(t, 3, booking.Nights())
}
