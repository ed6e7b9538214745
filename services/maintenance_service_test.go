package services

import (
	"testing"
	"time"

	"khachsan/constants"
	"khachsan/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoCheckoutIdempotent(t *testing.T) {
	db := setupTestDB(t)
	hotel, roomType, rooms := seedRoomType(t, db, 500000, 2)

	maintenance := NewMaintenanceService(MaintenanceServiceOptions{DB: db})

	yesterday := time.Now().AddDate(0, 0, -1)
	tomorrow := time.Now().AddDate(0, 0, 1)

	// Một booking checked_in đã quá ngày trả phòng, một chưa tới hạn
	overdue := models.Booking{
		RoomID:       &rooms[0].ID,
		HotelID:      hotel.ID,
		RoomTypeID:   roomType.ID,
		CheckInDate:  yesterday.AddDate(0, 0, -2),
		CheckOutDate: yesterday,
		Status:       constants.BookingStatusCheckedIn,
		GuestPhone:   "0905123456",
	}
	require.NoError(t, db.Create(&overdue).Error)

	current := models.Booking{
		RoomID:       &rooms[1].ID,
		HotelID:      hotel.ID,
		RoomTypeID:   roomType.ID,
		CheckInDate:  yesterday,
		CheckOutDate: tomorrow,
		Status:       constants.BookingStatusCheckedIn,
		GuestPhone:   "0905123456",
	}
	require.NoError(t, db.Create(&current).Error)

	affected, err := maintenance.AutoCheckout()
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	var swept models.Booking
	require.NoError(t, db.First(&swept, overdue.ID).Error)
	assert.Equal(t, constants.BookingStatusCheckedOut, swept.Status)
	require.NotNil(t, swept.ActualCheckOut)

	var untouched models.Booking
	require.NoError(t, db.First(&untouched, current.ID).Error)
	assert.Equal(t, constants.BookingStatusCheckedIn, untouched.Status)

	// Chạy lại không còn gì để sweep
	affected, err = maintenance.AutoCheckout()
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)
}

func TestAutoCancelPendingIdempotent(t *testing.T) {
	db := setupTestDB(t)
	hotel, roomType, rooms := seedRoomType(t, db, 500000, 2)

	maintenance := NewMaintenanceService(MaintenanceServiceOptions{DB: db})

	checkIn := date(t, "2024-06-01")
	checkOut := date(t, "2024-06-03")

	stale := models.Booking{
		RoomID:       &rooms[0].ID,
		HotelID:      hotel.ID,
		RoomTypeID:   roomType.ID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Status:       constants.BookingStatusPending,
		GuestPhone:   "0905123456",
	}
	require.NoError(t, db.Create(&stale).Error)
	// Đẩy created_at lùi quá thời hạn giữ phòng
	require.NoError(t, db.Model(&stale).
		UpdateColumn("created_at", time.Now().Add(-20*time.Minute)).Error)

	fresh := models.Booking{
		RoomID:       &rooms[1].ID,
		HotelID:      hotel.ID,
		RoomTypeID:   roomType.ID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Status:       constants.BookingStatusPending,
		GuestPhone:   "0905123456",
	}
	require.NoError(t, db.Create(&fresh).Error)

	affected, err := maintenance.AutoCancelPending()
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	var swept models.Booking
	require.NoError(t, db.First(&swept, stale.ID).Error)
	assert.Equal(t, constants.BookingStatusCancelled, swept.Status)
	assert.Equal(t, constants.CancelReasonTimeout, swept.CancelReason)

	var untouched models.Booking
	require.NoError(t, db.First(&untouched, fresh.ID).Error)
	assert.Equal(t, constants.BookingStatusPending, untouched.Status)

	affected, err = maintenance.AutoCancelPending()
	require.NoError(t, err)
	assert.EqualValues(t, 0, affected)
}

func TestCancelledPendingFreesRoom(t *testing.T) {
	db := setupTestDB(t)
	hotel, roomType, _ := seedRoomType(t, db, 500000, 1)

	booking := NewBookingService(BookingServiceOptions{DB: db})
	maintenance := NewMaintenanceService(MaintenanceServiceOptions{DB: db})

	input := BookRoomInput{
		HotelID:    hotel.ID,
		RoomTypeID: roomType.ID,
		CheckIn:    date(t, "2024-06-01"),
		CheckOut:   date(t, "2024-06-03"),
		GuestCount: 1,
		GuestPhone: "0905123456",
	}

	created, err := booking.BookRoomWithLock(input)
	require.NoError(t, err)

	_, err = booking.BookRoomWithLock(input)
	require.Error(t, err, "phòng duy nhất đang bị giữ")

	// Sau khi sweep hủy booking pending quá hạn, phòng đặt lại được
	require.NoError(t, db.Model(&models.Booking{}).
		Where("id = ?", created.ID).
		UpdateColumn("created_at", time.Now().Add(-20*time.Minute)).Error)

	affected, err := maintenance.AutoCancelPending()
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	_, err = booking.BookRoomWithLock(input)
	require.NoError(t, err)
}
