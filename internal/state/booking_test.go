package state

import (
	"testing"
	"time"

	"github.com/fastays/fastays/internal/domain"
	"github.com/stretchr/testify/assert"
)

func testFlight(id string) domain.Flight {
	return domain.Flight{
		ID:           id,
		Airline:      "IndiGo",
		FlightNumber: "6E 2041",
		Departure:    domain.Endpoint{Airport: "DEL", City: "New Delhi", Time: "06:15", Date: "2025-09-15"},
		Arrival:      domain.Endpoint{Airport: "BOM", City: "Mumbai", Time: "08:25", Date: "2025-09-15"},
		Duration:     "2h 10m",
		Price:        4899,
		Currency:     "INR",
		Class:        "Economy",
	}
}

func testBooking(id string) domain.Booking {
	return domain.Booking{
		ID:            id,
		Flight:        testFlight("FL001"),
		Passenger:     domain.PassengerInfo{FirstName: "Asha", LastName: "Rao", Email: "asha@example.com", Phone: "9898989898", DateOfBirth: "1991-04-02"},
		BookingDate:   "2025-09-01T10:00:00Z",
		BookingNumber: "BK12345678ABCD",
		TermsAccepted: true,
	}
}

func TestBookingMachine_OpenAndCloseModal(t *testing.T) {
	m := NewBookingMachine(nil)
	before := m.Snapshot()

	m.OpenModal(testFlight("FL001"))

	s := m.Snapshot()
	assert.True(t, s.IsModalOpen)
	assert.NotNil(t, s.SelectedFlight)
	assert.Equal(t, "FL001", s.SelectedFlight.ID)
	assert.False(t, s.IsBookingConfirmed)

	m.CloseModal()

	s = m.Snapshot()
	assert.Equal(t, before.IsModalOpen, s.IsModalOpen)
	assert.Equal(t, before.SelectedFlight, s.SelectedFlight)
	assert.Equal(t, before.IsBookingConfirmed, s.IsBookingConfirmed)
	assert.Equal(t, before.CurrentBooking, s.CurrentBooking)
	assert.Empty(t, s.Error)
}

func TestBookingMachine_SubmitStartGuard(t *testing.T) {
	m := NewBookingMachine(nil)

	assert.NoError(t, m.SubmitStart())
	assert.ErrorIs(t, m.SubmitStart(), ErrInFlight)

	m.SubmitFailure("Booking failed. Please try again.")
	assert.NoError(t, m.SubmitStart())
}

func TestBookingMachine_SubmitSuccessAppendsAndNotifies(t *testing.T) {
	notified := make(chan []domain.Booking, 1)
	m := NewBookingMachine(func(bookings []domain.Booking) {
		notified <- bookings
	})

	m.OpenModal(testFlight("FL001"))
	assert.NoError(t, m.SubmitStart())
	m.SubmitSuccess(testBooking("b1"))

	s := m.Snapshot()
	assert.False(t, s.IsLoading)
	assert.True(t, s.IsBookingConfirmed)
	assert.NotNil(t, s.CurrentBooking)
	assert.Equal(t, "b1", s.CurrentBooking.ID)
	assert.Len(t, s.Bookings, 1)

	select {
	case snapshot := <-notified:
		assert.Equal(t, s.Bookings, snapshot)
	case <-time.After(time.Second):
		t.Fatal("confirmed listener was not notified")
	}
}

func TestBookingMachine_SubmitSuccessPreservesInsertionOrder(t *testing.T) {
	m := NewBookingMachine(nil)

	for _, id := range []string{"b1", "b2", "b3"} {
		assert.NoError(t, m.SubmitStart())
		m.SubmitSuccess(testBooking(id))
	}

	s := m.Snapshot()
	assert.Len(t, s.Bookings, 3)
	assert.Equal(t, "b1", s.Bookings[0].ID)
	assert.Equal(t, "b2", s.Bookings[1].ID)
	assert.Equal(t, "b3", s.Bookings[2].ID)
}

func TestBookingMachine_SubmitFailureKeepsModalOpen(t *testing.T) {
	m := NewBookingMachine(nil)
	m.OpenModal(testFlight("FL001"))
	assert.NoError(t, m.SubmitStart())

	m.SubmitFailure("Please accept the terms and conditions")

	s := m.Snapshot()
	assert.False(t, s.IsLoading)
	assert.Equal(t, "Please accept the terms and conditions", s.Error)
	assert.True(t, s.IsModalOpen)
	assert.Empty(t, s.Bookings)
	assert.False(t, s.IsBookingConfirmed)
}

func TestBookingMachine_ClearConfirmation(t *testing.T) {
	m := NewBookingMachine(nil)
	m.OpenModal(testFlight("FL001"))
	assert.NoError(t, m.SubmitStart())
	m.SubmitSuccess(testBooking("b1"))

	m.ClearConfirmation()

	s := m.Snapshot()
	assert.False(t, s.IsBookingConfirmed)
	assert.Nil(t, s.CurrentBooking)
	assert.Nil(t, s.SelectedFlight)
	assert.False(t, s.IsModalOpen)
	// the list itself is untouched
	assert.Len(t, s.Bookings, 1)
}

func TestBookingMachine_SetBookingsReplacesList(t *testing.T) {
	m := NewBookingMachine(nil)
	assert.NoError(t, m.SubmitStart())
	m.SubmitSuccess(testBooking("old"))

	hydrated := []domain.Booking{testBooking("b1"), testBooking("b2")}
	m.SetBookings(hydrated)

	s := m.Snapshot()
	assert.Len(t, s.Bookings, 2)
	assert.Equal(t, "b1", s.Bookings[0].ID)
	assert.Equal(t, "b2", s.Bookings[1].ID)
}
