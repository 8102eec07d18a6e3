package state

import (
	"sync"

	"github.com/fastays/fastays/internal/domain"
)

// BookingState tracks the selection/form/confirmation lifecycle.
// Invariants: IsBookingConfirmed implies CurrentBooking != nil;
// a closed modal implies no selected flight. Bookings is append-only
// except for SetBookings, which only hydrates from storage at startup.
type BookingState struct {
	SelectedFlight     *domain.Flight   `json:"selectedFlight"`
	IsModalOpen        bool             `json:"isModalOpen"`
	IsBookingConfirmed bool             `json:"isBookingConfirmed"`
	CurrentBooking     *domain.Booking  `json:"currentBooking"`
	Bookings           []domain.Booking `json:"bookings"`
	IsLoading          bool             `json:"isLoading"`
	Error              string           `json:"error,omitempty"`
}

// ConfirmedFunc receives a snapshot of the full booking list after each
// successful submission. It runs on its own goroutine; the transition
// does not wait for it.
type ConfirmedFunc func(bookings []domain.Booking)

type BookingMachine struct {
	mu          sync.Mutex
	s           BookingState
	onConfirmed ConfirmedFunc
}

func NewBookingMachine(onConfirmed ConfirmedFunc) *BookingMachine {
	return &BookingMachine{onConfirmed: onConfirmed}
}

func (m *BookingMachine) OpenModal(flight domain.Flight) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f := flight
	m.s.SelectedFlight = &f
	m.s.IsModalOpen = true
	m.s.IsBookingConfirmed = false
	m.s.Error = ""
}

// CloseModal fully resets the selection regardless of prior state.
func (m *BookingMachine) CloseModal() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s.IsModalOpen = false
	m.s.SelectedFlight = nil
	m.s.IsBookingConfirmed = false
	m.s.CurrentBooking = nil
	m.s.Error = ""
}

func (m *BookingMachine) SubmitStart() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.s.IsLoading {
		return ErrInFlight
	}
	m.s.IsLoading = true
	m.s.Error = ""
	return nil
}

// SubmitSuccess appends the booking and notifies the confirmed listener
// with a copy of the updated list, fire-and-forget.
func (m *BookingMachine) SubmitSuccess(booking domain.Booking) {
	m.mu.Lock()
	m.s.IsLoading = false
	b := booking
	m.s.CurrentBooking = &b
	m.s.IsBookingConfirmed = true
	m.s.Bookings = append(m.s.Bookings, booking)
	snapshot := make([]domain.Booking, len(m.s.Bookings))
	copy(snapshot, m.s.Bookings)
	notify := m.onConfirmed
	m.mu.Unlock()

	if notify != nil {
		go notify(snapshot)
	}
}

func (m *BookingMachine) SubmitFailure(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s.IsLoading = false
	m.s.Error = msg
}

// ClearConfirmation returns the machine to browsing after the user
// dismisses a confirmation.
func (m *BookingMachine) ClearConfirmation() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s.IsBookingConfirmed = false
	m.s.CurrentBooking = nil
	m.s.SelectedFlight = nil
	m.s.IsModalOpen = false
}

// SetBookings bulk-replaces the list; used only when hydrating from storage.
func (m *BookingMachine) SetBookings(bookings []domain.Booking) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s.Bookings = bookings
}

// Snapshot returns a copy of the current state, including the list.
func (m *BookingMachine) Snapshot() BookingState {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.s
	if m.s.SelectedFlight != nil {
		f := *m.s.SelectedFlight
		s.SelectedFlight = &f
	}
	if m.s.CurrentBooking != nil {
		b := *m.s.CurrentBooking
		s.CurrentBooking = &b
	}
	s.Bookings = make([]domain.Booking, len(m.s.Bookings))
	copy(s.Bookings, m.s.Bookings)
	return s
}
