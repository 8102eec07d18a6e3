package booking

import (
	"context"
	"log"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/fastays/fastays/internal/domain"
	"github.com/fastays/fastays/internal/kafka"
	"github.com/fastays/fastays/internal/metrics"
	"github.com/fastays/fastays/internal/state"
)

type BookingUseCase interface {
	SubmitBooking(ctx context.Context, flight domain.Flight, passenger domain.PassengerInfo, termsAccepted bool) error
	LoadBookings(ctx context.Context) error
	OpenModal(flight domain.Flight)
	CloseModal()
	ClearConfirmation()
	State() state.BookingState
}

// BookingStore persists the complete booking list under one key.
type BookingStore interface {
	Load(ctx context.Context) ([]domain.Booking, error)
	Save(ctx context.Context, bookings []domain.Booking) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// BookingService drives the booking machine through the submission
// lifecycle. Business checks here are semantic only (terms flag); input
// format validation belongs to the HTTP boundary.
type BookingService struct {
	machine       *state.BookingMachine
	store         BookingStore
	producer      Producer
	eventsTopic   string
	submitLatency time.Duration
	metrics       metrics.Recorder
}

type BookingServiceOption func(*BookingService)

func WithProducer(producer Producer, topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.eventsTopic = topic
	}
}

func NewBookingService(machine *state.BookingMachine, store BookingStore, submitLatency time.Duration, rec metrics.Recorder, opts ...BookingServiceOption) *BookingService {
	if rec == nil {
		rec = metrics.Nop{}
	}
	service := &BookingService{
		machine:       machine,
		store:         store,
		submitLatency: submitLatency,
		metrics:       rec,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) SubmitBooking(ctx context.Context, flight domain.Flight, passenger domain.PassengerInfo, termsAccepted bool) error {
	if err := s.machine.SubmitStart(); err != nil {
		return err
	}

	if err := wait(ctx, s.submitLatency); err != nil {
		s.machine.SubmitFailure("Booking failed. Please try again.")
		s.metrics.RecordBookingSubmitted("fault")
		return nil
	}

	// The UI blocks submission with unchecked terms; this is the
	// defensive re-check behind it.
	if !termsAccepted {
		s.machine.SubmitFailure("Please accept the terms and conditions")
		s.metrics.RecordBookingSubmitted("rejected")
		return nil
	}

	now := time.Now()
	booking := domain.Booking{
		ID:            strconv.FormatInt(now.UnixMilli(), 10),
		Flight:        flight,
		Passenger:     passenger,
		BookingDate:   now.Format(time.RFC3339),
		BookingNumber: generateBookingNumber(now),
		TermsAccepted: termsAccepted,
	}

	s.machine.SubmitSuccess(booking)
	s.metrics.RecordBookingSubmitted("success")
	s.publishConfirmed(booking)
	return nil
}

// LoadBookings hydrates the machine from storage. A load fault is
// logged and leaves the in-memory list untouched.
func (s *BookingService) LoadBookings(ctx context.Context) error {
	bookings, err := s.store.Load(ctx)
	if err != nil {
		log.Printf("load bookings: %v", err)
		return nil
	}
	s.machine.SetBookings(bookings)
	return nil
}

func (s *BookingService) OpenModal(flight domain.Flight) {
	s.machine.OpenModal(flight)
}

func (s *BookingService) CloseModal() {
	s.machine.CloseModal()
}

func (s *BookingService) ClearConfirmation() {
	s.machine.ClearConfirmation()
}

func (s *BookingService) State() state.BookingState {
	return s.machine.Snapshot()
}

func (s *BookingService) publishConfirmed(b domain.Booking) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:          "booking_confirmed",
		BookingID:     b.ID,
		BookingNumber: b.BookingNumber,
		FlightNumber:  b.Flight.FlightNumber,
		Email:         b.Passenger.Email,
		Phone:         b.Passenger.Phone,
		BookingDate:   b.BookingDate,
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.producer.Publish(ctx, s.eventsTopic, b.ID, event); err != nil {
			log.Printf("WARNING: failed to publish booking_confirmed event for booking %s: %v", b.BookingNumber, err)
		}
	}()
}

func wait(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// generateBookingNumber keeps the original human-facing format: prefix,
// last 8 digits of the millisecond timestamp, 4 random base-36 chars.
// Collisions are possible and accepted for the demo.
func generateBookingNumber(now time.Time) string {
	millis := strconv.FormatInt(now.UnixMilli(), 10)
	if len(millis) > 8 {
		millis = millis[len(millis)-8:]
	}
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = base36[rand.IntN(len(base36))]
	}
	return "BK" + millis + string(suffix)
}

var _ BookingUseCase = (*BookingService)(nil)
