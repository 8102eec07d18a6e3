package booking

import (
	"context"
	"log"
	"time"

	"github.com/fastays/fastays/internal/domain"
	"github.com/fastays/fastays/internal/metrics"
)

// Persister is the confirmed-bookings listener wired into the booking
// machine. A failed write is logged and dropped; the next successful
// booking writes the full snapshot again.
type Persister struct {
	store   BookingStore
	timeout time.Duration
	metrics metrics.Recorder
}

func NewPersister(store BookingStore, rec metrics.Recorder) *Persister {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Persister{store: store, timeout: 5 * time.Second, metrics: rec}
}

func (p *Persister) Persist(bookings []domain.Booking) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	if err := p.store.Save(ctx, bookings); err != nil {
		log.Printf("failed to save bookings: %v", err)
		p.metrics.RecordPersistFailure()
	}
}
