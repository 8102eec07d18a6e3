// Package metrics collects and exposes Prometheus counters for the
// auth and booking flows.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is what the services depend on; tests pass a no-op.
type Recorder interface {
	RecordLogin(result string)
	RecordOtpVerification(result string)
	RecordBookingSubmitted(result string)
	RecordPersistFailure()
}

type Collector struct {
	logins          *prometheus.CounterVec
	otpChecks       *prometheus.CounterVec
	bookings        *prometheus.CounterVec
	persistFailures prometheus.Counter
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fastays_logins_total",
			Help: "Login attempts by result.",
		}, []string{"result"}),
		otpChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fastays_otp_verifications_total",
			Help: "OTP verification attempts by result.",
		}, []string{"result"}),
		bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fastays_bookings_submitted_total",
			Help: "Booking submissions by result.",
		}, []string{"result"}),
		persistFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fastays_booking_persist_failures_total",
			Help: "Failed writes of the booking list to storage.",
		}),
	}

	reg.MustRegister(c.logins, c.otpChecks, c.bookings, c.persistFailures)
	return c
}

func (c *Collector) RecordLogin(result string) {
	c.logins.WithLabelValues(result).Inc()
}

func (c *Collector) RecordOtpVerification(result string) {
	c.otpChecks.WithLabelValues(result).Inc()
}

func (c *Collector) RecordBookingSubmitted(result string) {
	c.bookings.WithLabelValues(result).Inc()
}

func (c *Collector) RecordPersistFailure() {
	c.persistFailures.Inc()
}

// Handler serves the registry over HTTP.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// Nop discards all observations.
type Nop struct{}

func (Nop) RecordLogin(string)            {}
func (Nop) RecordOtpVerification(string)  {}
func (Nop) RecordBookingSubmitted(string) {}
func (Nop) RecordPersistFailure()         {}

var (
	_ Recorder = (*Collector)(nil)
	_ Recorder = Nop{}
)
