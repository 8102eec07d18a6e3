package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func TestCollectorRegistersAndCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordLogin("success")
	c.RecordLogin("invalid")
	c.RecordOtpVerification("success")
	c.RecordBookingSubmitted("success")
	c.RecordPersistFailure()

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/metrics", nil)
	Handler(reg).ServeHTTP(w, r)

	body := w.Body.String()
	assert.True(t, strings.Contains(body, `fastays_logins_total{result="success"} 1`))
	assert.True(t, strings.Contains(body, `fastays_logins_total{result="invalid"} 1`))
	assert.True(t, strings.Contains(body, `fastays_otp_verifications_total{result="success"} 1`))
	assert.True(t, strings.Contains(body, `fastays_bookings_submitted_total{result="success"} 1`))
	assert.True(t, strings.Contains(body, `fastays_booking_persist_failures_total 1`))
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewCollector(reg)
	assert.Panics(t, func() { NewCollector(reg) })
}
