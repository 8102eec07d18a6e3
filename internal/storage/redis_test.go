package storage

import (
	"encoding/json"
	"testing"

	"github.com/fastays/fastays/config"
	"github.com/fastays/fastays/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNewRedisStore(t *testing.T) {
	store := NewRedisStore(config.RedisConfig{Addr: "localhost:6379"}, "bookings")
	assert.NotNil(t, store)
}

func TestDecodeBookings(t *testing.T) {
	bookings := []domain.Booking{
		{ID: "1", BookingNumber: "BK12345678ABCD", TermsAccepted: true},
		{ID: "2", BookingNumber: "BK87654321WXYZ", TermsAccepted: true},
	}
	payload, err := json.Marshal(bookings)
	assert.NoError(t, err)

	decoded := decodeBookings(payload)
	assert.Equal(t, bookings, decoded)
}

func TestDecodeBookingsCorruptPayload(t *testing.T) {
	decoded := decodeBookings([]byte("{not json"))
	assert.NotNil(t, decoded)
	assert.Empty(t, decoded)
}

func TestDecodeBookingsNullPayload(t *testing.T) {
	decoded := decodeBookings([]byte("null"))
	assert.NotNil(t, decoded)
	assert.Empty(t, decoded)
}
