package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchEvent(t *testing.T) {
	payload, err := json.Marshal(BookingEvent{
		Type:          "booking_confirmed",
		BookingID:     "1700000000000",
		BookingNumber: "BK00000000ABCD",
		FlightNumber:  "FL001",
		Phone:         "9898989898",
	})
	assert.NoError(t, err)

	var received BookingEvent
	err = dispatchEvent(context.Background(), payload, func(_ context.Context, event BookingEvent) error {
		received = event
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "booking_confirmed", received.Type)
	assert.Equal(t, "BK00000000ABCD", received.BookingNumber)
	assert.Equal(t, "9898989898", received.Phone)
}

func TestDispatchEventSkipsUndecodablePayload(t *testing.T) {
	called := false
	err := dispatchEvent(context.Background(), []byte("{not json"), func(_ context.Context, _ BookingEvent) error {
		called = true
		return nil
	})
	assert.NoError(t, err)
	assert.False(t, called)
}

func TestDispatchEventPropagatesHandlerError(t *testing.T) {
	sendErr := errors.New("send failed")
	err := dispatchEvent(context.Background(), []byte("{}"), func(_ context.Context, _ BookingEvent) error {
		return sendErr
	})
	assert.ErrorIs(t, err, sendErr)
}
