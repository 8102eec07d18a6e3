package notify

import (
	"bytes"
	"context"
	"testing"

	"github.com/fastays/fastays/internal/kafka"
	"github.com/stretchr/testify/assert"
)

func TestSendConfirmedBooking(t *testing.T) {
	var buf bytes.Buffer
	sender := &Sender{out: &buf}

	err := sender.Send(context.Background(), kafka.BookingEvent{
		Type:          "booking_confirmed",
		BookingNumber: "BK00000000ABCD",
		FlightNumber:  "FL001",
		Phone:         "9898989898",
	})
	assert.NoError(t, err)
	assert.Equal(t, "send sms to 9898989898: booking BK00000000ABCD confirmed for flight FL001\n", buf.String())
}

func TestSendIgnoresUnknownEventType(t *testing.T) {
	var buf bytes.Buffer
	sender := &Sender{out: &buf}

	err := sender.Send(context.Background(), kafka.BookingEvent{
		Type:      "booking_cancelled",
		BookingID: "1700000000000",
	})
	assert.NoError(t, err)
	assert.Empty(t, buf.String())
}
