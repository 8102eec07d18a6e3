package notify

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fastays/fastays/internal/kafka"
)

// Sender simulates confirmation delivery; nothing leaves the process.
type Sender struct {
	out io.Writer
}

func NewSender() *Sender {
	return &Sender{out: os.Stdout}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	switch event.Type {
	case "booking_confirmed":
		_, err := fmt.Fprintln(s.out, confirmationMessage(event))
		return err
	default:
		log.Printf("skip event with unknown type %q for booking %s", event.Type, event.BookingID)
		return nil
	}
}

func confirmationMessage(event kafka.BookingEvent) string {
	return fmt.Sprintf("send sms to %s: booking %s confirmed for flight %s", event.Phone, event.BookingNumber, event.FlightNumber)
}
