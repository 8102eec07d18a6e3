package domain

// PassengerInfo is entered on the booking form and embedded in a Booking;
// it is never stored on its own.
type PassengerInfo struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	DateOfBirth    string `json:"dateOfBirth"`
	PassportNumber string `json:"passportNumber,omitempty"`
}

// Booking is created once per successful submission and immutable after.
// BookingDate is an RFC3339 timestamp.
type Booking struct {
	ID            string        `json:"id"`
	Flight        Flight        `json:"flight"`
	Passenger     PassengerInfo `json:"passenger"`
	BookingDate   string        `json:"bookingDate"`
	BookingNumber string        `json:"bookingNumber"`
	TermsAccepted bool          `json:"termsAccepted"`
}
