package domain

// User exists only after a successful OTP verification and is discarded on logout.
type User struct {
	ID              string `json:"id"`
	PhoneNumber     string `json:"phoneNumber"`
	IsAuthenticated bool   `json:"isAuthenticated"`
}
