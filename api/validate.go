package api

import "regexp"

var (
	phonePattern = regexp.MustCompile(`^[0-9]{10,15}$`)
	otpPattern   = regexp.MustCompile(`^[0-9]{4}$`)
)

func validPhoneNumber(phone string) bool {
	return phonePattern.MatchString(phone)
}

func validOtp(otp string) bool {
	return otpPattern.MatchString(otp)
}
