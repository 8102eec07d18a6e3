package auth

import (
	"context"
	"time"

	"github.com/fastays/fastays/internal/metrics"
	"github.com/fastays/fastays/internal/state"
)

type AuthUseCase interface {
	LoginWithPhone(ctx context.Context, phoneNumber string) error
	VerifyOtp(ctx context.Context, phoneNumber, otp string) error
	Logout()
	State() state.AuthState
}

// AuthService drives the auth machine through the login and OTP flows.
// The "network" is a fixed delay followed by comparison against the
// configured demo credentials; any fault during the delay becomes a
// generic error on the machine, never an error to the caller. Only a
// rejected overlapping start surfaces as state.ErrInFlight.
type AuthService struct {
	machine       *state.AuthMachine
	demoPhone     string
	demoOtp       string
	loginLatency  time.Duration
	verifyLatency time.Duration
	metrics       metrics.Recorder
}

func NewAuthService(machine *state.AuthMachine, demoPhone, demoOtp string, loginLatency, verifyLatency time.Duration, rec metrics.Recorder) *AuthService {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &AuthService{
		machine:       machine,
		demoPhone:     demoPhone,
		demoOtp:       demoOtp,
		loginLatency:  loginLatency,
		verifyLatency: verifyLatency,
		metrics:       rec,
	}
}

func (s *AuthService) LoginWithPhone(ctx context.Context, phoneNumber string) error {
	if err := s.machine.LoginStart(); err != nil {
		return err
	}

	if err := wait(ctx, s.loginLatency); err != nil {
		s.machine.LoginFailure("Login failed. Please try again.")
		s.metrics.RecordLogin("fault")
		return nil
	}

	if phoneNumber == s.demoPhone {
		s.machine.LoginSuccess(phoneNumber)
		s.metrics.RecordLogin("success")
	} else {
		s.machine.LoginFailure("Invalid phone number. Please use " + s.demoPhone)
		s.metrics.RecordLogin("invalid")
	}
	return nil
}

func (s *AuthService) VerifyOtp(ctx context.Context, phoneNumber, otp string) error {
	if err := s.machine.VerifyOtpStart(); err != nil {
		return err
	}

	if err := wait(ctx, s.verifyLatency); err != nil {
		s.machine.VerifyOtpFailure("OTP verification failed. Please try again.")
		s.metrics.RecordOtpVerification("fault")
		return nil
	}

	if otp == s.demoOtp {
		s.machine.VerifyOtpSuccess(phoneNumber, otp)
		s.metrics.RecordOtpVerification("success")
	} else {
		s.machine.VerifyOtpFailure("Invalid OTP. Please enter " + s.demoOtp)
		s.metrics.RecordOtpVerification("invalid")
	}
	return nil
}

func (s *AuthService) Logout() {
	s.machine.Logout()
}

func (s *AuthService) State() state.AuthState {
	return s.machine.Snapshot()
}

// wait simulates network latency; a canceled context counts as a fault.
func wait(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

var _ AuthUseCase = (*AuthService)(nil)
