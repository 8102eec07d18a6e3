package state

import (
	"errors"
	"sync"

	"github.com/fastays/fastays/internal/domain"
	"github.com/google/uuid"
)

// ErrInFlight is returned by a start transition while the previous
// start for the same machine has not yet resolved.
var ErrInFlight = errors.New("operation already in flight")

// AuthState holds the login and OTP verification flags. An empty Error
// means no error. Invariant: IsOtpVerified implies User != nil.
type AuthState struct {
	User          *domain.User `json:"user"`
	PhoneNumber   string       `json:"phoneNumber"`
	OTP           string       `json:"otp"`
	IsLoading     bool         `json:"isLoading"`
	Error         string       `json:"error,omitempty"`
	IsOtpVerified bool         `json:"isOtpVerified"`
}

// AuthMachine is an injected state container; callers hold exactly one
// per process. All transitions are safe for concurrent use.
type AuthMachine struct {
	mu sync.Mutex
	s  AuthState
}

func NewAuthMachine() *AuthMachine {
	return &AuthMachine{}
}

func (m *AuthMachine) SetPhoneNumber(phone string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s.PhoneNumber = phone
	m.s.Error = ""
}

func (m *AuthMachine) SetOTP(otp string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s.OTP = otp
	m.s.Error = ""
}

func (m *AuthMachine) LoginStart() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.s.IsLoading {
		return ErrInFlight
	}
	m.s.IsLoading = true
	m.s.Error = ""
	return nil
}

func (m *AuthMachine) LoginSuccess(phone string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s.IsLoading = false
	m.s.PhoneNumber = phone
	m.s.Error = ""
}

func (m *AuthMachine) LoginFailure(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s.IsLoading = false
	m.s.Error = msg
}

func (m *AuthMachine) VerifyOtpStart() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.s.IsLoading {
		return ErrInFlight
	}
	m.s.IsLoading = true
	m.s.Error = ""
	return nil
}

// VerifyOtpSuccess marks the session verified and creates the user record.
func (m *AuthMachine) VerifyOtpSuccess(phone, otp string) *domain.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s.IsLoading = false
	m.s.IsOtpVerified = true
	m.s.User = &domain.User{
		ID:              uuid.NewString(),
		PhoneNumber:     phone,
		IsAuthenticated: true,
	}
	m.s.Error = ""
	u := *m.s.User
	return &u
}

func (m *AuthMachine) VerifyOtpFailure(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s.IsLoading = false
	m.s.IsOtpVerified = false
	m.s.Error = msg
}

// Logout resets the identity fields. It intentionally leaves IsLoading
// untouched; a flow resolving afterwards clears it itself.
func (m *AuthMachine) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s.User = nil
	m.s.PhoneNumber = ""
	m.s.OTP = ""
	m.s.IsOtpVerified = false
	m.s.Error = ""
}

func (m *AuthMachine) ClearError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s.Error = ""
}

// Snapshot returns a copy of the current state.
func (m *AuthMachine) Snapshot() AuthState {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.s
	if m.s.User != nil {
		u := *m.s.User
		s.User = &u
	}
	return s
}
