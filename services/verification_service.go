package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// VerificationState is the observable state of one registration's phone
// verification gate.
//
// Valid states are initial (nothing sent), sent, and verified; verified
// without sent is unreachable because VerifyCode refuses to run before
// SendCode.
type VerificationState struct {
	OTPSent     bool   `json:"otpSent"`
	OTPVerified bool   `json:"otpVerified"`
	EnteredOTP  string `json:"enteredOtp"`
}

// Gate is the per-registration OTP state machine. It exists for one purpose:
// a student registration cannot be submitted until the gate is verified.
type Gate struct {
	state VerificationState
	phone string
}

// SendCode moves the gate to sent. A phone with fewer than 10 digits is
// rejected and the gate stays where it was. Sending again from sent is a
// resend; sending on a verified gate changes nothing.
func (g *Gate) SendCode(phone string) error {
	if len(phone) < 10 {
		return ErrPhoneTooShort
	}
	if g.state.OTPVerified {
		return nil
	}
	g.phone = phone
	g.state.OTPSent = true
	return nil
}

// VerifyCode moves the gate to verified when entered matches the reference
// code. A mismatch leaves the gate at sent.
func (g *Gate) VerifyCode(entered, reference string) error {
	if !g.state.OTPSent {
		return ErrOTPNotSent
	}
	g.state.EnteredOTP = entered
	if g.state.OTPVerified {
		return nil
	}
	if entered != reference {
		return ErrInvalidOTPCode
	}
	g.state.OTPVerified = true
	return nil
}

func (g *Gate) Verified() bool {
	return g.state.OTPVerified
}

func (g *Gate) State() VerificationState {
	return g.state
}

// StudentRegistrationInput is the student form payload. Submissions are
// acknowledged and logged; they are not one of the published collections and
// never reach the content store.
type StudentRegistrationInput struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	AadhaarNumber string `json:"aadhaar_number"`
	State         string `json:"state"`
	District      string `json:"district"`
	Club          string `json:"club"`
}

type VerificationService interface {
	SendCode(ctx context.Context, sessionID, phone string) (string, VerificationState, error)
	VerifyCode(ctx context.Context, sessionID, entered string) (VerificationState, error)
	State(sessionID string) (VerificationState, error)
	SubmitStudentRegistration(ctx context.Context, sessionID string, input StudentRegistrationInput) error
}

type verificationService struct {
	mu            sync.Mutex
	gates         map[string]*Gate
	referenceCode string
	notifications NotificationService
	logger        *slog.Logger
}

func NewVerificationService(referenceCode string, notifications NotificationService, logger *slog.Logger) VerificationService {
	return &verificationService{
		gates:         make(map[string]*Gate),
		referenceCode: referenceCode,
		notifications: notifications,
		logger:        logger,
	}
}

// SendCode sends (or resends) the one-time code for a registration session.
// An empty session id opens a new session; the returned id identifies the
// gate for the rest of the flow. Delivery is handled by the notification
// collaborator and is best effort.
func (s *verificationService) SendCode(ctx context.Context, sessionID, phone string) (string, VerificationState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sessionID == "" {
		sessionID = uuid.NewString()
		s.gates[sessionID] = &Gate{}
	}
	gate, ok := s.gates[sessionID]
	if !ok {
		return "", VerificationState{}, ErrRegistrationNotFound
	}

	if err := gate.SendCode(phone); err != nil {
		return sessionID, gate.State(), err
	}

	s.notifications.SendOTP(ctx, phone)
	return sessionID, gate.State(), nil
}

func (s *verificationService) VerifyCode(ctx context.Context, sessionID, entered string) (VerificationState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gate, ok := s.gates[sessionID]
	if !ok {
		return VerificationState{}, ErrRegistrationNotFound
	}
	if err := gate.VerifyCode(entered, s.referenceCode); err != nil {
		return gate.State(), err
	}
	return gate.State(), nil
}

func (s *verificationService) State(sessionID string) (VerificationState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gate, ok := s.gates[sessionID]
	if !ok {
		return VerificationState{}, ErrRegistrationNotFound
	}
	return gate.State(), nil
}

// SubmitStudentRegistration accepts the form only when the session's gate is
// verified. An accepted submission is acknowledged, logged and handed to the
// welcome notification; it mutates no published collection.
func (s *verificationService) SubmitStudentRegistration(ctx context.Context, sessionID string, input StudentRegistrationInput) error {
	s.mu.Lock()
	gate, ok := s.gates[sessionID]
	if !ok {
		s.mu.Unlock()
		return ErrRegistrationNotFound
	}
	if !gate.Verified() {
		s.mu.Unlock()
		return ErrPhoneNotVerified
	}
	delete(s.gates, sessionID)
	s.mu.Unlock()

	s.logger.Info("student registration submitted",
		slog.String("session_id", sessionID),
		slog.String("name", input.Name),
		slog.String("state", input.State),
		slog.String("district", input.District),
	)

	s.notifications.SendWelcome(ctx, WelcomeInput{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
		Role:  "STUDENT",
	})
	return nil
}
