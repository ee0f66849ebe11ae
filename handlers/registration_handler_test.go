package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ssfi-digital/federation-portal/services"
	"github.com/ssfi-digital/federation-portal/store"
)

type silentNotifications struct{}

func (silentNotifications) SendOTP(ctx context.Context, phone string) {}

func (silentNotifications) SendWelcome(ctx context.Context, input services.WelcomeInput) services.NotificationResult {
	return services.NotificationResult{Success: true}
}

func (silentNotifications) CheckRenewals(ctx context.Context, members []services.MemberRecord, thresholdDays int) services.RenewalReport {
	return services.RenewalReport{}
}

func newRegistrationHandler(t *testing.T) (*RegistrationHandler, *store.Store) {
	t.Helper()
	st := newSeededStore(t)
	svc := services.NewVerificationService("1234", silentNotifications{}, slog.Default())
	return NewRegistrationHandler(svc, st), st
}

func postJSON(t *testing.T, handlerFunc http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	handlerFunc(rec, req)
	return rec
}

func sendOTP(t *testing.T, handler *RegistrationHandler, phone string) (string, *httptest.ResponseRecorder) {
	t.Helper()
	rec := postJSON(t, handler.SendOTP, "/register/otp/send", fmt.Sprintf(`{"phone":%q}`, phone))
	if rec.Code != http.StatusOK {
		return "", rec
	}
	var sessionID string
	if err := json.Unmarshal(decodeBody(t, rec)["session_id"], &sessionID); err != nil {
		t.Fatalf("decode session_id: %v", err)
	}
	return sessionID, rec
}

func TestRegistrationHandler_ShortPhoneIsUnprocessable(t *testing.T) {
	handler, _ := newRegistrationHandler(t)

	_, rec := sendOTP(t, handler, "987")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for short phone, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRegistrationHandler_SubmitGatedOnVerification(t *testing.T) {
	handler, st := newRegistrationHandler(t)
	eventsBefore := len(st.PublicEvents())

	sessionID, rec := sendOTP(t, handler, "9876543210")
	if rec.Code != http.StatusOK {
		t.Fatalf("send otp: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if sessionID == "" {
		t.Fatal("expected a session id")
	}

	submitBody := fmt.Sprintf(
		`{"session_id":%q,"form":{"name":"Rohan Gupta","email":"rohan@example.com","phone":"9876543210","state":"Maharashtra","district":"Pune"}}`,
		sessionID,
	)

	// Before verification the submit is forbidden.
	rec = postJSON(t, handler.Submit, "/register/submit", submitBody)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 before verification, got %d: %s", rec.Code, rec.Body.String())
	}

	// A wrong code keeps the gate shut.
	rec = postJSON(t, handler.VerifyOTP, "/register/otp/verify",
		fmt.Sprintf(`{"session_id":%q,"code":"0000"}`, sessionID))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for wrong code, got %d", rec.Code)
	}

	rec = postJSON(t, handler.VerifyOTP, "/register/otp/verify",
		fmt.Sprintf(`{"session_id":%q,"code":"1234"}`, sessionID))
	if rec.Code != http.StatusOK {
		t.Fatalf("verify: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var state services.VerificationState
	if err := json.Unmarshal(decodeBody(t, rec)["verification"], &state); err != nil {
		t.Fatalf("decode verification: %v", err)
	}
	if !state.OTPVerified {
		t.Fatalf("expected verified gate, got %+v", state)
	}

	rec = postJSON(t, handler.Submit, "/register/submit", submitBody)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202 after verification, got %d: %s", rec.Code, rec.Body.String())
	}

	// Submissions are acknowledged, never published.
	if got := len(st.PublicEvents()); got != eventsBefore {
		t.Fatalf("submission must not touch content collections, events %d -> %d", eventsBefore, got)
	}
}

func TestRegistrationHandler_VerifyRequiresSessionID(t *testing.T) {
	handler, _ := newRegistrationHandler(t)

	rec := postJSON(t, handler.VerifyOTP, "/register/otp/verify", `{"session_id":"","code":"1234"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing session id, got %d", rec.Code)
	}
}

func TestRegistrationHandler_SetRegistrationView(t *testing.T) {
	handler, st := newRegistrationHandler(t)

	rec := postJSON(t, handler.SetRegistrationView, "/register/view", `{"view":"coach"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if st.RegistrationView() != "coach" {
		t.Fatalf("expected persisted view coach, got %q", st.RegistrationView())
	}
}
