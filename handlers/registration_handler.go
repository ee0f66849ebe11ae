package handlers

import (
	"errors"
	"net/http"

	"github.com/ssfi-digital/federation-portal/services"
	"github.com/ssfi-digital/federation-portal/store"
)

// RegistrationHandler drives the student registration flow: phone
// verification first, then the gated submit.
type RegistrationHandler struct {
	verificationService services.VerificationService
	store               *store.Store
}

func NewRegistrationHandler(verificationService services.VerificationService, st *store.Store) *RegistrationHandler {
	return &RegistrationHandler{
		verificationService: verificationService,
		store:               st,
	}
}

// SendOTP sends (or resends) the verification code. The first call may omit
// session_id; the response carries the id for the rest of the flow.
func (h *RegistrationHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var input struct {
		SessionID string `json:"session_id"`
		Phone     string `json:"phone"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	sessionID, state, err := h.verificationService.SendCode(r.Context(), input.SessionID, input.Phone)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"session_id":   sessionID,
		"verification": state,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *RegistrationHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var input struct {
		SessionID string `json:"session_id"`
		Code      string `json:"code"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.SessionID == "" {
		badRequestResponse(w, r, errors.New("session_id is required"))
		return
	}

	state, err := h.verificationService.VerifyCode(r.Context(), input.SessionID, input.Code)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"verification": state}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Submit accepts the student form once the session's gate is verified. The
// submission is acknowledged, not published: it touches none of the content
// collections.
func (h *RegistrationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var input struct {
		SessionID string                            `json:"session_id"`
		Form      services.StudentRegistrationInput `json:"form"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.SessionID == "" {
		badRequestResponse(w, r, errors.New("session_id is required"))
		return
	}

	if err := h.verificationService.SubmitStudentRegistration(r.Context(), input.SessionID, input.Form); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusAccepted, jsonResponse{"message": "registration received"}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SetRegistrationView remembers which registration form (student, coach,
// club, district, state) is open; part of the persisted snapshot.
func (h *RegistrationHandler) SetRegistrationView(w http.ResponseWriter, r *http.Request) {
	var input struct {
		View string `json:"view"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.View == "" {
		badRequestResponse(w, r, errors.New("view is required"))
		return
	}
	h.store.SetRegistrationView(r.Context(), input.View)
	if err := writeJSON(w, http.StatusOK, jsonResponse{"registrationView": input.View}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
