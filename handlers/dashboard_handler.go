package handlers

import (
	"net/http"

	"github.com/ssfi-digital/federation-portal/middleware"
	"github.com/ssfi-digital/federation-portal/services"
	"github.com/ssfi-digital/federation-portal/store"
)

type DashboardHandler struct {
	dashboardService    services.DashboardService
	insightService      services.InsightService
	notificationService services.NotificationService
	store               *store.Store
}

func NewDashboardHandler(
	dashboardService services.DashboardService,
	insightService services.InsightService,
	notificationService services.NotificationService,
	st *store.Store,
) *DashboardHandler {
	return &DashboardHandler{
		dashboardService:    dashboardService,
		insightService:      insightService,
		notificationService: notificationService,
		store:               st,
	}
}

// Menu resolves the caller's dashboard sections from the role in their token.
func (h *DashboardHandler) Menu(w http.ResponseWriter, r *http.Request) {
	role, err := middleware.GetUserRoleFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "invalid session")
		return
	}

	menu := h.dashboardService.ResolveMenu(role)
	response := jsonResponse{
		"role": role,
		"menu": menu,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats := h.dashboardService.GetStats(r.Context())
	if err := writeJSON(w, http.StatusOK, jsonResponse{"stats": stats}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Insight returns the AI performance report. The insight collaborator never
// fails; unavailability comes back as text.
func (h *DashboardHandler) Insight(w http.ResponseWriter, r *http.Request) {
	role, err := middleware.GetUserRoleFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "invalid session")
		return
	}

	var input struct {
		Context string `json:"context"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	report := h.insightService.GenerateReport(r.Context(), role, input.Context)
	if err := writeJSON(w, http.StatusOK, jsonResponse{"report": report}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Renewals runs a renewal sweep over the supplied membership roster and
// reports how many members were alerted. Threshold defaults to 30 days.
func (h *DashboardHandler) Renewals(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Members       []services.MemberRecord `json:"members"`
		ThresholdDays int                     `json:"threshold_days"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	report := h.notificationService.CheckRenewals(r.Context(), input.Members, input.ThresholdDays)
	if err := writeJSON(w, http.StatusOK, jsonResponse{"report": report}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *DashboardHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	theme := h.store.ToggleTheme(r.Context())
	if err := writeJSON(w, http.StatusOK, jsonResponse{"theme": theme}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
