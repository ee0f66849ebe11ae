package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/ssfi-digital/federation-portal/models"
)

func TestInsightService_NoAPIKey(t *testing.T) {
	svc := NewInsightService("", slog.Default())

	report := svc.GenerateReport(context.Background(), models.RoleStudent, "3 events this month")
	if report != "AI Analysis Unavailable: No API Key configured." {
		t.Fatalf("unexpected fallback message: %q", report)
	}
}
