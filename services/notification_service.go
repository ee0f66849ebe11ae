package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// renewalThresholdDays is how far ahead of expiry the renewal sweep alerts.
const renewalThresholdDays = 30

const welcomeEmailTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background-color: #1A237E; padding: 30px; text-align: center;">
    <h1 style="color: #FFD700; margin: 0; letter-spacing: 2px;">SSFI</h1>
    <p style="color: rgba(255,255,255,0.7); font-size: 12px; text-transform: uppercase;">Speed Skating Federation of India</p>
  </div>
  <div style="padding: 40px; background-color: #ffffff;">
    <h2 style="color: #1A237E; margin-top: 0;">Welcome, {{.Name}}!</h2>
    <p style="color: #555555; line-height: 1.6;">
      We are thrilled to welcome you to the <strong>SSFI Digital Ecosystem</strong>.
      Your account has been successfully created with the role of <strong>{{.Role}}</strong>.
    </p>
    <a href="https://ssfi.in/dashboard" style="display: inline-block; background-color: #1A237E; color: #ffffff; text-decoration: none; padding: 12px 25px; border-radius: 5px; font-weight: bold;">Access Dashboard</a>
  </div>
</div>`

const renewalEmailTemplate = `
<h2 style="color: #d32f2f;">Action Required: Membership Renewal</h2>
<p>Dear {{.Name}}, your SSFI Membership expires on <strong>{{.Expiry}}</strong>.</p>
<p>Please renew within the next {{.Days}} days to maintain your active status and eligibility for upcoming events.</p>`

type WelcomeInput struct {
	Name  string
	Email string
	Phone string
	Role  string
}

type NotificationResult struct {
	Success bool `json:"success"`
}

type RenewalReport struct {
	Processed int `json:"processedCount"`
}

// MemberRecord is the slice of a member the renewal sweep needs.
type MemberRecord struct {
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Role             string    `json:"role"`
	MembershipExpiry time.Time `json:"membership_expiry"`
}

// NotificationService is the outbound email/SMS collaborator. Delivery in
// this deployment is logged rather than handed to a carrier; callers treat
// every send as fire-and-forget and never block core state on it.
type NotificationService interface {
	SendOTP(ctx context.Context, phone string)
	SendWelcome(ctx context.Context, input WelcomeInput) NotificationResult
	CheckRenewals(ctx context.Context, members []MemberRecord, thresholdDays int) RenewalReport
}

type notificationService struct {
	welcomeTmpl *template.Template
	renewalTmpl *template.Template
	logger      *slog.Logger
}

func NewNotificationService(logger *slog.Logger) NotificationService {
	return &notificationService{
		welcomeTmpl: template.Must(template.New("welcome").Parse(welcomeEmailTemplate)),
		renewalTmpl: template.Must(template.New("renewal").Parse(renewalEmailTemplate)),
		logger:      logger,
	}
}

func (s *notificationService) SendOTP(ctx context.Context, phone string) {
	s.logger.Info("verification code dispatched", slog.String("phone", phone))
}

func (s *notificationService) SendWelcome(ctx context.Context, input WelcomeInput) NotificationResult {
	var body bytes.Buffer
	if err := s.welcomeTmpl.Execute(&body, input); err != nil {
		s.logger.Error("failed to render welcome email", slog.Any("error", err))
		return NotificationResult{Success: false}
	}

	s.logger.Info("welcome email sent",
		slog.String("to", input.Email),
		slog.String("subject", "Welcome to SSFI"),
		slog.Int("body_bytes", body.Len()),
	)
	s.logger.Info("welcome whatsapp sent",
		slog.String("to", input.Phone),
		slog.String("body", fmt.Sprintf("Welcome to SSFI, %s! Your registration is complete.", input.Name)),
	)
	return NotificationResult{Success: true}
}

// CheckRenewals alerts every member whose membership expires exactly
// thresholdDays from today (dates compared at day granularity). Sends fan out
// concurrently; a failed render skips that member but does not stop the
// sweep.
func (s *notificationService) CheckRenewals(ctx context.Context, members []MemberRecord, thresholdDays int) RenewalReport {
	if thresholdDays <= 0 {
		thresholdDays = renewalThresholdDays
	}
	target := time.Now().AddDate(0, 0, thresholdDays).Format("2006-01-02")

	due := make([]MemberRecord, 0)
	for _, m := range members {
		if m.MembershipExpiry.Format("2006-01-02") == target {
			due = append(due, m)
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, m := range due {
		m := m
		g.Go(func() error {
			var body bytes.Buffer
			data := struct {
				Name   string
				Expiry string
				Days   int
			}{m.Name, m.MembershipExpiry.Format("Jan 02, 2006"), thresholdDays}
			if err := s.renewalTmpl.Execute(&body, data); err != nil {
				s.logger.Error("failed to render renewal alert", slog.String("to", m.Email), slog.Any("error", err))
				return nil
			}
			s.logger.Info("renewal alert sent", slog.String("to", m.Email), slog.Int("body_bytes", body.Len()))
			return nil
		})
	}
	_ = g.Wait()

	s.logger.Info("renewal sweep complete", slog.Int("due", len(due)), slog.Int("checked", len(members)))
	return RenewalReport{Processed: len(due)}
}
