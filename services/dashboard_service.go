package services

import (
	"context"

	"github.com/ssfi-digital/federation-portal/models"
	"github.com/ssfi-digital/federation-portal/store"
)

type DashboardService interface {
	ResolveMenu(role models.UserRole) []models.MenuItem
	GetStats(ctx context.Context) models.DashboardStats
}

type dashboardService struct {
	store *store.Store
}

func NewDashboardService(st *store.Store) DashboardService {
	return &dashboardService{store: st}
}

// ResolveMenu maps a role to the dashboard sections it may navigate to. This
// is a capability table, not an inheritance chain: each role's menu is
// enumerated on its own so granting or revoking a section for one role can
// never leak to another. Roles without an entry fall back to overview only.
func (s *dashboardService) ResolveMenu(role models.UserRole) []models.MenuItem {
	switch role {
	case models.RoleNationalAdmin:
		return []models.MenuItem{
			{ID: "overview", Label: "Master Control"},
			{ID: "events", Label: "Events"},
			{ID: "payments", Label: "Payments"},
			{ID: "results", Label: "Results"},
			{ID: "reports", Label: "Reports"},
			{ID: "renewals", Label: "Renewal Report"},
			{ID: "roles", Label: "Role Management"},
			{ID: "settings", Label: "Settings"},
			{ID: "cms", Label: "Front End Settings"},
		}
	case models.RoleStateAdmin:
		return []models.MenuItem{
			{ID: "overview", Label: "Overview"},
			{ID: "districts", Label: "District Units"},
			{ID: "analytics", Label: "State Stats"},
			{ID: "events", Label: "My Events"},
		}
	case models.RoleClubAdmin, models.RoleCoach:
		return []models.MenuItem{
			{ID: "overview", Label: "Overview"},
			{ID: "athletes", Label: "My Athletes"},
			{ID: "events", Label: "Events"},
		}
	case models.RoleStudent:
		return []models.MenuItem{
			{ID: "overview", Label: "Overview"},
			{ID: "profile", Label: "My Profile"},
			{ID: "events", Label: "My Events"},
		}
	default:
		// DistrictAdmin works out of overview sub-tabs; unknown roles
		// fail closed to the same minimal menu.
		return []models.MenuItem{
			{ID: "overview", Label: "Overview"},
		}
	}
}

func (s *dashboardService) GetStats(ctx context.Context) models.DashboardStats {
	snap := s.store.Snapshot()
	return models.DashboardStats{
		HeroSlidesTotal:    len(snap.HeroSlides),
		PublicEventsTotal:  len(snap.PublicEvents),
		GalleryAlbumsTotal: len(snap.GalleryAlbums),
		BlogPostsTotal:     len(snap.BlogPosts),
	}
}
