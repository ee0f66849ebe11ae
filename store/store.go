// Package store owns the portal's application state: the signed-in user, the
// theme, the CMS view fields and the four published content collections. All
// state lives in one snapshot that is written through to durable storage as a
// single blob after every mutation.
package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/ssfi-digital/federation-portal/models"
	"github.com/ssfi-digital/federation-portal/repositories"
)

// Store is the single owner of mutable application state. All reads and
// writes go through its methods; callers never see internal slices.
type Store struct {
	mu     sync.Mutex
	key    string
	snap   *models.Snapshot
	repo   repositories.SnapshotRepository
	logger *slog.Logger
}

func New(repo repositories.SnapshotRepository, key string, logger *slog.Logger) *Store {
	return &Store{
		key:    key,
		snap:   models.DefaultSnapshot(),
		repo:   repo,
		logger: logger,
	}
}

// Init loads the persisted snapshot. A missing row is not an error: the store
// keeps the seed data and writes it out on the first mutation.
func (s *Store) Init(ctx context.Context) error {
	snap, err := s.repo.Load(ctx, s.key)
	if err != nil {
		if errors.Is(err, repositories.ErrSnapshotNotFound) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
	return nil
}

// persist writes the whole snapshot through. Persistence is best effort: a
// failed write is logged and the in-memory state stays authoritative for the
// rest of the session. Callers must hold s.mu.
func (s *Store) persist(ctx context.Context) {
	if err := s.repo.Save(ctx, s.key, s.snap.Clone()); err != nil {
		s.logger.Error("snapshot write-through failed", slog.String("key", s.key), slog.Any("error", err))
	}
}

// Snapshot returns a deep copy of the full current state.
func (s *Store) Snapshot() *models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Clone()
}

// Login replaces any previous session with a freshly synthesized user for the
// given role. Role selection is self-asserted; no credential is checked.
func (s *Store) Login(ctx context.Context, role models.UserRole) models.User {
	name := "Admin User"
	switch role {
	case models.RoleStudent:
		name = "Rohan Gupta"
	case models.RoleNationalAdmin:
		name = "Dr. Administrator"
	}

	user := models.User{
		ID:    "1",
		Name:  name,
		Role:  role,
		Email: "user@ssfi.org",
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.CurrentUser = &user
	s.snap.IsAuthenticated = true
	s.persist(ctx)
	return user
}

// Logout clears the session. Calling it without a session is a no-op that
// still leaves the state signed out.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.CurrentUser = nil
	s.snap.IsAuthenticated = false
	s.persist(ctx)
}

// CurrentUser returns a copy of the signed-in user, or nil.
func (s *Store) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap.CurrentUser == nil {
		return nil
	}
	u := *s.snap.CurrentUser
	return &u
}

func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.IsAuthenticated
}

func (s *Store) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Theme
}

// ToggleTheme flips between dark and light and returns the new theme.
func (s *Store) ToggleTheme(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap.Theme == "dark" {
		s.snap.Theme = "light"
	} else {
		s.snap.Theme = "dark"
	}
	s.persist(ctx)
	return s.snap.Theme
}

func (s *Store) CMSSection() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.CMSSection
}

func (s *Store) SetCMSSection(ctx context.Context, section string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.CMSSection = section
	s.persist(ctx)
}

func (s *Store) RegistrationView() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.RegistrationView
}

func (s *Store) SetRegistrationView(ctx context.Context, view string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.RegistrationView = view
	s.persist(ctx)
}
