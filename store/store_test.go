package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"reflect"
	"testing"

	"github.com/ssfi-digital/federation-portal/models"
	"github.com/ssfi-digital/federation-portal/repositories"
)

type fakeSnapshotRepo struct {
	saves int
	last  *models.Snapshot
	// stored is returned by Load when set.
	stored *models.Snapshot
}

func (f *fakeSnapshotRepo) Load(ctx context.Context, key string) (*models.Snapshot, error) {
	if f.stored == nil {
		return nil, repositories.ErrSnapshotNotFound
	}
	return f.stored.Clone(), nil
}

func (f *fakeSnapshotRepo) Save(ctx context.Context, key string, snap *models.Snapshot) error {
	f.saves++
	f.last = snap.Clone()
	return nil
}

func newTestStore(t *testing.T) (*Store, *fakeSnapshotRepo) {
	t.Helper()
	repo := &fakeSnapshotRepo{}
	st := New(repo, "test-storage", slog.Default())
	if err := st.Init(context.Background()); err != nil {
		t.Fatalf("init: unexpected error: %v", err)
	}
	return st, repo
}

func TestStore_LoginLogoutInvariant(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	if st.IsAuthenticated() != (st.CurrentUser() != nil) {
		t.Fatal("invariant violated before login")
	}

	user := st.Login(ctx, models.RoleStudent)
	if user.Name != "Rohan Gupta" {
		t.Fatalf("expected student identity, got %q", user.Name)
	}
	if !st.IsAuthenticated() || st.CurrentUser() == nil {
		t.Fatal("expected authenticated state after login")
	}

	// A second login overwrites the first.
	user = st.Login(ctx, models.RoleNationalAdmin)
	if user.Name != "Dr. Administrator" {
		t.Fatalf("expected admin identity, got %q", user.Name)
	}
	if got := st.CurrentUser().Role; got != models.RoleNationalAdmin {
		t.Fatalf("expected role overwrite, got %s", got)
	}

	st.Logout(ctx)
	if st.IsAuthenticated() || st.CurrentUser() != nil {
		t.Fatal("expected signed-out state after logout")
	}
}

func TestStore_LogoutIdempotent(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	st.Login(ctx, models.RoleCoach)
	st.Logout(ctx)
	first := st.Snapshot()

	st.Logout(ctx)
	second := st.Snapshot()

	if !reflect.DeepEqual(first, second) {
		t.Fatal("logout twice must yield the same state as once")
	}
}

func TestStore_WriteThroughOnEveryMutation(t *testing.T) {
	st, repo := newTestStore(t)
	ctx := context.Background()

	st.Login(ctx, models.RoleStudent)
	st.AddHeroSlide(ctx, models.HeroSlide{ID: "x"})
	st.RemoveHeroSlide(ctx, "x")
	st.ToggleTheme(ctx)
	st.Logout(ctx)

	if repo.saves != 5 {
		t.Fatalf("expected 5 write-throughs, got %d", repo.saves)
	}
	if repo.last == nil || repo.last.IsAuthenticated {
		t.Fatal("persisted snapshot should reflect the final signed-out state")
	}
}

func TestStore_RemoveAbsentIsNoOp(t *testing.T) {
	st, repo := newTestStore(t)
	ctx := context.Background()

	before := st.PublicEvents()
	savesBefore := repo.saves

	st.RemovePublicEvent(ctx, "does-not-exist")

	after := st.PublicEvents()
	if !reflect.DeepEqual(before, after) {
		t.Fatal("removing an absent id must leave the collection unchanged")
	}
	// Every remove still writes the snapshot through, hit or miss.
	if repo.saves != savesBefore+1 {
		t.Fatalf("expected one write-through, saves went %d -> %d", savesBefore, repo.saves)
	}
}

func TestStore_DuplicateIDFirstMatch(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	st.AddBlogPost(ctx, models.BlogPost{ID: "dup", Title: "first"})
	st.AddBlogPost(ctx, models.BlogPost{ID: "dup", Title: "second"})

	post, ok := st.FindBlogPost("dup")
	if !ok || post.Title != "first" {
		t.Fatalf("lookup must return the first match, got %+v ok=%v", post, ok)
	}

	st.RemoveBlogPost(ctx, "dup")
	post, ok = st.FindBlogPost("dup")
	if !ok || post.Title != "second" {
		t.Fatalf("removal must only drop the first match, got %+v ok=%v", post, ok)
	}
}

func TestStore_ListIsACopy(t *testing.T) {
	st, _ := newTestStore(t)

	slides := st.HeroSlides()
	if len(slides) == 0 {
		t.Fatal("expected seeded slides")
	}
	slides[0].Title = "mutated"

	if st.HeroSlides()[0].Title == "mutated" {
		t.Fatal("callers must not be able to mutate repository state through list results")
	}
}

func TestStore_FindPublicEventAbsent(t *testing.T) {
	st, _ := newTestStore(t)

	if _, ok := st.FindPublicEvent("no-such-id"); ok {
		t.Fatal("expected not-found result for unknown id")
	}
}

func TestStore_InitLoadsPersistedSnapshot(t *testing.T) {
	repo := &fakeSnapshotRepo{stored: &models.Snapshot{
		Theme:            "light",
		CMSSection:       "blogs",
		RegistrationView: "coach",
		PublicEvents:     []models.PublicEvent{{ID: "42", Title: "Persisted Meet"}},
	}}
	st := New(repo, "test-storage", slog.Default())
	if err := st.Init(context.Background()); err != nil {
		t.Fatalf("init: unexpected error: %v", err)
	}

	if st.Theme() != "light" || st.CMSSection() != "blogs" {
		t.Fatal("expected persisted state to replace seed data")
	}
	if _, ok := st.FindPublicEvent("42"); !ok {
		t.Fatal("expected persisted event to be loadable")
	}
}

func TestSnapshot_JSONRoundTrip(t *testing.T) {
	original := models.DefaultSnapshot()

	raw, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var restored models.Snapshot
	if err := json.Unmarshal(raw, &restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !reflect.DeepEqual(original, &restored) {
		t.Fatal("snapshot round-trip must reproduce all four collections in order")
	}
}
