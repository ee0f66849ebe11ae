package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ssfi-digital/federation-portal/models"
	"github.com/ssfi-digital/federation-portal/repositories"
	"github.com/ssfi-digital/federation-portal/services"
	"github.com/ssfi-digital/federation-portal/store"
)

type stubSnapshotRepo struct{}

func (stubSnapshotRepo) Load(ctx context.Context, key string) (*models.Snapshot, error) {
	return nil, repositories.ErrSnapshotNotFound
}

func (stubSnapshotRepo) Save(ctx context.Context, key string, snap *models.Snapshot) error {
	return nil
}

func newSeededStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New(stubSnapshotRepo{}, "test-storage", slog.Default())
	if err := st.Init(context.Background()); err != nil {
		t.Fatalf("init store: %v", err)
	}
	return st
}

func newEventsRouter(t *testing.T) http.Handler {
	t.Helper()
	handler := NewEventsHandler(services.NewContentService(newSeededStore(t), nil))

	router := chi.NewRouter()
	router.Get("/events", handler.ListEvents)
	router.Get("/events/{id}", handler.GetEvent)
	router.Get("/blogs/{id}", handler.GetBlogPost)
	router.Get("/meta/states", handler.ListStates)
	return router
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	var body map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestEventsHandler_ListEventsFiltered(t *testing.T) {
	router := newEventsRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/events?category=State&state=Maharashtra", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	var events []models.PublicEvent
	if err := json.Unmarshal(body["events"], &events); err != nil {
		t.Fatalf("decode events: %v", err)
	}
	if len(events) != 1 || events[0].ID != "2" {
		t.Fatalf("expected only the Maharashtra state event, got %+v", events)
	}

	var query string
	if err := json.Unmarshal(body["query"], &query); err != nil {
		t.Fatalf("decode query: %v", err)
	}
	if query != "category=State&state=Maharashtra" {
		t.Fatalf("unexpected shareable query %q", query)
	}
}

func TestEventsHandler_ListEventsUnfiltered(t *testing.T) {
	router := newEventsRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var events []models.PublicEvent
	if err := json.Unmarshal(decodeBody(t, rec)["events"], &events); err != nil {
		t.Fatalf("decode events: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected the full seeded calendar, got %d events", len(events))
	}
}

func TestEventsHandler_GetEventNotFound(t *testing.T) {
	router := newEventsRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/events/no-such-id", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestEventsHandler_GetBlogPost(t *testing.T) {
	router := newEventsRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/blogs/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var post models.BlogPost
	if err := json.Unmarshal(decodeBody(t, rec)["post"], &post); err != nil {
		t.Fatalf("decode post: %v", err)
	}
	if post.ID != "1" {
		t.Fatalf("expected post 1, got %+v", post)
	}
}

func TestEventsHandler_ListStates(t *testing.T) {
	router := newEventsRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/meta/states", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	var states []string
	if err := json.Unmarshal(body["states"], &states); err != nil {
		t.Fatalf("decode states: %v", err)
	}
	if len(states) != len(models.States) {
		t.Fatalf("expected %d states, got %d", len(models.States), len(states))
	}
	var districts map[string][]string
	if err := json.Unmarshal(body["districts"], &districts); err != nil {
		t.Fatalf("decode districts: %v", err)
	}
	if len(districts["Maharashtra"]) == 0 {
		t.Fatal("expected Maharashtra districts in the reference table")
	}
}
