package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ssfi-digital/federation-portal/models"
	"github.com/ssfi-digital/federation-portal/services"
	"github.com/ssfi-digital/federation-portal/store"
)

type recordingBroadcaster struct {
	mu       sync.Mutex
	messages []interface{}
}

func (b *recordingBroadcaster) BroadcastToTopic(topic string, message interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.messages = append(b.messages, message)
}

func newContentFixture(t *testing.T) (*ContentHandler, *store.Store, *recordingBroadcaster) {
	t.Helper()
	st := newSeededStore(t)
	hub := &recordingBroadcaster{}
	handler := NewContentHandler(services.NewContentService(st, hub), st, nil)
	return handler, st, hub
}

func TestContentHandler_CreateHeroSlideAssignsID(t *testing.T) {
	handler, st, hub := newContentFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/cms/hero",
		strings.NewReader(`{"title":"Winter Trials","subtitle":"Sign up now"}`))
	rec := httptest.NewRecorder()
	handler.CreateHeroSlide(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var slide models.HeroSlide
	if err := json.Unmarshal(decodeBody(t, rec)["slide"], &slide); err != nil {
		t.Fatalf("decode slide: %v", err)
	}
	if slide.ID == "" {
		t.Fatal("handler must assign an id when the payload omits one")
	}
	if _, ok := st.FindHeroSlide(slide.ID); !ok {
		t.Fatal("created slide must be in the store")
	}
	if len(hub.messages) != 1 {
		t.Fatalf("expected one live announcement, got %d", len(hub.messages))
	}
}

func TestContentHandler_DeletePublicEvent(t *testing.T) {
	handler, st, _ := newContentFixture(t)

	router := chi.NewRouter()
	router.Delete("/cms/events/{id}", handler.DeletePublicEvent)

	req := httptest.NewRequest(http.MethodDelete, "/cms/events/2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if _, ok := st.FindPublicEvent("2"); ok {
		t.Fatal("deleted event must be gone from the store")
	}
}

func TestContentHandler_SetCMSSection(t *testing.T) {
	handler, st, _ := newContentFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/cms/section", strings.NewReader(`{"section":"blogs"}`))
	rec := httptest.NewRecorder()
	handler.SetCMSSection(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if st.CMSSection() != "blogs" {
		t.Fatalf("expected persisted section blogs, got %q", st.CMSSection())
	}

	rec = httptest.NewRecorder()
	handler.SetCMSSection(rec, httptest.NewRequest(http.MethodPost, "/cms/section", strings.NewReader(`{"section":""}`)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty section, got %d", rec.Code)
	}
}

func TestContentHandler_UploadMediaWithoutUploader(t *testing.T) {
	handler, _, _ := newContentFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/cms/media", nil)
	rec := httptest.NewRecorder()
	handler.UploadMedia(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 when no uploader is configured, got %d", rec.Code)
	}
}
