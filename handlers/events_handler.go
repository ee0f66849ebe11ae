package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ssfi-digital/federation-portal/models"
	"github.com/ssfi-digital/federation-portal/services"
)

// EventsHandler serves the public browsing surface: the hero carousel, the
// filterable event calendar, the gallery and the blog.
type EventsHandler struct {
	contentService services.ContentService
}

func NewEventsHandler(contentService services.ContentService) *EventsHandler {
	return &EventsHandler{contentService: contentService}
}

// ListEvents applies the shareable filter parameters (category, state,
// district) to the event calendar. The response echoes the normalized filter
// so clients can mirror it back into their URL.
func (h *EventsHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	filter := services.ParseFilterQuery(r.URL.Query())
	events := services.FilterEvents(h.contentService.ListPublicEvents(r.Context()), filter)

	response := jsonResponse{
		"events": events,
		"filter": filter,
		"query":  services.FilterQueryValues(filter).Encode(),
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetEvent renders one event. An unknown id is a not-found response, not a
// failure.
func (h *EventsHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.contentService.GetPublicEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"event": event}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *EventsHandler) ListHeroSlides(w http.ResponseWriter, r *http.Request) {
	slides := h.contentService.ListHeroSlides(r.Context())
	if err := writeJSON(w, http.StatusOK, jsonResponse{"slides": slides}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *EventsHandler) ListGalleryAlbums(w http.ResponseWriter, r *http.Request) {
	albums := h.contentService.ListGalleryAlbums(r.Context())
	if err := writeJSON(w, http.StatusOK, jsonResponse{"albums": albums}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *EventsHandler) ListBlogPosts(w http.ResponseWriter, r *http.Request) {
	posts := h.contentService.ListBlogPosts(r.Context())
	if err := writeJSON(w, http.StatusOK, jsonResponse{"posts": posts}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *EventsHandler) GetBlogPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.contentService.GetBlogPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"post": post}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListStates exposes the member-state reference table the filter bar builds
// its dropdowns from.
func (h *EventsHandler) ListStates(w http.ResponseWriter, r *http.Request) {
	response := jsonResponse{
		"states":    models.States,
		"districts": models.Districts,
	}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
