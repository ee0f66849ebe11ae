package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"path"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/ssfi-digital/federation-portal/models"
	"github.com/ssfi-digital/federation-portal/services"
	"github.com/ssfi-digital/federation-portal/storage"
	"github.com/ssfi-digital/federation-portal/store"
)

// ContentHandler serves the CMS surface: create/delete over the four
// published collections, the active CMS section, and media uploads. The
// repository does not mint ids, so this handler (the caller) assigns one when
// the payload omits it.
type ContentHandler struct {
	contentService services.ContentService
	store          *store.Store
	uploader       storage.FileUploader
}

func NewContentHandler(contentService services.ContentService, st *store.Store, uploader storage.FileUploader) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
		store:          st,
		uploader:       uploader,
	}
}

func (h *ContentHandler) CreateHeroSlide(w http.ResponseWriter, r *http.Request) {
	var slide models.HeroSlide
	if err := readJSON(w, r, &slide); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if slide.ID == "" {
		slide.ID = uuid.NewString()
	}
	h.contentService.AddHeroSlide(r.Context(), slide)
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"slide": slide}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ContentHandler) DeleteHeroSlide(w http.ResponseWriter, r *http.Request) {
	h.contentService.DeleteHeroSlide(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *ContentHandler) CreatePublicEvent(w http.ResponseWriter, r *http.Request) {
	var event models.PublicEvent
	if err := readJSON(w, r, &event); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	h.contentService.AddPublicEvent(r.Context(), event)
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"event": event}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ContentHandler) DeletePublicEvent(w http.ResponseWriter, r *http.Request) {
	h.contentService.DeletePublicEvent(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *ContentHandler) CreateGalleryAlbum(w http.ResponseWriter, r *http.Request) {
	var album models.GalleryAlbum
	if err := readJSON(w, r, &album); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if album.ID == "" {
		album.ID = uuid.NewString()
	}
	h.contentService.AddGalleryAlbum(r.Context(), album)
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"album": album}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ContentHandler) DeleteGalleryAlbum(w http.ResponseWriter, r *http.Request) {
	h.contentService.DeleteGalleryAlbum(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *ContentHandler) CreateBlogPost(w http.ResponseWriter, r *http.Request) {
	var post models.BlogPost
	if err := readJSON(w, r, &post); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	h.contentService.AddBlogPost(r.Context(), post)
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"post": post}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *ContentHandler) DeleteBlogPost(w http.ResponseWriter, r *http.Request) {
	h.contentService.DeleteBlogPost(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// SetCMSSection remembers which CMS tab the admin is working in; the value is
// part of the persisted snapshot so the dashboard reopens where it was left.
func (h *ContentHandler) SetCMSSection(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Section string `json:"section"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.Section == "" {
		badRequestResponse(w, r, errors.New("section is required"))
		return
	}
	h.store.SetCMSSection(r.Context(), input.Section)
	if err := writeJSON(w, http.StatusOK, jsonResponse{"cmsSection": input.Section}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UploadMedia stores an image for CMS content and returns its public URL.
func (h *ContentHandler) UploadMedia(w http.ResponseWriter, r *http.Request) {
	if h.uploader == nil {
		mapServiceErrorToHTTP(w, r, services.ErrMediaUploadsUnavailable)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		badRequestResponse(w, r, fmt.Errorf("invalid multipart form: %w", err))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		badRequestResponse(w, r, errors.New("file field is required"))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key := fmt.Sprintf("cms/%d_%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], path.Ext(header.Filename))

	result, err := h.uploader.Upload(r.Context(), key, contentType, file)
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}

	response := jsonResponse{
		"key": result.Key,
		"url": result.Location,
	}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
