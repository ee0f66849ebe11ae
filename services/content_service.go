package services

import (
	"context"

	"github.com/ssfi-digital/federation-portal/models"
	"github.com/ssfi-digital/federation-portal/store"
)

// CMSTopic is the live-update topic dashboard clients subscribe to.
const CMSTopic = "cms"

// ContentBroadcaster pushes content-change events to connected dashboards.
type ContentBroadcaster interface {
	BroadcastToTopic(topic string, message interface{})
}

type contentUpdate struct {
	Type       string `json:"type"`
	Collection string `json:"collection"`
	ID         string `json:"id"`
}

// ContentService owns create/delete/list/lookup over the four published
// collections. Every mutation is written through by the store and announced
// on the CMS topic.
type ContentService interface {
	AddHeroSlide(ctx context.Context, slide models.HeroSlide)
	DeleteHeroSlide(ctx context.Context, id string)
	ListHeroSlides(ctx context.Context) []models.HeroSlide

	AddPublicEvent(ctx context.Context, event models.PublicEvent)
	DeletePublicEvent(ctx context.Context, id string)
	ListPublicEvents(ctx context.Context) []models.PublicEvent
	GetPublicEvent(ctx context.Context, id string) (models.PublicEvent, error)

	AddGalleryAlbum(ctx context.Context, album models.GalleryAlbum)
	DeleteGalleryAlbum(ctx context.Context, id string)
	ListGalleryAlbums(ctx context.Context) []models.GalleryAlbum

	AddBlogPost(ctx context.Context, post models.BlogPost)
	DeleteBlogPost(ctx context.Context, id string)
	ListBlogPosts(ctx context.Context) []models.BlogPost
	GetBlogPost(ctx context.Context, id string) (models.BlogPost, error)
}

type contentService struct {
	store *store.Store
	hub   ContentBroadcaster
}

func NewContentService(st *store.Store, hub ContentBroadcaster) ContentService {
	return &contentService{store: st, hub: hub}
}

func (s *contentService) announce(kind, collection, id string) {
	if s.hub == nil {
		return
	}
	s.hub.BroadcastToTopic(CMSTopic, contentUpdate{Type: kind, Collection: collection, ID: id})
}

func (s *contentService) AddHeroSlide(ctx context.Context, slide models.HeroSlide) {
	s.store.AddHeroSlide(ctx, slide)
	s.announce("CONTENT_ADDED", "heroSlides", slide.ID)
}

func (s *contentService) DeleteHeroSlide(ctx context.Context, id string) {
	s.store.RemoveHeroSlide(ctx, id)
	s.announce("CONTENT_REMOVED", "heroSlides", id)
}

func (s *contentService) ListHeroSlides(ctx context.Context) []models.HeroSlide {
	return s.store.HeroSlides()
}

func (s *contentService) AddPublicEvent(ctx context.Context, event models.PublicEvent) {
	s.store.AddPublicEvent(ctx, event)
	s.announce("CONTENT_ADDED", "publicEvents", event.ID)
}

func (s *contentService) DeletePublicEvent(ctx context.Context, id string) {
	s.store.RemovePublicEvent(ctx, id)
	s.announce("CONTENT_REMOVED", "publicEvents", id)
}

func (s *contentService) ListPublicEvents(ctx context.Context) []models.PublicEvent {
	return s.store.PublicEvents()
}

func (s *contentService) GetPublicEvent(ctx context.Context, id string) (models.PublicEvent, error) {
	event, ok := s.store.FindPublicEvent(id)
	if !ok {
		return models.PublicEvent{}, ErrEventNotFound
	}
	return event, nil
}

func (s *contentService) AddGalleryAlbum(ctx context.Context, album models.GalleryAlbum) {
	s.store.AddGalleryAlbum(ctx, album)
	s.announce("CONTENT_ADDED", "galleryAlbums", album.ID)
}

func (s *contentService) DeleteGalleryAlbum(ctx context.Context, id string) {
	s.store.RemoveGalleryAlbum(ctx, id)
	s.announce("CONTENT_REMOVED", "galleryAlbums", id)
}

func (s *contentService) ListGalleryAlbums(ctx context.Context) []models.GalleryAlbum {
	return s.store.GalleryAlbums()
}

func (s *contentService) AddBlogPost(ctx context.Context, post models.BlogPost) {
	s.store.AddBlogPost(ctx, post)
	s.announce("CONTENT_ADDED", "blogPosts", post.ID)
}

func (s *contentService) DeleteBlogPost(ctx context.Context, id string) {
	s.store.RemoveBlogPost(ctx, id)
	s.announce("CONTENT_REMOVED", "blogPosts", id)
}

func (s *contentService) ListBlogPosts(ctx context.Context) []models.BlogPost {
	return s.store.BlogPosts()
}

func (s *contentService) GetBlogPost(ctx context.Context, id string) (models.BlogPost, error) {
	post, ok := s.store.FindBlogPost(id)
	if !ok {
		return models.BlogPost{}, ErrBlogPostNotFound
	}
	return post, nil
}
