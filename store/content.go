package store

import (
	"context"

	"github.com/ssfi-digital/federation-portal/models"
)

// Collection mutators. The store does not generate or validate ids: id
// assignment is the caller's responsibility. When two entries share an id,
// lookups and removals operate on the first match.

func (s *Store) AddHeroSlide(ctx context.Context, slide models.HeroSlide) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.HeroSlides = append(s.snap.HeroSlides, slide)
	s.persist(ctx)
}

// RemoveHeroSlide removes the first slide with the given id. Removing an
// absent id leaves the collection unchanged.
func (s *Store) RemoveHeroSlide(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, slide := range s.snap.HeroSlides {
		if slide.ID == id {
			s.snap.HeroSlides = append(s.snap.HeroSlides[:i], s.snap.HeroSlides[i+1:]...)
			break
		}
	}
	s.persist(ctx)
}

func (s *Store) HeroSlides() []models.HeroSlide {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.HeroSlide(nil), s.snap.HeroSlides...)
}

func (s *Store) FindHeroSlide(id string) (models.HeroSlide, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, slide := range s.snap.HeroSlides {
		if slide.ID == id {
			return slide, true
		}
	}
	return models.HeroSlide{}, false
}

func (s *Store) AddPublicEvent(ctx context.Context, event models.PublicEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.PublicEvents = append(s.snap.PublicEvents, event)
	s.persist(ctx)
}

func (s *Store) RemovePublicEvent(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, event := range s.snap.PublicEvents {
		if event.ID == id {
			s.snap.PublicEvents = append(s.snap.PublicEvents[:i], s.snap.PublicEvents[i+1:]...)
			break
		}
	}
	s.persist(ctx)
}

func (s *Store) PublicEvents() []models.PublicEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.PublicEvent(nil), s.snap.PublicEvents...)
}

func (s *Store) FindPublicEvent(id string) (models.PublicEvent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, event := range s.snap.PublicEvents {
		if event.ID == id {
			return event, true
		}
	}
	return models.PublicEvent{}, false
}

func (s *Store) AddGalleryAlbum(ctx context.Context, album models.GalleryAlbum) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.GalleryAlbums = append(s.snap.GalleryAlbums, album)
	s.persist(ctx)
}

func (s *Store) RemoveGalleryAlbum(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, album := range s.snap.GalleryAlbums {
		if album.ID == id {
			s.snap.GalleryAlbums = append(s.snap.GalleryAlbums[:i], s.snap.GalleryAlbums[i+1:]...)
			break
		}
	}
	s.persist(ctx)
}

func (s *Store) GalleryAlbums() []models.GalleryAlbum {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.GalleryAlbum(nil), s.snap.GalleryAlbums...)
}

func (s *Store) FindGalleryAlbum(id string) (models.GalleryAlbum, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, album := range s.snap.GalleryAlbums {
		if album.ID == id {
			return album, true
		}
	}
	return models.GalleryAlbum{}, false
}

func (s *Store) AddBlogPost(ctx context.Context, post models.BlogPost) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.BlogPosts = append(s.snap.BlogPosts, post)
	s.persist(ctx)
}

func (s *Store) RemoveBlogPost(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, post := range s.snap.BlogPosts {
		if post.ID == id {
			s.snap.BlogPosts = append(s.snap.BlogPosts[:i], s.snap.BlogPosts[i+1:]...)
			break
		}
	}
	s.persist(ctx)
}

func (s *Store) BlogPosts() []models.BlogPost {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.BlogPost, len(s.snap.BlogPosts))
	for i, post := range s.snap.BlogPosts {
		post.Tags = append([]string(nil), post.Tags...)
		out[i] = post
	}
	return out
}

func (s *Store) FindBlogPost(id string) (models.BlogPost, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, post := range s.snap.BlogPosts {
		if post.ID == id {
			post.Tags = append([]string(nil), post.Tags...)
			return post, true
		}
	}
	return models.BlogPost{}, false
}
