package models

// Snapshot is the complete persisted application state. It is serialized and
// replaced as one blob under a single storage key on every mutation; there
// are no partial writes.
type Snapshot struct {
	CurrentUser      *User          `json:"currentUser"`
	IsAuthenticated  bool           `json:"isAuthenticated"`
	Theme            string         `json:"theme"`
	HeroSlides       []HeroSlide    `json:"heroSlides"`
	PublicEvents     []PublicEvent  `json:"publicEvents"`
	GalleryAlbums    []GalleryAlbum `json:"galleryAlbums"`
	BlogPosts        []BlogPost     `json:"blogPosts"`
	CMSSection       string         `json:"cmsSection"`
	RegistrationView string         `json:"registrationView"`
}

// Clone returns a deep copy. The store hands copies across its boundary so
// internal slices are never externally mutated.
func (s *Snapshot) Clone() *Snapshot {
	out := *s
	if s.CurrentUser != nil {
		u := *s.CurrentUser
		out.CurrentUser = &u
	}
	out.HeroSlides = append([]HeroSlide(nil), s.HeroSlides...)
	out.PublicEvents = append([]PublicEvent(nil), s.PublicEvents...)
	out.GalleryAlbums = append([]GalleryAlbum(nil), s.GalleryAlbums...)
	out.BlogPosts = make([]BlogPost, len(s.BlogPosts))
	for i, p := range s.BlogPosts {
		p.Tags = append([]string(nil), p.Tags...)
		out.BlogPosts[i] = p
	}
	return &out
}
