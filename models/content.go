package models

type EventCategory string

const (
	CategoryNational EventCategory = "National"
	CategoryState    EventCategory = "State"
	CategoryDistrict EventCategory = "District"
	CategoryClub     EventCategory = "Club"
	// CategoryEvent is only valid for gallery albums.
	CategoryEvent EventCategory = "Event"
)

// HeroSlide is one entry of the landing page carousel. Slide order is
// insertion order and drives the rotation.
type HeroSlide struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"imageUrl"`
	CTAText  string `json:"ctaText"`
	CTALink  string `json:"ctaLink"`
}

// PublicEvent is a published calendar entry. Dates are display strings, not
// parsed times: the CMS stores them exactly as the admin typed them.
type PublicEvent struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	Date             string        `json:"date"`
	Location         string        `json:"location"`
	Category         EventCategory `json:"category"`
	ImageURL         string        `json:"imageUrl"`
	RegistrationLink string        `json:"registrationLink,omitempty"`
	Cost             string        `json:"cost,omitempty"`
	Deadline         string        `json:"deadline,omitempty"`
	Time             string        `json:"time,omitempty"`
	Description      string        `json:"description,omitempty"`
	State            string        `json:"state,omitempty"`
	District         string        `json:"district,omitempty"`
}

type GalleryAlbum struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	Category   EventCategory `json:"category"`
	CoverImage string        `json:"coverImage"`
	ImageCount int           `json:"imageCount"`
}

type BlogPost struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Date     string   `json:"date"`
	Author   string   `json:"author"`
	ImageURL string   `json:"imageUrl"`
	Tags     []string `json:"tags"`
	Category string   `json:"category,omitempty"`
}
