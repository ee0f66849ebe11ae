package models

// MenuItem is one navigable dashboard section for a role.
type MenuItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type DashboardStats struct {
	HeroSlidesTotal    int `json:"hero_slides_total"`
	PublicEventsTotal  int `json:"public_events_total"`
	GalleryAlbumsTotal int `json:"gallery_albums_total"`
	BlogPostsTotal     int `json:"blog_posts_total"`
}

type PaymentOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}
