package models

// DefaultSnapshot returns the state a fresh installation boots with. The
// content below is the federation's launch data set; it is only used when no
// snapshot row exists yet.
func DefaultSnapshot() *Snapshot {
	return &Snapshot{
		CurrentUser:      nil,
		IsAuthenticated:  false,
		Theme:            "dark",
		CMSSection:       "hero",
		RegistrationView: "student",
		HeroSlides: []HeroSlide{
			{
				ID:       "1",
				Title:    "Future Champions on Wheels",
				Subtitle: "Nurturing the next generation of inline skaters. Join our junior development program starting age 4.",
				ImageURL: "/images/hero_kids.jpg",
				CTAText:  "Start Their Journey",
				CTALink:  "/login",
			},
			{
				ID:       "2",
				Title:    "Speed & Precision",
				Subtitle: "Experience the thrill of competitive speed skating. State-of-the-art tracks and world-class coaching.",
				ImageURL: "/images/hero_speed.jpg",
				CTAText:  "Explore Events",
				CTALink:  "/events?category=State",
			},
			{
				ID:       "3",
				Title:    "National Excellence",
				Subtitle: "The official governing body for speed skating in India. Developing athletes for the world stage.",
				ImageURL: "/images/hero_national.jpg",
				CTAText:  "View Rankings",
				CTALink:  "/events?category=National",
			},
		},
		PublicEvents: []PublicEvent{
			{
				ID:               "1",
				Title:            "National Speed Championship",
				Date:             "Oct 15, 2024",
				Location:         "New Delhi",
				Category:         CategoryNational,
				ImageURL:         "/images/hero_national.jpg",
				RegistrationLink: "/events",
				Cost:             "₹2,500",
				Deadline:         "Oct 10, 2024",
				Time:             "08:00 AM - 06:00 PM",
				Description:      "The premier national event of the year. Skaters from all states compete for the national title. Categories include 500m Sprint, 1000m Endurance, and Relay.",
				State:            "Delhi",
				District:         "New Delhi",
			},
			{
				ID:               "2",
				Title:            "Maharashtra State Qualifiers",
				Date:             "Nov 02, 2024",
				Location:         "Pune",
				Category:         CategoryState,
				ImageURL:         "/images/hero_speed.jpg",
				RegistrationLink: "/events",
				Cost:             "₹1,500",
				Deadline:         "Oct 25, 2024",
				Time:             "09:00 AM - 05:00 PM",
				Description:      "Qualifying rounds for the state team selection. Top 3 finishers in each category will proceed to nationals.",
				State:            "Maharashtra",
				District:         "Pune",
			},
			{
				ID:               "3",
				Title:            "Bangalore Club Meet",
				Date:             "Sept 28, 2024",
				Location:         "Bangalore",
				Category:         CategoryClub,
				ImageURL:         "/images/hero_kids.jpg",
				RegistrationLink: "/events",
				Cost:             "₹500",
				Deadline:         "Sept 25, 2024",
				Time:             "07:00 AM - 11:00 AM",
				Description:      "Friendly club meet for beginners and intermediates. A great platform to experience competitive skating.",
				State:            "Karnataka",
				District:         "Bangalore",
			},
		},
		GalleryAlbums: []GalleryAlbum{
			{ID: "1", Title: "National Championship 2023", Category: CategoryNational, CoverImage: "https://images.unsplash.com/photo-1541534741688-6078c6bfb5c5?q=80&w=800&auto=format&fit=crop", ImageCount: 45},
			{ID: "2", Title: "Training Camp - Manali", Category: CategoryClub, CoverImage: "https://images.unsplash.com/photo-1552674605-4694559e5bc7?q=80&w=800&auto=format&fit=crop", ImageCount: 120},
		},
		BlogPosts: []BlogPost{
			{ID: "1", Title: "Top 5 Nutrition Tips for Skaters", Excerpt: "Fuel your body for peak performance with these essential dietary guidelines.", Date: "Aug 12, 2024", Author: "Dr. A. Singh", ImageURL: "https://images.unsplash.com/photo-1511988617509-a57c8a288659?q=80&w=800&auto=format&fit=crop", Category: "Health", Tags: []string{"Nutrition", "Performance"}},
			{ID: "2", Title: "Understanding Wheel Hardness", Excerpt: "A comprehensive guide to choosing the right wheels for different track surfaces.", Date: "July 28, 2024", Author: "Coach Mike", ImageURL: "https://images.unsplash.com/photo-1575470522418-b88b692b8084?q=80&w=800&auto=format&fit=crop", Category: "Equipment", Tags: []string{"Gear", "Technical"}},
		},
	}
}
