package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ssfi-digital/federation-portal/handlers"
	"github.com/ssfi-digital/federation-portal/middleware"
	"github.com/ssfi-digital/federation-portal/models"
)

// SetupRoutes wires the public browsing surface, the registration flow, the
// authenticated dashboard and the NationalAdmin-only CMS onto the router.
func SetupRoutes(
	router *chi.Mux,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	eventsHandler *handlers.EventsHandler,
	contentHandler *handlers.ContentHandler,
	registrationHandler *handlers.RegistrationHandler,
	paymentHandler *handlers.PaymentHandler,
	dashboardHandler *handlers.DashboardHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authenticate := middleware.Authenticate([]byte(jwtSecret))

	router.Route("/api/v1", func(r chi.Router) {
		// Public browsing surface.
		r.Get("/hero", eventsHandler.ListHeroSlides)
		r.Get("/events", eventsHandler.ListEvents)
		r.Get("/events/{id}", eventsHandler.GetEvent)
		r.Get("/gallery", eventsHandler.ListGalleryAlbums)
		r.Get("/blogs", eventsHandler.ListBlogPosts)
		r.Get("/blogs/{id}", eventsHandler.GetBlogPost)
		r.Get("/meta/states", eventsHandler.ListStates)

		// Session.
		r.Post("/auth/login", authHandler.Login)
		r.Get("/auth/session", authHandler.Session)

		// Student registration: OTP first, then the gated submit.
		r.Route("/register", func(r chi.Router) {
			r.Post("/otp/send", registrationHandler.SendOTP)
			r.Post("/otp/verify", registrationHandler.VerifyOTP)
			r.Post("/submit", registrationHandler.Submit)
			r.Post("/view", registrationHandler.SetRegistrationView)
		})

		// Payment orders for the external checkout widget.
		r.Post("/payments/orders", paymentHandler.CreateOrder)

		// Dashboard: requires a session token.
		r.Group(func(r chi.Router) {
			r.Use(authenticate)

			r.Post("/auth/logout", authHandler.Logout)
			r.Get("/dashboard/menu", dashboardHandler.Menu)
			r.Get("/dashboard/stats", dashboardHandler.Stats)
			r.Post("/dashboard/insight", dashboardHandler.Insight)
			r.With(middleware.RequireRole(models.RoleNationalAdmin)).
				Post("/dashboard/renewals", dashboardHandler.Renewals)
			r.Post("/theme/toggle", dashboardHandler.ToggleTheme)
			r.Get("/ws/cms", webSocketHandler.ServeCMS)

			// CMS: the NationalAdmin is the only role with the cms
			// capability.
			r.Route("/cms", func(r chi.Router) {
				r.Use(middleware.RequireRole(models.RoleNationalAdmin))

				r.Post("/hero", contentHandler.CreateHeroSlide)
				r.Delete("/hero/{id}", contentHandler.DeleteHeroSlide)
				r.Post("/events", contentHandler.CreatePublicEvent)
				r.Delete("/events/{id}", contentHandler.DeletePublicEvent)
				r.Post("/gallery", contentHandler.CreateGalleryAlbum)
				r.Delete("/gallery/{id}", contentHandler.DeleteGalleryAlbum)
				r.Post("/blogs", contentHandler.CreateBlogPost)
				r.Delete("/blogs/{id}", contentHandler.DeleteBlogPost)
				r.Post("/section", contentHandler.SetCMSSection)
				r.Post("/media", contentHandler.UploadMedia)
			})
		})
	})
}
