package httpserver

import (
	"net/http"
	"time"

	"campus-clubs-go/internal/config"
	"campus-clubs-go/internal/transport/httpserver/handler"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}

	r.NotFound(handler.NotFound)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Get("/home", handlers.Home)
		r.Get("/clubs", handlers.ListClubs)
		r.Get("/clubs/{clubID}", handlers.ClubDetail)
		r.Post("/clubs/{clubID}/join", handlers.JoinClub)
		r.Get("/join-requests/{requestID}", handlers.JoinRequestDetail)
		r.Get("/events", handlers.ListEvents)
		r.Get("/gallery", handlers.SiteGallery)
		r.Get("/search", handlers.Search)
	})

	return r
}
