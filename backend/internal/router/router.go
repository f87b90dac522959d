package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/leerobin22/forum-api/backend/internal/setup"
	mw "github.com/leerobin22/forum-api/shared/middleware"
	"github.com/leerobin22/forum-api/shared/middleware/metrics"
)

// New creates and configures a chi router with all the routes.
// Limiters set with Use limit requests for all endpoints of that group combined.
func New(deps *setup.Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.Public.CorsOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	}))
	r.Use(mw.SecurityHeaders(deps.Config.Public.HTTPS))
	r.Use(metrics.Middleware)
	r.Use(mw.RequestLogger)

	h := deps.Handler

	// probes stay outside the global limiter
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Group(func(r chi.Router) {
		r.Use(mw.GlobalRateLimit(deps.GlobalLimiter))

		r.Get("/threads/{threadId}", h.GetThread)

		r.Group(func(r chi.Router) {
			r.Use(deps.AuthMiddleware.NeedAuth())
			r.Use(mw.RateLimit(deps.WriteLimiter, mw.GetUserIDFromContext))

			r.Post("/threads", h.CreateThread)
			r.Route("/threads/{threadId}/comments", func(r chi.Router) {
				r.Post("/", h.CreateComment)
				r.Delete("/{commentId}", h.DeleteComment)
				r.Put("/{commentId}/likes", h.LikeComment)
				r.Post("/{commentId}/replies", h.CreateReply)
				r.Delete("/{commentId}/replies/{replyId}", h.DeleteReply)
			})
		})
	})

	return r
}
