package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

// Routes assembles the full API surface. mediaDir, when non-empty, is
// served read-only under /media for the disk media store.
func (h *Handler) Routes(allowedOrigins []string, mediaDir string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(requestLogger(h.log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("SocialSphere API is running"))
	})

	// Public
	r.Post("/users", h.register)
	r.Post("/sessions", h.login)

	// Authenticated
	r.Group(func(r chi.Router) {
		r.Use(h.auth.Middleware)

		r.Get("/users/me", h.me)
		r.Put("/users/me", h.updateProfile)
		r.Put("/users/me/image", h.updateProfileImage)
		r.Get("/users/{id}", h.getUser)
		r.Post("/users/{id}/follow", h.follow)
		r.Post("/users/{id}/unfollow", h.unfollow)
		r.Get("/users/{id}/followers", h.listFollowers)
		r.Get("/users/{id}/following", h.listFollowing)
		r.Get("/users/{id}/posts", h.authorFeed)

		r.Post("/posts", h.createPost)
		r.Get("/posts", h.homeFeed)
		r.Get("/posts/{id}", h.getPost)
		r.Delete("/posts/{id}", h.deletePost)
		r.Post("/posts/{id}/like", h.toggleLike)
		r.Post("/posts/{id}/comments", h.addComment)
		r.Delete("/posts/{id}/comments/{cid}", h.deleteComment)
	})

	if mediaDir != "" {
		fs := http.StripPrefix("/media/", http.FileServer(http.Dir(mediaDir)))
		r.Get("/media/*", fs.ServeHTTP)
	}

	return r
}

func requestLogger(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			log.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Msg("request")
		})
	}
}
