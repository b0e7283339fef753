package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/leggettc18/devmarks/internal/api/docs"
	"github.com/leggettc18/devmarks/internal/api/handlers"
	mw "github.com/leggettc18/devmarks/internal/api/middleware"
)

const defaultMaxBodyBytes = 1 << 20

type Dependencies struct {
	HMACSecret       []byte
	RateLimitRPS     float64
	RateLimitBurst   int
	MaxBodyBytes     int64
	Metrics          *mw.Metrics
	HealthHandler    *handlers.HealthHandler
	AuthHandler      *handlers.AuthHandler
	BookmarksHandler *handlers.BookmarksHandler
	FoldersHandler   *handlers.FoldersHandler
}

func NewRouter(dep Dependencies) http.Handler {
	if dep.Metrics == nil {
		dep.Metrics = mw.NewMetrics()
	}
	if dep.HealthHandler == nil {
		dep.HealthHandler = handlers.NewHealthHandler()
	}
	if dep.MaxBodyBytes <= 0 {
		dep.MaxBodyBytes = defaultMaxBodyBytes
	}
	if dep.RateLimitRPS <= 0 {
		dep.RateLimitRPS = 10
	}
	if dep.RateLimitBurst <= 0 {
		dep.RateLimitBurst = 20
	}

	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(chimid.StripSlashes)
	r.Use(mw.Logging)
	r.Use(dep.Metrics.Instrument)
	r.Use(mw.CORS)
	r.Use(mw.RateLimit(dep.RateLimitRPS, dep.RateLimitBurst))
	r.Use(chimid.Compress(5))
	r.Use(mw.BodyLimit(dep.MaxBodyBytes))

	r.Get("/healthz", dep.HealthHandler.Liveness)
	r.Get("/readyz", dep.HealthHandler.Readiness)
	r.Method(http.MethodGet, "/metrics", dep.Metrics.Handler())

	r.Get("/static/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(docs.OpenAPI)
	})
	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/static/openapi.yml")))

	r.Post("/auth/token", dep.AuthHandler.Token)
	r.Post("/users", dep.AuthHandler.Register)

	r.Group(func(protected chi.Router) {
		protected.Use(mw.Auth(dep.HMACSecret))

		protected.Get("/me", dep.AuthHandler.Me)

		protected.Route("/bookmarks", func(br chi.Router) {
			br.Get("/", dep.BookmarksHandler.List)
			br.Post("/", dep.BookmarksHandler.Create)
			br.Get("/{id}", dep.BookmarksHandler.Get)
			br.Patch("/{id}", dep.BookmarksHandler.Update)
			br.Delete("/{id}", dep.BookmarksHandler.Delete)
		})

		protected.Route("/folders", func(fr chi.Router) {
			fr.Get("/", dep.FoldersHandler.List)
			fr.Post("/", dep.FoldersHandler.Create)
			fr.Get("/{id}", dep.FoldersHandler.Get)
			fr.Patch("/{id}/bookmarks/{bookmarkID}", dep.FoldersHandler.AddBookmark)
		})
	})

	return r
}
