package web

import (
	"log/slog"
	"net/http"

	"github.com/kobune/eightatena/internal/company"
	"github.com/kobune/eightatena/internal/dict"
	"github.com/kobune/eightatena/internal/kana"
	"github.com/kobune/eightatena/internal/web/handlers"
	"github.com/kobune/eightatena/internal/web/middleware"
)

type Router struct {
	store         *dict.Store
	tr            kana.Transliterator
	opts          company.Options
	adminPassword string
	log           *slog.Logger
}

func NewRouter(store *dict.Store, tr kana.Transliterator, opts company.Options, adminPassword string, log *slog.Logger) *Router {
	return &Router{
		store:         store,
		tr:            tr,
		opts:          opts,
		adminPassword: adminPassword,
		log:           log,
	}
}

func (r *Router) Handler() http.Handler {
	mux := http.NewServeMux()

	convertHandler := handlers.NewConvertHandler(r.store, r.tr, r.opts, r.log)

	rateLimiter := middleware.NewRateLimiter(30, 60)

	mux.Handle("POST /api/v1/convert",
		middleware.Chain(
			http.HandlerFunc(convertHandler.Convert),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.RateLimit(rateLimiter),
		),
	)

	mux.Handle("GET /api/v1/versions",
		middleware.Chain(
			http.HandlerFunc(convertHandler.Versions),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
		),
	)

	mux.Handle("POST /api/v1/reload",
		middleware.Chain(
			http.HandlerFunc(convertHandler.Reload),
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.BasicAuth(r.adminPassword),
		),
	)

	return middleware.CORS(mux)
}
