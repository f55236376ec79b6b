package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"constraintsvc/internal/adapters/http/health"
	"constraintsvc/internal/adapters/http/schema"
	"constraintsvc/internal/config"
	"constraintsvc/internal/platform/logger"
	"constraintsvc/internal/platform/metrics"
	platformMiddleware "constraintsvc/internal/platform/middleware"
)

type RouterDependencies struct {
	Config           *config.HttpConfig
	Logger           logger.Logger
	SchemaHandler    *schema.Handler
	LivenessHandler  *health.LivenessHandler
	ReadinessHandler *health.ReadinessHandler
	VersionHandler   *health.VersionHandler
	MetricsProvider  *metrics.Provider
}

func NewRouter(deps RouterDependencies) http.Handler {
	cfg := deps.Config
	log := deps.Logger
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(platformMiddleware.RequestLogger(log))
	r.Use(platformMiddleware.MetricsMiddleware(deps.MetricsProvider))
	r.Use(platformMiddleware.Recovery(log))
	r.Use(middleware.StripSlashes)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	r.Use(httprate.LimitAll(cfg.RateLimit.GlobalRequests, cfg.RateLimit.GlobalWindow))
	r.Use(httprate.LimitByIP(cfg.RateLimit.RequestsPerIP, cfg.RateLimit.IPWindow))

	r.Get("/health/live", deps.LivenessHandler.Check)
	r.Get("/health/ready", deps.ReadinessHandler.Check)
	r.Get("/version", deps.VersionHandler.Get)

	r.Handle("/metrics", deps.MetricsProvider.Handler())

	r.Route("/api", func(apiRouter chi.Router) {
		apiRouter.Use(middleware.AllowContentType("application/json"))

		apiRouter.Route("/schemas", func(schemaRouter chi.Router) {
			schemaRouter.Post("/", ErrorHandler(deps.SchemaHandler.CreateSchema))
			schemaRouter.Get("/", ErrorHandler(deps.SchemaHandler.ListSchemas))
			schemaRouter.Get("/{id}", ErrorHandler(deps.SchemaHandler.GetSchema))
			schemaRouter.Delete("/{id}", ErrorHandler(deps.SchemaHandler.DeleteSchema))
			schemaRouter.Post("/{id}/validate", ErrorHandler(deps.SchemaHandler.Validate))
		})
		apiRouter.Post("/validate", ErrorHandler(deps.SchemaHandler.ValidateInline))
	})

	return r
}
