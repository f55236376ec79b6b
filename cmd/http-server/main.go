package main

import (
	"go.uber.org/fx"

	"constraintsvc/internal/adapters/health"
	httpAdapter "constraintsvc/internal/adapters/http"
	healthHttp "constraintsvc/internal/adapters/http/health"
	schemaHandler "constraintsvc/internal/adapters/http/schema"
	"constraintsvc/internal/adapters/schemadoc"
	"constraintsvc/internal/adapters/validator"
	"constraintsvc/internal/config"
	schemaDomain "constraintsvc/internal/core/domain/schema"
	"constraintsvc/internal/core/domain/validation"
	"constraintsvc/internal/core/domain/validation/builtin"
	"constraintsvc/internal/core/ports"
	schemaUseCase "constraintsvc/internal/core/usecase/schema"
	platformHealth "constraintsvc/internal/platform/health"
	"constraintsvc/internal/platform/logger"
	"constraintsvc/internal/platform/metrics"
	"constraintsvc/internal/version"
)

func main() {
	fx.New(appModule).Run()
}

var appModule = fx.Options(
	// Platform
	fx.Provide(config.LoadBase),
	fx.Provide(config.LoadHttp),
	fx.Provide(config.LoadValidation),
	fx.Provide(func(cfg *config.BaseConfig) logger.Config {
		return cfg.LoggerConfig()
	}),
	fx.Provide(logger.NewZapLogger),
	fx.Provide(validator.NewPlaygroundAdapter),
	fx.Provide(metrics.NewProvider),
	fx.Provide(func(p *metrics.Provider) ports.ValidationRecorder { return p }),

	// Schema store and its health checks
	fx.Provide(provideStore),
	fx.Provide(fx.Annotate(
		func(repo ports.SchemaRepository) platformHealth.Checker {
			return health.NewStoreChecker(repo, "schema_store")
		},
		fx.ResultTags(`group:"health_checkers"`),
	)),
	fx.Provide(fx.Annotate(
		func(checkers []platformHealth.Checker) *platformHealth.Manager {
			m := platformHealth.NewManager()
			for _, checker := range checkers {
				m.Register(checker)
			}
			return m
		},
		fx.ParamTags(`group:"health_checkers"`),
		fx.As(new(platformHealth.ManagerInterface)),
	)),

	// Validation engine
	fx.Provide(builtin.Registry),
	fx.Provide(func(registry *validation.Registry) *validation.Engine {
		return validation.NewEngine(registry)
	}),
	fx.Provide(fx.Annotate(schemadoc.NewDecoder, fx.As(new(ports.DocumentDecoder)))),
	fx.Provide(fx.Annotate(schemaDomain.NewService, fx.As(new(schemaUseCase.SchemaChecker)))),
	fx.Provide(fx.Annotate(schemaUseCase.NewUsecase, fx.As(new(schemaHandler.Manager)))),

	// HTTP Server
	fx.Provide(httpAdapter.NewServer),
	fx.Provide(httpAdapter.NewRouter),
	fx.Provide(schemaHandler.NewHandler),
	fx.Provide(version.Info),
	fx.Provide(healthHttp.NewLivenessHandler),
	fx.Provide(healthHttp.NewVersionHandler),
	fx.Provide(healthHttp.NewReadinessHandler),
	fx.Provide(func(
		cfg *config.HttpConfig,
		log logger.Logger,
		schemas *schemaHandler.Handler,
		liveness *healthHttp.LivenessHandler,
		readiness *healthHttp.ReadinessHandler,
		ver *healthHttp.VersionHandler,
		metrics *metrics.Provider,
	) httpAdapter.RouterDependencies {
		return httpAdapter.RouterDependencies{
			Config:           cfg,
			Logger:           log,
			SchemaHandler:    schemas,
			LivenessHandler:  liveness,
			ReadinessHandler: readiness,
			VersionHandler:   ver,
			MetricsProvider:  metrics,
		}
	}),

	// Lifecycle Hooks
	fx.Invoke(func(lc fx.Lifecycle, srv *httpAdapter.Server) {
		lc.Append(fx.Hook{
			OnStart: srv.Start,
			OnStop:  srv.Stop,
		})
	}),
)
