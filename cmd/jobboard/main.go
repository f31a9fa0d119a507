package main

import (
	"context"
	"log/slog"
	"os"

	"jobboard/config"
	"jobboard/internal/delivery"
	"jobboard/internal/delivery/http"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/delivery/http/router/handler"
	"jobboard/internal/infra/api"
	"jobboard/internal/infra/auth"
	logs "jobboard/internal/infra/log"
	"jobboard/internal/infra/persistence/sqlite"
	"jobboard/internal/infra/transport"
	"jobboard/internal/infra/validation"
	"jobboard/internal/usecase"
	"jobboard/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type sessionParams struct {
	fx.In
	fx.Lifecycle

	Session   usecase.SessionUsecase
	Transport *transport.Client
	Logger    *slog.Logger
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			bindSession,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		sqlite.New,
		validation.New,
		transport.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			sqlite.NewSessionRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTInspector,
			api.NewIdentityClient,
			api.NewListingClient,
			api.NewApplicationClient,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewAuthGate,
			impl.NewCatalogService,
			impl.NewApplicationService,
			impl.NewDashboardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewGateMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewJobHandler,
			handler.NewApplicationHandler,
			handler.NewDashboardHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// bindSession lets the transport sign requests with the session and restores
// the persisted session before the gateway starts serving.
func bindSession(ctx context.Context, params sessionParams) error {
	params.Transport.UseCredentials(params.Session)

	unsubscribe := params.Session.OnSessionExpired(func() {
		params.Logger.Warn("Session expired, sign in again")
	})
	params.Append(fx.StopHook(unsubscribe))

	return params.Session.Restore(ctx)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
