package main

import (
	"context"
	"log/slog"
	"os"

	"mallconsole/config"
	"mallconsole/internal/console"
	"mallconsole/internal/console/view"
	"mallconsole/internal/delivery"
	"mallconsole/internal/delivery/http"
	"mallconsole/internal/delivery/http/middleware"
	"mallconsole/internal/delivery/http/router/handler"
	"mallconsole/internal/infra/auth"
	"mallconsole/internal/infra/firebase"
	"mallconsole/internal/infra/identity"
	logs "mallconsole/internal/infra/log"
	"mallconsole/internal/infra/persistence"
	"mallconsole/internal/infra/pubsub"
	"mallconsole/internal/infra/qrcode"
	"mallconsole/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectConsole(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		firebase.Module,
	)
}

func injectRepo() fx.Option {
	return persistence.Module
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			auth.NewBcryptHasher,
			identity.NewProvider,
			qrcode.NewQRCodeService,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewShopService,
			impl.NewProductService,
			impl.NewOfferService,
			impl.NewIdentityGatewayFactory,
		),
	)
}

func injectConsole() fx.Option {
	return fx.Options(
		fx.Provide(
			console.NewRegistry,
			view.NewRenderer,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewPageHandler,
			handler.NewShopHandler,
			handler.NewProductHandler,
			handler.NewOfferHandler,
			handler.NewCatalogHandler,
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
