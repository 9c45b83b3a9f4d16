package main

import (
	"context"
	"log/slog"
	"os"

	"zerowaste/config"
	"zerowaste/internal/delivery"
	"zerowaste/internal/delivery/api"
	"zerowaste/internal/delivery/api/middleware"
	"zerowaste/internal/delivery/api/router/handler"
	"zerowaste/internal/infra/auth"
	logs "zerowaste/internal/infra/log"
	"zerowaste/internal/infra/mail"
	"zerowaste/internal/infra/payment"
	"zerowaste/internal/infra/persistence"
	"zerowaste/internal/infra/pubsub"
	"zerowaste/internal/infra/qrcode"
	"zerowaste/internal/infra/ratelimit"
	"zerowaste/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
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
			persistence.New,
		),
		pubsub.Module,
		ratelimit.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			mail.NewSender,
			mail.NewAccountMailer,
			payment.NewPaystackGateway,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewBookingService,
			impl.NewPaymentService,
			impl.NewReviewService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewBookingHandler,
			handler.NewReviewHandler,
			handler.NewPaymentHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
