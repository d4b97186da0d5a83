//go:build wireinject
// +build wireinject

package di

import (
	"cruisevoyager/config"
	"cruisevoyager/infras/kafka"
	"cruisevoyager/infras/mailer"
	"cruisevoyager/infras/otel"
	"cruisevoyager/infras/payment"
	"cruisevoyager/infras/postgres"
	"cruisevoyager/infras/redis"
	"cruisevoyager/infras/session"
	"cruisevoyager/shared/cache"
	"cruisevoyager/transport/http"
	"cruisevoyager/transport/http/middleware"
	"cruisevoyager/transport/http/router"

	"github.com/google/wire"

	authRepository "cruisevoyager/internal/domains/auth/repository"
	authService "cruisevoyager/internal/domains/auth/service"
	bookingRepository "cruisevoyager/internal/domains/booking/repository"
	bookingService "cruisevoyager/internal/domains/booking/service"
	cruiseRepository "cruisevoyager/internal/domains/cruise/repository"
	cruiseService "cruisevoyager/internal/domains/cruise/service"
	notificationService "cruisevoyager/internal/domains/notification/service"
	paymentService "cruisevoyager/internal/domains/payment/service"
	reviewRepository "cruisevoyager/internal/domains/review/repository"
	reviewService "cruisevoyager/internal/domains/review/service"
	userRepository "cruisevoyager/internal/domains/user/repository"

	authHandler "cruisevoyager/internal/handlers/auth"
	bookingHandler "cruisevoyager/internal/handlers/booking"
	cruiseHandler "cruisevoyager/internal/handlers/cruise"
	paymentHandler "cruisevoyager/internal/handlers/payment"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	session.New,
	payment.New,
	mailer.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var notificationDomain = wire.NewSet(
	notificationService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authRepository.New,
	authService.New,
)

var cruiseDomain = wire.NewSet(
	cruiseRepository.New,
	cruiseService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	paymentService.New,
)

var domains = wire.NewSet(
	notificationDomain,
	authDomain,
	cruiseDomain,
	reviewDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	cruiseHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
