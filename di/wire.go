//go:build wireinject
// +build wireinject

package di

import (
	"backoffice/config"
	"backoffice/infras/jwt"
	"backoffice/infras/kafka"
	"backoffice/infras/mailer"
	"backoffice/infras/otel"
	"backoffice/infras/postgres"
	"backoffice/infras/redis"
	"backoffice/infras/s3"
	"backoffice/permissions"
	"backoffice/shared/cache"
	"backoffice/transport/http"
	"backoffice/transport/http/middleware"
	"backoffice/transport/http/router"

	authRepository "backoffice/internal/domains/auth/repository"
	authService "backoffice/internal/domains/auth/service"
	contractRepository "backoffice/internal/domains/contract/repository"
	contractService "backoffice/internal/domains/contract/service"
	documentRepository "backoffice/internal/domains/document/repository"
	documentService "backoffice/internal/domains/document/service"
	employeeRepository "backoffice/internal/domains/employee/repository"
	employeeService "backoffice/internal/domains/employee/service"
	facilityRepository "backoffice/internal/domains/facility/repository"
	facilityService "backoffice/internal/domains/facility/service"
	invoiceRepository "backoffice/internal/domains/invoice/repository"
	invoiceService "backoffice/internal/domains/invoice/service"
	reservationRepository "backoffice/internal/domains/reservation/repository"
	reservationService "backoffice/internal/domains/reservation/service"
	userRepository "backoffice/internal/domains/user/repository"
	userService "backoffice/internal/domains/user/service"
	visitorRepository "backoffice/internal/domains/visitor/repository"
	visitorService "backoffice/internal/domains/visitor/service"

	authHandler "backoffice/internal/handlers/auth"
	contractHandler "backoffice/internal/handlers/contract"
	documentHandler "backoffice/internal/handlers/document"
	employeeHandler "backoffice/internal/handlers/employee"
	facilityHandler "backoffice/internal/handlers/facility"
	invoiceHandler "backoffice/internal/handlers/invoice"
	reservationHandler "backoffice/internal/handlers/reservation"
	userHandler "backoffice/internal/handlers/user"
	visitorHandler "backoffice/internal/handlers/visitor"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(postgres.TxRunner), new(*postgres.Connection)),
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
	mailer.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authRepository.New,
	authService.New,
	userService.New,
)

var facilityDomain = wire.NewSet(
	facilityRepository.New,
	facilityService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var documentDomain = wire.NewSet(
	documentRepository.New,
	documentService.New,
)

var contractDomain = wire.NewSet(
	contractRepository.New,
	contractService.New,
)

var employeeDomain = wire.NewSet(
	employeeRepository.New,
	employeeService.New,
)

var invoiceDomain = wire.NewSet(
	invoiceRepository.New,
	invoiceService.New,
)

var visitorDomain = wire.NewSet(
	visitorRepository.New,
	visitorService.New,
)

var domains = wire.NewSet(
	authDomain,
	facilityDomain,
	reservationDomain,
	documentDomain,
	contractDomain,
	employeeDomain,
	invoiceDomain,
	visitorDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	facilityHandler.New,
	reservationHandler.New,
	documentHandler.New,
	contractHandler.New,
	employeeHandler.New,
	invoiceHandler.New,
	visitorHandler.New,
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
