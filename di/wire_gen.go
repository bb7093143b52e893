// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

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
	repository2 "backoffice/internal/domains/auth/repository"
	"backoffice/internal/domains/auth/service"
	repository6 "backoffice/internal/domains/contract/repository"
	service6 "backoffice/internal/domains/contract/service"
	repository5 "backoffice/internal/domains/document/repository"
	service5 "backoffice/internal/domains/document/service"
	repository7 "backoffice/internal/domains/employee/repository"
	service7 "backoffice/internal/domains/employee/service"
	repository3 "backoffice/internal/domains/facility/repository"
	service3 "backoffice/internal/domains/facility/service"
	repository8 "backoffice/internal/domains/invoice/repository"
	service8 "backoffice/internal/domains/invoice/service"
	repository4 "backoffice/internal/domains/reservation/repository"
	service4 "backoffice/internal/domains/reservation/service"
	"backoffice/internal/domains/user/repository"
	service2 "backoffice/internal/domains/user/service"
	repository9 "backoffice/internal/domains/visitor/repository"
	service9 "backoffice/internal/domains/visitor/service"
	"backoffice/internal/handlers/auth"
	"backoffice/internal/handlers/contract"
	"backoffice/internal/handlers/document"
	"backoffice/internal/handlers/employee"
	"backoffice/internal/handlers/facility"
	"backoffice/internal/handlers/invoice"
	"backoffice/internal/handlers/reservation"
	"backoffice/internal/handlers/user"
	"backoffice/internal/handlers/visitor"
	"backoffice/permissions"
	"backoffice/shared/cache"
	"backoffice/transport/http"
	"backoffice/transport/http/middleware"
	"backoffice/transport/http/router"
	"github.com/google/wire"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	repositoryUser := repository.New(connection, otelOtel)
	verification := repository2.New(connection, otelOtel)
	jwtJWT := jwt.New(configConfig)
	mailerMailer := mailer.New(configConfig, otelOtel)
	serviceAuth := service.New(repositoryUser, verification, configConfig, otelOtel, jwtJWT, mailerMailer)
	handler := auth.New(serviceAuth, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	serviceUser := service2.New(repositoryUser, configConfig, redisCache, otelOtel)
	userHandler := user.New(serviceUser, otelOtel)
	repositoryFacility := repository3.New(connection, otelOtel)
	serviceFacility := service3.New(repositoryFacility, configConfig, redisCache, otelOtel)
	facilityHandler := facility.New(serviceFacility, otelOtel)
	repositoryReservation := repository4.New(connection, otelOtel)
	publisher := kafka.New(configConfig)
	serviceReservation := service4.New(repositoryReservation, repositoryFacility, connection, configConfig, redisCache, otelOtel, publisher)
	reservationHandler := reservation.New(serviceReservation, otelOtel)
	repositoryDocument := repository5.New(connection, otelOtel)
	s3S3 := s3.New(configConfig, otelOtel)
	serviceDocument := service5.New(repositoryDocument, configConfig, redisCache, otelOtel, s3S3)
	documentHandler := document.New(serviceDocument, otelOtel)
	repositoryContract := repository6.New(connection, otelOtel)
	serviceContract := service6.New(repositoryContract, configConfig, redisCache, otelOtel)
	contractHandler := contract.New(serviceContract, otelOtel)
	repositoryEmployee := repository7.New(connection, otelOtel)
	serviceEmployee := service7.New(repositoryEmployee, configConfig, redisCache, otelOtel)
	employeeHandler := employee.New(serviceEmployee, otelOtel)
	repositoryInvoice := repository8.New(connection, otelOtel)
	serviceInvoice := service8.New(repositoryInvoice, connection, configConfig, redisCache, otelOtel)
	invoiceHandler := invoice.New(serviceInvoice, otelOtel)
	visitorLog := repository9.New(connection, otelOtel)
	serviceVisitorLog := service9.New(visitorLog, connection, configConfig, redisCache, otelOtel)
	visitorHandler := visitor.New(serviceVisitorLog, otelOtel)
	domainHandlers := router.DomainHandlers{
		Auth:        handler,
		User:        userHandler,
		Facility:    facilityHandler,
		Reservation: reservationHandler,
		Document:    documentHandler,
		Contract:    contractHandler,
		Employee:    employeeHandler,
		Invoice:     invoiceHandler,
		Visitor:     visitorHandler,
	}
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	permissionData := permissions.Get()
	authRole := middleware.NewAuthRoleMiddleware(jwtJWT, otelOtel, permissionData, configConfig)
	routerRouter := router.New(domainHandlers, appMiddleware, authRole, configConfig)
	httpHTTP := http.New(configConfig, connection, routerRouter)
	return httpHTTP
}

// wire.go:

var configurations = wire.NewSet(config.Get, permissions.Get)

var infrastructures = wire.NewSet(postgres.New, wire.Bind(new(postgres.TxRunner), new(*postgres.Connection)), otel.New, redis.New, jwt.New, s3.New, kafka.New, mailer.New)

var middlewares = wire.NewSet(middleware.NewAppMiddleware, middleware.NewAuthRoleMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache)

var authDomain = wire.NewSet(repository.New, repository2.New, service.New, service2.New)

var facilityDomain = wire.NewSet(repository3.New, service3.New)

var reservationDomain = wire.NewSet(repository4.New, service4.New)

var documentDomain = wire.NewSet(repository5.New, service5.New)

var contractDomain = wire.NewSet(repository6.New, service6.New)

var employeeDomain = wire.NewSet(repository7.New, service7.New)

var invoiceDomain = wire.NewSet(repository8.New, service8.New)

var visitorDomain = wire.NewSet(repository9.New, service9.New)

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

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), auth.New, user.New, facility.New, reservation.New, document.New, contract.New, employee.New, invoice.New, visitor.New, router.New)
