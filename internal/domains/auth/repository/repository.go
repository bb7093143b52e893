package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"backoffice/infras/otel"
	"backoffice/infras/postgres"
	"backoffice/internal/domains/auth/model"
	gDto "backoffice/shared/dto"
	gRepo "backoffice/shared/repository"
)

type Verification interface {
	Insert(ctx context.Context, model model.EmailVerification) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.EmailVerification, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.EmailVerification]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Verification {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.EmailVerification](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
