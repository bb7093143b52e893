package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"backoffice/infras/otel"
	"backoffice/infras/postgres"
	"backoffice/internal/domains/reservation/model"
	"backoffice/shared/constant"
	gDto "backoffice/shared/dto"
	"backoffice/shared/logger"
	gRepo "backoffice/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Reservation interface {
	Insert(ctx context.Context, model model.Reservation) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Reservation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup, suffix string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	HasConflict(ctx context.Context, facilityID string, eventDate, startTime, endTime time.Time) (bool, error)
	HasConflictTx(ctx context.Context, tx *sqlx.Tx, facilityID string, eventDate, startTime, endTime time.Time) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// conflictQuery implements the half-open interval overlap test: an existing
// blocking reservation conflicts when it starts before the candidate ends and
// ends after the candidate starts. Slots that merely touch do not conflict.
const conflictQuery = `SELECT EXISTS(
	SELECT 1 FROM reservations
	WHERE facility_id = $1
	  AND event_date = $2
	  AND status IN ('pending', 'confirmed')
	  AND start_time < $4
	  AND end_time > $3
)`

func (repo *repositoryImpl) HasConflict(ctx context.Context, facilityID string, eventDate, startTime, endTime time.Time) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.HasConflict")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, conflictQuery)

	conflict := false

	err := repo.db.Read.GetContext(ctx, &conflict, conflictQuery, facilityID, eventDate, startTime, endTime)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check reservation conflict: %w", err)
	}

	return conflict, nil
}

func (repo *repositoryImpl) HasConflictTx(ctx context.Context, tx *sqlx.Tx, facilityID string, eventDate, startTime, endTime time.Time) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.HasConflictTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, conflictQuery)

	conflict := false

	err := tx.GetContext(ctx, &conflict, conflictQuery, facilityID, eventDate, startTime, endTime)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check reservation conflict: %w", err)
	}

	return conflict, nil
}
