package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"backoffice/infras/otel"
	"backoffice/infras/postgres"
	"backoffice/internal/domains/visitor/model"
	"backoffice/shared/constant"
	gDto "backoffice/shared/dto"
	"backoffice/shared/logger"
	gRepo "backoffice/shared/repository"

	"github.com/jmoiron/sqlx"
)

type VisitorLog interface {
	Insert(ctx context.Context, model model.VisitorLog) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.VisitorLog, error)
	GetTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup, suffix string) (model.VisitorLog, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.VisitorLog, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	DailySummary(ctx context.Context, day time.Time) (model.DailySummary, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.VisitorLog]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) VisitorLog {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.VisitorLog](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// dailySummaryQuery aggregates one day of check-ins by visitor type and
// counts who is still inside.
const dailySummaryQuery = `SELECT
	COUNT(*) AS total_visitors,
	COUNT(*) FILTER (WHERE visitor_type = 'guest') AS guest_count,
	COUNT(*) FILTER (WHERE visitor_type = 'patron') AS patron_count,
	COUNT(*) FILTER (WHERE status = 'checked_in') AS currently_checked_in
FROM visitor_logs
WHERE checked_in_at >= $1 AND checked_in_at < $2`

func (repo *repositoryImpl) DailySummary(ctx context.Context, day time.Time) (model.DailySummary, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".visitor_log.DailySummary")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, dailySummaryQuery)

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	summary := model.DailySummary{}

	err := repo.db.Read.GetContext(ctx, &summary, dailySummaryQuery, dayStart, dayEnd)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return summary, fmt.Errorf("failed to get visitor daily summary: %w", err)
	}

	return summary, nil
}
