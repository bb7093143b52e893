package service

import (
	"context"
	"fmt"
	"time"

	"backoffice/config"
	"backoffice/infras/otel"
	"backoffice/infras/postgres"
	"backoffice/internal/domains/visitor/model"
	"backoffice/internal/domains/visitor/model/dto"
	"backoffice/internal/domains/visitor/repository"
	"backoffice/shared"
	"backoffice/shared/cache"
	"backoffice/shared/constant"
	gDto "backoffice/shared/dto"
	"backoffice/shared/failure"
	"backoffice/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheRecentVisitors = "visitor:recent"
	cacheDailySummary   = "visitor:summary"

	defaultRecentLimit = 20
)

type VisitorLog interface {
	CheckIn(ctx context.Context, req dto.CheckInRequest) (dto.VisitorLogResponse, error)
	CheckOut(ctx context.Context, id string) error
	Recent(ctx context.Context, limit int) (dto.GetVisitorLogsResponse, error)
	DailySummary(ctx context.Context, date string) (dto.DailySummaryResponse, error)
}

type serviceImpl struct {
	repo  repository.VisitorLog
	tx    postgres.TxRunner
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.VisitorLog, tx postgres.TxRunner, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) VisitorLog {
	return &serviceImpl{
		repo:  repo,
		tx:    tx,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) CheckIn(ctx context.Context, req dto.CheckInRequest) (res dto.VisitorLogResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	visitor := req.ToModel(user)

	if err = s.repo.Insert(ctx, visitor); err != nil {
		log.Error().Err(err).Msg("failed to check in visitor")

		return res, fmt.Errorf("failed to check in visitor: %w", err)
	}

	res.FromModel(visitor)

	s.invalidate(ctx)

	return res, nil
}

// CheckOut closes an open visit. The row is locked so checking out twice
// concurrently yields a conflict instead of a silent overwrite.
func (s *serviceImpl) CheckOut(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	err = s.tx.WithinTx(ctx, func(tx *sqlx.Tx) error {
		visitor, err := s.repo.GetTx(ctx, tx, filter, "FOR UPDATE")
		if err != nil {
			log.Error().Err(err).Msg("failed to get visitor log")

			return fmt.Errorf("failed to get visitor log: %w", err)
		}

		if visitor.ID == constant.Empty {
			return failure.NotFound("visitor log not found") // nolint:wrapcheck
		}

		if visitor.Status == model.StatusCheckedOut {
			return failure.Conflict("visitor is already checked out") // nolint:wrapcheck
		}

		now := timezone.Now()
		updatedFields := map[string]any{
			model.FieldStatus:        model.StatusCheckedOut,
			model.FieldCheckedOutAt:  now,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}

		if err := s.repo.UpdateTx(ctx, tx, updatedFields, filter); err != nil {
			log.Error().Err(err).Msg("failed to check out visitor")

			return fmt.Errorf("failed to check out visitor: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx)

	return nil
}

// Recent returns the latest visitor activity, newest first.
func (s *serviceImpl) Recent(ctx context.Context, limit int) (res dto.GetVisitorLogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Recent")
	defer scope.End()
	defer scope.TraceIfError(err)

	if limit <= 0 {
		limit = defaultRecentLimit
	}

	cacheKey := shared.BuildCacheKey(cacheRecentVisitors, fmt.Sprintf("%d", limit))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for recent visitors")

		return res, nil
	}

	params := gDto.QueryParams{
		Page:    1,
		Limit:   limit,
		SortBy:  model.FieldCheckedInAt,
		SortDir: gDto.SortDirDesc,
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get recent visitors")

		return res, fmt.Errorf("failed to get recent visitors: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save recent visitors to cache")
		}
	}()

	return res, nil
}

// DailySummary reports one day's visitor totals. An empty date means today
// in the configured timezone.
func (s *serviceImpl) DailySummary(ctx context.Context, date string) (res dto.DailySummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DailySummary")
	defer scope.End()
	defer scope.TraceIfError(err)

	day := timezone.Now()

	if date != "" {
		parsed, err := time.ParseInLocation(constant.DateOnlyFormat, date, day.Location())
		if err != nil {
			log.Error().Err(err).Msg("failed to parse summary date")

			return res, failure.BadRequestFromString("invalid date format") // nolint:wrapcheck
		}

		day = parsed
	}

	dateKey := day.Format(constant.DateOnlyFormat)
	cacheKey := shared.BuildCacheKey(cacheDailySummary, dateKey)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for visitor summary")

		return res, nil
	}

	summary, err := s.repo.DailySummary(ctx, day)
	if err != nil {
		log.Error().Err(err).Msg("failed to get visitor summary")

		return res, fmt.Errorf("failed to get visitor summary: %w", err)
	}

	res = dto.DailySummaryResponse{
		Date:               dateKey,
		TotalVisitors:      summary.TotalVisitors,
		GuestCount:         summary.GuestCount,
		PatronCount:        summary.PatronCount,
		CurrentlyCheckedIn: summary.CurrentlyCheckedIn,
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save visitor summary to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheRecentVisitors)
		shared.InvalidateCaches(c, s.cache, cacheDailySummary)
	}()
}
