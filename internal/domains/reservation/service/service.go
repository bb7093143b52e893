package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"backoffice/config"
	"backoffice/infras/kafka"
	"backoffice/infras/otel"
	"backoffice/infras/postgres"
	fModel "backoffice/internal/domains/facility/model"
	fRepository "backoffice/internal/domains/facility/repository"
	"backoffice/internal/domains/reservation/model"
	"backoffice/internal/domains/reservation/model/dto"
	"backoffice/internal/domains/reservation/repository"
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
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"
	cacheCountReservation  = "reservation:count"

	EventReservationCreated       = "reservation.created"
	EventReservationStatusChanged = "reservation.status_changed"
)

var exportHeader = []string{
	"id", "facility_id", "customer_name", "customer_email", "customer_phone",
	"event_type", "event_date", "start_time", "end_time", "guests_count",
	"special_requirements", "total_amount", "status", "created_at",
}

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	Update(ctx context.Context, req dto.UpdateReservationRequest, id string) error
	UpdateStatus(ctx context.Context, req dto.UpdateReservationStatusRequest, id string) error
	Delete(ctx context.Context, id string) error
	CheckAvailability(ctx context.Context, req dto.CheckAvailabilityRequest) (dto.CheckAvailabilityResponse, error)
	Export(ctx context.Context, filter gDto.FilterGroup, writer io.Writer) error
}

type serviceImpl struct {
	repo         repository.Reservation
	facilityRepo fRepository.Facility
	tx           postgres.TxRunner
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	publisher    kafka.Publisher
}

func New(
	repo repository.Reservation,
	facilityRepo fRepository.Facility,
	tx postgres.TxRunner,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	publisher kafka.Publisher,
) Reservation {
	return &serviceImpl{
		repo:         repo,
		facilityRepo: facilityRepo,
		tx:           tx,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		publisher:    publisher,
	}
}

// Create books a facility slot. The facility row is locked for the whole
// check-then-insert sequence so two concurrent requests for the same slot
// cannot both pass the conflict check.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	eventDate, startTime, endTime, err := req.ParseSchedule()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse reservation schedule")

		return res, failure.BadRequestFromString("invalid date or time format") // nolint:wrapcheck
	}

	if !endTime.After(startTime) {
		return res, failure.BadRequestFromString("end_time must be after start_time") // nolint:wrapcheck
	}

	var reservation model.Reservation

	err = s.tx.WithinTx(ctx, func(tx *sqlx.Tx) error {
		facility, err := s.facilityRepo.GetTx(ctx, tx, shared.FilterByID(req.FacilityID, fModel.FieldID, fModel.TableName), "FOR UPDATE")
		if err != nil {
			log.Error().Err(err).Msg("failed to get facility")

			return fmt.Errorf("failed to get facility: %w", err)
		}

		if facility.ID == constant.Empty {
			return failure.NotFound("facility not found") // nolint:wrapcheck
		}

		if facility.Status != fModel.StatusActive {
			return failure.BadRequestFromString("facility is not active") // nolint:wrapcheck
		}

		if req.GuestsCount > facility.Capacity {
			return failure.BadRequestFromString("guests count exceeds facility capacity") // nolint:wrapcheck
		}

		conflict, err := s.repo.HasConflictTx(ctx, tx, req.FacilityID, eventDate, startTime, endTime)
		if err != nil {
			return fmt.Errorf("failed to check reservation conflict: %w", err)
		}

		if conflict {
			return failure.Conflict("time conflict with an existing reservation") // nolint:wrapcheck
		}

		totalAmount := model.CalculateTotal(startTime, endTime, facility.HourlyRate)
		reservation = req.ToModel(user, eventDate, startTime, endTime, totalAmount)

		if err := s.repo.InsertTx(ctx, tx, reservation); err != nil {
			log.Error().Err(err).Msg("failed to create reservation")

			return fmt.Errorf("failed to create reservation: %w", err)
		}

		return nil
	})
	if err != nil {
		return res, err
	}

	res.FromModel(reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		s.publishEvent(c, EventReservationCreated, reservation)
		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	res.FromModel(reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

// Update only touches customer contact fields. Schedule changes go through
// cancel-and-rebook so the conflict check cannot be bypassed.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateReservationRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if reservation exists")

		return fmt.Errorf("failed to check if reservation exists: %w", err)
	}

	if !exist {
		log.Error().Msg("reservation not found")

		return failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update reservation")

		return fmt.Errorf("failed to update reservation: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// UpdateStatus moves a reservation through its status machine. The row is
// locked so concurrent transitions serialize, and illegal moves get a 409.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateReservationStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	var reservation model.Reservation

	err = s.tx.WithinTx(ctx, func(tx *sqlx.Tx) error {
		reservation, err = s.repo.GetTx(ctx, tx, filter, "FOR UPDATE")
		if err != nil {
			log.Error().Err(err).Msg("failed to get reservation")

			return fmt.Errorf("failed to get reservation: %w", err)
		}

		if reservation.ID == constant.Empty {
			return failure.NotFound("reservation not found") // nolint:wrapcheck
		}

		if !model.CanTransition(reservation.Status, req.Status) {
			return failure.Conflict(fmt.Sprintf("cannot transition reservation from %s to %s", reservation.Status, req.Status)) // nolint:wrapcheck
		}

		updatedFields := map[string]any{
			model.FieldStatus:        req.Status,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		if err := s.repo.UpdateTx(ctx, tx, updatedFields, filter); err != nil {
			log.Error().Err(err).Msg("failed to update reservation status")

			return fmt.Errorf("failed to update reservation status: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	reservation.Status = req.Status

	go func() {
		c := context.WithoutCancel(ctx)

		s.publishEvent(c, EventReservationStatusChanged, reservation)
	}()

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if reservation exists")

		return fmt.Errorf("failed to check if reservation exists: %w", err)
	}

	if !exist {
		log.Error().Msg("reservation not found")

		return failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete reservation")

		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) CheckAvailability(ctx context.Context, req dto.CheckAvailabilityRequest) (res dto.CheckAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	create := dto.CreateReservationRequest{
		EventDate: req.EventDate,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	eventDate, startTime, endTime, err := create.ParseSchedule()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse availability schedule")

		return res, failure.BadRequestFromString("invalid date or time format") // nolint:wrapcheck
	}

	if !endTime.After(startTime) {
		return res, failure.BadRequestFromString("end_time must be after start_time") // nolint:wrapcheck
	}

	conflict, err := s.repo.HasConflict(ctx, req.FacilityID, eventDate, startTime, endTime)
	if err != nil {
		return res, fmt.Errorf("failed to check reservation conflict: %w", err)
	}

	res.Available = !conflict

	return res, nil
}

// Export streams the filtered reservations as CSV rows. The writer is the
// HTTP response body; rows are flushed through the csv writer at the end.
func (s *serviceImpl) Export(ctx context.Context, filter gDto.FilterGroup, writer io.Writer) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Export")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{
		SortBy:  model.FieldEventDate,
		SortDir: gDto.SortDirDesc,
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations for export")

		return fmt.Errorf("failed to get reservations for export: %w", err)
	}

	csvWriter := csv.NewWriter(writer)

	if err := csvWriter.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}

	for _, reservation := range models {
		row := []string{
			reservation.ID,
			reservation.FacilityID,
			reservation.CustomerName,
			reservation.CustomerEmail,
			reservation.CustomerPhone,
			reservation.EventType,
			reservation.EventDate.Format(constant.DateOnlyFormat),
			reservation.StartTime.Format(constant.TimeOnlyFormat),
			reservation.EndTime.Format(constant.TimeOnlyFormat),
			fmt.Sprintf("%d", reservation.GuestsCount),
			reservation.SpecialRequirements,
			reservation.TotalAmount.String(),
			reservation.Status,
			reservation.CreatedAt.Format(constant.DateFormat),
		}

		if err := csvWriter.Write(row); err != nil {
			return fmt.Errorf("failed to write export row: %w", err)
		}
	}

	csvWriter.Flush()

	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush export: %w", err)
	}

	return nil
}

func (s *serviceImpl) publishEvent(ctx context.Context, eventType string, reservation model.Reservation) {
	event := dto.ReservationEvent{
		Type:          eventType,
		ReservationID: reservation.ID,
		FacilityID:    reservation.FacilityID,
		Status:        reservation.Status,
		OccurredAt:    timezone.Now().Format(constant.DateFormat),
	}

	if err := s.publisher.Publish(ctx, kafka.Event{Key: reservation.ID, Value: event}); err != nil {
		log.Error().Err(err).Str("type", eventType).Msg("failed to publish reservation event")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()
}
