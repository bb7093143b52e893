package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"backoffice/config"
	kafkaMocks "backoffice/infras/kafka/mocks"
	"backoffice/infras/otel/mocks"
	pgMocks "backoffice/infras/postgres/mocks"
	facilityMocks "backoffice/internal/domains/facility/mocks"
	fModel "backoffice/internal/domains/facility/model"
	reservationMocks "backoffice/internal/domains/reservation/mocks"
	"backoffice/internal/domains/reservation/model"
	"backoffice/internal/domains/reservation/model/dto"
	"backoffice/internal/domains/reservation/service"
	cacheMocks "backoffice/shared/cache/mocks"
	"backoffice/shared/constant"
	"backoffice/shared/failure"
	gModel "backoffice/shared/model"
	"backoffice/shared/timezone"
)

func newService(t *testing.T) (service.Reservation, *reservationMocks.MockReservation, *facilityMocks.MockFacility) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockFacilityRepo := facilityMocks.NewMockFacility(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(
		mockRepo,
		mockFacilityRepo,
		pgMocks.NewTxRunner(),
		cfg,
		cacheMocks.NewMissCache(),
		mocks.NewOtel(),
		kafkaMocks.NewPublisher(),
	)

	return svc, mockRepo, mockFacilityRepo
}

func grandBallroom() fModel.Facility {
	return fModel.Facility{
		ID:         "facility-1",
		Name:       "Grand Ballroom",
		Type:       fModel.TypeBanquet,
		Capacity:   100,
		HourlyRate: decimal.NewFromInt(5000),
		Status:     fModel.StatusActive,
	}
}

func createRequest() dto.CreateReservationRequest {
	return dto.CreateReservationRequest{
		FacilityID:   "facility-1",
		CustomerName: "Siti Rahayu",
		EventDate:    "2025-07-01",
		StartTime:    "16:00",
		EndTime:      "18:00",
		GuestsCount:  80,
	}
}

func TestReservationService_Create(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	t.Run("successful creation prices two billable hours", func(t *testing.T) {
		svc, mockRepo, mockFacilityRepo := newService(t)

		mockFacilityRepo.EXPECT().
			GetTx(gomock.Any(), gomock.Any(), gomock.Any(), "FOR UPDATE").
			Return(grandBallroom(), nil)

		mockRepo.EXPECT().
			HasConflictTx(gomock.Any(), gomock.Any(), "facility-1", gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil)

		mockRepo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, reservation model.Reservation) error {
				assert.True(t, decimal.NewFromInt(10000).Equal(reservation.TotalAmount))
				assert.Equal(t, model.StatusPending, reservation.Status)

				return nil
			})

		res, err := svc.Create(ctx, createRequest())

		assert.NoError(t, err)
		assert.True(t, decimal.NewFromInt(10000).Equal(res.TotalAmount))
		assert.Equal(t, model.StatusPending, res.Status)
	})

	t.Run("overlapping slot is rejected with a conflict", func(t *testing.T) {
		svc, mockRepo, mockFacilityRepo := newService(t)

		mockFacilityRepo.EXPECT().
			GetTx(gomock.Any(), gomock.Any(), gomock.Any(), "FOR UPDATE").
			Return(grandBallroom(), nil)

		mockRepo.EXPECT().
			HasConflictTx(gomock.Any(), gomock.Any(), "facility-1", gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil)

		req := createRequest()
		req.StartTime = "15:00"
		req.EndTime = "17:00"

		_, err := svc.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("unknown facility", func(t *testing.T) {
		svc, _, mockFacilityRepo := newService(t)

		mockFacilityRepo.EXPECT().
			GetTx(gomock.Any(), gomock.Any(), gomock.Any(), "FOR UPDATE").
			Return(fModel.Facility{}, nil)

		_, err := svc.Create(ctx, createRequest())

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("inactive facility", func(t *testing.T) {
		svc, _, mockFacilityRepo := newService(t)

		facility := grandBallroom()
		facility.Status = fModel.StatusInactive

		mockFacilityRepo.EXPECT().
			GetTx(gomock.Any(), gomock.Any(), gomock.Any(), "FOR UPDATE").
			Return(facility, nil)

		_, err := svc.Create(ctx, createRequest())

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("guests count above capacity", func(t *testing.T) {
		svc, _, mockFacilityRepo := newService(t)

		mockFacilityRepo.EXPECT().
			GetTx(gomock.Any(), gomock.Any(), gomock.Any(), "FOR UPDATE").
			Return(grandBallroom(), nil)

		req := createRequest()
		req.GuestsCount = 150

		_, err := svc.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("end time not after start time", func(t *testing.T) {
		svc, _, _ := newService(t)

		req := createRequest()
		req.StartTime = "18:00"
		req.EndTime = "18:00"

		_, err := svc.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("invalid schedule format", func(t *testing.T) {
		svc, _, _ := newService(t)

		req := createRequest()
		req.EventDate = "01-07-2025"

		_, err := svc.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestReservationService_UpdateStatus(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	existing := func(status string) model.Reservation {
		return model.Reservation{
			ID:         "reservation-1",
			FacilityID: "facility-1",
			Status:     status,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
			},
		}
	}

	t.Run("pending to confirmed", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			GetTx(gomock.Any(), gomock.Any(), gomock.Any(), "FOR UPDATE").
			Return(existing(model.StatusPending), nil)

		mockRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.UpdateStatus(ctx, dto.UpdateReservationStatusRequest{Status: model.StatusConfirmed}, "reservation-1")

		assert.NoError(t, err)
	})

	t.Run("completed is terminal", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			GetTx(gomock.Any(), gomock.Any(), gomock.Any(), "FOR UPDATE").
			Return(existing(model.StatusCompleted), nil)

		err := svc.UpdateStatus(ctx, dto.UpdateReservationStatusRequest{Status: model.StatusCancelled}, "reservation-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("pending cannot jump to completed", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			GetTx(gomock.Any(), gomock.Any(), gomock.Any(), "FOR UPDATE").
			Return(existing(model.StatusPending), nil)

		err := svc.UpdateStatus(ctx, dto.UpdateReservationStatusRequest{Status: model.StatusCompleted}, "reservation-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("missing reservation", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			GetTx(gomock.Any(), gomock.Any(), gomock.Any(), "FOR UPDATE").
			Return(model.Reservation{}, nil)

		err := svc.UpdateStatus(ctx, dto.UpdateReservationStatusRequest{Status: model.StatusConfirmed}, "reservation-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestReservationService_CheckAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("free slot is available", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			HasConflict(gomock.Any(), "facility-1", gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil)

		res, err := svc.CheckAvailability(ctx, dto.CheckAvailabilityRequest{
			FacilityID: "facility-1",
			EventDate:  "2025-07-01",
			StartTime:  "16:00",
			EndTime:    "18:00",
		})

		assert.NoError(t, err)
		assert.True(t, res.Available)
	})

	t.Run("occupied slot is not available", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			HasConflict(gomock.Any(), "facility-1", gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil)

		res, err := svc.CheckAvailability(ctx, dto.CheckAvailabilityRequest{
			FacilityID: "facility-1",
			EventDate:  "2025-07-01",
			StartTime:  "16:00",
			EndTime:    "18:00",
		})

		assert.NoError(t, err)
		assert.False(t, res.Available)
	})

	t.Run("repository failure surfaces", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			HasConflict(gomock.Any(), "facility-1", gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, errors.New("database error"))

		_, err := svc.CheckAvailability(ctx, dto.CheckAvailabilityRequest{
			FacilityID: "facility-1",
			EventDate:  "2025-07-01",
			StartTime:  "16:00",
			EndTime:    "18:00",
		})

		assert.Error(t, err)
	})
}
