package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"backoffice/config"
	"backoffice/infras/otel/mocks"
	pgMocks "backoffice/infras/postgres/mocks"
	visitorMocks "backoffice/internal/domains/visitor/mocks"
	"backoffice/internal/domains/visitor/model"
	"backoffice/internal/domains/visitor/model/dto"
	"backoffice/internal/domains/visitor/service"
	cacheMocks "backoffice/shared/cache/mocks"
	"backoffice/shared/constant"
	"backoffice/shared/failure"
	gModel "backoffice/shared/model"
	"backoffice/shared/timezone"
)

func newVisitorService(t *testing.T) (service.VisitorLog, *visitorMocks.MockVisitorLog) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := visitorMocks.NewMockVisitorLog(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, pgMocks.NewTxRunner(), cfg, cacheMocks.NewMissCache(), mocks.NewOtel())

	return svc, mockRepo
}

func checkedInVisitor() model.VisitorLog {
	return model.VisitorLog{
		ID:          "visitor-1",
		VisitorName: "Budi Santoso",
		VisitorType: "guest",
		Purpose:     "dinner reservation",
		CheckedInAt: timezone.Now(),
		Status:      model.StatusCheckedIn,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

func TestVisitorService_CheckIn(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	t.Run("opens a new visit", func(t *testing.T) {
		svc, mockRepo := newVisitorService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, visitor model.VisitorLog) error {
				assert.Equal(t, "Budi Santoso", visitor.VisitorName)
				assert.Equal(t, model.StatusCheckedIn, visitor.Status)
				assert.Nil(t, visitor.CheckedOutAt)

				return nil
			})

		res, err := svc.CheckIn(ctx, dto.CheckInRequest{
			VisitorName: "Budi Santoso",
			VisitorType: "guest",
			Purpose:     "dinner reservation",
		})

		assert.NoError(t, err)
		assert.Equal(t, model.StatusCheckedIn, res.Status)
	})
}

func TestVisitorService_CheckOut(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	t.Run("closes an open visit", func(t *testing.T) {
		svc, mockRepo := newVisitorService(t)

		mockRepo.EXPECT().
			GetTx(gomock.Any(), gomock.Any(), gomock.Any(), "FOR UPDATE").
			Return(checkedInVisitor(), nil)
		mockRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, fields map[string]any, _ any) error {
				assert.Equal(t, model.StatusCheckedOut, fields[model.FieldStatus])
				assert.NotNil(t, fields[model.FieldCheckedOutAt])

				return nil
			})

		err := svc.CheckOut(ctx, "visitor-1")

		assert.NoError(t, err)
	})

	t.Run("double check-out is a conflict", func(t *testing.T) {
		svc, mockRepo := newVisitorService(t)

		visitor := checkedInVisitor()
		visitor.Status = model.StatusCheckedOut

		mockRepo.EXPECT().
			GetTx(gomock.Any(), gomock.Any(), gomock.Any(), "FOR UPDATE").
			Return(visitor, nil)

		err := svc.CheckOut(ctx, "visitor-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("missing visit", func(t *testing.T) {
		svc, mockRepo := newVisitorService(t)

		mockRepo.EXPECT().
			GetTx(gomock.Any(), gomock.Any(), gomock.Any(), "FOR UPDATE").
			Return(model.VisitorLog{}, nil)

		err := svc.CheckOut(ctx, "missing-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestVisitorService_DailySummary(t *testing.T) {
	ctx := context.Background()

	t.Run("reports the requested day", func(t *testing.T) {
		svc, mockRepo := newVisitorService(t)

		mockRepo.EXPECT().
			DailySummary(gomock.Any(), gomock.Any()).
			Return(model.DailySummary{
				TotalVisitors:      12,
				GuestCount:         8,
				PatronCount:        4,
				CurrentlyCheckedIn: 3,
			}, nil)

		res, err := svc.DailySummary(ctx, "2025-07-01")

		assert.NoError(t, err)
		assert.Equal(t, "2025-07-01", res.Date)
		assert.Equal(t, 12, res.TotalVisitors)
		assert.Equal(t, 3, res.CurrentlyCheckedIn)
	})

	t.Run("defaults to today when the date is empty", func(t *testing.T) {
		svc, mockRepo := newVisitorService(t)

		mockRepo.EXPECT().
			DailySummary(gomock.Any(), gomock.Any()).
			Return(model.DailySummary{TotalVisitors: 1}, nil)

		res, err := svc.DailySummary(ctx, "")

		assert.NoError(t, err)
		assert.Equal(t, timezone.Now().Format(constant.DateOnlyFormat), res.Date)
	})

	t.Run("malformed date", func(t *testing.T) {
		svc, _ := newVisitorService(t)

		_, err := svc.DailySummary(ctx, "01/07/2025")

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}
