package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"backoffice/config"
	"backoffice/infras/otel/mocks"
	employeeMocks "backoffice/internal/domains/employee/mocks"
	"backoffice/internal/domains/employee/model"
	"backoffice/internal/domains/employee/model/dto"
	"backoffice/internal/domains/employee/service"
	cacheMocks "backoffice/shared/cache/mocks"
	"backoffice/shared/constant"
	"backoffice/shared/failure"
)

func newEmployeeService(t *testing.T) (service.Employee, *employeeMocks.MockEmployee) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := employeeMocks.NewMockEmployee(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, cacheMocks.NewMissCache(), mocks.NewOtel())

	return svc, mockRepo
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	createReq := dto.CreateEmployeeRequest{
		FullName:   "Dewi Lestari",
		Email:      "dewi@example.com",
		Position:   "Front Desk Manager",
		Department: "Operations",
	}

	t.Run("successful creation", func(t *testing.T) {
		svc, mockRepo := newEmployeeService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, employee model.Employee) error {
				assert.Equal(t, "dewi@example.com", employee.Email)
				assert.Equal(t, model.StatusActive, employee.Status)

				return nil
			})

		err := svc.Create(ctx, createReq)

		assert.NoError(t, err)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, mockRepo := newEmployeeService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := svc.Create(ctx, createReq)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	t.Run("existing employee", func(t *testing.T) {
		svc, mockRepo := newEmployeeService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Update(ctx, dto.UpdateEmployeeRequest{Position: "Shift Lead"}, "employee-1")

		assert.NoError(t, err)
	})

	t.Run("missing employee", func(t *testing.T) {
		svc, mockRepo := newEmployeeService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Update(ctx, dto.UpdateEmployeeRequest{Position: "Shift Lead"}, "missing-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("missing employee", func(t *testing.T) {
		svc, mockRepo := newEmployeeService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Delete(ctx, "missing-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
