package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"backoffice/config"
	"backoffice/infras/otel/mocks"
	contractMocks "backoffice/internal/domains/contract/mocks"
	"backoffice/internal/domains/contract/model"
	"backoffice/internal/domains/contract/model/dto"
	"backoffice/internal/domains/contract/service"
	cacheMocks "backoffice/shared/cache/mocks"
	"backoffice/shared/constant"
	"backoffice/shared/failure"
)

func newContractService(t *testing.T) (service.Contract, *contractMocks.MockContract) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := contractMocks.NewMockContract(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, cacheMocks.NewMissCache(), mocks.NewOtel())

	return svc, mockRepo
}

func TestContractService_Create(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	createReq := dto.CreateContractRequest{
		ContractName: "Venue Lease Agreement",
		PartyName:    "PT Graha Makmur",
		ContractType: "lease",
		Description:  "Lease for ten years with minimum rent and rent escalation clauses",
		StartDate:    "2025-01-01",
		EndDate:      "2035-01-01",
		Value:        decimal.NewFromInt(1200000),
	}

	t.Run("creation embeds the risk assessment", func(t *testing.T) {
		svc, mockRepo := newContractService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, contract model.Contract) error {
				assert.Equal(t, "Venue Lease Agreement", contract.ContractName)
				assert.Greater(t, contract.RiskScore, 0)
				assert.NotEmpty(t, contract.RiskLevel)

				return nil
			})

		res, err := svc.Create(ctx, createReq)

		assert.NoError(t, err)
		assert.Equal(t, "Venue Lease Agreement", res.ContractName)
	})

	t.Run("end date before start date", func(t *testing.T) {
		svc, _ := newContractService(t)

		req := createReq
		req.EndDate = "2024-01-01"

		_, err := svc.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("negative value", func(t *testing.T) {
		svc, _ := newContractService(t)

		req := createReq
		req.Value = decimal.NewFromInt(-1)

		_, err := svc.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("malformed dates", func(t *testing.T) {
		svc, _ := newContractService(t)

		req := createReq
		req.StartDate = "01-01-2025"

		_, err := svc.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestContractService_Assess(t *testing.T) {
	ctx := context.Background()

	t.Run("scores without persisting", func(t *testing.T) {
		svc, _ := newContractService(t)

		res, err := svc.Assess(ctx, dto.AssessContractRequest{
			ContractName: "Supplier Agreement",
			Description:  "Includes unlimited liability and indemnify clauses with no termination rights",
		})

		assert.NoError(t, err)
		assert.Greater(t, res.Score, 0)
		assert.NotEmpty(t, res.DetectedFactors)
		assert.NotEmpty(t, res.Recommendations)
	})

	t.Run("clean text scores low", func(t *testing.T) {
		svc, _ := newContractService(t)

		res, err := svc.Assess(ctx, dto.AssessContractRequest{
			ContractName: "Standard Supply Agreement",
			Description:  "Monthly delivery of fresh produce",
		})

		assert.NoError(t, err)
		assert.Equal(t, 0, res.Score)
		assert.Equal(t, model.RiskLevelLow, res.Level)
	})
}

func TestContractService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("missing contract", func(t *testing.T) {
		svc, mockRepo := newContractService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Delete(ctx, "missing-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
