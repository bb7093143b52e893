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
	pgMocks "backoffice/infras/postgres/mocks"
	invoiceMocks "backoffice/internal/domains/invoice/mocks"
	"backoffice/internal/domains/invoice/model"
	"backoffice/internal/domains/invoice/model/dto"
	"backoffice/internal/domains/invoice/service"
	cacheMocks "backoffice/shared/cache/mocks"
	"backoffice/shared/constant"
	"backoffice/shared/failure"
	gModel "backoffice/shared/model"
	"backoffice/shared/timezone"
)

func newInvoiceService(t *testing.T) (service.Invoice, *invoiceMocks.MockInvoice) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := invoiceMocks.NewMockInvoice(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, pgMocks.NewTxRunner(), cfg, cacheMocks.NewMissCache(), mocks.NewOtel())

	return svc, mockRepo
}

func unpaidInvoice() model.Invoice {
	return model.Invoice{
		ID:            "invoice-1",
		InvoiceNumber: "INV-2025-001",
		PartyName:     "Catering Nusantara",
		Amount:        decimal.NewFromInt(250000),
		DueDate:       timezone.Now(),
		Status:        model.StatusUnpaid,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

func TestInvoiceService_Create(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	createReq := dto.CreateInvoiceRequest{
		InvoiceNumber: "INV-2025-001",
		PartyName:     "Catering Nusantara",
		Amount:        decimal.NewFromInt(250000),
		DueDate:       "2025-08-15",
	}

	t.Run("successful creation", func(t *testing.T) {
		svc, mockRepo := newInvoiceService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, invoice model.Invoice) error {
				assert.Equal(t, "INV-2025-001", invoice.InvoiceNumber)
				assert.Equal(t, model.StatusUnpaid, invoice.Status)

				return nil
			})

		err := svc.Create(ctx, createReq)

		assert.NoError(t, err)
	})

	t.Run("duplicate invoice number", func(t *testing.T) {
		svc, mockRepo := newInvoiceService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := svc.Create(ctx, createReq)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("non-positive amount", func(t *testing.T) {
		svc, _ := newInvoiceService(t)

		req := createReq
		req.Amount = decimal.Zero

		err := svc.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("bad due date", func(t *testing.T) {
		svc, _ := newInvoiceService(t)

		req := createReq
		req.DueDate = "15/08/2025"

		err := svc.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestInvoiceService_Pay(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	t.Run("settles an unpaid invoice", func(t *testing.T) {
		svc, mockRepo := newInvoiceService(t)

		mockRepo.EXPECT().
			GetTx(gomock.Any(), gomock.Any(), gomock.Any(), "FOR UPDATE").
			Return(unpaidInvoice(), nil)
		mockRepo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, fields map[string]any, _ any) error {
				assert.Equal(t, model.StatusPaid, fields[model.FieldStatus])
				assert.NotNil(t, fields[model.FieldPaidAt])

				return nil
			})

		err := svc.Pay(ctx, "invoice-1")

		assert.NoError(t, err)
	})

	t.Run("double payment is a conflict", func(t *testing.T) {
		svc, mockRepo := newInvoiceService(t)

		invoice := unpaidInvoice()
		invoice.Status = model.StatusPaid

		mockRepo.EXPECT().
			GetTx(gomock.Any(), gomock.Any(), gomock.Any(), "FOR UPDATE").
			Return(invoice, nil)

		err := svc.Pay(ctx, "invoice-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("missing invoice", func(t *testing.T) {
		svc, mockRepo := newInvoiceService(t)

		mockRepo.EXPECT().
			GetTx(gomock.Any(), gomock.Any(), gomock.Any(), "FOR UPDATE").
			Return(model.Invoice{}, nil)

		err := svc.Pay(ctx, "missing-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestInvoiceService_Update(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	t.Run("unpaid invoice accepts changes", func(t *testing.T) {
		svc, mockRepo := newInvoiceService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(unpaidInvoice(), nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Update(ctx, dto.UpdateInvoiceRequest{PartyName: "Catering Jaya"}, "invoice-1")

		assert.NoError(t, err)
	})

	t.Run("paid invoice is frozen", func(t *testing.T) {
		svc, mockRepo := newInvoiceService(t)

		invoice := unpaidInvoice()
		invoice.Status = model.StatusPaid

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(invoice, nil)

		err := svc.Update(ctx, dto.UpdateInvoiceRequest{PartyName: "Catering Jaya"}, "invoice-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}
