package service_test

import (
	"context"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"backoffice/config"
	"backoffice/infras/otel/mocks"
	s3Mocks "backoffice/infras/s3/mocks"
	documentMocks "backoffice/internal/domains/document/mocks"
	"backoffice/internal/domains/document/model"
	"backoffice/internal/domains/document/model/dto"
	"backoffice/internal/domains/document/service"
	cacheMocks "backoffice/shared/cache/mocks"
	"backoffice/shared/constant"
	"backoffice/shared/failure"
	gModel "backoffice/shared/model"
	"backoffice/shared/timezone"
)

func newDocumentService(t *testing.T) (service.Document, *documentMocks.MockDocument, *s3Mocks.MockS3) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := documentMocks.NewMockDocument(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "backoffice-documents"

	svc := service.New(mockRepo, cfg, cacheMocks.NewMissCache(), mocks.NewOtel(), mockS3)

	return svc, mockRepo, mockS3
}

func activeDocument() model.Document {
	return model.Document{
		ID:          "document-1",
		Title:       "Vendor Agreement",
		Category:    "legal",
		FileName:    "vendor-agreement.pdf",
		FileURL:     "https://s3.example.com/backoffice-documents/document/vendor-agreement.pdf",
		FileSize:    2048,
		ContentType: "application/pdf",
		IsDeleted:   false,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}
}

func TestDocumentService_Upload(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	t.Run("stores the file and the record", func(t *testing.T) {
		svc, mockRepo, mockS3 := newDocumentService(t)

		fileHeader := &multipart.FileHeader{Filename: "vendor-agreement.pdf", Size: 2048}

		mockS3.EXPECT().
			UploadFile(gomock.Any(), "backoffice-documents", model.EntityName, gomock.Any(), fileHeader, "vendor-agreement.pdf").
			Return("https://s3.example.com/backoffice-documents/document/vendor-agreement.pdf", nil)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, document model.Document) error {
				assert.Equal(t, "Vendor Agreement", document.Title)
				assert.Equal(t, "https://s3.example.com/backoffice-documents/document/vendor-agreement.pdf", document.FileURL)
				assert.False(t, document.IsDeleted)

				return nil
			})

		res, err := svc.Upload(ctx, dto.UploadDocumentRequest{
			Title:    "Vendor Agreement",
			Category: "legal",
			File:     fileHeader,
		})

		assert.NoError(t, err)
		assert.Equal(t, "vendor-agreement.pdf", res.FileName)
	})

	t.Run("upload failure aborts before the insert", func(t *testing.T) {
		svc, _, mockS3 := newDocumentService(t)

		fileHeader := &multipart.FileHeader{Filename: "broken.pdf", Size: 100}

		mockS3.EXPECT().
			UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", assert.AnError)

		_, err := svc.Upload(ctx, dto.UploadDocumentRequest{Title: "Broken", File: fileHeader})

		assert.Error(t, err)
	})
}

func TestDocumentService_Trash(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	t.Run("moves an active document to trash", func(t *testing.T) {
		svc, mockRepo, _ := newDocumentService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeDocument(), nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, true, fields[model.FieldIsDeleted])
				assert.NotNil(t, fields[model.FieldDeletedAt])

				return nil
			})

		err := svc.Trash(ctx, "document-1")

		assert.NoError(t, err)
	})

	t.Run("already trashed is a conflict", func(t *testing.T) {
		svc, mockRepo, _ := newDocumentService(t)

		document := activeDocument()
		document.IsDeleted = true

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(document, nil)

		err := svc.Trash(ctx, "document-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("missing document", func(t *testing.T) {
		svc, mockRepo, _ := newDocumentService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Document{}, nil)

		err := svc.Trash(ctx, "missing-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestDocumentService_Restore(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	t.Run("restores a trashed document", func(t *testing.T) {
		svc, mockRepo, _ := newDocumentService(t)

		document := activeDocument()
		document.IsDeleted = true

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(document, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, false, fields[model.FieldIsDeleted])
				assert.Nil(t, fields[model.FieldDeletedAt])

				return nil
			})

		err := svc.Restore(ctx, "document-1")

		assert.NoError(t, err)
	})

	t.Run("active document cannot be restored", func(t *testing.T) {
		svc, mockRepo, _ := newDocumentService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeDocument(), nil)

		err := svc.Restore(ctx, "document-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestDocumentService_DeletePermanently(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")

	t.Run("removes the row and the stored object", func(t *testing.T) {
		svc, mockRepo, mockS3 := newDocumentService(t)

		document := activeDocument()

		done := make(chan struct{})

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(document, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		mockS3.EXPECT().
			GetObjectNameFromURL("backoffice-documents", document.FileURL).
			Return("document/vendor-agreement.pdf")
		mockS3.EXPECT().
			DeleteFile(gomock.Any(), "backoffice-documents", model.EntityName, "document/vendor-agreement.pdf").
			DoAndReturn(func(_ context.Context, _, _, _ string) error {
				close(done)

				return nil
			})

		err := svc.DeletePermanently(ctx, "document-1")

		assert.NoError(t, err)
		<-done
	})

	t.Run("missing document", func(t *testing.T) {
		svc, mockRepo, _ := newDocumentService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Document{}, nil)

		err := svc.DeletePermanently(ctx, "missing-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
