package dto

import (
	"mime/multipart"
	"time"

	"backoffice/internal/domains/document/model"
	"backoffice/shared"
	"backoffice/shared/constant"
	gDto "backoffice/shared/dto"
	gModel "backoffice/shared/model"
	"backoffice/shared/timezone"

	"github.com/google/uuid"
)

type UploadDocumentRequest struct {
	Title    string                `json:"title"    validate:"required,min=3,max=150"`
	Category string                `json:"category" validate:"omitempty,max=100"`
	File     *multipart.FileHeader `json:"file"     swaggerignore:"true" validate:"required,mimetypes=application/pdf image/png image/jpg image/jpeg application/msword application/vnd.openxmlformats-officedocument.wordprocessingml.document,maxfilesize=10"`
	FileData multipart.File        `json:"-"`
}

func (u *UploadDocumentRequest) ToModel(user, fileURL string) model.Document {
	return model.Document{
		ID:          uuid.NewString(),
		Title:       u.Title,
		Category:    u.Category,
		FileName:    u.File.Filename,
		FileURL:     fileURL,
		FileSize:    u.File.Size,
		ContentType: u.File.Header.Get(constant.RequestHeaderContentType),
		UploadedBy:  user,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateDocumentRequest struct {
	Title    string `db:"title"    json:"title"    validate:"omitempty,min=3,max=150"`
	Category string `db:"category" json:"category" validate:"omitempty,max=100"`
}

type DocumentResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Category    string     `json:"category"`
	FileName    string     `json:"file_name"`
	FileURL     string     `json:"file_url"`
	FileSize    int64      `json:"file_size"`
	ContentType string     `json:"content_type"`
	UploadedBy  string     `json:"uploaded_by"`
	IsDeleted   bool       `json:"is_deleted"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
	gDto.Metadata
}

func (r *DocumentResponse) FromModel(model model.Document) {
	r.ID = model.ID
	r.Title = model.Title
	r.Category = model.Category
	r.FileName = model.FileName
	r.FileURL = model.FileURL
	r.FileSize = model.FileSize
	r.ContentType = model.ContentType
	r.UploadedBy = model.UploadedBy
	r.IsDeleted = model.IsDeleted
	r.DeletedAt = model.DeletedAt
	r.Metadata.FromModel(model.Metadata)
}

type GetDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetDocumentsResponse) FromModels(models []model.Document, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Documents = make([]DocumentResponse, len(models))
	for i, mod := range models {
		r.Documents[i].FromModel(mod)
	}
}
