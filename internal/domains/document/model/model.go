package model

import (
	"time"

	"backoffice/shared/model"
)

const (
	TableName  = "documents"
	EntityName = "document"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldCategory    = "category"
	FieldFileName    = "file_name"
	FieldFileURL     = "file_url"
	FieldFileSize    = "file_size"
	FieldContentType = "content_type"
	FieldUploadedBy  = "uploaded_by"
	FieldIsDeleted   = "is_deleted"
	FieldDeletedAt   = "deleted_at"
)

type Document struct {
	ID          string     `db:"id"`
	Title       string     `db:"title"`
	Category    string     `db:"category"`
	FileName    string     `db:"file_name"`
	FileURL     string     `db:"file_url"`
	FileSize    int64      `db:"file_size"`
	ContentType string     `db:"content_type"`
	UploadedBy  string     `db:"uploaded_by"`
	IsDeleted   bool       `db:"is_deleted"`
	DeletedAt   *time.Time `db:"deleted_at"`
	model.Metadata
}
