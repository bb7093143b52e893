package document

import (
	"net/http"

	"backoffice/infras/otel"
	"backoffice/internal/domains/document/model/dto"
	"backoffice/internal/domains/document/service"
	"backoffice/shared/constant"
	gDto "backoffice/shared/dto"
	"backoffice/shared/validator"
	"backoffice/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Document
	otel    otel.Otel
}

func New(service service.Document, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/documents", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.UploadDocument)
		routerGroup.Get("/", handler.GetDocuments)
		routerGroup.Get("/trash", handler.GetTrashedDocuments)
		routerGroup.Get("/{id}", handler.GetDocumentByID)
		routerGroup.Patch("/{id}", handler.UpdateDocument)
		routerGroup.Post("/{id}/trash", handler.TrashDocument)
		routerGroup.Post("/{id}/restore", handler.RestoreDocument)
		routerGroup.Delete("/{id}", handler.DeleteDocumentPermanently)
	})
}

// UploadDocument stores a new document in the archive.
// @Summary Upload a document
// @Description Upload a document file with its title and category. The file is stored in S3.
// @Tags Document
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Document title"
// @Param category formData string false "Document category"
// @Param file formData file true "Document file"
// @Success 201 {object} response.Data[dto.DocumentResponse] "Uploaded document"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/documents [post]
// @Security BearerAuth
func (handler *Handler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadDocument")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	req := dto.UploadDocumentRequest{
		Title:    r.FormValue("title"),
		Category: r.FormValue("category"),
		File:     fileHeader,
		FileData: file,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate upload request")

		response.WithError(w, err)

		return
	}

	document, err := handler.service.Upload(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload document")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Document uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, document)
}

// GetDocuments lists active documents with optional title search.
// @Summary Get active documents
// @Description Retrieve active documents, newest first, optionally narrowed by a title search.
// @Tags Document
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param search query string false "Search by title"
// @Success 200 {object} response.Data[dto.GetDocumentsResponse] "List of documents"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/documents [get]
func (handler *Handler) GetDocuments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDocuments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	search := r.URL.Query().Get(constant.RequestParamSearch)

	documents, err := handler.service.GetAll(ctx, queryParams, search)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get documents")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Documents retrieved successfully")

	response.WithJSON(w, http.StatusOK, documents)
}

// GetTrashedDocuments lists soft-deleted documents.
// @Summary Get trashed documents
// @Description Retrieve soft-deleted documents that can be restored or permanently deleted.
// @Tags Document
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetDocumentsResponse] "List of trashed documents"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/documents/trash [get]
// @Security BearerAuth
func (handler *Handler) GetTrashedDocuments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTrashedDocuments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	documents, err := handler.service.GetDeleted(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get trashed documents")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Trashed documents retrieved successfully")

	response.WithJSON(w, http.StatusOK, documents)
}

// GetDocumentByID retrieves a document by its ID.
// @Summary Get a document by ID
// @Description Retrieve a document by its unique identifier.
// @Tags Document
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} response.Data[dto.DocumentResponse] "Document details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/documents/{id} [get]
func (handler *Handler) GetDocumentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDocumentByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	document, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get document by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Document retrieved successfully")

	response.WithJSON(w, http.StatusOK, document)
}

// UpdateDocument updates a document's title or category.
// @Summary Update a document by ID
// @Description Update the title or category of an existing document.
// @Tags Document
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param request body dto.UpdateDocumentRequest true "Update Document Request"
// @Success 200 {object} response.Message "Document updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/documents/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDocument")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateDocumentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update document")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Document updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Document updated successfully")
}

// TrashDocument soft deletes a document.
// @Summary Move a document to trash
// @Description Soft delete a document. It stays recoverable until permanently deleted.
// @Tags Document
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} response.Message "Document moved to trash"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/documents/{id}/trash [post]
// @Security BearerAuth
func (handler *Handler) TrashDocument(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TrashDocument")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Trash(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to trash document")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Document trashed successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Document moved to trash")
}

// RestoreDocument returns a trashed document to the active listing.
// @Summary Restore a document from trash
// @Description Restore a soft-deleted document to the active listing.
// @Tags Document
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} response.Message "Document restored successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/documents/{id}/restore [post]
// @Security BearerAuth
func (handler *Handler) RestoreDocument(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RestoreDocument")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Restore(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to restore document")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Document restored successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Document restored successfully")
}

// DeleteDocumentPermanently removes a document and its stored file.
// @Summary Permanently delete a document
// @Description Delete the document record and its stored file. This cannot be undone.
// @Tags Document
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} response.Message "Document deleted permanently"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/documents/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteDocumentPermanently(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteDocumentPermanently")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeletePermanently(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to permanently delete document")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Document permanently deleted by user " + user)

	response.WithMessage(w, http.StatusOK, "Document deleted permanently")
}
