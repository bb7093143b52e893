package service

import (
	"context"
	"fmt"

	"backoffice/config"
	"backoffice/infras/otel"
	"backoffice/infras/s3"
	"backoffice/internal/domains/document/model"
	"backoffice/internal/domains/document/model/dto"
	"backoffice/internal/domains/document/repository"
	"backoffice/shared"
	"backoffice/shared/cache"
	"backoffice/shared/constant"
	gDto "backoffice/shared/dto"
	"backoffice/shared/failure"
	"backoffice/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetDocument    = "document:get"
	cacheGetAllDocument = "document:gets"
	cacheCountDocument  = "document:count"
)

type Document interface {
	Upload(ctx context.Context, req dto.UploadDocumentRequest) (dto.DocumentResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, search string) (dto.GetDocumentsResponse, error)
	GetDeleted(ctx context.Context, req gDto.QueryParams) (dto.GetDocumentsResponse, error)
	Get(ctx context.Context, id string) (dto.DocumentResponse, error)
	Update(ctx context.Context, req dto.UpdateDocumentRequest, id string) error
	Trash(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
	DeletePermanently(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Document
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Document, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Document {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Upload(ctx context.Context, req dto.UploadDocumentRequest) (res dto.DocumentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upload")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	bucketName := s.cfg.External.S3.BucketName

	url, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.FileData, req.File, req.File.Filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload file to S3")

		return res, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	document := req.ToModel(user, url)

	if err = s.repo.Insert(ctx, document); err != nil {
		log.Error().Err(err).Msg("failed to create document")

		return res, fmt.Errorf("failed to create document: %w", err)
	}

	res.FromModel(document)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllDocument)
		shared.InvalidateCaches(c, s.cache, cacheCountDocument)
	}()

	return res, nil
}

// GetAll lists active documents, newest first, optionally narrowed by a
// title search.
func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, search string) (res dto.GetDocumentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := listingFilter(false)

	if search != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldTitle,
			Operator: gDto.FilterOperatorLike,
			Value:    search,
			Table:    model.TableName,
		})
	}

	return s.list(ctx, req, filter)
}

// GetDeleted lists trashed documents so they can be restored or purged.
func (s *serviceImpl) GetDeleted(ctx context.Context, req gDto.QueryParams) (res dto.GetDocumentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetDeleted")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.list(ctx, req, listingFilter(true))
}

func (s *serviceImpl) list(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetDocumentsResponse, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllDocument, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for documents")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count documents")

		return res, fmt.Errorf("failed to count documents: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get documents")

		return res, fmt.Errorf("failed to get documents: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save documents to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.DocumentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetDocument, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for document")

		return res, nil
	}

	document, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get document")

		return res, fmt.Errorf("failed to get document: %w", err)
	}

	if document.ID == constant.Empty {
		return res, failure.NotFound("document not found") // nolint:wrapcheck
	}

	res.FromModel(document)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save document to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateDocumentRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if document exists")

		return fmt.Errorf("failed to check if document exists: %w", err)
	}

	if !exist {
		log.Error().Msg("document not found")

		return failure.NotFound("document not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update document")

		return fmt.Errorf("failed to update document: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// Trash soft deletes a document. The row and the S3 object both survive so
// Restore can bring it back.
func (s *serviceImpl) Trash(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Trash")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	document, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get document")

		return fmt.Errorf("failed to get document: %w", err)
	}

	if document.ID == constant.Empty {
		return failure.NotFound("document not found") // nolint:wrapcheck
	}

	if document.IsDeleted {
		return failure.Conflict("document is already in trash") // nolint:wrapcheck
	}

	now := timezone.Now()
	updatedFields := map[string]any{
		model.FieldIsDeleted:     true,
		model.FieldDeletedAt:     now,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to trash document")

		return fmt.Errorf("failed to trash document: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// Restore returns a trashed document to the active listing and clears its
// deletion timestamp.
func (s *serviceImpl) Restore(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Restore")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	document, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get document")

		return fmt.Errorf("failed to get document: %w", err)
	}

	if document.ID == constant.Empty {
		return failure.NotFound("document not found") // nolint:wrapcheck
	}

	if !document.IsDeleted {
		return failure.Conflict("document is not in trash") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldIsDeleted:     false,
		model.FieldDeletedAt:     nil,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to restore document")

		return fmt.Errorf("failed to restore document: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// DeletePermanently removes the database row, then deletes the S3 object
// best effort. A missing object only logs; the record is already gone.
func (s *serviceImpl) DeletePermanently(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeletePermanently")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	document, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get document")

		return fmt.Errorf("failed to get document: %w", err)
	}

	if document.ID == constant.Empty {
		return failure.NotFound("document not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete document")

		return fmt.Errorf("failed to delete document: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		bucketName := s.cfg.External.S3.BucketName

		objectName := s.s3.GetObjectNameFromURL(bucketName, document.FileURL)
		if objectName == constant.Empty {
			log.Warn().Str("url", document.FileURL).Msg("failed to extract object name from URL")

			return
		}

		if err := s.s3.DeleteFile(c, bucketName, model.EntityName, objectName); err != nil {
			log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete file from S3")
		}
	}()

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetDocument, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete document from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllDocument)
		shared.InvalidateCaches(c, s.cache, cacheCountDocument)
	}()
}

func listingFilter(deleted bool) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldIsDeleted,
				Operator: gDto.FilterOperatorEq,
				Value:    deleted,
				Table:    model.TableName,
			},
		},
	}
}
