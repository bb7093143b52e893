package service

import (
	"context"
	"fmt"
	"math/rand/v2"

	"backoffice/config"
	"backoffice/infras/otel"
	"backoffice/internal/domains/contract/model"
	"backoffice/internal/domains/contract/model/dto"
	"backoffice/internal/domains/contract/repository"
	"backoffice/shared"
	"backoffice/shared/cache"
	"backoffice/shared/constant"
	gDto "backoffice/shared/dto"
	"backoffice/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetContract    = "contract:get"
	cacheGetAllContract = "contract:gets"
	cacheCountContract  = "contract:count"

	randomFallbackProbability = 0.3
)

type Contract interface {
	Create(ctx context.Context, req dto.CreateContractRequest) (dto.ContractResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetContractsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ContractResponse, error)
	Update(ctx context.Context, req dto.UpdateContractRequest, id string) error
	Delete(ctx context.Context, id string) error
	Assess(ctx context.Context, req dto.AssessContractRequest) (model.RiskAssessment, error)
}

type serviceImpl struct {
	repo  repository.Contract
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Contract, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Contract {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// assess runs the deterministic scorer. When the random fallback flag is on,
// undetected factors get a 30% chance of firing anyway, mimicking a noisy
// heuristic reviewer.
func (s *serviceImpl) assess(name, description string) model.RiskAssessment {
	assessment := model.AssessRisk(name, description)

	if !s.cfg.App.Legal.RandomFallback {
		return assessment
	}

	detected := assessment.DetectedFactors
	seen := make(map[string]bool, len(detected))

	for _, factor := range detected {
		seen[factor.Key] = true
	}

	for _, factor := range model.Factors() {
		if seen[factor.Key] {
			continue
		}

		if rand.Float64() < randomFallbackProbability {
			detected = append(detected, model.DetectedFactor{
				Key:      factor.Key,
				Category: factor.Category,
				Weight:   factor.Weight,
			})
		}
	}

	return model.BuildAssessment(detected)
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateContractRequest) (res dto.ContractResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	startDate, endDate, err := req.ParseDates()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse contract dates")

		return res, failure.BadRequestFromString("invalid date format") // nolint:wrapcheck
	}

	if endDate.Before(startDate) {
		return res, failure.BadRequestFromString("end_date must not be before start_date") // nolint:wrapcheck
	}

	if req.Value.IsNegative() {
		return res, failure.BadRequestFromString("value must not be negative") // nolint:wrapcheck
	}

	assessment := s.assess(req.ContractName, req.Description)
	contract := req.ToModel(user, startDate, endDate, assessment)

	if err = s.repo.Insert(ctx, contract); err != nil {
		log.Error().Err(err).Msg("failed to create contract")

		return res, fmt.Errorf("failed to create contract: %w", err)
	}

	res.FromModel(contract)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllContract)
		shared.InvalidateCaches(c, s.cache, cacheCountContract)
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetContractsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllContract, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for contracts")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count contracts")

		return res, fmt.Errorf("failed to count contracts: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get contracts")

		return res, fmt.Errorf("failed to get contracts: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save contracts to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountContract, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for contract count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count contracts")

		return res, fmt.Errorf("failed to count contracts: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save contract count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ContractResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetContract, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for contract")

		return res, nil
	}

	contract, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get contract")

		return res, fmt.Errorf("failed to get contract: %w", err)
	}

	if contract.ID == constant.Empty {
		return res, failure.NotFound("contract not found") // nolint:wrapcheck
	}

	res.FromModel(contract)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save contract to cache")
		}
	}()

	return res, nil
}

// Update rescores the contract when the name or description changes, since
// the stored score is derived from that text.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateContractRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	contract, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get contract")

		return fmt.Errorf("failed to get contract: %w", err)
	}

	if contract.ID == constant.Empty {
		log.Error().Msg("contract not found")

		return failure.NotFound("contract not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	if req.ContractName != "" || req.Description != "" {
		name := contract.ContractName
		if req.ContractName != "" {
			name = req.ContractName
		}

		description := contract.Description
		if req.Description != "" {
			description = req.Description
		}

		assessment := s.assess(name, description)
		updatedFields[model.FieldRiskScore] = assessment.Score
		updatedFields[model.FieldRiskLevel] = assessment.Level
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update contract")

		return fmt.Errorf("failed to update contract: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if contract exists")

		return fmt.Errorf("failed to check if contract exists: %w", err)
	}

	if !exist {
		log.Error().Msg("contract not found")

		return failure.NotFound("contract not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete contract")

		return fmt.Errorf("failed to delete contract: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// Assess scores contract text without persisting anything.
func (s *serviceImpl) Assess(ctx context.Context, req dto.AssessContractRequest) (res model.RiskAssessment, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Assess")
	defer scope.End()

	return s.assess(req.ContractName, req.Description), nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetContract, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete contract from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllContract)
		shared.InvalidateCaches(c, s.cache, cacheCountContract)
	}()
}
