package contract

import (
	"net/http"

	"backoffice/infras/otel"
	"backoffice/internal/domains/contract/model"
	"backoffice/internal/domains/contract/model/dto"
	"backoffice/internal/domains/contract/service"
	"backoffice/shared/constant"
	gDto "backoffice/shared/dto"
	"backoffice/shared/validator"
	"backoffice/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Contract
	otel    otel.Otel
}

func New(service service.Contract, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/contracts", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateContract)
		routerGroup.Get("/", handler.GetContracts)
		routerGroup.Post("/assess", handler.AssessContract)
		routerGroup.Get("/{id}", handler.GetContractByID)
		routerGroup.Patch("/{id}", handler.UpdateContract)
		routerGroup.Delete("/{id}", handler.DeleteContract)
	})
}

// CreateContract registers a contract and scores its risk on insert.
// @Summary Create a new contract
// @Description Create a contract record. Risk score and level are computed from the contract text.
// @Tags Contract
// @Accept json
// @Produce json
// @Param request body dto.CreateContractRequest true "Create Contract Request"
// @Success 201 {object} response.Data[dto.ContractResponse] "Created contract"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contracts [post]
// @Security BearerAuth
func (handler *Handler) CreateContract(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateContract")
	defer scope.End()

	req := dto.CreateContractRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	contract, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create contract")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Contract created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, contract)
}

// GetContracts retrieves all contracts based on query parameters.
// @Summary Get all contracts
// @Description Retrieve all contracts with optional filtering and pagination.
// @Tags Contract
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (draft, active, expired, terminated)"
// @Param risk_level query string false "Filter by risk level (High, Medium, Low)"
// @Success 200 {object} response.Data[dto.GetContractsResponse] "List of contracts"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contracts [get]
func (handler *Handler) GetContracts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContracts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	status := r.URL.Query().Get(model.FieldStatus)
	riskLevel := r.URL.Query().Get(model.FieldRiskLevel)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if riskLevel != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRiskLevel,
			Operator: gDto.FilterOperatorEq,
			Value:    riskLevel,
			Table:    model.TableName,
		})
	}

	contracts, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get contracts")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Contracts retrieved successfully")

	response.WithJSON(w, http.StatusOK, contracts)
}

// GetContractByID retrieves a contract by its ID.
// @Summary Get a contract by ID
// @Description Retrieve a contract by its unique identifier.
// @Tags Contract
// @Accept json
// @Produce json
// @Param id path string true "Contract ID"
// @Success 200 {object} response.Data[dto.ContractResponse] "Contract details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contracts/{id} [get]
func (handler *Handler) GetContractByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContractByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	contract, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get contract by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Contract retrieved successfully")

	response.WithJSON(w, http.StatusOK, contract)
}

// UpdateContract updates an existing contract by its ID.
// @Summary Update a contract by ID
// @Description Update an existing contract. Changing the name or description rescores the risk.
// @Tags Contract
// @Accept json
// @Produce json
// @Param id path string true "Contract ID"
// @Param request body dto.UpdateContractRequest true "Update Contract Request"
// @Success 200 {object} response.Message "Contract updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contracts/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateContract(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateContract")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateContractRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update contract")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Contract updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Contract updated successfully")
}

// DeleteContract deletes a contract by its ID.
// @Summary Delete a contract by ID
// @Description Delete a contract using its unique identifier.
// @Tags Contract
// @Accept json
// @Produce json
// @Param id path string true "Contract ID"
// @Success 200 {object} response.Message "Contract deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contracts/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteContract(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteContract")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete contract")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Contract deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Contract deleted successfully")
}

// AssessContract scores contract text without saving anything.
// @Summary Assess contract risk
// @Description Run the risk assessment against contract text without persisting a record.
// @Tags Contract
// @Accept json
// @Produce json
// @Param request body dto.AssessContractRequest true "Assess Contract Request"
// @Success 200 {object} response.Data[model.RiskAssessment] "Risk assessment"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/contracts/assess [post]
// @Security BearerAuth
func (handler *Handler) AssessContract(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AssessContract")
	defer scope.End()

	req := dto.AssessContractRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	assessment, err := handler.service.Assess(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to assess contract")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Contract assessed successfully")

	response.WithJSON(w, http.StatusOK, assessment)
}
