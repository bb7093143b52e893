package visitor

import (
	"net/http"
	"strconv"

	"backoffice/infras/otel"
	"backoffice/internal/domains/visitor/model/dto"
	"backoffice/internal/domains/visitor/service"
	"backoffice/shared/constant"
	"backoffice/shared/validator"
	"backoffice/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.VisitorLog
	otel    otel.Otel
}

func New(service service.VisitorLog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/visitors", func(routerGroup chi.Router) {
		routerGroup.Post("/checkin", handler.CheckIn)
		routerGroup.Post("/{id}/checkout", handler.CheckOut)
		routerGroup.Get("/recent", handler.GetRecentActivity)
		routerGroup.Get("/summary", handler.GetDailySummary)
	})
}

// CheckIn records a visitor entering the premises.
// @Summary Check in a visitor
// @Description Record a new visitor check-in.
// @Tags Visitor
// @Accept json
// @Produce json
// @Param request body dto.CheckInRequest true "Check In Request"
// @Success 201 {object} response.Data[dto.VisitorLogResponse] "Visitor checked in"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/visitors/checkin [post]
// @Security BearerAuth
func (handler *Handler) CheckIn(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckIn")
	defer scope.End()

	req := dto.CheckInRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	visitor, err := handler.service.CheckIn(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check in visitor")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Visitor checked in successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, visitor)
}

// CheckOut closes an open visit.
// @Summary Check out a visitor
// @Description Record the visitor leaving. Checking out twice returns a conflict.
// @Tags Visitor
// @Accept json
// @Produce json
// @Param id path string true "Visitor log ID"
// @Success 200 {object} response.Message "Visitor checked out successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/visitors/{id}/checkout [post]
// @Security BearerAuth
func (handler *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckOut")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.CheckOut(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check out visitor")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Visitor checked out successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Visitor checked out successfully")
}

// GetRecentActivity lists the latest visitor check-ins.
// @Summary Get recent visitor activity
// @Description Retrieve the latest visitor check-ins, newest first.
// @Tags Visitor
// @Accept json
// @Produce json
// @Param limit query int false "Number of entries (default 20)"
// @Success 200 {object} response.Data[dto.GetVisitorLogsResponse] "Recent visitor activity"
// @Failure 500 {object} response.Error
// @Router /v1/visitors/recent [get]
// @Security BearerAuth
func (handler *Handler) GetRecentActivity(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRecentActivity")
	defer scope.End()

	limit, _ := strconv.Atoi(r.URL.Query().Get(constant.RequestParamLimit))

	visitors, err := handler.service.Recent(ctx, limit)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get recent visitors")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Recent visitor activity retrieved successfully")

	response.WithJSON(w, http.StatusOK, visitors)
}

// GetDailySummary reports one day's visitor totals.
// @Summary Get daily visitor summary
// @Description Retrieve visitor totals by type and the currently checked-in count for a day.
// @Tags Visitor
// @Accept json
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD, default today)"
// @Success 200 {object} response.Data[dto.DailySummaryResponse] "Daily visitor summary"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/visitors/summary [get]
// @Security BearerAuth
func (handler *Handler) GetDailySummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDailySummary")
	defer scope.End()

	date := r.URL.Query().Get("date")

	summary, err := handler.service.DailySummary(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get visitor summary")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Daily visitor summary retrieved successfully")

	response.WithJSON(w, http.StatusOK, summary)
}
