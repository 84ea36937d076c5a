package get_stats

import (
	"errors"
	"net/http"
	"time"

	"github.com/padelio/PDL-BookingService/internal/api/handlers"
	"github.com/padelio/PDL-BookingService/internal/api/middleware"
	"github.com/padelio/PDL-BookingService/internal/domain"
	getStats "github.com/padelio/PDL-BookingService/internal/usecase/get_stats"
)

const (
	msgMissingPeriod  = "startDate et endDate sont obligatoires"
	msgInvalidDate    = "format de date invalide, attendu YYYY-MM-DD"
	msgInvalidPeriod  = "période de statistiques invalide"
	msgInvalidGroupBy = "groupBy doit être day, week, month ou year"
	msgForbidden      = "accès réservé aux administrateurs"
)

type Handler struct {
	useCase GetStatsUseCase
	logger  Logger
}

func NewHandler(useCase GetStatsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/stats
// Query params: startDate, endDate (required, YYYY-MM-DD), groupBy (day | week | month | year)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	callerID, _ := middleware.GetUserID(r.Context())
	query := r.URL.Query()

	startStr := query.Get("startDate")
	endStr := query.Get("endDate")
	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /admin/stats - Missing period params")
		handlers.RespondBadRequest(w, msgMissingPeriod)
		return
	}

	startDate, err := time.Parse(domain.DateFormat, startStr)
	if err != nil {
		h.logger.Warn("GET /admin/stats - Invalid start date %q: %v", startStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	endDate, err := time.Parse(domain.DateFormat, endStr)
	if err != nil {
		h.logger.Warn("GET /admin/stats - Invalid end date %q: %v", endStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	groupBy := query.Get("groupBy")
	if groupBy == "" {
		groupBy = string(domain.GroupByDay)
	}

	result, err := h.useCase.Execute(r.Context(), &getStats.Request{
		CallerID:  callerID,
		StartDate: startDate,
		EndDate:   endDate,
		GroupBy:   groupBy,
	})
	if err != nil {
		switch {
		case errors.Is(err, getStats.ErrAccessDenied):
			h.logger.Warn("GET /admin/stats - Access denied: user_id=%d", callerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, getStats.ErrInvalidGroupBy):
			h.logger.Warn("GET /admin/stats - Invalid groupBy %q", groupBy)
			handlers.RespondBadRequest(w, msgInvalidGroupBy)

		case errors.Is(err, getStats.ErrInvalidPeriod):
			h.logger.Warn("GET /admin/stats - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /admin/stats - Internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
