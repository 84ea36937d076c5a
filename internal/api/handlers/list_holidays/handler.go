package list_holidays

import (
	"errors"
	"net/http"
	"time"

	"github.com/padelio/PDL-BookingService/internal/api/handlers"
	"github.com/padelio/PDL-BookingService/internal/api/middleware"
	"github.com/padelio/PDL-BookingService/internal/domain"
	"github.com/padelio/PDL-BookingService/internal/service/settings"
)

const (
	msgMissingPeriod = "startDate et endDate sont obligatoires"
	msgInvalidDate   = "format de date invalide, attendu YYYY-MM-DD"
	msgForbidden     = "accès réservé aux administrateurs"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/holidays
// Query params: startDate, endDate (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	callerID, _ := middleware.GetUserID(r.Context())
	query := r.URL.Query()

	startStr := query.Get("startDate")
	endStr := query.Get("endDate")
	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /admin/holidays - Missing period params")
		handlers.RespondBadRequest(w, msgMissingPeriod)
		return
	}

	start, err := time.Parse(domain.DateFormat, startStr)
	if err != nil {
		h.logger.Warn("GET /admin/holidays - Invalid start date %q: %v", startStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	end, err := time.Parse(domain.DateFormat, endStr)
	if err != nil {
		h.logger.Warn("GET /admin/holidays - Invalid end date %q: %v", endStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.ListHolidays(r.Context(), callerID, start, end)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrAccessDenied):
			h.logger.Warn("GET /admin/holidays - Access denied: user_id=%d", callerID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /admin/holidays - Internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
