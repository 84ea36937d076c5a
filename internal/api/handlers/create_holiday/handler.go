package create_holiday

import (
	"errors"
	"net/http"

	"github.com/padelio/PDL-BookingService/internal/api/handlers"
	"github.com/padelio/PDL-BookingService/internal/api/middleware"
	"github.com/padelio/PDL-BookingService/internal/service/settings"
	"github.com/padelio/PDL-BookingService/internal/service/settings/models"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidHoliday     = "données de fermeture invalides"
	msgForbidden          = "accès réservé aux administrateurs"
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

// Handle POST /api/v1/admin/holidays
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	callerID, _ := middleware.GetUserID(r.Context())

	var req models.CreateHolidayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/holidays - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.CallerID = callerID

	result, err := h.service.CreateHoliday(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrAccessDenied):
			h.logger.Warn("POST /admin/holidays - Access denied: user_id=%d", callerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("POST /admin/holidays - Invalid holiday: %v", err)
			handlers.RespondBadRequest(w, msgInvalidHoliday)

		default:
			h.logger.Error("POST /admin/holidays - Internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/holidays - Holiday created: holiday_id=%d, user_id=%d", result.ID, callerID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
