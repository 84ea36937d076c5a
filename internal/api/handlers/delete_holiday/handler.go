package delete_holiday

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/padelio/PDL-BookingService/internal/api/handlers"
	"github.com/padelio/PDL-BookingService/internal/api/middleware"
	"github.com/padelio/PDL-BookingService/internal/service/settings"
)

const (
	msgInvalidHolidayID = "identifiant de fermeture invalide"
	msgHolidayNotFound  = "fermeture introuvable"
	msgForbidden        = "accès réservé aux administrateurs"
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

// Handle DELETE /api/v1/admin/holidays/{holidayId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	holidayID, err := strconv.ParseInt(vars["holidayId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/holidays/{id} - Invalid holiday ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHolidayID)
		return
	}

	callerID, _ := middleware.GetUserID(r.Context())

	if err := h.service.DeleteHoliday(r.Context(), callerID, holidayID); err != nil {
		switch {
		case errors.Is(err, settings.ErrHolidayNotFound):
			h.logger.Warn("DELETE /admin/holidays/{id} - Holiday not found: holiday_id=%d", holidayID)
			handlers.RespondNotFound(w, msgHolidayNotFound)

		case errors.Is(err, settings.ErrAccessDenied):
			h.logger.Warn("DELETE /admin/holidays/{id} - Access denied: user_id=%d", callerID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /admin/holidays/{id} - Internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/holidays/{id} - Holiday deleted: holiday_id=%d, user_id=%d", holidayID, callerID)
	w.WriteHeader(http.StatusNoContent)
}
