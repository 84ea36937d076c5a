package deactivate_court

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/padelio/PDL-BookingService/internal/api/handlers"
	"github.com/padelio/PDL-BookingService/internal/api/middleware"
	"github.com/padelio/PDL-BookingService/internal/service/courts"
)

const (
	msgInvalidCourtID = "identifiant de terrain invalide"
	msgCourtNotFound  = "terrain introuvable"
	msgForbidden      = "accès réservé aux administrateurs"
)

type Handler struct {
	service CourtService
	logger  Logger
}

func NewHandler(service CourtService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/courts/{courtId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	courtID, err := strconv.ParseInt(vars["courtId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/courts/{id} - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	callerID, _ := middleware.GetUserID(r.Context())

	if err := h.service.Deactivate(r.Context(), courtID, callerID); err != nil {
		switch {
		case errors.Is(err, courts.ErrCourtNotFound):
			h.logger.Warn("DELETE /admin/courts/{id} - Court not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, courts.ErrAccessDenied):
			h.logger.Warn("DELETE /admin/courts/{id} - Access denied: user_id=%d", callerID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /admin/courts/{id} - Internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/courts/{id} - Court deactivated: court_id=%d, user_id=%d", courtID, callerID)
	w.WriteHeader(http.StatusNoContent)
}
