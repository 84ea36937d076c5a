package update_court

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/padelio/PDL-BookingService/internal/api/handlers"
	"github.com/padelio/PDL-BookingService/internal/api/middleware"
	"github.com/padelio/PDL-BookingService/internal/service/courts"
	"github.com/padelio/PDL-BookingService/internal/service/courts/models"
)

const (
	msgInvalidCourtID     = "identifiant de terrain invalide"
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidCourt       = "données de terrain invalides"
	msgCourtNotFound      = "terrain introuvable"
	msgForbidden          = "accès réservé aux administrateurs"
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

// Handle PUT /api/v1/admin/courts/{courtId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	courtID, err := strconv.ParseInt(vars["courtId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /admin/courts/{id} - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	callerID, _ := middleware.GetUserID(r.Context())

	var req models.UpdateCourtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/courts/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.CallerID = callerID
	req.CourtID = courtID

	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, courts.ErrCourtNotFound):
			h.logger.Warn("PUT /admin/courts/{id} - Court not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, courts.ErrAccessDenied):
			h.logger.Warn("PUT /admin/courts/{id} - Access denied: user_id=%d", callerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, courts.ErrInvalidInput):
			h.logger.Warn("PUT /admin/courts/{id} - Invalid court: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCourt)

		default:
			h.logger.Error("PUT /admin/courts/{id} - Internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/courts/{id} - Court updated: court_id=%d, user_id=%d", courtID, callerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
