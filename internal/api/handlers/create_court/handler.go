package create_court

import (
	"errors"
	"net/http"

	"github.com/padelio/PDL-BookingService/internal/api/handlers"
	"github.com/padelio/PDL-BookingService/internal/api/middleware"
	"github.com/padelio/PDL-BookingService/internal/service/courts"
	"github.com/padelio/PDL-BookingService/internal/service/courts/models"
)

const (
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidCourt       = "données de terrain invalides"
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

// Handle POST /api/v1/admin/courts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	callerID, _ := middleware.GetUserID(r.Context())

	var req models.CreateCourtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/courts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.CallerID = callerID

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, courts.ErrAccessDenied):
			h.logger.Warn("POST /admin/courts - Access denied: user_id=%d", callerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, courts.ErrInvalidInput):
			h.logger.Warn("POST /admin/courts - Invalid court: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCourt)

		default:
			h.logger.Error("POST /admin/courts - Internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/courts - Court created: court_id=%d, user_id=%d", result.ID, callerID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
