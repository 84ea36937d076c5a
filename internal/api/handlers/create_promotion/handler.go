package create_promotion

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
	msgInvalidPromotion   = "données de promotion invalides"
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

// Handle POST /api/v1/admin/promotions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	callerID, _ := middleware.GetUserID(r.Context())

	var req models.CreatePromotionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/promotions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.CallerID = callerID

	result, err := h.service.CreatePromotion(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrAccessDenied):
			h.logger.Warn("POST /admin/promotions - Access denied: user_id=%d", callerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("POST /admin/promotions - Invalid promotion: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPromotion)

		default:
			h.logger.Error("POST /admin/promotions - Internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/promotions - Promotion created: promotion_id=%d, user_id=%d", result.ID, callerID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
