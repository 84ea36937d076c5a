package deactivate_promotion

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
	msgInvalidPromotionID = "identifiant de promotion invalide"
	msgPromotionNotFound  = "promotion introuvable"
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

// Handle DELETE /api/v1/admin/promotions/{promotionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	promotionID, err := strconv.ParseInt(vars["promotionId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/promotions/{id} - Invalid promotion ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPromotionID)
		return
	}

	callerID, _ := middleware.GetUserID(r.Context())

	if err := h.service.DeactivatePromotion(r.Context(), callerID, promotionID); err != nil {
		switch {
		case errors.Is(err, settings.ErrPromotionNotFound):
			h.logger.Warn("DELETE /admin/promotions/{id} - Promotion not found: promotion_id=%d", promotionID)
			handlers.RespondNotFound(w, msgPromotionNotFound)

		case errors.Is(err, settings.ErrAccessDenied):
			h.logger.Warn("DELETE /admin/promotions/{id} - Access denied: user_id=%d", callerID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /admin/promotions/{id} - Internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/promotions/{id} - Promotion deactivated: promotion_id=%d, user_id=%d",
		promotionID, callerID)
	w.WriteHeader(http.StatusNoContent)
}
