package expire_unpaid

import (
	"errors"
	"net/http"

	"github.com/padelio/PDL-BookingService/internal/api/handlers"
	"github.com/padelio/PDL-BookingService/internal/api/middleware"
	expireUnpaid "github.com/padelio/PDL-BookingService/internal/usecase/expire_unpaid_bookings"
)

const (
	msgForbidden     = "accès réservé aux administrateurs"
	msgNotConfigured = "les paramètres du club ne sont pas configurés"
)

type Handler struct {
	useCase ExpireUnpaidUseCase
	logger  Logger
}

func NewHandler(useCase ExpireUnpaidUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/bookings/expire-unpaid
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	callerID, _ := middleware.GetUserID(r.Context())

	result, err := h.useCase.Execute(r.Context(), &expireUnpaid.Request{CallerID: callerID})
	if err != nil {
		switch {
		case errors.Is(err, expireUnpaid.ErrAccessDenied):
			h.logger.Warn("POST /admin/bookings/expire-unpaid - Access denied: user_id=%d", callerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, expireUnpaid.ErrNotConfigured):
			h.logger.Error("POST /admin/bookings/expire-unpaid - Club settings missing")
			handlers.RespondError(w, http.StatusInternalServerError, msgNotConfigured)

		default:
			h.logger.Error("POST /admin/bookings/expire-unpaid - Internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/bookings/expire-unpaid - Cancelled %d bookings", result.Count)
	handlers.RespondJSON(w, http.StatusOK, result)
}
