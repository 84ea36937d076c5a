package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/padelio/PDL-BookingService/internal/api/handlers"
	"github.com/padelio/PDL-BookingService/internal/api/middleware"
	"github.com/padelio/PDL-BookingService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "identifiant de réservation invalide"
	msgNotFound         = "réservation introuvable"
	msgForbidden        = "accès refusé"
	msgCannotCancel     = "la réservation ne peut pas être annulée"
	msgTooLate          = "le délai d'annulation est dépassé"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	callerID, _ := middleware.GetUserID(r.Context())

	result, err := h.service.Cancel(r.Context(), bookingID, callerID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Access denied: booking_id=%d, user_id=%d",
				bookingID, callerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Cannot cancel: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		case errors.Is(err, bookings.ErrCancellationTooLate):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Notice period passed: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgTooLate)

		default:
			h.logger.Error("PATCH /bookings/{id}/cancel - Internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/cancel - Booking cancelled: booking_id=%d, user_id=%d",
		bookingID, callerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
