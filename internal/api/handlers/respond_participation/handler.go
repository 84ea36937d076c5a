package respond_participation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/padelio/PDL-BookingService/internal/api/handlers"
	"github.com/padelio/PDL-BookingService/internal/api/middleware"
	"github.com/padelio/PDL-BookingService/internal/service/bookings"
	"github.com/padelio/PDL-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidBookingID   = "identifiant de réservation invalide"
	msgInvalidRequestBody = "corps de requête invalide"
	msgInvalidStatus      = "statut invalide, attendu accepted ou declined"
	msgNotFound           = "réservation introuvable"
	msgNotInvited         = "vous n'êtes pas invité à cette réservation"
	msgNotActive          = "la réservation n'est plus active"
	msgAlreadyResponded   = "vous avez déjà répondu à cette invitation"
)

// RespondParticipationRequest HTTP request model
type RespondParticipationRequest struct {
	Status string `json:"status"` // accepted | declined
}

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

// Handle PATCH /api/v1/bookings/{bookingId}/participation
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/participation - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req RespondParticipationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/participation - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, _ := middleware.GetUserID(r.Context())

	result, err := h.service.RespondParticipation(r.Context(), &models.RespondParticipationRequest{
		BookingID: bookingID,
		UserID:    userID,
		Status:    req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/participation - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrParticipantNotFound):
			h.logger.Warn("PATCH /bookings/{id}/participation - Not invited: booking_id=%d, user_id=%d",
				bookingID, userID)
			handlers.RespondForbidden(w, msgNotInvited)

		case errors.Is(err, bookings.ErrBookingNotActive):
			h.logger.Warn("PATCH /bookings/{id}/participation - Booking not active: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgNotActive)

		case errors.Is(err, bookings.ErrAlreadyResponded):
			h.logger.Warn("PATCH /bookings/{id}/participation - Already responded: booking_id=%d, user_id=%d",
				bookingID, userID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyResponded)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/participation - Invalid status: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /bookings/{id}/participation - Internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/participation - Responded: booking_id=%d, user_id=%d, status=%s",
		bookingID, userID, req.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
