package create_booking

import (
	"errors"
	"net/http"

	"github.com/padelio/PDL-BookingService/internal/api/handlers"
	"github.com/padelio/PDL-BookingService/internal/api/middleware"
	createBooking "github.com/padelio/PDL-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "corps de requête invalide"
	msgInvalidDateOrTime   = "date ou heure invalide"
	msgClubClosed          = "le club est fermé à cette date"
	msgCourtNotFound       = "terrain introuvable"
	msgOrganizerNotFound   = "utilisateur introuvable"
	msgParticipantNotFound = "un des participants est introuvable"
	msgCapacityExceeded    = "le nombre de joueurs dépasse la capacité du terrain"
	msgSlotConflict        = "le créneau est déjà réservé"
	msgOutsideHours        = "le créneau est en dehors des horaires d'ouverture"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgOrganizerNotFound)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ucReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid date or time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: user_id=%d, court_id=%d, date=%s, start=%s",
				userID, req.CourtID, req.BookingDate, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createBooking.ErrClubClosed):
			h.logger.Warn("POST /bookings - Club closed: date=%s", req.BookingDate)
			handlers.RespondError(w, http.StatusConflict, msgClubClosed)

		case errors.Is(err, createBooking.ErrOutsideOpeningHours):
			h.logger.Warn("POST /bookings - Outside opening hours: date=%s, start=%s", req.BookingDate, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createBooking.ErrCourtNotFound):
			h.logger.Warn("POST /bookings - Court not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createBooking.ErrOrganizerNotFound):
			h.logger.Warn("POST /bookings - Organizer not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgOrganizerNotFound)

		case errors.Is(err, createBooking.ErrParticipantNotFound):
			h.logger.Warn("POST /bookings - Participant not found: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgParticipantNotFound)

		case errors.Is(err, createBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - Capacity exceeded: court_id=%d, participants=%d",
				req.CourtID, len(req.Participants))
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, createBooking.ErrInvalidDate),
			errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDateOrTime)

		default:
			h.logger.Error("POST /bookings - Internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, user_id=%d, court_id=%d",
		result.ID, userID, req.CourtID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
