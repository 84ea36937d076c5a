package get_club_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/padelio/PDL-BookingService/internal/api/handlers"
	"github.com/padelio/PDL-BookingService/internal/api/middleware"
	"github.com/padelio/PDL-BookingService/internal/domain"
	"github.com/padelio/PDL-BookingService/internal/service/bookings"
	"github.com/padelio/PDL-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidCourtID = "identifiant de terrain invalide"
	msgInvalidDate    = "format de date invalide, attendu YYYY-MM-DD"
	msgInvalidStatus  = "statut de réservation invalide"
	msgForbidden      = "accès réservé aux administrateurs"
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

// Handle GET /api/v1/admin/bookings
// Query params: courtId, startDate, endDate, status, includeCancelled (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	callerID, _ := middleware.GetUserID(r.Context())
	query := r.URL.Query()

	req := &models.GetClubBookingsRequest{CallerID: callerID}

	if courtIDStr := query.Get("courtId"); courtIDStr != "" {
		courtID, err := strconv.ParseInt(courtIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid court ID %q: %v", courtIDStr, err)
			handlers.RespondBadRequest(w, msgInvalidCourtID)
			return
		}
		req.CourtID = &courtID
	}

	if startStr := query.Get("startDate"); startStr != "" {
		start, err := time.Parse(domain.DateFormat, startStr)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid start date %q: %v", startStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &start
	}

	if endStr := query.Get("endDate"); endStr != "" {
		end, err := time.Parse(domain.DateFormat, endStr)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid end date %q: %v", endStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &end
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	req.IncludeCancelled = query.Get("includeCancelled") == "true"

	result, err := h.service.GetClubBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /admin/bookings - Access denied: user_id=%d", callerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /admin/bookings - Internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
