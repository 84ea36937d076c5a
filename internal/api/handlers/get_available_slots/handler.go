package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/padelio/PDL-BookingService/internal/api/handlers"
	"github.com/padelio/PDL-BookingService/internal/api/middleware"
	"github.com/padelio/PDL-BookingService/internal/domain"
	getAvailableSlots "github.com/padelio/PDL-BookingService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate    = "la date est obligatoire"
	msgInvalidDate    = "format de date invalide, attendu YYYY-MM-DD"
	msgInvalidCourtID = "identifiant de terrain invalide"
	msgCourtNotFound  = "terrain introuvable"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: date (required, YYYY-MM-DD), courtId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability - Missing date param")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &getAvailableSlots.Request{Date: date}

	if courtIDStr := query.Get("courtId"); courtIDStr != "" {
		courtID, err := strconv.ParseInt(courtIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid court ID %q: %v", courtIDStr, err)
			handlers.RespondBadRequest(w, msgInvalidCourtID)
			return
		}
		req.CourtID = &courtID
	}

	// Маршрут публичный, идентификатор пользователя опционален
	if userID, ok := middleware.GetUserID(r.Context()); ok {
		req.UserID = userID
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrCourtNotFound):
			h.logger.Warn("GET /availability - Court not found: %v", err)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate),
			errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /availability - Internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
