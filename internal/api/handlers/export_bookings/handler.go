package export_bookings

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/padelio/PDL-BookingService/internal/api/handlers"
	"github.com/padelio/PDL-BookingService/internal/api/middleware"
	"github.com/padelio/PDL-BookingService/internal/domain"
	exportBookings "github.com/padelio/PDL-BookingService/internal/usecase/export_bookings"
)

const (
	msgMissingPeriod = "startDate et endDate sont obligatoires"
	msgInvalidDate   = "format de date invalide, attendu YYYY-MM-DD"
	msgInvalidPeriod = "période d'export invalide"
	msgForbidden     = "accès réservé aux administrateurs"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	useCase ExportBookingsUseCase
	logger  Logger
}

func NewHandler(useCase ExportBookingsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings/export
// Query params: startDate, endDate (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	callerID, _ := middleware.GetUserID(r.Context())
	query := r.URL.Query()

	startStr := query.Get("startDate")
	endStr := query.Get("endDate")
	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /admin/bookings/export - Missing period params")
		handlers.RespondBadRequest(w, msgMissingPeriod)
		return
	}

	startDate, err := time.Parse(domain.DateFormat, startStr)
	if err != nil {
		h.logger.Warn("GET /admin/bookings/export - Invalid start date %q: %v", startStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	endDate, err := time.Parse(domain.DateFormat, endStr)
	if err != nil {
		h.logger.Warn("GET /admin/bookings/export - Invalid end date %q: %v", endStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &exportBookings.Request{
		CallerID:  callerID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, exportBookings.ErrAccessDenied):
			h.logger.Warn("GET /admin/bookings/export - Access denied: user_id=%d", callerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, exportBookings.ErrInvalidPeriod):
			h.logger.Warn("GET /admin/bookings/export - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /admin/bookings/export - Internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings/export - Exported file %s (%d bytes)", result.FileName, len(result.Content))

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Content)
}
