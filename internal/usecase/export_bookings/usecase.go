package export_bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/padelio/PDL-BookingService/internal/domain"
	profileRepo "github.com/padelio/PDL-BookingService/internal/infra/storage/profile"
	"github.com/padelio/PDL-BookingService/pkg/ptr"
)

// sheetName имя листа в выгрузке
const sheetName = "Réservations"

// exportColumns заголовки колонок выгрузки (язык клуба)
var exportColumns = []string{
	"Date",
	"Heure",
	"Terrain",
	"Code",
	"Utilisateur",
	"Nom",
	"Prénom",
	"Email",
	"Téléphone",
	"Prix affiché",
	"Remise",
	"Montant dû",
	"Montant payé",
}

// Request модель запроса экспорта бронирований
type Request struct {
	CallerID  int64
	StartDate time.Time
	EndDate   time.Time
}

// Response готовая xlsx выгрузка
type Response struct {
	FileName string
	Content  []byte
}

// UseCase use case экспорта бронирований в xlsx для администраторов
type UseCase struct {
	bookingRepo BookingRepository
	courtRepo   CourtRepository
	profileRepo ProfileRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	courtRepo CourtRepository,
	profileRepo ProfileRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		courtRepo:   courtRepo,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// Execute выполняет use case экспорта бронирований
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ExportBookings: caller=%d, period=%s..%s",
		req.CallerID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация и доступ
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: startDate and endDate are required", ErrInvalidPeriod)
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidPeriod)
	}

	if err := uc.requireAdmin(ctx, req.CallerID); err != nil {
		return nil, err
	}

	// 2. Бронирования за период (активные)
	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		StartDate: ptr.Ptr(req.StartDate),
		EndDate:   ptr.Ptr(req.EndDate),
	})
	if err != nil {
		uc.logger.Error("ExportBookings: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 3. Справочники кортов и организаторов
	courts, err := uc.courtRepo.List(ctx, false)
	if err != nil {
		uc.logger.Error("ExportBookings: failed to list courts: %v", err)
		return nil, fmt.Errorf("%w: failed to list courts: %v", ErrInternal, err)
	}

	courtNames := make(map[int64]string, len(courts))
	for _, court := range courts {
		courtNames[court.ID] = court.Name
	}

	profiles, err := uc.loadOrganizers(ctx, bookings)
	if err != nil {
		return nil, err
	}

	// 4. Формируем xlsx
	content, err := buildWorkbook(bookings, courtNames, profiles)
	if err != nil {
		uc.logger.Error("ExportBookings: failed to build workbook: %v", err)
		return nil, fmt.Errorf("%w: failed to build workbook: %v", ErrInternal, err)
	}

	fileName := fmt.Sprintf("reservations_%s_%s.xlsx",
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	uc.logger.Info("ExportBookings: exported %d bookings to %s", len(bookings), fileName)

	return &Response{
		FileName: fileName,
		Content:  content,
	}, nil
}

// loadOrganizers загружает профили организаторов выгружаемых бронирований
func (uc *UseCase) loadOrganizers(ctx context.Context, bookings []*domain.Booking) (map[int64]*domain.Profile, error) {
	seen := make(map[int64]struct{}, len(bookings))
	ids := make([]int64, 0, len(bookings))
	for _, b := range bookings {
		if _, ok := seen[b.UserID]; ok {
			continue
		}
		seen[b.UserID] = struct{}{}
		ids = append(ids, b.UserID)
	}

	profiles, err := uc.profileRepo.GetByIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("ExportBookings: failed to load organizer profiles: %v", err)
		return nil, fmt.Errorf("%w: failed to load profiles: %v", ErrInternal, err)
	}

	byID := make(map[int64]*domain.Profile, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}

	return byID, nil
}

// buildWorkbook собирает xlsx книгу с одной строкой на бронирование
func buildWorkbook(bookings []*domain.Booking, courtNames map[int64]string, profiles map[int64]*domain.Profile) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for col, title := range exportColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, title); err != nil {
			return nil, err
		}
	}

	for i, booking := range bookings {
		profile := profiles[booking.UserID]

		username, lastName, firstName, email, phone := "", "", "", "", ""
		if profile != nil {
			username = profile.Username
			lastName = profile.LastName
			firstName = profile.FirstName
			email = profile.Email
			phone = profile.Phone
		}

		displayed := booking.TotalAmountCents
		discount := int64(0)
		if booking.OriginalAmountCents != nil {
			displayed = *booking.OriginalAmountCents
		}
		if booking.PromotionDiscount != nil {
			discount = *booking.PromotionDiscount
		}

		row := []interface{}{
			booking.BookingDate.Format(domain.DateFormat),
			fmt.Sprintf("%s - %s", booking.StartTime, booking.EndTime),
			courtNames[booking.CourtID],
			booking.BookingCode,
			username,
			lastName,
			firstName,
			email,
			phone,
			formatEuros(displayed),
			formatEuros(discount),
			formatEuros(booking.TotalAmountCents),
			formatEuros(booking.AmountPaidCents),
		}

		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// formatEuros форматирует центы в евро с запятой-разделителем ("20,00")
func formatEuros(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d,%02d", sign, cents/100, cents%100)
}

// requireAdmin проверяет, что вызывающий - администратор клуба
func (uc *UseCase) requireAdmin(ctx context.Context, userID int64) error {
	profile, err := uc.profileRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			return ErrAccessDenied
		}
		uc.logger.Error("ExportBookings: failed to load profile user=%d: %v", userID, err)
		return fmt.Errorf("%w: profile lookup error: %v", ErrInternal, err)
	}
	if !profile.IsAdmin() {
		return ErrAccessDenied
	}
	return nil
}
