package models

import (
	"time"

	"github.com/padelio/PDL-BookingService/internal/domain"
	"github.com/padelio/PDL-BookingService/pkg/types"
)

// Request модели

// OpeningHoursItem расписание на день недели (0 = воскресенье ... 6 = суббота)
type OpeningHoursItem struct {
	DayOfWeek int    `json:"dayOfWeek"`
	OpenTime  string `json:"openTime,omitempty"`
	CloseTime string `json:"closeTime,omitempty"`
	IsClosed  bool   `json:"isClosed"`
}

// UpdateSettingsRequest запрос администратора на обновление настроек клуба
type UpdateSettingsRequest struct {
	CallerID                int64              `json:"-"`
	GameDurationMinutes     *int               `json:"gameDurationMinutes,omitempty"`
	PaymentTimeoutHours     *int               `json:"paymentTimeoutHours,omitempty"`
	CancellationNoticeHours *int               `json:"cancellationNoticeHours,omitempty"`
	OpeningHours            []OpeningHoursItem `json:"openingHours,omitempty"`
}

// CreateHolidayRequest запрос администратора на закрытие клуба
type CreateHolidayRequest struct {
	CallerID int64   `json:"-"`
	Date     string  `json:"date"`              // YYYY-MM-DD
	EndDate  *string `json:"endDate,omitempty"` // YYYY-MM-DD, включительно
	Reason   string  `json:"reason"`
}

// CreatePromotionRequest запрос администратора на создание акции
type CreatePromotionRequest struct {
	CallerID      int64  `json:"-"`
	Name          string `json:"name"`
	DiscountType  string `json:"discountType"` // percentage | fixed
	DiscountValue int64  `json:"discountValue"`
	CourtID       *int64 `json:"courtId,omitempty"` // nil = вся территория клуба
	StartDate     string `json:"startDate"`         // YYYY-MM-DD
	EndDate       string `json:"endDate"`           // YYYY-MM-DD
}

// Response модели

// SettingsResponse настройки клуба вместе с недельным расписанием
type SettingsResponse struct {
	GameDurationMinutes     int                `json:"gameDurationMinutes"`
	PaymentTimeoutHours     int                `json:"paymentTimeoutHours"`
	CancellationNoticeHours int                `json:"cancellationNoticeHours"`
	OpeningHours            []OpeningHoursItem `json:"openingHours"`
}

// HolidayResponse закрытие клуба
type HolidayResponse struct {
	ID      int64   `json:"id"`
	Date    string  `json:"date"`
	EndDate *string `json:"endDate,omitempty"`
	Reason  string  `json:"reason"`
}

// HolidayListResponse список закрытий клуба
type HolidayListResponse struct {
	Holidays []HolidayResponse `json:"holidays"`
	Total    int               `json:"total"`
}

// PromotionResponse акция
type PromotionResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	DiscountType  string `json:"discountType"`
	DiscountValue int64  `json:"discountValue"`
	CourtID       *int64 `json:"courtId,omitempty"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	IsActive      bool   `json:"isActive"`
}

// PromotionListResponse список акций
type PromotionListResponse struct {
	Promotions []PromotionResponse `json:"promotions"`
	Total      int                 `json:"total"`
}

// Converters

// FromDomainSettings конвертирует настройки и расписание в response
func FromDomainSettings(settings *domain.ClubSettings, hours []*domain.OpeningHours) *SettingsResponse {
	response := &SettingsResponse{
		GameDurationMinutes:     settings.GameDurationMinutes,
		PaymentTimeoutHours:     settings.PaymentTimeoutHours,
		CancellationNoticeHours: settings.CancellationNoticeHours,
		OpeningHours:            make([]OpeningHoursItem, 0, len(hours)),
	}

	for _, oh := range hours {
		response.OpeningHours = append(response.OpeningHours, OpeningHoursItem{
			DayOfWeek: oh.DayOfWeek,
			OpenTime:  oh.OpenTime.String(),
			CloseTime: oh.CloseTime.String(),
			IsClosed:  oh.IsClosed,
		})
	}

	return response
}

// ToDomainOpeningHours конвертирует item в domain расписание
func (i *OpeningHoursItem) ToDomainOpeningHours() (*domain.OpeningHours, error) {
	oh := &domain.OpeningHours{
		DayOfWeek: i.DayOfWeek,
		IsClosed:  i.IsClosed,
	}

	if i.IsClosed {
		return oh, nil
	}

	openTime, err := types.NewTimeStringFromString(i.OpenTime)
	if err != nil {
		return nil, err
	}
	closeTime, err := types.NewTimeStringFromString(i.CloseTime)
	if err != nil {
		return nil, err
	}

	oh.OpenTime = openTime
	oh.CloseTime = closeTime

	return oh, nil
}

// FromDomainHoliday конвертирует domain закрытие в response
func FromDomainHoliday(holiday *domain.Holiday) *HolidayResponse {
	response := &HolidayResponse{
		ID:     holiday.ID,
		Date:   holiday.Date.Format(domain.DateFormat),
		Reason: holiday.Reason,
	}

	if holiday.EndDate != nil {
		endDate := holiday.EndDate.Format(domain.DateFormat)
		response.EndDate = &endDate
	}

	return response
}

// FromDomainHolidayList конвертирует список закрытий в response
func FromDomainHolidayList(holidays []*domain.Holiday) *HolidayListResponse {
	result := &HolidayListResponse{
		Holidays: make([]HolidayResponse, 0, len(holidays)),
		Total:    len(holidays),
	}

	for _, holiday := range holidays {
		result.Holidays = append(result.Holidays, *FromDomainHoliday(holiday))
	}

	return result
}

// FromDomainPromotion конвертирует domain акцию в response
func FromDomainPromotion(promotion *domain.Promotion) *PromotionResponse {
	return &PromotionResponse{
		ID:            promotion.ID,
		Name:          promotion.Name,
		DiscountType:  string(promotion.DiscountType),
		DiscountValue: promotion.DiscountValue,
		CourtID:       promotion.CourtID,
		StartDate:     promotion.StartDate.Format(domain.DateFormat),
		EndDate:       promotion.EndDate.Format(domain.DateFormat),
		IsActive:      promotion.IsActive,
	}
}

// FromDomainPromotionList конвертирует список акций в response
func FromDomainPromotionList(promotions []*domain.Promotion) *PromotionListResponse {
	result := &PromotionListResponse{
		Promotions: make([]PromotionResponse, 0, len(promotions)),
		Total:      len(promotions),
	}

	for _, promotion := range promotions {
		result.Promotions = append(result.Promotions, *FromDomainPromotion(promotion))
	}

	return result
}

// ParseDate парсит дату в формате YYYY-MM-DD
func ParseDate(value string) (time.Time, error) {
	return time.Parse(domain.DateFormat, value)
}
