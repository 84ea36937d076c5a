package models

import (
	"github.com/padelio/PDL-BookingService/internal/domain"
)

// Request модели

// CreateCourtRequest запрос администратора на создание корта
type CreateCourtRequest struct {
	CallerID int64   `json:"-"`
	Name     string  `json:"name"`
	Capacity int     `json:"capacity"`
	Price    int64   `json:"price"` // центы
	ImageURL *string `json:"imageUrl,omitempty"`
}

// UpdateCourtRequest запрос администратора на обновление корта
type UpdateCourtRequest struct {
	CallerID int64   `json:"-"`
	CourtID  int64   `json:"-"`
	Name     *string `json:"name,omitempty"`
	Capacity *int    `json:"capacity,omitempty"`
	Price    *int64  `json:"price,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

// Response модели

// CourtResponse корт
type CourtResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Capacity int     `json:"capacity"`
	Price    int64   `json:"price"`
	IsActive bool    `json:"isActive"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

// CourtListResponse список кортов
type CourtListResponse struct {
	Courts []CourtResponse `json:"courts"`
	Total  int             `json:"total"`
}

// FromDomainCourt конвертирует domain корт в response
func FromDomainCourt(court *domain.Court) *CourtResponse {
	return &CourtResponse{
		ID:       court.ID,
		Name:     court.Name,
		Capacity: court.Capacity,
		Price:    court.PriceCents,
		IsActive: court.IsActive,
		ImageURL: court.ImageURL,
	}
}

// FromDomainCourtList конвертирует список domain кортов в response
func FromDomainCourtList(courts []*domain.Court) *CourtListResponse {
	result := &CourtListResponse{
		Courts: make([]CourtResponse, 0, len(courts)),
		Total:  len(courts),
	}

	for _, court := range courts {
		result.Courts = append(result.Courts, *FromDomainCourt(court))
	}

	return result
}
