package domain

import "time"

// DiscountType тип скидки акции
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Promotion акция на бронирование кортов
// CourtID == nil означает, что акция действует на все корты
type Promotion struct {
	ID            int64
	Name          string
	DiscountType  DiscountType
	DiscountValue int64 // процент для percentage, центы для fixed
	CourtID       *int64
	StartDate     time.Time
	EndDate       time.Time
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AppliesTo возвращает true, если акция действует для корта в указанный момент
func (p *Promotion) AppliesTo(courtID int64, at time.Time) bool {
	if !p.IsActive {
		return false
	}
	if p.CourtID != nil && *p.CourtID != courtID {
		return false
	}
	day := truncateToDay(at)
	return !day.Before(truncateToDay(p.StartDate)) && !day.After(truncateToDay(p.EndDate))
}

// PickPromotion выбирает ровно одну применимую акцию для корта и момента времени.
// Детерминированный tie-break при нескольких кандидатах:
//  1. акция с наиболее узкой областью действия (для конкретного корта) побеждает общую
//  2. затем - созданная позже
//  3. затем - с большим ID
//
// Возвращает nil, если ни одна акция не применима.
func PickPromotion(promotions []*Promotion, courtID int64, at time.Time) *Promotion {
	var best *Promotion

	for _, p := range promotions {
		if !p.AppliesTo(courtID, at) {
			continue
		}
		if best == nil || narrower(p, best) {
			best = p
		}
	}

	return best
}

// narrower возвращает true, если кандидат имеет приоритет над текущим лучшим
func narrower(candidate, best *Promotion) bool {
	candidateScoped := candidate.CourtID != nil
	bestScoped := best.CourtID != nil

	if candidateScoped != bestScoped {
		return candidateScoped
	}
	if !candidate.CreatedAt.Equal(best.CreatedAt) {
		return candidate.CreatedAt.After(best.CreatedAt)
	}
	return candidate.ID > best.ID
}

// ApplyDiscount вычисляет цену со скидкой в центах.
// fixed: вычитает DiscountValue, минимум 0.
// percentage: умножает на (1 - value/100), округление до цента round-half-up.
// Исходная цена никогда не мутируется - возвращается вычисленное значение.
func ApplyDiscount(basePriceCents int64, p *Promotion) int64 {
	if p == nil {
		return basePriceCents
	}

	switch p.DiscountType {
	case DiscountFixed:
		discounted := basePriceCents - p.DiscountValue
		if discounted < 0 {
			return 0
		}
		return discounted

	case DiscountPercentage:
		value := p.DiscountValue
		if value >= MaxPercentageDiscount {
			return 0
		}
		if value <= 0 {
			return basePriceCents
		}
		// round-half-up на целых числах
		return (basePriceCents*(MaxPercentageDiscount-value) + MaxPercentageDiscount/2) / MaxPercentageDiscount

	default:
		return basePriceCents
	}
}

// DiscountAmount возвращает размер скидки в центах
func DiscountAmount(basePriceCents int64, p *Promotion) int64 {
	return basePriceCents - ApplyDiscount(basePriceCents, p)
}
