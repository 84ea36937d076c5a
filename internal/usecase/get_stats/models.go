package get_stats

import (
	"time"

	"github.com/padelio/PDL-BookingService/internal/domain"
)

// Request модель запроса статистики занятости
type Request struct {
	CallerID  int64
	StartDate time.Time
	EndDate   time.Time
	GroupBy   string // day | week | month | year
}

// Bucket агрегат за один период
type Bucket struct {
	Period        string  `json:"period"`
	BookingsCount int     `json:"bookingsCount"`
	TotalSlots    int     `json:"totalSlots"`
	OccupancyRate float64 `json:"occupancyRate"`
	Revenue       float64 `json:"revenue"` // евро
}

// Response модель ответа со статистикой по периодам
type Response struct {
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	GroupBy   string   `json:"groupBy"`
	Buckets   []Bucket `json:"buckets"`
}

// fromDomainBuckets конвертирует domain агрегаты в response
func fromDomainBuckets(req *Request, buckets []*domain.StatsBucket) *Response {
	response := &Response{
		StartDate: req.StartDate.Format(domain.DateFormat),
		EndDate:   req.EndDate.Format(domain.DateFormat),
		GroupBy:   req.GroupBy,
		Buckets:   make([]Bucket, 0, len(buckets)),
	}

	for _, b := range buckets {
		response.Buckets = append(response.Buckets, Bucket{
			Period:        b.PeriodKey,
			BookingsCount: b.BookingsCount,
			TotalSlots:    b.TotalSlots,
			OccupancyRate: b.OccupancyRate,
			Revenue:       b.RevenueEuros,
		})
	}

	return response
}
