package domain

import "time"

// Court падел-корт клуба
// Цена хранится в минорных единицах валюты (центы евро)
type Court struct {
	ID         int64
	Name       string
	Capacity   int // 2 или 4 игрока
	PriceCents int64
	IsActive   bool
	ImageURL   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// HasValidCapacity проверяет, что вместимость корта допустима (2 или 4)
func (c *Court) HasValidCapacity() bool {
	return c.Capacity == MinCourtCapacity || c.Capacity == MaxCourtCapacity
}
