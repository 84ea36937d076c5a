package domain

import "time"

// ParticipantStatus статус приглашения участника
type ParticipantStatus string

const (
	ParticipantPending  ParticipantStatus = "pending"
	ParticipantAccepted ParticipantStatus = "accepted"
	ParticipantDeclined ParticipantStatus = "declined"
)

// Participant участник бронирования (организатор не входит в список)
// Уникален в рамках (BookingID, UserID)
type Participant struct {
	ID        int64
	BookingID int64
	UserID    int64
	Status    ParticipantStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanRespond возвращает true, если участник еще не ответил на приглашение
func (p *Participant) CanRespond() bool {
	return p.Status == ParticipantPending
}

// DedupParticipants удаляет дубликаты и исключает организатора из списка участников
// Порядок исходного списка сохраняется
func DedupParticipants(organizerID int64, userIDs []int64) []int64 {
	seen := make(map[int64]struct{}, len(userIDs))
	result := make([]int64, 0, len(userIDs))

	for _, id := range userIDs {
		if id == organizerID || id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}

	return result
}
