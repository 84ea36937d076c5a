package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupParticipants(t *testing.T) {
	t.Run("removes duplicates and organizer", func(t *testing.T) {
		got := DedupParticipants(10, []int64{20, 10, 30, 20, 40})
		assert.Equal(t, []int64{20, 30, 40}, got)
	})

	t.Run("drops non-positive ids", func(t *testing.T) {
		got := DedupParticipants(10, []int64{0, -5, 20})
		assert.Equal(t, []int64{20}, got)
	})

	t.Run("empty input yields empty slice", func(t *testing.T) {
		assert.Empty(t, DedupParticipants(10, nil))
	})
}

func TestParticipantCanRespond(t *testing.T) {
	assert.True(t, (&Participant{Status: ParticipantPending}).CanRespond())
	assert.False(t, (&Participant{Status: ParticipantAccepted}).CanRespond())
	assert.False(t, (&Participant{Status: ParticipantDeclined}).CanRespond())
}

func TestNewBookingCode(t *testing.T) {
	code := NewBookingCode()

	assert.True(t, strings.HasPrefix(code, "PB-"))
	assert.Len(t, code, len("PB-")+8)
	assert.Equal(t, strings.ToUpper(code), code)

	// Коды уникальны между вызовами
	assert.NotEqual(t, code, NewBookingCode())
}
