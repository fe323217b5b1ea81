package get_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/silkebeauty/SB-BookingService/internal/domain"
)

func busyEvent(startMinutes, endMinutes int) *domain.CalendarEvent {
	day := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	return &domain.CalendarEvent{
		Start: domain.EventTime{DateTime: day.Add(time.Duration(startMinutes) * time.Minute)},
		End:   domain.EventTime{DateTime: day.Add(time.Duration(endMinutes) * time.Minute)},
	}
}

func TestGenerateSlotStarts(t *testing.T) {
	t.Run("window 09:00-12:00, duration 90, stride 30", func(t *testing.T) {
		// Последний слот 10:30-12:00 ровно упирается в конец окна
		starts := generateSlotStarts(540, 720, 90, 30)
		assert.Equal(t, []int{540, 570, 600, 630}, starts)
	})

	t.Run("window shorter than duration", func(t *testing.T) {
		starts := generateSlotStarts(540, 600, 90, 30)
		assert.Empty(t, starts)
	})

	t.Run("window equals duration", func(t *testing.T) {
		starts := generateSlotStarts(540, 630, 90, 30)
		assert.Equal(t, []int{540}, starts)
	})

	t.Run("full day window", func(t *testing.T) {
		starts := generateSlotStarts(0, 1440, 90, 30)
		assert.Len(t, starts, 46)
		assert.Equal(t, 0, starts[0])
		assert.Equal(t, 1350, starts[len(starts)-1])
	})

	t.Run("non-positive stride or duration", func(t *testing.T) {
		assert.Empty(t, generateSlotStarts(540, 720, 90, 0))
		assert.Empty(t, generateSlotStarts(540, 720, 0, 30))
	})
}

func TestAvailabilityWindow(t *testing.T) {
	t.Run("no events", func(t *testing.T) {
		_, _, ok := availabilityWindow(nil)
		assert.False(t, ok)
	})

	t.Run("first event wins", func(t *testing.T) {
		events := []*domain.CalendarEvent{
			busyEvent(540, 720),
			busyEvent(780, 1020),
		}
		start, end, ok := availabilityWindow(events)
		assert.True(t, ok)
		assert.Equal(t, 540, start)
		assert.Equal(t, 720, end)
	})
}

func TestCountBusyOverlaps(t *testing.T) {
	tests := []struct {
		name      string
		slotStart int
		slotEnd   int
		busy      []*domain.CalendarEvent
		want      int
	}{
		{
			name:      "overlap in the middle",
			slotStart: 540, slotEnd: 630, // 09:00-10:30
			busy: []*domain.CalendarEvent{busyEvent(600, 660)}, // 10:00-11:00
			want: 1,
		},
		{
			name:      "adjacent event does not overlap",
			slotStart: 540, slotEnd: 630,
			busy: []*domain.CalendarEvent{busyEvent(630, 660)}, // 10:30-11:00
			want: 0,
		},
		{
			name:      "event ending at slot start does not overlap",
			slotStart: 540, slotEnd: 630,
			busy: []*domain.CalendarEvent{busyEvent(480, 540)},
			want: 0,
		},
		{
			name:      "event contained in slot",
			slotStart: 540, slotEnd: 630,
			busy: []*domain.CalendarEvent{busyEvent(560, 580)},
			want: 1,
		},
		{
			name:      "slot contained in event",
			slotStart: 540, slotEnd: 630,
			busy: []*domain.CalendarEvent{busyEvent(0, 1440)},
			want: 1,
		},
		{
			name:      "multiple overlaps counted independently",
			slotStart: 540, slotEnd: 630,
			busy: []*domain.CalendarEvent{
				busyEvent(500, 560),
				busyEvent(600, 700),
				busyEvent(700, 800),
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, countBusyOverlaps(tt.slotStart, tt.slotEnd, tt.busy))
		})
	}
}
