package domain

import "github.com/silkebeauty/SB-BookingService/pkg/types"

// Slot represents a bookable start time with its remaining capacity
type Slot struct {
	Time      types.TimeString
	Available int // Свободных мест, всегда 0 <= Available <= capacity
}

// IsFull returns true if the slot has no remaining capacity
func (s *Slot) IsFull() bool {
	return s.Available <= 0
}
