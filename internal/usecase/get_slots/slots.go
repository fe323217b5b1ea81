package get_slots

import "github.com/silkebeauty/SB-BookingService/internal/domain"

// generateSlotStarts генерирует начала слотов в минутах от начала суток
// для рабочего окна [windowStart, windowEnd)
//
// Слот с началом t попадает в результат, если t >= windowStart и
// t + duration <= windowEnd; начала идут с шагом stride. Шаг может быть
// меньше длительности - тогда слоты пересекаются по времени, но
// последовательность начал строго возрастает
//
// Детерминированная чистая функция без I/O. Окно короче duration
// дает пустую последовательность
func generateSlotStarts(windowStart, windowEnd, duration, stride int) []int {
	starts := make([]int, 0)

	if stride <= 0 || duration <= 0 {
		return starts
	}

	for t := windowStart; t+duration <= windowEnd; t += stride {
		starts = append(starts, t)
	}

	return starts
}

// availabilityWindow возвращает рабочее окно дня в минутах от начала суток
// Берётся ПЕРВОЕ availability-событие в порядке, возвращённом календарём;
// несколько рабочих окон в день не объединяются. Если availability-событий
// нет - рабочего окна нет и слотов на день нет (без дефолтного окна)
func availabilityWindow(availability []*domain.CalendarEvent) (start, end int, ok bool) {
	if len(availability) == 0 {
		return 0, 0, false
	}

	start, end = availability[0].Interval()
	return start, end, true
}

// countBusyOverlaps подсчитывает busy-события, пересекающиеся со слотом [slotStart, slotEnd)
//
// Пересечение есть только если интервалы действительно накладываются друг на друга:
// busyStart < slotEnd И busyEnd > slotStart (строгие неравенства).
// Если событие заканчивается ровно там, где начинается слот (или наоборот) - это НЕ пересечение
//
// Примеры:
// - Слот 09:00-10:30, событие 10:00-11:00 → ЕСТЬ пересечение (10:00-10:30)
// - Слот 09:00-10:30, событие 10:30-11:00 → НЕТ пересечения (граничат)
func countBusyOverlaps(slotStart, slotEnd int, busy []*domain.CalendarEvent) int {
	count := 0

	for _, event := range busy {
		busyStart, busyEnd := event.Interval()
		if busyStart < slotEnd && busyEnd > slotStart {
			count++
		}
	}

	return count
}
