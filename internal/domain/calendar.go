package domain

import "time"

// EventClass классификация события внешнего календаря
type EventClass string

const (
	// ClassAvailability событие задаёт рабочие часы мастера
	ClassAvailability EventClass = "availability"
	// ClassBusy событие блокирует пересекающиеся слоты
	ClassBusy EventClass = "busy"
)

// CalendarEvent событие внешнего календаря (только чтение)
// Start/End - либо момент времени (dateTime), либо целый день (AllDay)
type CalendarEvent struct {
	ID          string
	Summary     string
	Description string
	Start       EventTime
	End         EventTime
}

// EventTime начало или конец события
// Для событий "на весь день" внешний календарь отдаёт дату без времени
type EventTime struct {
	DateTime time.Time
	AllDay   bool
}

// minutesPerDay количество минут в сутках
const minutesPerDay = 24 * 60

// Interval возвращает интервал события в минутах от начала суток [start, end)
// Событие "на весь день" покрывает [0, 1440)
// Конец, выпадающий на следующий день, обрезается до конца суток
func (e *CalendarEvent) Interval() (start, end int) {
	if e.Start.AllDay || e.End.AllDay {
		return 0, minutesPerDay
	}

	start = e.Start.DateTime.Hour()*60 + e.Start.DateTime.Minute()
	if e.End.DateTime.YearDay() != e.Start.DateTime.YearDay() || e.End.DateTime.Year() != e.Start.DateTime.Year() {
		end = minutesPerDay
	} else {
		end = e.End.DateTime.Hour()*60 + e.End.DateTime.Minute()
	}
	return start, end
}
