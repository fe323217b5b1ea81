package get_slots

import (
	"strings"

	"github.com/silkebeauty/SB-BookingService/internal/domain"
)

// Classifier классифицирует событие календаря как Availability или Busy
// Выделен в отдельный тип, чтобы эвристику можно было подменить
type Classifier func(*domain.CalendarEvent) domain.EventClass

// KeywordClassifier классификатор по ключевым словам
// Событие считается Availability, если summary или description содержит
// одно из ключевых слов (case-insensitive substring match), иначе - Busy.
// Это эвристика: событие "Workshop" тоже попадёт в Availability
func KeywordClassifier(event *domain.CalendarEvent) domain.EventClass {
	text := strings.ToLower(event.Summary + " " + event.Description)

	for _, keyword := range domain.AvailabilityKeywords {
		if strings.Contains(text, keyword) {
			return domain.ClassAvailability
		}
	}

	return domain.ClassBusy
}

// partitionEvents разбивает события на Availability и Busy множества
// Порядок внутри каждого множества сохраняется как в исходном списке
// (внешний календарь отдаёт события по возрастанию времени начала)
func partitionEvents(events []*domain.CalendarEvent, classify Classifier) (availability, busy []*domain.CalendarEvent) {
	for _, event := range events {
		if classify(event) == domain.ClassAvailability {
			availability = append(availability, event)
		} else {
			busy = append(busy, event)
		}
	}
	return availability, busy
}
