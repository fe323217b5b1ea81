package googlecalendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/silkebeauty/SB-BookingService/internal/domain"
)

// cacheTTL время жизни кэша событий календаря
// Снижает нагрузку на внешний API: повторные запросы слотов на одну дату
// в течение минуты не ходят в сеть. Записи не инвалидируются, только истекают
const cacheTTL = 60 * time.Second

// Client клиент внешнего календаря (Google Calendar v3 API)
type Client struct {
	baseURL    string
	calendarID string
	apiKey     string
	httpClient *http.Client
	loc        *time.Location
	cache      *gocache.Cache
	log        Logger
}

// NewClient создает новый экземпляр клиента календаря
func NewClient(baseURL, calendarID, apiKey string, timeout time.Duration, loc *time.Location, log Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		calendarID: calendarID,
		apiKey:     apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		loc:   loc,
		cache: gocache.New(cacheTTL, 5*time.Minute),
		log:   log,
	}
}

// ListEventsForDate получает события календаря на указанную дату
// Результат кэшируется на 60 секунд по ключу (calendar_id, date)
// Ошибка возвращается вызывающему: availability-путь глушит её сам,
// admin debug endpoint показывает как есть
func (c *Client) ListEventsForDate(ctx context.Context, date time.Time) ([]*domain.CalendarEvent, error) {
	cacheKey := fmt.Sprintf("cal:%s:%s", c.calendarID, date.Format(domain.DateFormat))

	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.([]*domain.CalendarEvent), nil
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, c.loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	query := url.Values{}
	query.Set("key", c.apiKey)
	query.Set("timeMin", dayStart.Format(time.RFC3339))
	query.Set("timeMax", dayEnd.Format(time.RFC3339))
	query.Set("singleEvents", "true")
	query.Set("orderBy", "startTime")

	reqURL := fmt.Sprintf("%s/calendars/%s/events?%s", c.baseURL, url.PathEscape(c.calendarID), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	c.log.Info("Fetching calendar events for %s from calendar %s", date.Format(domain.DateFormat), c.calendarID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var list eventsListResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	events := make([]*domain.CalendarEvent, 0, len(list.Items))
	for i := range list.Items {
		event, err := list.Items[i].toDomain(c.loc)
		if err != nil {
			// Одно битое событие не должно ронять весь список
			c.log.Warn("Skipping malformed calendar event: %v", err)
			continue
		}
		events = append(events, event)
	}

	c.log.Info("Found %d events on %s", len(events), date.Format(domain.DateFormat))
	c.cache.Set(cacheKey, events, cacheTTL)

	return events, nil
}

// CreateEvent создает в календаре событие для бронирования
// Best-effort запись без read-back верификации: вызывается из notification
// fan-out, ошибка логируется вызывающим и не влияет на бронирование
func (c *Client) CreateEvent(ctx context.Context, b *domain.Booking, durationMinutes int) error {
	startMinutes, err := b.Time.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid booking time: %v", ErrInternal, err)
	}

	start := time.Date(b.Date.Year(), b.Date.Month(), b.Date.Day(), 0, 0, 0, 0, c.loc).
		Add(time.Duration(startMinutes) * time.Minute)
	end := start.Add(time.Duration(durationMinutes) * time.Minute)

	event := insertEventRequest{
		Summary:     fmt.Sprintf("Reservering - %s", b.Name),
		Description: eventDescription(b),
		Start:       eventTimeDTO{DateTime: start.Format(time.RFC3339), TimeZone: c.loc.String()},
		End:         eventTimeDTO{DateTime: end.Format(time.RFC3339), TimeZone: c.loc.String()},
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal event: %v", ErrInternal, err)
	}

	reqURL := fmt.Sprintf("%s/calendars/%s/events?key=%s",
		c.baseURL, url.PathEscape(c.calendarID), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var created insertEventResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("Created calendar event %s for booking %s", created.ID, b.ID)
	return nil
}

// eventDescription формирует описание события для мастера
func eventDescription(b *domain.Booking) string {
	phone := "-"
	if b.Phone != nil && *b.Phone != "" {
		phone = *b.Phone
	}

	services := "-"
	if len(b.Services) > 0 {
		services = strings.Join(b.Services, ", ")
	}

	return fmt.Sprintf("Naam: %s\nTel: %s\nE-mail: %s\nBehandelingen: %s", b.Name, phone, b.Email, services)
}
