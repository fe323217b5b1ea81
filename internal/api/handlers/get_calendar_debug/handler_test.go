package get_calendar_debug

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silkebeauty/SB-BookingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeCalendar struct {
	gotDate time.Time
	events  []*domain.CalendarEvent
	err     error
}

func (f *fakeCalendar) ListEventsForDate(_ context.Context, date time.Time) ([]*domain.CalendarEvent, error) {
	f.gotDate = date
	return f.events, f.err
}

func TestHandler_Handle(t *testing.T) {
	day := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	calendar := &fakeCalendar{events: []*domain.CalendarEvent{
		{
			ID:      "ev1",
			Summary: "Beschikbaar",
			Start:   domain.EventTime{DateTime: day.Add(9 * time.Hour)},
			End:     domain.EventTime{DateTime: day.Add(18 * time.Hour)},
		},
		{
			ID:      "ev2",
			Summary: "Vakantie",
			Start:   domain.EventTime{DateTime: day, AllDay: true},
			End:     domain.EventTime{DateTime: day.AddDate(0, 0, 1), AllDay: true},
		},
	}}
	h := NewHandler(calendar, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/calendar?date=2025-10-15", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp CalendarDebugResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Events, 2)
	assert.Equal(t, "ev1", resp.Events[0].ID)
	assert.False(t, resp.Events[0].AllDay)
	assert.Equal(t, "2025-10-15", resp.Events[1].Start)
	assert.True(t, resp.Events[1].AllDay)
}

func TestHandler_Handle_DefaultsToToday(t *testing.T) {
	calendar := &fakeCalendar{}
	h := NewHandler(calendar, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/calendar", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, time.Now().Format(domain.DateFormat), calendar.gotDate.Format(domain.DateFormat))
}

func TestHandler_Handle_InvalidDate(t *testing.T) {
	h := NewHandler(&fakeCalendar{}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/calendar?date=not-a-date", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Handle_CalendarError(t *testing.T) {
	// В отличие от /slots, здесь ошибка календаря видна клиенту
	calendar := &fakeCalendar{err: errors.New("calendar api unreachable")}
	h := NewHandler(calendar, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/calendar?date=2025-10-15", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["ok"])
	assert.Contains(t, resp["error"], "unreachable")
}
