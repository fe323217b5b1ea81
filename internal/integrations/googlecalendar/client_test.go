package googlecalendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silkebeauty/SB-BookingService/internal/domain"
	"github.com/silkebeauty/SB-BookingService/pkg/ptr"
	"github.com/silkebeauty/SB-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	loc, err := time.LoadLocation("Europe/Brussels")
	require.NoError(t, err)

	return NewClient(srv.URL, "primary", "test-key", 5*time.Second, loc, nopLogger{}), srv
}

func TestClient_ListEventsForDate(t *testing.T) {
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/calendars/primary/events", r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "test-key", query.Get("key"))
		assert.Equal(t, "true", query.Get("singleEvents"))
		assert.Equal(t, "startTime", query.Get("orderBy"))
		assert.NotEmpty(t, query.Get("timeMin"))
		assert.NotEmpty(t, query.Get("timeMax"))

		_ = json.NewEncoder(w).Encode(eventsListResponse{Items: []eventItem{
			{
				ID:      "ev1",
				Summary: "Beschikbaar",
				Start:   eventTimeDTO{DateTime: "2025-10-15T09:00:00+02:00"},
				End:     eventTimeDTO{DateTime: "2025-10-15T18:00:00+02:00"},
			},
			{
				ID:      "ev2",
				Summary: "Vakantie",
				Start:   eventTimeDTO{Date: "2025-10-15"},
				End:     eventTimeDTO{Date: "2025-10-16"},
			},
		}})
	})

	events, err := client.ListEventsForDate(context.Background(), date)
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "ev1", events[0].ID)
	assert.False(t, events[0].Start.AllDay)
	start, end := events[0].Interval()
	assert.Equal(t, 540, start)
	assert.Equal(t, 1080, end)

	assert.Equal(t, "ev2", events[1].ID)
	assert.True(t, events[1].Start.AllDay)
}

func TestClient_ListEventsForDate_CachesResult(t *testing.T) {
	var hits atomic.Int32
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_ = json.NewEncoder(w).Encode(eventsListResponse{})
	})

	_, err := client.ListEventsForDate(context.Background(), date)
	require.NoError(t, err)
	_, err = client.ListEventsForDate(context.Background(), date)
	require.NoError(t, err)

	assert.Equal(t, int32(1), hits.Load())

	// Другая дата - другой ключ кэша
	_, err = client.ListEventsForDate(context.Background(), date.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestClient_ListEventsForDate_SkipsMalformedEvents(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(eventsListResponse{Items: []eventItem{
			{ID: "broken"}, // ни dateTime, ни date
			{
				ID:    "ok",
				Start: eventTimeDTO{DateTime: "2025-10-15T09:00:00+02:00"},
				End:   eventTimeDTO{DateTime: "2025-10-15T10:00:00+02:00"},
			},
		}})
	})

	events, err := client.ListEventsForDate(context.Background(), time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "ok", events[0].ID)
}

func TestClient_ListEventsForDate_ErrorStatus(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	})

	_, err := client.ListEventsForDate(context.Background(), time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_CreateEvent(t *testing.T) {
	var received insertEventRequest

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/calendars/primary/events", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_ = json.NewEncoder(w).Encode(insertEventResponse{ID: "created-1"})
	})

	booking := &domain.Booking{
		ID:       "b1",
		Date:     time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		Time:     types.TimeString("10:00"),
		Name:     "Jan Jansen",
		Email:    "jan@example.com",
		Phone:    ptr.Ptr("+32470000000"),
		Services: []string{"Manicure", "Pedicure"},
	}

	require.NoError(t, client.CreateEvent(context.Background(), booking, 90))

	assert.Equal(t, "Reservering - Jan Jansen", received.Summary)
	assert.Contains(t, received.Description, "Naam: Jan Jansen")
	assert.Contains(t, received.Description, "Tel: +32470000000")
	assert.Contains(t, received.Description, "E-mail: jan@example.com")
	assert.Contains(t, received.Description, "Behandelingen: Manicure, Pedicure")

	start, err := time.Parse(time.RFC3339, received.Start.DateTime)
	require.NoError(t, err)
	end, err := time.Parse(time.RFC3339, received.End.DateTime)
	require.NoError(t, err)
	assert.Equal(t, 10, start.Hour())
	assert.Equal(t, 90*time.Minute, end.Sub(start))
}

func TestClient_CreateEvent_ErrorStatus(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	})

	booking := &domain.Booking{
		ID:   "b1",
		Date: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		Time: types.TimeString("10:00"),
		Name: "Jan",
	}

	err := client.CreateEvent(context.Background(), booking, 90)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestEventDescription_MissingOptionalFields(t *testing.T) {
	booking := &domain.Booking{Name: "Jan", Email: "jan@example.com"}

	desc := eventDescription(booking)
	assert.Contains(t, desc, "Tel: -")
	assert.Contains(t, desc, "Behandelingen: -")
}
