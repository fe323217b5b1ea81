package get_admin_bookings

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

	"github.com/silkebeauty/SB-BookingService/internal/service/bookings/models"
	"github.com/silkebeauty/SB-BookingService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	gotDate time.Time
	records []*models.BookingRecord
	err     error
}

func (f *fakeService) GetByDate(_ context.Context, date time.Time) ([]*models.BookingRecord, error) {
	f.gotDate = date
	return f.records, f.err
}

func TestHandler_Handle(t *testing.T) {
	createdAt := time.Date(2025, 10, 1, 12, 30, 0, 0, time.UTC)
	svc := &fakeService{records: []*models.BookingRecord{
		{
			ID:        "b1",
			Date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
			Time:      "10:00",
			Name:      "Jan Jansen",
			Email:     "jan@example.com",
			Phone:     ptr.Ptr("+32470000000"),
			Services:  []string{"Manicure"},
			CreatedAt: createdAt,
		},
	}}
	h := NewHandler(svc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings?date=2025-10-15", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2025-10-15", svc.gotDate.Format("2006-01-02"))

	var body []BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "b1", body[0].ID)
	assert.Equal(t, "2025-10-15", body[0].Date)
	assert.Equal(t, "10:00", body[0].Time)
	assert.Equal(t, "2025-10-01T12:30:00Z", body[0].CreatedAt)
}

func TestHandler_Handle_MissingDate(t *testing.T) {
	h := NewHandler(&fakeService{}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Handle_InvalidDate(t *testing.T) {
	h := NewHandler(&fakeService{}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings?date=yesterday", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Handle_ServiceError(t *testing.T) {
	svc := &fakeService{err: errors.New("db down")}
	h := NewHandler(svc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings?date=2025-10-15", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
