package get_slots

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

	getSlots "github.com/silkebeauty/SB-BookingService/internal/usecase/get_slots"
	"github.com/silkebeauty/SB-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	gotDate time.Time
	resp    *getSlots.Response
	err     error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getSlots.Request) (*getSlots.Response, error) {
	f.gotDate = req.Date
	return f.resp, f.err
}

func TestHandler_Handle(t *testing.T) {
	uc := &fakeUseCase{resp: &getSlots.Response{
		Slots: []getSlots.Slot{
			{Time: types.TimeString("09:00"), Available: 1},
			{Time: types.TimeString("09:30"), Available: 0},
		},
	}}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/slots?date=2025-10-15", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2025-10-15", uc.gotDate.Format("2006-01-02"))

	var body []SlotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []SlotResponse{
		{Time: "09:00", Available: 1},
		{Time: "09:30", Available: 0},
	}, body)
}

func TestHandler_Handle_EmptySlots(t *testing.T) {
	uc := &fakeUseCase{resp: &getSlots.Response{Slots: []getSlots.Slot{}}}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/slots?date=2025-10-15", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	// Пустой день - пустой массив, не null
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestHandler_Handle_MissingDate(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/slots", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Handle_InvalidDate(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/slots?date=15-10-2025", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Handle_UseCaseError(t *testing.T) {
	uc := &fakeUseCase{err: errors.New("storage down")}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/slots?date=2025-10-15", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
