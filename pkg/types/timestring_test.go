package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2025, 10, 15, 9, 30, 45, 0, time.UTC)
	assert.Equal(t, TimeString("09:30"), NewTimeString(moment))
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("10:00")
	require.NoError(t, err)
	assert.Equal(t, "10:00", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("10:00:00")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("")
	assert.Error(t, err)
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
		wantErr bool
	}{
		{0, "00:00", false},
		{570, "09:30", false},
		{1439, "23:59", false},
		{1440, "", true},
		{-1, "", true},
	}

	for _, tt := range tests {
		ts, err := NewTimeStringFromMinutes(tt.minutes)
		if tt.wantErr {
			assert.Error(t, err, "minutes=%d", tt.minutes)
			continue
		}
		require.NoError(t, err, "minutes=%d", tt.minutes)
		assert.Equal(t, tt.want, ts.String())
	}
}

func TestTimeString_Minutes(t *testing.T) {
	ts := TimeString("10:30")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, minutes)

	_, err = TimeString("bad").Minutes()
	assert.Error(t, err)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("09:00")

	later, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:30"), later)

	_, err = TimeString("23:00").AddMinutes(90)
	assert.Error(t, err)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:30").IsAfter("10:00"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// Колонка TIME отдаёт секунды
	require.NoError(t, ts.Scan("09:30:00"))
	assert.Equal(t, TimeString("09:30"), ts)

	require.NoError(t, ts.Scan([]byte("10:00")))
	assert.Equal(t, TimeString("10:00"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	require.NoError(t, ts.Scan(time.Date(2025, 10, 15, 14, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("14:15"), ts)

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("09:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "09:30", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("bad").Value()
	assert.Error(t, err)
}
