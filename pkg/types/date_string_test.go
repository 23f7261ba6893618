package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateString_Validate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "valid date", value: "2026-06-15", wantErr: false},
		{name: "valid leap day", value: "2024-02-29", wantErr: false},
		{name: "nonexistent day", value: "2026-02-30", wantErr: true},
		{name: "nonexistent month", value: "2026-13-01", wantErr: true},
		{name: "missing leading zeros", value: "2026-1-05", wantErr: true},
		{name: "wrong separator", value: "2026/06/15", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := DateString(tt.value).Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidDateFormat)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestDateString_ToTime(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	got, err := DateString("2026-06-15").ToTime(loc)
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 6, 15, 0, 0, 0, 0, loc), got)

	_, err = DateString("not-a-date").ToTime(loc)
	require.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestDateString_Ordering(t *testing.T) {
	require.True(t, DateString("2026-01-31").IsBefore("2026-02-01"))
	require.False(t, DateString("2026-02-01").IsBefore("2026-01-31"))
	require.False(t, DateString("2026-02-01").IsBefore("2026-02-01"))
	require.True(t, DateString("2026-02-01").IsAfter("2026-01-31"))
}

func TestNewDateString(t *testing.T) {
	instant := time.Date(2026, 6, 15, 23, 45, 0, 0, time.UTC)
	require.Equal(t, DateString("2026-06-15"), NewDateString(instant))
}
