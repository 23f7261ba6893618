package tzclock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSystem_ZoneExists(t *testing.T) {
	authority := NewSystem()

	require.True(t, authority.ZoneExists("Europe/Moscow"))
	require.True(t, authority.ZoneExists("UTC"))
	require.False(t, authority.ZoneExists("Mars/Olympus"))
	require.False(t, authority.ZoneExists(""))
}

func TestSystem_Location(t *testing.T) {
	authority := NewSystem()

	loc, err := authority.Location("America/New_York")
	require.NoError(t, err)
	require.Equal(t, "America/New_York", loc.String())

	_, err = authority.Location("Mars/Olympus")
	require.ErrorIs(t, err, ErrUnknownZone)
}

func TestSystem_ToZone_PreservesInstant(t *testing.T) {
	authority := NewSystem()
	instant := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	local, err := authority.ToZone(instant, "Asia/Tokyo")
	require.NoError(t, err)
	require.True(t, local.Equal(instant))
	require.Equal(t, 21, local.Hour())
}

func TestSystem_Offset_DependsOnDST(t *testing.T) {
	authority := NewSystem()

	winter := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	summer := time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)

	winterOffset, err := authority.Offset(winter, "America/New_York")
	require.NoError(t, err)
	require.Equal(t, -5*time.Hour, winterOffset)

	summerOffset, err := authority.Offset(summer, "America/New_York")
	require.NoError(t, err)
	require.Equal(t, -4*time.Hour, summerOffset)

	utcOffset, err := authority.Offset(summer, "UTC")
	require.NoError(t, err)
	require.Equal(t, time.Duration(0), utcOffset)
}

func TestFixed_DeterministicNowAndZones(t *testing.T) {
	instant := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)
	authority := NewFixed(instant, "Europe/Moscow")

	require.True(t, authority.Now().Equal(instant))
	require.True(t, authority.ZoneExists("UTC"))
	require.True(t, authority.ZoneExists("Europe/Moscow"))
	require.False(t, authority.ZoneExists("Asia/Tokyo"))

	_, err := authority.Location("Asia/Tokyo")
	require.ErrorIs(t, err, ErrUnknownZone)
}
