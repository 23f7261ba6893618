package generate_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func baseConfig() *domain.SlotConfig {
	return &domain.SlotConfig{
		StartDate:             "2026-06-01",
		EndDate:               "2026-06-01",
		StartTime:             "09:00",
		EndTime:               "17:00",
		TimeZone:              "UTC",
		SlotDurationMinutes:   30,
		BreakDurationMinutes:  15,
		BufferDurationMinutes: 45,
	}
}

func TestGenerateSlots_SingleSlotDay(t *testing.T) {
	cfg := baseConfig()
	cfg.StartTime = "09:00"
	cfg.EndTime = "09:45"

	slots, err := generateSlots(cfg, time.UTC, nopLogger{})
	require.NoError(t, err)

	// Второй слот начинался бы в 09:45 и не влез бы в окно
	require.Len(t, slots, 1)
	require.Equal(t, "slot-000001", slots[0].ID)
	require.Equal(t, time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC), slots[0].StartTime)
	require.Equal(t, time.Date(2026, 6, 1, 9, 30, 0, 0, time.UTC), slots[0].EndTime)
}

func TestGenerateSlots_FullDayCountAndContinuousIDs(t *testing.T) {
	cfg := baseConfig()
	cfg.EndDate = "2026-06-03"

	slots, err := generateSlots(cfg, time.UTC, nopLogger{})
	require.NoError(t, err)

	// Окно 480 минут, шаг 45, последнему слоту перерыв после себя не нужен
	perDay, err := cfg.SlotsPerDay()
	require.NoError(t, err)
	require.Equal(t, 11, perDay)
	require.Len(t, slots, 3*perDay)

	// Сквозная нумерация по всему диапазону
	require.Equal(t, "slot-000001", slots[0].ID)
	require.Equal(t, "slot-000033", slots[len(slots)-1].ID)
}

func TestGenerateSlots_CountMatchesWindowDivStepWithoutBreaks(t *testing.T) {
	cfg := baseConfig()
	cfg.BreakDurationMinutes = 0
	cfg.StartTime = "09:00"
	cfg.EndTime = "17:00"

	slots, err := generateSlots(cfg, time.UTC, nopLogger{})
	require.NoError(t, err)

	window, err := cfg.WindowMinutes()
	require.NoError(t, err)
	require.Len(t, slots, window/cfg.SlotDurationMinutes)
}

func TestGenerateSlots_SortedAndNonOverlapping(t *testing.T) {
	cfg := baseConfig()
	cfg.EndDate = "2026-06-02"

	slots, err := generateSlots(cfg, time.UTC, nopLogger{})
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	for i := 1; i < len(slots); i++ {
		require.True(t, slots[i-1].StartTime.Before(slots[i].StartTime),
			"slots must be ordered by start instant")
		require.False(t, slots[i-1].Overlaps(slots[i].StartTime, slots[i].EndTime),
			"slots %s and %s overlap", slots[i-1].ID, slots[i].ID)
	}
}

func TestGenerateSlots_ConsistentAcrossDSTTransition(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	// В ночь на 2026-03-29 Берлин переходит на летнее время (02:00 -> 03:00)
	cfg := baseConfig()
	cfg.StartDate = "2026-03-28"
	cfg.EndDate = "2026-03-29"
	cfg.StartTime = "09:00"
	cfg.EndTime = "12:00"
	cfg.SlotDurationMinutes = 60
	cfg.BreakDurationMinutes = 0
	cfg.TimeZone = "Europe/Berlin"

	slots, err := generateSlots(cfg, berlin, nopLogger{})
	require.NoError(t, err)

	// Оба дня дают одинаковую wall-clock сетку
	require.Len(t, slots, 6)
	for _, slot := range slots {
		require.GreaterOrEqual(t, slot.StartTime.In(berlin).Hour(), 9)
		require.Less(t, slot.StartTime.In(berlin).Hour(), 12)
	}

	// Календарные сутки перехода короче на час: между 09:00 соседних
	// дней 23 часа абсолютного времени
	require.Equal(t, 23*time.Hour, slots[3].StartTime.Sub(slots[0].StartTime))
}

func TestGenerateSlots_InvertedRange(t *testing.T) {
	cfg := baseConfig()
	cfg.StartDate = "2026-06-07"
	cfg.EndDate = "2026-06-01"

	_, err := generateSlots(cfg, time.UTC, nopLogger{})
	require.ErrorIs(t, err, ErrInvertedDateRange)
}

func TestGenerateSlots_ZeroSlotsIsAnError(t *testing.T) {
	cfg := baseConfig()
	cfg.StartTime = "09:00"
	cfg.EndTime = "09:00"

	_, err := generateSlots(cfg, time.UTC, nopLogger{})
	require.ErrorIs(t, err, ErrNoSlotsGenerated)
}
