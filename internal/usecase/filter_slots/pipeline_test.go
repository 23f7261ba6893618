package filter_slots

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
	"github.com/m04kA/SMC-ScheduleService/pkg/tzclock"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// makeGrid строит часовую сетку слотов, стартующую от start
func makeGrid(start time.Time, count int) []domain.Slot {
	slots := make([]domain.Slot, count)
	for i := range slots {
		slotStart := start.Add(time.Duration(i) * time.Hour)
		slots[i] = domain.Slot{
			ID:        fmt.Sprintf(domain.SlotIDFormat, i+1),
			StartTime: slotStart,
			EndTime:   slotStart.Add(30 * time.Minute),
		}
	}
	return slots
}

func mustResolve(t *testing.T, opts Options, authority TimeAuthority) *resolvedOptions {
	t.Helper()
	resolved, err := opts.resolve(authority)
	require.NoError(t, err)
	return resolved
}

func TestApplyPipeline_AvailableOnlyWithLimit(t *testing.T) {
	reference := time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)
	authority := tzclock.NewFixed(reference)

	// 12 слотов каждые 10 минут; при буфере 60 доступны ровно те,
	// чьё начало попадает в (ref, ref+60]
	slots := make([]domain.Slot, 12)
	for i := range slots {
		slotStart := reference.Add(time.Duration(i*10) * time.Minute)
		slots[i] = domain.Slot{
			ID:        fmt.Sprintf(domain.SlotIDFormat, i+1),
			StartTime: slotStart,
			EndTime:   slotStart.Add(10 * time.Minute),
		}
	}

	resolved := mustResolve(t, Options{
		TimeZone:      "UTC",
		BufferMinutes: ptr.Ptr(60),
		AvailableOnly: true,
		Limit:         ptr.Ptr(5),
	}, authority)

	got := applyPipeline(slots, resolved)

	// Доступны слоты +10..+60 минут (6 штук), limit оставляет первые 5
	require.Len(t, got, 5)
	for i, slot := range got {
		require.True(t, slot.IsAvailable)
		require.Equal(t, fmt.Sprintf(domain.SlotIDFormat, i+2), slot.ID)
	}
}

func TestApplyPipeline_LimitAppliedAfterSort(t *testing.T) {
	reference := time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)
	authority := tzclock.NewFixed(reference)

	// Нарушенный порядок на входе
	slots := makeGrid(reference, 4)
	slots[0], slots[3] = slots[3], slots[0]
	slots[1], slots[2] = slots[2], slots[1]

	resolved := mustResolve(t, Options{TimeZone: "UTC", Limit: ptr.Ptr(2)}, authority)
	got := applyPipeline(slots, resolved)

	// Усечение выполняется строго после сортировки: остаются два
	// самых ранних слота, а не первые два элемента входа
	require.Len(t, got, 2)
	require.Equal(t, "slot-000001", got[0].ID)
	require.Equal(t, "slot-000002", got[1].ID)
}

func TestApplyPipeline_DateRangeInclusive(t *testing.T) {
	reference := time.Date(2026, 6, 14, 12, 0, 0, 0, time.UTC)
	authority := tzclock.NewFixed(reference)

	var slots []domain.Slot
	for day := 13; day <= 17; day++ {
		start := time.Date(2026, 6, day, 10, 0, 0, 0, time.UTC)
		slots = append(slots, domain.Slot{
			ID:        fmt.Sprintf(domain.SlotIDFormat, day),
			StartTime: start,
			EndTime:   start.Add(30 * time.Minute),
		})
	}

	resolved := mustResolve(t, Options{
		TimeZone:  "UTC",
		StartDate: ptr.Ptr(types.DateString("2026-06-14")),
		EndDate:   ptr.Ptr(types.DateString("2026-06-16")),
	}, authority)

	got := applyPipeline(slots, resolved)

	// Обе границы включительно
	require.Len(t, got, 3)
	require.Equal(t, "2026-06-14", types.NewDateString(got[0].StartTime).String())
	require.Equal(t, "2026-06-16", types.NewDateString(got[2].StartTime).String())
}

func TestApplyPipeline_TimeOfDayHalfOpen(t *testing.T) {
	reference := time.Date(2026, 6, 15, 8, 0, 0, 0, time.UTC)
	authority := tzclock.NewFixed(reference)

	slots := makeGrid(time.Date(2026, 6, 15, 8, 0, 0, 0, time.UTC), 6) // 08:00..13:00

	resolved := mustResolve(t, Options{
		TimeZone:  "UTC",
		StartTime: ptr.Ptr(types.TimeString("09:00")),
		EndTime:   ptr.Ptr(types.TimeString("11:00")),
	}, authority)

	got := applyPipeline(slots, resolved)

	// [09:00, 11:00): 09:00 и 10:00 проходят, 11:00 уже нет
	require.Len(t, got, 2)
	require.Equal(t, 9, got[0].StartTime.Hour())
	require.Equal(t, 10, got[1].StartTime.Hour())
}

func TestApplyPipeline_ReprojectionNeverChangesAvailability(t *testing.T) {
	reference := time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)
	authority := tzclock.NewFixed(reference, "Asia/Tokyo")

	slots := makeGrid(reference.Add(-2*time.Hour), 8)

	inUTC := applyPipeline(slots, mustResolve(t, Options{TimeZone: "UTC"}, authority))
	inTokyo := applyPipeline(slots, mustResolve(t, Options{TimeZone: "Asia/Tokyo"}, authority))

	require.Equal(t, len(inUTC), len(inTokyo))
	for i := range inUTC {
		require.Equal(t, inUTC[i].ID, inTokyo[i].ID)
		require.Equal(t, inUTC[i].IsAvailable, inTokyo[i].IsAvailable)
		// Моменты совпадают, отличается только локальное представление
		require.True(t, inUTC[i].StartTime.Equal(inTokyo[i].StartTime))
	}
}

func TestApplyPipeline_InputNotMutated(t *testing.T) {
	reference := time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)
	authority := tzclock.NewFixed(reference)

	slots := makeGrid(reference, 3)
	original := make([]domain.Slot, len(slots))
	copy(original, slots)

	resolved := mustResolve(t, Options{TimeZone: "UTC", AvailableOnly: true}, authority)
	applyPipeline(slots, resolved)

	require.Equal(t, original, slots)
}

func TestResolve_Defaults(t *testing.T) {
	instant := time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)
	authority := tzclock.NewFixed(instant, "Local")

	resolved, err := (&Options{}).resolve(authority)
	require.NoError(t, err)

	require.Equal(t, "Local", resolved.zoneName)
	require.True(t, resolved.reference.Equal(instant))
	require.Equal(t, domain.DefaultBufferDurationMinutes, resolved.bufferMinutes)
	require.Zero(t, resolved.limit)
	require.False(t, resolved.availableOnly)
}

func TestResolve_MalformedBounds(t *testing.T) {
	authority := tzclock.NewFixed(time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC))

	_, err := (&Options{TimeZone: "UTC", StartDate: ptr.Ptr(types.DateString("15.06.2026"))}).resolve(authority)
	require.Error(t, err)

	_, err = (&Options{TimeZone: "UTC", EndTime: ptr.Ptr(types.TimeString("25:00"))}).resolve(authority)
	require.Error(t, err)

	_, err = (&Options{TimeZone: "Mars/Olympus"}).resolve(authority)
	require.ErrorIs(t, err, tzclock.ErrUnknownZone)
}
