package slot_stats

import (
	"math"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// summarize считает агрегаты по коллекции слотов
// Чисто производные данные, без побочных эффектов; локальные даты
// считаются в loc
func summarize(slots []domain.Slot, loc *time.Location) domain.SlotStats {
	stats := domain.SlotStats{Total: len(slots)}
	if len(slots) == 0 {
		return stats
	}

	days := make(map[types.DateString]struct{})
	var minDate, maxDate types.DateString

	for _, slot := range slots {
		if slot.IsAvailable {
			stats.Available++
		} else {
			stats.Unavailable++
		}

		localDate := types.NewDateString(slot.StartTime.In(loc))
		days[localDate] = struct{}{}

		if minDate.IsZero() || localDate.IsBefore(minDate) {
			minDate = localDate
		}
		if maxDate.IsZero() || localDate.IsAfter(maxDate) {
			maxDate = localDate
		}
	}

	stats.AvailabilityRatePercent = int(math.Round(100 * float64(stats.Available) / float64(stats.Total)))
	stats.DaysWithSlots = len(days)
	stats.AverageSlotsPerDay = int(math.Round(float64(stats.Total) / float64(stats.DaysWithSlots)))
	stats.DateRange = &domain.DateRange{Start: minDate, End: maxDate}

	return stats
}
