package filter_slots

import (
	"sort"

	"github.com/m04kA/SMC-ScheduleService/internal/availability"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// applyPipeline выполняет этапы фильтрации в строгом порядке:
//
//  1. перепроецирование моментов времени в целевую зону (сами instants
//     не меняются, локальные поля нужны фильтрам ниже);
//  2. пересчет доступности от опорного момента;
//  3. фильтр по диапазону локальных дат (включительно);
//  4. фильтр по времени дня [start, end) в минутах с полуночи;
//  5. отбрасывание недоступных при availableOnly;
//  6. стабильная сортировка по возрастанию момента начала;
//  7. усечение до limit (после сортировки).
//
// Чистая трансформация: возвращает новые коллекции, вход не мутируется
func applyPipeline(slots []domain.Slot, opts *resolvedOptions) []domain.Slot {
	// 1. Перепроецируем в целевую зону
	projected := make([]domain.Slot, len(slots))
	for i, slot := range slots {
		projected[i] = slot.InZone(opts.loc)
	}

	// 2. Пересчитываем доступность (сравнение абсолютных моментов,
	// зона на результат не влияет)
	annotated := availability.Annotate(projected, opts.reference, opts.bufferMinutes)

	// 3-5. Применяем фильтры
	filtered := make([]domain.Slot, 0, len(annotated))
	for _, slot := range annotated {
		if !matchesDateRange(slot, opts.startDate, opts.endDate) {
			continue
		}
		if !matchesTimeOfDay(slot, opts.startTimeMinutes, opts.endTimeMinutes) {
			continue
		}
		if opts.availableOnly && !slot.IsAvailable {
			continue
		}
		filtered = append(filtered, slot)
	}

	// 6. Стабильная сортировка: равные моменты сохраняют исходный порядок
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].StartTime.Before(filtered[j].StartTime)
	})

	// 7. Усечение строго после сортировки
	if opts.limit > 0 && len(filtered) > opts.limit {
		filtered = filtered[:opts.limit]
	}

	return filtered
}

// matchesDateRange проверяет попадание локальной даты начала слота
// в диапазон [startDate, endDate] включительно
func matchesDateRange(slot domain.Slot, startDate, endDate *types.DateString) bool {
	if startDate == nil && endDate == nil {
		return true
	}

	localDate := types.NewDateString(slot.StartTime)
	if startDate != nil && localDate.IsBefore(*startDate) {
		return false
	}
	if endDate != nil && localDate.IsAfter(*endDate) {
		return false
	}
	return true
}

// matchesTimeOfDay проверяет попадание локального времени начала слота
// в диапазон [startTime, endTime) в минутах с полуночи
// Фильтр применяется независимо от даты
func matchesTimeOfDay(slot domain.Slot, startMinutes, endMinutes *int) bool {
	if startMinutes == nil && endMinutes == nil {
		return true
	}

	minutes := slot.StartTime.Hour()*60 + slot.StartTime.Minute()
	if startMinutes != nil && minutes < *startMinutes {
		return false
	}
	if endMinutes != nil && minutes >= *endMinutes {
		return false
	}
	return true
}
