package generate_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// generateSlots строит сетку слотов по всему диапазону дат конфигурации
//
// Вся арифметика привязана к календарю целевой таймзоны: полночь и границы
// рабочего окна вычисляются в loc, поэтому генерация через переход на
// летнее время остаётся консистентной. Слоты нумеруются единым сквозным
// счетчиком по всему диапазону, а не по дням
func generateSlots(cfg *domain.SlotConfig, loc *time.Location, log Logger) ([]domain.Slot, error) {
	startDay, err := cfg.StartDate.ToTime(loc)
	if err != nil {
		return nil, fmt.Errorf("%w: start date: %v", ErrInvalidConfig, err)
	}
	endDay, err := cfg.EndDate.ToTime(loc)
	if err != nil {
		return nil, fmt.Errorf("%w: end date: %v", ErrInvalidConfig, err)
	}

	if endDay.Before(startDay) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvertedDateRange, cfg.StartDate, cfg.EndDate)
	}

	startHour, startMinute, err := splitTimeOfDay(cfg.StartTime.String())
	if err != nil {
		return nil, fmt.Errorf("%w: start time: %v", ErrInvalidConfig, err)
	}
	endHour, endMinute, err := splitTimeOfDay(cfg.EndTime.String())
	if err != nil {
		return nil, fmt.Errorf("%w: end time: %v", ErrInvalidConfig, err)
	}

	slotDuration := time.Duration(cfg.SlotDurationMinutes) * time.Minute
	step := time.Duration(cfg.StepMinutes()) * time.Minute

	slots := make([]domain.Slot, 0)
	counter := 0

	// Итерация по календарным дням в целевой зоне: AddDate сохраняет
	// wall-clock полночь, даже если день короче или длиннее 24 часов
	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		year, month, dayOfMonth := day.Date()

		workingStart := time.Date(year, month, dayOfMonth, startHour, startMinute, 0, 0, loc)
		workingEnd := time.Date(year, month, dayOfMonth, endHour, endMinute, 0, 0, loc)

		// День с вырожденным окном пропускается, но не прерывает генерацию
		if !workingEnd.After(workingStart) {
			log.Warn("generateSlots: skipping day %s: working window is empty (%s >= %s)",
				day.Format(domain.DateFormat), cfg.StartTime, cfg.EndTime)
			continue
		}

		for cursor := workingStart; !cursor.Add(slotDuration).After(workingEnd); cursor = cursor.Add(step) {
			counter++
			slots = append(slots, domain.Slot{
				ID:        fmt.Sprintf(domain.SlotIDFormat, counter),
				StartTime: cursor,
				EndTime:   cursor.Add(slotDuration),
				// Генерационное значение не несёт смысла до пересчета
				// доступности: вызывающие стороны не должны на него полагаться
				IsAvailable: true,
			})
		}
	}

	if len(slots) == 0 {
		return nil, fmt.Errorf("%w: range %s..%s, window %s-%s, slot %d min",
			ErrNoSlotsGenerated, cfg.StartDate, cfg.EndDate, cfg.StartTime, cfg.EndTime, cfg.SlotDurationMinutes)
	}

	return slots, nil
}

// splitTimeOfDay разбирает "HH:MM" на часы и минуты
func splitTimeOfDay(s string) (int, int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, 0, fmt.Errorf("malformed time of day %q: %v", s, err)
	}
	return h, m, nil
}
