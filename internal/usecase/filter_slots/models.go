package filter_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Options распознаваемые параметры фильтрации
// Все поля опциональны; значения по умолчанию документированы здесь,
// а не разбросаны по вызывающим сторонам
type Options struct {
	ReferenceInstant *time.Time        // Момент "сейчас"; по умолчанию текущий момент authority
	TimeZone         string            // Целевая зона; по умолчанию локальная зона вызывающей стороны
	BufferMinutes    *int              // Буфер доступности; по умолчанию domain.DefaultBufferDurationMinutes
	StartDate        *types.DateString // Нижняя граница диапазона локальных дат (включительно)
	EndDate          *types.DateString // Верхняя граница диапазона локальных дат (включительно)
	StartTime        *types.TimeString // Нижняя граница времени дня (включительно)
	EndTime          *types.TimeString // Верхняя граница времени дня (исключительно)
	AvailableOnly    bool              // Оставить только доступные слоты
	Limit            *int              // Максимум результатов, применяется после сортировки
}

// Request модель запроса фильтрации
type Request struct {
	Options Options
}

// Response модель ответа с отфильтрованной коллекцией
type Response struct {
	Slots            []domain.Slot // Отфильтрованные слоты в локальном представлении зоны
	TimeZone         string        // Разрешённая целевая зона
	ReferenceInstant time.Time     // Разрешённый опорный момент
	BufferMinutes    int           // Разрешённый буфер
}

// resolvedOptions опции после применения значений по умолчанию
// и разбора wall-clock границ
type resolvedOptions struct {
	reference     time.Time
	loc           *time.Location
	zoneName      string
	bufferMinutes int

	startDate *types.DateString
	endDate   *types.DateString

	// Границы времени дня в минутах с полуночи
	startTimeMinutes *int
	endTimeMinutes   *int

	availableOnly bool
	limit         int // 0 = без ограничения
}

// resolve применяет значения по умолчанию и валидирует wall-clock границы
// Ошибка здесь означает деградацию пайплайна, а не ошибку вызова
func (o *Options) resolve(authority TimeAuthority) (*resolvedOptions, error) {
	zoneName := o.TimeZone
	if zoneName == "" {
		zoneName = "Local"
	}

	loc, err := authority.Location(zoneName)
	if err != nil {
		return nil, fmt.Errorf("timezone: %w", err)
	}

	reference := authority.Now()
	if o.ReferenceInstant != nil {
		reference = *o.ReferenceInstant
	}

	buffer := domain.DefaultBufferDurationMinutes
	if o.BufferMinutes != nil {
		buffer = *o.BufferMinutes
	}

	resolved := &resolvedOptions{
		reference:     reference,
		loc:           loc,
		zoneName:      zoneName,
		bufferMinutes: buffer,
		availableOnly: o.AvailableOnly,
	}

	if o.StartDate != nil {
		if err := o.StartDate.Validate(); err != nil {
			return nil, fmt.Errorf("startDate: %w", err)
		}
		resolved.startDate = o.StartDate
	}
	if o.EndDate != nil {
		if err := o.EndDate.Validate(); err != nil {
			return nil, fmt.Errorf("endDate: %w", err)
		}
		resolved.endDate = o.EndDate
	}

	if o.StartTime != nil {
		minutes, err := o.StartTime.MinutesSinceMidnight()
		if err != nil {
			return nil, fmt.Errorf("startTime: %w", err)
		}
		resolved.startTimeMinutes = &minutes
	}
	if o.EndTime != nil {
		minutes, err := o.EndTime.MinutesSinceMidnight()
		if err != nil {
			return nil, fmt.Errorf("endTime: %w", err)
		}
		resolved.endTimeMinutes = &minutes
	}

	if o.Limit != nil && *o.Limit > 0 {
		resolved.limit = *o.Limit
	}

	return resolved, nil
}
