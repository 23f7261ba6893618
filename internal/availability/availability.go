// Package availability вычисляет бронируемость слотов относительно
// опорного момента времени (reference instant).
//
// Каноническое правило: слот бронируем тогда и только тогда, когда
//
//	reference >= slotStart - buffer  И  reference < slotStart
//
// Первое условие - правило минимального времени до начала, второе
// исключает слоты, чьё начало уже прошло. Сравнения выполняются
// над абсолютными моментами времени, поэтому конвертация в другую
// таймзону никогда не меняет результат
package availability

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// IsBookable возвращает true, если слот с началом slotStart бронируем
// в момент reference при буфере buffer
func IsBookable(slotStart, reference time.Time, buffer time.Duration) bool {
	if buffer < 0 {
		buffer = 0
	}
	earliest := slotStart.Add(-buffer)
	return !reference.Before(earliest) && reference.Before(slotStart)
}

// Annotate возвращает новую коллекцию слотов с пересчитанным IsAvailable
// Исходная коллекция не изменяется: слоты - read-mostly записи,
// аннотация возвращает копии
func Annotate(slots []domain.Slot, reference time.Time, bufferMinutes int) []domain.Slot {
	buffer := time.Duration(bufferMinutes) * time.Minute

	annotated := make([]domain.Slot, len(slots))
	for i, slot := range slots {
		slot.IsAvailable = IsBookable(slot.StartTime, reference, buffer)
		annotated[i] = slot
	}
	return annotated
}
