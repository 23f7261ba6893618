package domain

import "github.com/m04kA/SMC-ScheduleService/pkg/types"

// DateRange диапазон локальных дат первого и последнего слота коллекции
type DateRange struct {
	Start types.DateString
	End   types.DateString
}

// SlotStats агрегированная статистика по коллекции слотов
// Чисто производные данные: вычисляются из отфильтрованной коллекции
// без побочных эффектов
type SlotStats struct {
	Total                   int
	Available               int
	Unavailable             int
	AvailabilityRatePercent int // round(100 * available / total), 0 при total = 0
	DaysWithSlots           int
	AverageSlotsPerDay      int // round(total / daysWithSlots), 0 при daysWithSlots = 0
	DateRange               *DateRange
}
