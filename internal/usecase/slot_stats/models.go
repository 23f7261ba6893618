package slot_stats

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	filterSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/filter_slots"
)

// Request модель запроса статистики
// Статистика считается по коллекции, прошедшей через пайплайн фильтрации
// с теми же опциями
type Request struct {
	Filter filterSlots.Options
}

// Response модель ответа с агрегированной статистикой
type Response struct {
	Stats    domain.SlotStats
	TimeZone string // Зона, в которой считались локальные даты
}
