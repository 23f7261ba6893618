package filter_slots

import (
	"context"

	filterSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/filter_slots"
)

// FilterSlotsUseCase интерфейс use case фильтрации слотов
type FilterSlotsUseCase interface {
	Execute(ctx context.Context, req *filterSlots.Request) (*filterSlots.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
