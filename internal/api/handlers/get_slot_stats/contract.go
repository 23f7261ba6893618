package get_slot_stats

import (
	"context"

	slotStats "github.com/m04kA/SMC-ScheduleService/internal/usecase/slot_stats"
)

// SlotStatsUseCase интерфейс use case статистики
type SlotStatsUseCase interface {
	Execute(ctx context.Context, req *slotStats.Request) (*slotStats.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
