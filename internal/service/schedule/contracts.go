package schedule

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// ScheduleStore интерфейс хранилища расписания
type ScheduleStore interface {
	SaveConfig(ctx context.Context, cfg *domain.SlotConfig) error
	LoadConfig(ctx context.Context) (*domain.SlotConfig, error)
	Clear(ctx context.Context) error
}

// ZoneChecker срез интерфейса timezone authority, нужный валидации
type ZoneChecker interface {
	ZoneExists(name string) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
