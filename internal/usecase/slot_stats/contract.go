package slot_stats

import (
	"context"
	"time"

	filterSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/filter_slots"
)

// SlotFilter интерфейс пайплайна фильтрации: статистика считается
// по уже отфильтрованной коллекции
type SlotFilter interface {
	Execute(ctx context.Context, req *filterSlots.Request) (*filterSlots.Response, error)
}

// TimeAuthority интерфейс timezone authority (для тестирования подменяется фейком)
type TimeAuthority interface {
	Location(name string) (*time.Location, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
