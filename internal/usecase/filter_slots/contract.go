package filter_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// ScheduleStore интерфейс хранилища расписания
type ScheduleStore interface {
	// LoadSlots загружает сохранённую коллекцию слотов
	LoadSlots(ctx context.Context) ([]domain.Slot, error)
}

// TimeAuthority интерфейс timezone authority (для тестирования подменяется фейком)
type TimeAuthority interface {
	Now() time.Time
	Location(name string) (*time.Location, error)
}

// Metrics sink наблюдаемости: деградации пайплайна не пробрасываются
// наверх, но обязаны быть видимыми
type Metrics interface {
	IncFilterDegradation(stage string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
