package generate_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// ScheduleStore интерфейс хранилища расписания
type ScheduleStore interface {
	// LoadConfig загружает сохранённую конфигурацию слотов
	LoadConfig(ctx context.Context) (*domain.SlotConfig, error)

	// SaveSlots сохраняет сгенерированную коллекцию слотов (полная замена)
	SaveSlots(ctx context.Context, slots []domain.Slot) error
}

// TimeAuthority интерфейс timezone authority (для тестирования подменяется фейком)
type TimeAuthority interface {
	ZoneExists(name string) bool
	Location(name string) (*time.Location, error)
}

// Metrics интерфейс счетчиков бизнес-метрик
type Metrics interface {
	AddSlotsGenerated(count int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
