package clear_schedule

import "context"

// ScheduleService интерфейс сервиса расписания
type ScheduleService interface {
	Clear(ctx context.Context, userID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
