package domain

import "github.com/m04kA/SMC-ScheduleService/pkg/types"

// SlotConfig параметры генерации сетки слотов
//
// Даты и время дня хранятся как wall-clock строки и интерпретируются
// в таймзоне TimeZone; абсолютные моменты появляются только у слотов
type SlotConfig struct {
	StartDate types.DateString // Первый день диапазона, "YYYY-MM-DD"
	EndDate   types.DateString // Последний день диапазона (включительно)
	StartTime types.TimeString // Начало рабочего окна, "HH:MM"
	EndTime   types.TimeString // Конец рабочего окна (исключительно)
	TimeZone  string           // IANA идентификатор, например "Europe/Moscow"

	SlotDurationMinutes   int // Длительность слота, > 0
	BreakDurationMinutes  int // Перерыв между слотами, >= 0
	BufferDurationMinutes int // Минимальное время до начала слота, >= 0
}

// StepMinutes возвращает шаг сетки: длительность слота плюс перерыв
func (c *SlotConfig) StepMinutes() int {
	return c.SlotDurationMinutes + c.BreakDurationMinutes
}

// WindowMinutes возвращает длину дневного рабочего окна в минутах
// Требует валидных StartTime/EndTime
func (c *SlotConfig) WindowMinutes() (int, error) {
	return c.StartTime.MinutesUntil(c.EndTime)
}

// SlotsPerDay возвращает количество слотов на полный день.
// Последнему слоту не нужен перерыв после себя, поэтому окно
// виртуально расширяется на breakDuration перед делением на шаг
func (c *SlotConfig) SlotsPerDay() (int, error) {
	window, err := c.WindowMinutes()
	if err != nil {
		return 0, err
	}
	step := c.StepMinutes()
	if step <= 0 || window < c.SlotDurationMinutes {
		return 0, nil
	}
	return (window + c.BreakDurationMinutes) / step, nil
}
