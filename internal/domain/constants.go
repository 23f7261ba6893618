package domain

// Default configuration values
const (
	DefaultBufferDurationMinutes = 45
)

// Business validation constants
// Верхние границы отсекают ошибки ввода, а не физические ограничения
const (
	MinSlotDurationMinutes = 1
	MaxSlotDurationMinutes = 480 // 8 hours

	MinBreakDurationMinutes = 0
	MaxBreakDurationMinutes = 120 // 2 hours

	MinBufferDurationMinutes = 0
	MaxBufferDurationMinutes = 1440 // 24 hours
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// SlotIDFormat формат идентификатора слота: единый сквозной счетчик
// по всему диапазону дат, с ведущими нулями для стабильной сортировки
const SlotIDFormat = "slot-%06d"
