package generate_slots

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация слотов не сохранена
	ErrConfigNotFound = errors.New("generate_slots: config not found")

	// ErrInvalidConfig возвращается, когда конфигурация не проходит fail-fast валидацию
	ErrInvalidConfig = errors.New("generate_slots: invalid config")

	// ErrInvertedDateRange возвращается, когда endDate раньше startDate
	ErrInvertedDateRange = errors.New("generate_slots: end date is before start date")

	// ErrNoSlotsGenerated возвращается, когда ни один день диапазона не дал ни одного слота
	// Это отдельный от валидации сбой: конфигурация по отдельности корректна,
	// но в совокупности вырождена
	ErrNoSlotsGenerated = errors.New("generate_slots: configuration yields zero slots")

	// ErrUnknownTimeZone возвращается, когда таймзона конфигурации не разрешима
	ErrUnknownTimeZone = errors.New("generate_slots: unknown timezone")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("generate_slots: internal error")
)
