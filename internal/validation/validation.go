// Package validation проверяет структурную и логическую корректность
// конфигурации слотов.
//
// Validate накапливает все нарушения списком для отображения пользователю;
// ValidateStrict - fail-fast вариант тех же проверок, используемый
// непосредственно перед генерацией. Оба пути построены на одном наборе
// проверок, поэтому конфигурация, отклонённая одним из них,
// гарантированно отклоняется и другим
package validation

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// ErrInvalidConfig возвращается ValidateStrict при первом нарушении
var ErrInvalidConfig = errors.New("validation: invalid slot config")

// ZoneChecker срез интерфейса timezone authority, нужный валидации
type ZoneChecker interface {
	ZoneExists(name string) bool
}

// Validate проверяет конфигурацию и возвращает список всех нарушений
// Пустой список означает валидную конфигурацию
func Validate(cfg *domain.SlotConfig, zones ZoneChecker) []domain.ValidationError {
	errs := make([]domain.ValidationError, 0)

	errs = append(errs, checkDates(cfg)...)
	errs = append(errs, checkTimes(cfg)...)
	errs = append(errs, checkTimeZone(cfg, zones)...)
	errs = append(errs, checkDurations(cfg)...)
	errs = append(errs, checkWindowFitsSlot(cfg)...)

	return errs
}

// ValidateStrict выполняет те же проверки, но прерывается на первом нарушении
func ValidateStrict(cfg *domain.SlotConfig, zones ZoneChecker) error {
	errs := Validate(cfg, zones)
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, errs[0].String())
	}
	return nil
}

// checkDates проверяет наличие, формат и порядок дат диапазона
func checkDates(cfg *domain.SlotConfig) []domain.ValidationError {
	var errs []domain.ValidationError

	startValid, endValid := true, true

	if cfg.StartDate.IsZero() {
		errs = append(errs, domain.NewValidationError("startDate", "start date is required"))
		startValid = false
	} else if err := cfg.StartDate.Validate(); err != nil {
		errs = append(errs, domain.NewValidationError("startDate", "start date must be in YYYY-MM-DD format"))
		startValid = false
	}

	if cfg.EndDate.IsZero() {
		errs = append(errs, domain.NewValidationError("endDate", "end date is required"))
		endValid = false
	} else if err := cfg.EndDate.Validate(); err != nil {
		errs = append(errs, domain.NewValidationError("endDate", "end date must be in YYYY-MM-DD format"))
		endValid = false
	}

	// Порядок дат имеет смысл проверять только при валидных форматах
	if startValid && endValid && cfg.EndDate.IsBefore(cfg.StartDate) {
		errs = append(errs, domain.NewValidationError("endDate", "end date must not be earlier than start date"))
	}

	return errs
}

// checkTimes проверяет наличие, формат и порядок границ рабочего окна
func checkTimes(cfg *domain.SlotConfig) []domain.ValidationError {
	var errs []domain.ValidationError

	startValid, endValid := true, true

	if cfg.StartTime.IsZero() {
		errs = append(errs, domain.NewValidationError("startTime", "start time is required"))
		startValid = false
	} else if err := cfg.StartTime.Validate(); err != nil {
		errs = append(errs, domain.NewValidationError("startTime", "start time must be in HH:MM format"))
		startValid = false
	}

	if cfg.EndTime.IsZero() {
		errs = append(errs, domain.NewValidationError("endTime", "end time is required"))
		endValid = false
	} else if err := cfg.EndTime.Validate(); err != nil {
		errs = append(errs, domain.NewValidationError("endTime", "end time must be in HH:MM format"))
		endValid = false
	}

	if startValid && endValid && !cfg.EndTime.IsAfter(cfg.StartTime) {
		errs = append(errs, domain.NewValidationError("endTime", "end time must be strictly after start time"))
	}

	return errs
}

// checkTimeZone проверяет, что идентификатор зоны разрешим в базе IANA
func checkTimeZone(cfg *domain.SlotConfig, zones ZoneChecker) []domain.ValidationError {
	if cfg.TimeZone == "" {
		return []domain.ValidationError{
			domain.NewValidationError("timeZone", "timezone is required"),
		}
	}
	if !zones.ZoneExists(cfg.TimeZone) {
		return []domain.ValidationError{
			domain.NewValidationError("timeZone", fmt.Sprintf("unknown IANA timezone %q", cfg.TimeZone)),
		}
	}
	return nil
}

// checkDurations проверяет нижние и верхние границы всех трёх длительностей
func checkDurations(cfg *domain.SlotConfig) []domain.ValidationError {
	var errs []domain.ValidationError

	if cfg.SlotDurationMinutes < domain.MinSlotDurationMinutes || cfg.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		errs = append(errs, domain.NewValidationError("slotDuration",
			fmt.Sprintf("slot duration must be between %d and %d minutes",
				domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)))
	}

	if cfg.BreakDurationMinutes < domain.MinBreakDurationMinutes || cfg.BreakDurationMinutes > domain.MaxBreakDurationMinutes {
		errs = append(errs, domain.NewValidationError("breakDuration",
			fmt.Sprintf("break duration must be between %d and %d minutes",
				domain.MinBreakDurationMinutes, domain.MaxBreakDurationMinutes)))
	}

	if cfg.BufferDurationMinutes < domain.MinBufferDurationMinutes || cfg.BufferDurationMinutes > domain.MaxBufferDurationMinutes {
		errs = append(errs, domain.NewValidationError("bufferDuration",
			fmt.Sprintf("buffer duration must be between %d and %d minutes",
				domain.MinBufferDurationMinutes, domain.MaxBufferDurationMinutes)))
	}

	return errs
}

// checkWindowFitsSlot проверяет, что дневное окно вмещает хотя бы один слот
// Проверка возможна только при валидных границах окна и длительности слота
func checkWindowFitsSlot(cfg *domain.SlotConfig) []domain.ValidationError {
	if cfg.StartTime.Validate() != nil || cfg.EndTime.Validate() != nil {
		return nil
	}
	if cfg.SlotDurationMinutes < domain.MinSlotDurationMinutes || cfg.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return nil
	}

	window, err := cfg.WindowMinutes()
	if err != nil {
		return nil
	}
	if window < cfg.SlotDurationMinutes {
		return []domain.ValidationError{
			domain.NewValidationError("slotDuration",
				fmt.Sprintf("daily window of %d minutes cannot fit a single %d-minute slot",
					window, cfg.SlotDurationMinutes)),
		}
	}
	return nil
}
