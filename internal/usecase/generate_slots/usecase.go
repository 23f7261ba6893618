package generate_slots

import (
	"context"
	"errors"
	"fmt"

	scheduleStore "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-ScheduleService/internal/validation"
)

// UseCase use case генерации коллекции слотов из сохранённой конфигурации
type UseCase struct {
	store     ScheduleStore
	authority TimeAuthority
	metrics   Metrics
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store ScheduleStore, authority TimeAuthority, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		store:     store,
		authority: authority,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute выполняет use case генерации слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateSlots: user=%d", req.UserID)

	// 1. Загружаем сохранённую конфигурацию
	cfg, err := uc.store.LoadConfig(ctx)
	if err != nil {
		if errors.Is(err, scheduleStore.ErrConfigNotFound) {
			uc.logger.Warn("GenerateSlots: no stored config")
			return nil, ErrConfigNotFound
		}
		uc.logger.Error("GenerateSlots: failed to load config: %v", err)
		return nil, fmt.Errorf("%w: failed to load config: %v", ErrInternal, err)
	}

	// 2. Fail-fast валидация: генерация прерывается на первом нарушении
	// Тот же набор проверок, что и в накапливающей валидации при сохранении
	if err := validation.ValidateStrict(cfg, uc.authority); err != nil {
		uc.logger.Warn("GenerateSlots: config validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	// 3. Разрешаем таймзону конфигурации
	loc, err := uc.authority.Location(cfg.TimeZone)
	if err != nil {
		uc.logger.Warn("GenerateSlots: unknown timezone %q", cfg.TimeZone)
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimeZone, cfg.TimeZone)
	}

	// 4. Генерируем сетку слотов
	slots, err := generateSlots(cfg, loc, uc.logger)
	if err != nil {
		uc.logger.Warn("GenerateSlots: generation failed: %v", err)
		return nil, err
	}

	// 5. Сохраняем коллекцию (полная замена снапшота)
	if err := uc.store.SaveSlots(ctx, slots); err != nil {
		uc.logger.Error("GenerateSlots: failed to save slots: %v", err)
		return nil, fmt.Errorf("%w: failed to save slots: %v", ErrInternal, err)
	}

	uc.metrics.AddSlotsGenerated(len(slots))
	uc.logger.Info("GenerateSlots: generated %d slots for %s..%s in %s",
		len(slots), cfg.StartDate, cfg.EndDate, cfg.TimeZone)

	return &Response{
		Slots:    slots,
		TimeZone: cfg.TimeZone,
	}, nil
}
