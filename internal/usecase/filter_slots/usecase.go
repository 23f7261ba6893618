package filter_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	scheduleStore "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/schedule"
)

// UseCase use case фильтрации сохранённой коллекции слотов
//
// Пайплайн устойчив к некорректным runtime-параметрам: сбой любого этапа
// (например, неизвестная таймзона) деградирует до пустого результата
// вместо ошибки, с записью в лог и инкрементом метрики деградаций.
// Сбои хранилища, напротив, пробрасываются вызывающей стороне
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

// Execute выполняет use case фильтрации
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Разрешаем опции: значения по умолчанию + разбор границ
	resolved, err := req.Options.resolve(uc.authority)
	if err != nil {
		return uc.degrade("resolve_options", err)
	}

	// 2. Загружаем сохранённую коллекцию
	slots, err := uc.store.LoadSlots(ctx)
	if err != nil {
		if errors.Is(err, scheduleStore.ErrSlotsNotFound) {
			uc.logger.Info("FilterSlots: no stored slots, returning empty result")
			slots = []domain.Slot{}
		} else {
			uc.logger.Error("FilterSlots: failed to load slots: %v", err)
			return nil, fmt.Errorf("%w: failed to load slots: %v", ErrInternal, err)
		}
	}

	// 3. Применяем пайплайн (чистая трансформация)
	filtered := applyPipeline(slots, resolved)

	uc.logger.Info("FilterSlots: %d of %d slots passed (zone=%s, buffer=%d, availableOnly=%v, limit=%d)",
		len(filtered), len(slots), resolved.zoneName, resolved.bufferMinutes,
		resolved.availableOnly, resolved.limit)

	return &Response{
		Slots:            filtered,
		TimeZone:         resolved.zoneName,
		ReferenceInstant: resolved.reference,
		BufferMinutes:    resolved.bufferMinutes,
	}, nil
}

// degrade возвращает пустой результат вместо ошибки, фиксируя сбой
// в логе и метриках
func (uc *UseCase) degrade(stage string, err error) (*Response, error) {
	uc.logger.Error("FilterSlots: pipeline degraded to empty result at stage %s: %v", stage, err)
	uc.metrics.IncFilterDegradation(stage)
	return &Response{
		Slots:         []domain.Slot{},
		BufferMinutes: domain.DefaultBufferDurationMinutes,
	}, nil
}
