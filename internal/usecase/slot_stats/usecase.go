package slot_stats

import (
	"context"
	"fmt"

	filterSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/filter_slots"
)

// UseCase use case агрегированной статистики по отфильтрованной коллекции
type UseCase struct {
	filter    SlotFilter
	authority TimeAuthority
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(filter SlotFilter, authority TimeAuthority, logger Logger) *UseCase {
	return &UseCase{
		filter:    filter,
		authority: authority,
		logger:    logger,
	}
}

// Execute выполняет use case подсчета статистики
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Прогоняем коллекцию через пайплайн фильтрации
	filtered, err := uc.filter.Execute(ctx, &filterSlots.Request{Options: req.Filter})
	if err != nil {
		uc.logger.Error("SlotStats: filter pipeline failed: %v", err)
		return nil, fmt.Errorf("%w: filter failed: %v", ErrInternal, err)
	}

	// 2. Пустая коллекция даёт нулевую статистику без обращения к зоне
	if len(filtered.Slots) == 0 {
		uc.logger.Info("SlotStats: empty filtered collection")
		return &Response{TimeZone: filtered.TimeZone}, nil
	}

	// 3. Разрешаем зону, в которой фильтр проецировал слоты
	loc, err := uc.authority.Location(filtered.TimeZone)
	if err != nil {
		uc.logger.Error("SlotStats: failed to resolve zone %q: %v", filtered.TimeZone, err)
		return nil, fmt.Errorf("%w: resolve zone: %v", ErrInternal, err)
	}

	stats := summarize(filtered.Slots, loc)

	uc.logger.Info("SlotStats: total=%d available=%d rate=%d%% days=%d",
		stats.Total, stats.Available, stats.AvailabilityRatePercent, stats.DaysWithSlots)

	return &Response{
		Stats:    stats,
		TimeZone: filtered.TimeZone,
	}, nil
}
