package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	scheduleStore "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule/models"
	"github.com/m04kA/SMC-ScheduleService/internal/validation"
)

// Service сервис для работы с конфигурацией расписания
type Service struct {
	store  ScheduleStore
	zones  ZoneChecker
	logger Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(store ScheduleStore, zones ZoneChecker, logger Logger) *Service {
	return &Service{
		store:  store,
		zones:  zones,
		logger: logger,
	}
}

// UpdateConfig валидирует и сохраняет конфигурацию слотов
// Валидация накапливающая: возвращается список всех нарушений сразу,
// чтобы вызывающая сторона могла показать каждую проблему
func (s *Service) UpdateConfig(ctx context.Context, req *models.UpdateConfigRequest) (*models.ConfigResponse, []domain.ValidationError, error) {
	s.logger.Info("UpdateConfig: user=%d, range=%s..%s, zone=%s",
		req.UserID, req.StartDate, req.EndDate, req.TimeZone)

	cfg := req.ToDomainConfig()

	// 1. Накапливающая валидация
	if errs := validation.Validate(cfg, s.zones); len(errs) > 0 {
		s.logger.Warn("UpdateConfig: validation failed with %d errors", len(errs))
		return nil, errs, nil
	}

	// 2. Сохраняем конфигурацию
	if err := s.store.SaveConfig(ctx, cfg); err != nil {
		s.logger.Error("UpdateConfig: failed to save config: %v", err)
		return nil, nil, fmt.Errorf("%w: UpdateConfig - store error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateConfig: successfully saved config")
	return models.FromDomainConfig(cfg), nil, nil
}

// GetConfig загружает сохранённую конфигурацию слотов
func (s *Service) GetConfig(ctx context.Context) (*models.ConfigResponse, error) {
	s.logger.Info("GetConfig: fetching stored config")

	cfg, err := s.store.LoadConfig(ctx)
	if err != nil {
		if errors.Is(err, scheduleStore.ErrConfigNotFound) {
			s.logger.Warn("GetConfig: config not found")
			return nil, ErrConfigNotFound
		}
		s.logger.Error("GetConfig: store error: %v", err)
		return nil, fmt.Errorf("%w: GetConfig - store error: %v", ErrInternal, err)
	}

	return models.FromDomainConfig(cfg), nil
}

// Clear удаляет конфигурацию и сгенерированную коллекцию слотов
// Затрагиваются только ключи namespace расписания
func (s *Service) Clear(ctx context.Context, userID int64) error {
	s.logger.Info("Clear: clearing schedule namespace by user=%d", userID)

	if err := s.store.Clear(ctx); err != nil {
		s.logger.Error("Clear: store error: %v", err)
		return fmt.Errorf("%w: Clear - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Clear: schedule namespace cleared")
	return nil
}
