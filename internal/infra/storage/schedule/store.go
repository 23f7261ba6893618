// Package schedule типизированное хранилище расписания поверх key-value
// хранилища блобов.
//
// Используются два логических ключа под общим namespace-префиксом:
// конфигурация и коллекция слотов. Clear удаляет только ключи своего
// namespace и не трогает чужие данные в том же хранилище
package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/infra/storage/blob"
)

const (
	configKeySuffix = ":config"
	slotsKeySuffix  = ":slots"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Store типизированное хранилище конфигурации и коллекции слотов
type Store struct {
	blobs  blob.Store
	prefix string
	logger Logger
}

// NewStore создает хранилище расписания с указанным namespace-префиксом
func NewStore(blobs blob.Store, prefix string, logger Logger) *Store {
	return &Store{
		blobs:  blobs,
		prefix: prefix,
		logger: logger,
	}
}

func (s *Store) configKey() string {
	return s.prefix + configKeySuffix
}

func (s *Store) slotsKey() string {
	return s.prefix + slotsKeySuffix
}

// SaveConfig сохраняет конфигурацию слотов
func (s *Store) SaveConfig(ctx context.Context, cfg *domain.SlotConfig) error {
	payload, err := json.Marshal(toConfigRecord(cfg))
	if err != nil {
		return fmt.Errorf("%w: SaveConfig - marshal config: %v", ErrEncode, err)
	}

	if err := s.blobs.Put(ctx, s.configKey(), payload); err != nil {
		return fmt.Errorf("%w: SaveConfig - put blob: %v", ErrStorage, err)
	}

	return nil
}

// LoadConfig загружает сохранённую конфигурацию
// Отсутствующий или повреждённый блоб возвращается как ErrConfigNotFound:
// ошибка разбора трактуется как отсутствие данных, а не как сбой
func (s *Store) LoadConfig(ctx context.Context) (*domain.SlotConfig, error) {
	payload, err := s.blobs.Get(ctx, s.configKey())
	if errors.Is(err, blob.ErrKeyNotFound) {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: LoadConfig - get blob: %v", ErrStorage, err)
	}

	var record configRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		s.logger.Warn("LoadConfig: stored config blob is corrupt, treating as absent: %v", err)
		return nil, ErrConfigNotFound
	}

	return record.toDomain(), nil
}

// RemoveConfig удаляет сохранённую конфигурацию
func (s *Store) RemoveConfig(ctx context.Context) error {
	if err := s.blobs.Remove(ctx, s.configKey()); err != nil {
		return fmt.Errorf("%w: RemoveConfig - remove blob: %v", ErrStorage, err)
	}
	return nil
}

// SaveSlots сохраняет коллекцию слотов целиком (полная замена снапшота)
func (s *Store) SaveSlots(ctx context.Context, slots []domain.Slot) error {
	records := make([]slotRecord, len(slots))
	for i, slot := range slots {
		records[i] = toSlotRecord(slot)
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: SaveSlots - marshal slots: %v", ErrEncode, err)
	}

	if err := s.blobs.Put(ctx, s.slotsKey(), payload); err != nil {
		return fmt.Errorf("%w: SaveSlots - put blob: %v", ErrStorage, err)
	}

	return nil
}

// LoadSlots загружает сохранённую коллекцию слотов
// Записи, которые не разбираются в два валидных момента времени,
// молча пропускаются; полностью повреждённый блоб трактуется как отсутствующий
func (s *Store) LoadSlots(ctx context.Context) ([]domain.Slot, error) {
	payload, err := s.blobs.Get(ctx, s.slotsKey())
	if errors.Is(err, blob.ErrKeyNotFound) {
		return nil, ErrSlotsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: LoadSlots - get blob: %v", ErrStorage, err)
	}

	var records []slotRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		s.logger.Warn("LoadSlots: stored slots blob is corrupt, treating as absent: %v", err)
		return nil, ErrSlotsNotFound
	}

	slots := make([]domain.Slot, 0, len(records))
	dropped := 0
	for _, record := range records {
		slot, ok := record.toDomain()
		if !ok {
			dropped++
			continue
		}
		slots = append(slots, slot)
	}

	if dropped > 0 {
		s.logger.Warn("LoadSlots: dropped %d slot records with unparseable instants", dropped)
	}

	return slots, nil
}

// Clear удаляет все данные расписания (только ключи своего namespace)
func (s *Store) Clear(ctx context.Context) error {
	if err := s.blobs.Clear(ctx, s.prefix); err != nil {
		return fmt.Errorf("%w: Clear - clear namespace: %v", ErrStorage, err)
	}
	return nil
}
