package schedule

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// configRecord сериализованное представление конфигурации слотов
type configRecord struct {
	StartDate             string `json:"startDate"`
	EndDate               string `json:"endDate"`
	StartTime             string `json:"startTime"`
	EndTime               string `json:"endTime"`
	TimeZone              string `json:"timeZone"`
	SlotDurationMinutes   int    `json:"slotDuration"`
	BreakDurationMinutes  int    `json:"breakDuration"`
	BufferDurationMinutes int    `json:"bufferDuration"`
}

func toConfigRecord(cfg *domain.SlotConfig) configRecord {
	return configRecord{
		StartDate:             cfg.StartDate.String(),
		EndDate:               cfg.EndDate.String(),
		StartTime:             cfg.StartTime.String(),
		EndTime:               cfg.EndTime.String(),
		TimeZone:              cfg.TimeZone,
		SlotDurationMinutes:   cfg.SlotDurationMinutes,
		BreakDurationMinutes:  cfg.BreakDurationMinutes,
		BufferDurationMinutes: cfg.BufferDurationMinutes,
	}
}

func (r configRecord) toDomain() *domain.SlotConfig {
	return &domain.SlotConfig{
		StartDate:             types.DateString(r.StartDate),
		EndDate:               types.DateString(r.EndDate),
		StartTime:             types.TimeString(r.StartTime),
		EndTime:               types.TimeString(r.EndTime),
		TimeZone:              r.TimeZone,
		SlotDurationMinutes:   r.SlotDurationMinutes,
		BreakDurationMinutes:  r.BreakDurationMinutes,
		BufferDurationMinutes: r.BufferDurationMinutes,
	}
}

// slotRecord сериализованное представление слота
// Абсолютные моменты времени хранятся строками ISO-8601 (RFC 3339)
type slotRecord struct {
	ID          string `json:"id"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
}

func toSlotRecord(slot domain.Slot) slotRecord {
	return slotRecord{
		ID:          slot.ID,
		StartTime:   slot.StartTime.Format(time.RFC3339),
		EndTime:     slot.EndTime.Format(time.RFC3339),
		IsAvailable: slot.IsAvailable,
	}
}

// toDomain разбирает запись обратно в слот
// Возвращает false, если хотя бы один из моментов времени не разбирается:
// такая запись молча отбрасывается при загрузке коллекции
func (r slotRecord) toDomain() (domain.Slot, bool) {
	start, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return domain.Slot{}, false
	}
	end, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return domain.Slot{}, false
	}
	return domain.Slot{
		ID:          r.ID,
		StartTime:   start,
		EndTime:     end,
		IsAvailable: r.IsAvailable,
	}, true
}
