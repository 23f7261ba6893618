package models

import (
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Request модели

// UpdateConfigRequest запрос на сохранение конфигурации слотов
// Поля приходят сырыми строками: формат проверяет валидация ядра,
// а не десериализация
type UpdateConfigRequest struct {
	UserID                int64  `json:"userId"`
	StartDate             string `json:"startDate"`
	EndDate               string `json:"endDate"`
	StartTime             string `json:"startTime"`
	EndTime               string `json:"endTime"`
	TimeZone              string `json:"timeZone"`
	SlotDurationMinutes   int    `json:"slotDuration"`
	BreakDurationMinutes  int    `json:"breakDuration"`
	BufferDurationMinutes int    `json:"bufferDuration"`
}

// ToDomainConfig конвертирует request в domain модель
func (r *UpdateConfigRequest) ToDomainConfig() *domain.SlotConfig {
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

// Response модели

// ConfigResponse ответ с сохранённой конфигурацией слотов
type ConfigResponse struct {
	StartDate             string `json:"startDate"`
	EndDate               string `json:"endDate"`
	StartTime             string `json:"startTime"`
	EndTime               string `json:"endTime"`
	TimeZone              string `json:"timeZone"`
	SlotDurationMinutes   int    `json:"slotDuration"`
	BreakDurationMinutes  int    `json:"breakDuration"`
	BufferDurationMinutes int    `json:"bufferDuration"`
}

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.SlotConfig) *ConfigResponse {
	if c == nil {
		return nil
	}
	return &ConfigResponse{
		StartDate:             c.StartDate.String(),
		EndDate:               c.EndDate.String(),
		StartTime:             c.StartTime.String(),
		EndTime:               c.EndTime.String(),
		TimeZone:              c.TimeZone,
		SlotDurationMinutes:   c.SlotDurationMinutes,
		BreakDurationMinutes:  c.BreakDurationMinutes,
		BufferDurationMinutes: c.BufferDurationMinutes,
	}
}
