package filter_slots

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	filterSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/filter_slots"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// SlotResponse HTTP модель слота
// Моменты времени сериализуются в локальном представлении запрошенной зоны
type SlotResponse struct {
	ID          string `json:"id"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
}

// FilterSlotsResponse HTTP модель ответа фильтрации
type FilterSlotsResponse struct {
	TimeZone         string         `json:"timeZone"`
	ReferenceInstant string         `json:"referenceInstant"`
	BufferMinutes    int            `json:"bufferMinutes"`
	Count            int            `json:"count"`
	Slots            []SlotResponse `json:"slots"`
}

// ToUseCaseRequest собирает опции фильтрации из query параметров
//
// Распознаются: timezone, at (ISO-8601 опорный момент), buffer,
// startDate, endDate, startTime, endTime, availableOnly, limit
func ToUseCaseRequest(query url.Values) (*filterSlots.Request, error) {
	opts := filterSlots.Options{
		TimeZone: query.Get("timezone"),
	}

	if raw := query.Get("at"); raw != "" {
		at, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("at: %v", err)
		}
		opts.ReferenceInstant = &at
	}

	if raw := query.Get("buffer"); raw != "" {
		buffer, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("buffer: %v", err)
		}
		opts.BufferMinutes = &buffer
	}

	if raw := query.Get("startDate"); raw != "" {
		date := types.DateString(raw)
		opts.StartDate = &date
	}
	if raw := query.Get("endDate"); raw != "" {
		date := types.DateString(raw)
		opts.EndDate = &date
	}

	if raw := query.Get("startTime"); raw != "" {
		tod := types.TimeString(raw)
		opts.StartTime = &tod
	}
	if raw := query.Get("endTime"); raw != "" {
		tod := types.TimeString(raw)
		opts.EndTime = &tod
	}

	if raw := query.Get("availableOnly"); raw != "" {
		availableOnly, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("availableOnly: %v", err)
		}
		opts.AvailableOnly = availableOnly
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("limit: %v", err)
		}
		opts.Limit = &limit
	}

	return &filterSlots.Request{Options: opts}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *filterSlots.Response) *FilterSlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			ID:          slot.ID,
			StartTime:   slot.StartTime.Format(time.RFC3339),
			EndTime:     slot.EndTime.Format(time.RFC3339),
			IsAvailable: slot.IsAvailable,
		}
	}

	return &FilterSlotsResponse{
		TimeZone:         resp.TimeZone,
		ReferenceInstant: resp.ReferenceInstant.Format(time.RFC3339),
		BufferMinutes:    resp.BufferMinutes,
		Count:            len(slots),
		Slots:            slots,
	}
}
