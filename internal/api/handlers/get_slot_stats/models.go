package get_slot_stats

import (
	"net/url"

	filterSlotsHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/filter_slots"
	slotStats "github.com/m04kA/SMC-ScheduleService/internal/usecase/slot_stats"
)

// DateRangeResponse HTTP модель диапазона дат
type DateRangeResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SlotStatsResponse HTTP модель ответа со статистикой
type SlotStatsResponse struct {
	TimeZone                string             `json:"timeZone"`
	Total                   int                `json:"total"`
	Available               int                `json:"available"`
	Unavailable             int                `json:"unavailable"`
	AvailabilityRatePercent int                `json:"availabilityRatePercent"`
	DaysWithSlots           int                `json:"daysWithSlots"`
	AverageSlotsPerDay      int                `json:"averageSlotsPerDay"`
	DateRange               *DateRangeResponse `json:"dateRange,omitempty"`
}

// ToUseCaseRequest собирает запрос статистики из query параметров
// Набор параметров совпадает с фильтрацией: статистика считается
// по отфильтрованной коллекции
func ToUseCaseRequest(query url.Values) (*slotStats.Request, error) {
	filterReq, err := filterSlotsHandler.ToUseCaseRequest(query)
	if err != nil {
		return nil, err
	}
	return &slotStats.Request{Filter: filterReq.Options}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *slotStats.Response) *SlotStatsResponse {
	out := &SlotStatsResponse{
		TimeZone:                resp.TimeZone,
		Total:                   resp.Stats.Total,
		Available:               resp.Stats.Available,
		Unavailable:             resp.Stats.Unavailable,
		AvailabilityRatePercent: resp.Stats.AvailabilityRatePercent,
		DaysWithSlots:           resp.Stats.DaysWithSlots,
		AverageSlotsPerDay:      resp.Stats.AverageSlotsPerDay,
	}

	if resp.Stats.DateRange != nil {
		out.DateRange = &DateRangeResponse{
			Start: resp.Stats.DateRange.Start.String(),
			End:   resp.Stats.DateRange.End.String(),
		}
	}

	return out
}
