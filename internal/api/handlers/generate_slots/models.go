package generate_slots

import (
	"time"

	generateSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/generate_slots"
)

// SlotResponse HTTP модель слота
// Абсолютные моменты сериализуются строками ISO-8601
type SlotResponse struct {
	ID          string `json:"id"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
}

// GenerateSlotsResponse HTTP модель ответа генерации
type GenerateSlotsResponse struct {
	TimeZone string         `json:"timeZone"`
	Count    int            `json:"count"`
	Slots    []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateSlots.Response) *GenerateSlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			ID:          slot.ID,
			StartTime:   slot.StartTime.Format(time.RFC3339),
			EndTime:     slot.EndTime.Format(time.RFC3339),
			IsAvailable: slot.IsAvailable,
		}
	}

	return &GenerateSlotsResponse{
		TimeZone: resp.TimeZone,
		Count:    len(slots),
		Slots:    slots,
	}
}
