package generate_slots

import "github.com/m04kA/SMC-ScheduleService/internal/domain"

// Request модель запроса на генерацию слотов
type Request struct {
	UserID int64 // ID пользователя (для логирования, не влияет на результат)
}

// Response модель ответа со сгенерированной коллекцией слотов
type Response struct {
	Slots    []domain.Slot // Слоты, упорядоченные по моменту начала
	TimeZone string        // Таймзона, в которой выполнялась генерация
}
