package generate_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	generateSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/generate_slots"
)

const (
	msgUnauthorized   = "пользователь не аутентифицирован"
	msgConfigNotFound = "конфигурация расписания не найдена"
	msgInvalidConfig  = "сохранённая конфигурация не проходит валидацию"
	msgNoSlots        = "конфигурация не даёт ни одного слота"
)

type Handler struct {
	useCase GenerateSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GenerateSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedule/slots/generate
// Генерирует коллекцию слотов из сохранённой конфигурации и сохраняет её
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /schedule/slots/generate - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &generateSlots.Request{UserID: userID})
	if err != nil {
		switch {
		case errors.Is(err, generateSlots.ErrConfigNotFound):
			h.logger.Warn("POST /schedule/slots/generate - Config not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgConfigNotFound)

		case errors.Is(err, generateSlots.ErrInvalidConfig),
			errors.Is(err, generateSlots.ErrInvertedDateRange),
			errors.Is(err, generateSlots.ErrUnknownTimeZone):
			h.logger.Warn("POST /schedule/slots/generate - Invalid config: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidConfig)

		case errors.Is(err, generateSlots.ErrNoSlotsGenerated):
			h.logger.Warn("POST /schedule/slots/generate - Degenerate config: user_id=%d, error=%v", userID, err)
			handlers.RespondConflict(w, msgNoSlots)

		default:
			h.logger.Error("POST /schedule/slots/generate - Failed to generate: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedule/slots/generate - Generated successfully: user_id=%d, slots_count=%d",
		userID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
