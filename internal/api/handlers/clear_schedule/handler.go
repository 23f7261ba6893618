package clear_schedule

import (
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
)

const (
	msgUnauthorized = "пользователь не аутентифицирован"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/schedule
// Удаляет конфигурацию и сгенерированные слоты (только свой namespace)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("DELETE /schedule - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	if err := h.service.Clear(r.Context(), userID); err != nil {
		h.logger.Error("DELETE /schedule - Failed to clear: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /schedule - Schedule cleared: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
