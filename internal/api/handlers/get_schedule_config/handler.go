package get_schedule_config

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	scheduleService "github.com/m04kA/SMC-ScheduleService/internal/service/schedule"
)

const (
	msgConfigNotFound = "конфигурация расписания не найдена"
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

// Handle GET /api/v1/schedule/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetConfig(r.Context())
	if err != nil {
		if errors.Is(err, scheduleService.ErrConfigNotFound) {
			h.logger.Warn("GET /schedule/config - Config not found")
			handlers.RespondNotFound(w, msgConfigNotFound)
			return
		}
		h.logger.Error("GET /schedule/config - Failed to get config: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule/config - Config retrieved successfully")
	handlers.RespondJSON(w, http.StatusOK, resp)
}
