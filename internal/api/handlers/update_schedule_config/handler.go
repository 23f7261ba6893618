package update_schedule_config

import (
	"encoding/json"
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule/models"
)

const (
	msgInvalidBody  = "некорректное тело запроса"
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

// Handle PUT /api/v1/schedule/config
// Body: JSON с полями конфигурации слотов
// Ошибки валидации возвращаются списком: все нарушения сразу
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PUT /schedule/config - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.UpdateConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("PUT /schedule/config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}
	req.UserID = userID

	resp, validationErrs, err := h.service.UpdateConfig(r.Context(), &req)
	if err != nil {
		h.logger.Error("PUT /schedule/config - Failed to update config: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}
	if len(validationErrs) > 0 {
		h.logger.Warn("PUT /schedule/config - Validation failed: user_id=%d, errors=%d", userID, len(validationErrs))
		handlers.RespondValidationErrors(w, validationErrs)
		return
	}

	h.logger.Info("PUT /schedule/config - Config updated successfully: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
