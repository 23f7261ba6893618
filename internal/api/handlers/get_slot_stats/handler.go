package get_slot_stats

import (
	"net/http"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
)

const (
	msgInvalidQuery = "некорректные параметры запроса"
)

type Handler struct {
	useCase SlotStatsUseCase
	logger  Logger
}

func NewHandler(useCase SlotStatsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/stats
// Query params совпадают с GET /schedule/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ToUseCaseRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /schedule/stats - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /schedule/stats - Failed to compute stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule/stats - Stats computed successfully: total=%d", result.Stats.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
