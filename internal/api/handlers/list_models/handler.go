package list_models

import (
	"net/http"

	"github.com/m04kA/SMC-VoiceScheduler/internal/api/handlers"
)

// Запасные модели в списке: голосовая платформа проверяет по нему
// конфигурацию Custom LLM
var fallbackModels = []string{"gpt-4o-mini", "gpt-4o", "gpt-4"}

type Handler struct {
	configuredModel string
	timeProvider    TimeProvider
	logger          Logger
}

func NewHandler(configuredModel string, logger Logger) *Handler {
	return &Handler{
		configuredModel: configuredModel,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Handle GET /v1/models (и алиас /models)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	created := h.timeProvider.Now().Unix()

	models := []Model{newModel(h.configuredModel, created)}
	for _, id := range fallbackModels {
		if id == h.configuredModel {
			continue
		}
		models = append(models, newModel(id, created))
	}

	h.logger.Info("GET /models - Returning %d models", len(models))
	handlers.RespondJSON(w, http.StatusOK, ModelList{
		Object: "list",
		Data:   models,
	})
}

func newModel(id string, created int64) Model {
	return Model{
		ID:         id,
		Object:     "model",
		Created:    created,
		OwnedBy:    "openai",
		Permission: []interface{}{},
		Root:       id,
		Parent:     nil,
	}
}
