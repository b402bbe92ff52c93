package execute_tool

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VoiceScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-VoiceScheduler/internal/service/tools"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUnknownTool        = "unknown tool"
)

type Handler struct {
	toolExecutor ToolExecutor
	logger       Logger
}

func NewHandler(toolExecutor ToolExecutor, logger Logger) *Handler {
	return &Handler{
		toolExecutor: toolExecutor,
		logger:       logger,
	}
}

// Handle POST /api/v1/tools/{toolName}
// Прямой вызов инструмента, минуя модель. Бизнес-отказы возвращаются
// как 200 с success=false - так же, как их видит модель
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	toolName := mux.Vars(r)["toolName"]

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Warn("POST /tools/%s - Failed to read request body: %v", toolName, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	defer r.Body.Close()

	if len(body) == 0 {
		body = []byte("{}")
	}
	if !json.Valid(body) {
		h.logger.Warn("POST /tools/%s - Invalid JSON in request body", toolName)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.toolExecutor.Execute(r.Context(), toolName, body)
	if err != nil {
		switch {
		case errors.Is(err, tools.ErrUnknownTool):
			h.logger.Warn("POST /tools/%s - Unknown tool", toolName)
			handlers.RespondNotFound(w, msgUnknownTool)
		default:
			h.logger.Error("POST /tools/%s - Tool execution failed: %v", toolName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tools/%s - Executed: success=%t", toolName, result.Success)
	handlers.RespondJSON(w, http.StatusOK, result)
}
