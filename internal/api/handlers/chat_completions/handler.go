package chat_completions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-VoiceScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-VoiceScheduler/internal/integrations/openaiclient"
	"github.com/m04kA/SMC-VoiceScheduler/internal/service/conversation"
	"github.com/m04kA/SMC-VoiceScheduler/internal/service/tools"
	"github.com/m04kA/SMC-VoiceScheduler/pkg/ptr"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgPersonaUnavailable = "failed to load persona configuration"
	msgUpstreamTimeout    = "upstream model request timed out"
	msgUpstreamError      = "upstream model request failed"

	defaultTemperature = 0.7
)

// Handler OpenAI-совместимый endpoint для голосовой платформы.
// Принимает историю диалога, подмешивает persona как системное сообщение,
// проксирует запрос модели с описаниями инструментов и выполняет
// запрошенные моделью вызовы инструментов
type Handler struct {
	chatCompleter ChatCompleter
	toolExecutor  ToolExecutor
	personas      PersonaProvider
	personaName   string
	businessName  string
	timeProvider  TimeProvider
	logger        Logger
}

func NewHandler(
	chatCompleter ChatCompleter,
	toolExecutor ToolExecutor,
	personas PersonaProvider,
	personaName string,
	businessName string,
	logger Logger,
) *Handler {
	return &Handler{
		chatCompleter: chatCompleter,
		toolExecutor:  toolExecutor,
		personas:      personas,
		personaName:   personaName,
		businessName:  businessName,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Handle POST /v1/chat/completions (и алиас /chat/completions)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ChatCompletionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /chat/completions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	h.logger.Info("POST /chat/completions - model=%s, messages=%d", req.Model, len(req.Messages))

	// Стадия диалога определяется по перечисленным репликам
	state := conversation.Classify(req.Messages)
	h.logger.Info("POST /chat/completions - conversation state: %s", state)

	// Клиент еще не говорил: отвечаем приветствием без обращения к модели
	if state == conversation.StateNoUserTurns {
		h.respondGreeting(w, req.Model)
		return
	}

	// Системный промпт: persona с бизнес-контекстом текущей сессии
	now := h.timeProvider.Now()
	systemPrompt, err := h.personas.SystemPrompt(h.personaName, h.businessName, map[string]string{
		"current_date": now.Format("Monday, January 2, 2006"),
		"current_time": now.Format("3:04 PM"),
	})
	if err != nil {
		h.logger.Error("POST /chat/completions - Failed to load persona: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgPersonaUnavailable)
		return
	}

	messages := make([]openaiclient.ChatMessage, 0, len(req.Messages)+1)
	messages = append(messages, openaiclient.ChatMessage{
		Role:    openaiclient.RoleSystem,
		Content: ptr.Ptr(systemPrompt),
	})
	messages = append(messages, req.Messages...)

	temperature := defaultTemperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	resp, err := h.completeWithTools(r.Context(), messages, temperature, req.MaxTokens)
	if err != nil {
		switch {
		case errors.Is(err, openaiclient.ErrTimeout):
			h.logger.Error("POST /chat/completions - Upstream timeout: %v", err)
			handlers.RespondError(w, http.StatusGatewayTimeout, msgUpstreamTimeout)
		default:
			h.logger.Error("POST /chat/completions - Upstream error: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgUpstreamError)
		}
		return
	}

	// Первая реплика клиента: приветствие склеивается с ответом модели
	if state == conversation.StateFirstUserTurn {
		if msg := resp.FirstMessage(); msg != nil {
			prefixed := conversation.GreetingPrefix(h.businessName) + msg.ContentOrEmpty()
			resp.Choices[0].Message.Content = ptr.Ptr(prefixed)
			h.logger.Info("POST /chat/completions - Greeting prepended to first response")
		}
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

// completeWithTools вызывает модель и, если она запросила инструменты,
// выполняет их и делает один дополнительный запрос с результатами
func (h *Handler) completeWithTools(
	ctx context.Context,
	messages []openaiclient.ChatMessage,
	temperature float64,
	maxTokens *int,
) (*openaiclient.ChatResponse, error) {
	resp, err := h.chatCompleter.CreateChatCompletion(ctx, &openaiclient.ChatRequest{
		Model:       h.chatCompleter.Model(),
		Messages:    messages,
		Tools:       tools.Definitions(),
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return nil, err
	}

	msg := resp.FirstMessage()
	if msg == nil || len(msg.ToolCalls) == 0 {
		return resp, nil
	}

	h.logger.Info("completeWithTools: model requested %d tool call(s)", len(msg.ToolCalls))

	messages = append(messages, *msg)
	for _, call := range msg.ToolCalls {
		resultContent := h.executeToolCall(ctx, call)
		messages = append(messages, openaiclient.ChatMessage{
			Role:       openaiclient.RoleTool,
			Content:    ptr.Ptr(resultContent),
			ToolCallID: call.ID,
			Name:       call.Function.Name,
		})
	}

	// Второй запрос, чтобы модель озвучила результаты инструментов
	return h.chatCompleter.CreateChatCompletion(ctx, &openaiclient.ChatRequest{
		Model:       h.chatCompleter.Model(),
		Messages:    messages,
		Tools:       tools.Definitions(),
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
}

// executeToolCall выполняет один вызов инструмента и сериализует результат.
// Ошибки выполнения кодируются в содержимое tool-сообщения: модель должна
// сообщить о проблеме клиенту, а не оборвать диалог
func (h *Handler) executeToolCall(ctx context.Context, call openaiclient.ToolCall) string {
	result, err := h.toolExecutor.Execute(ctx, call.Function.Name, json.RawMessage(call.Function.Arguments))
	if err != nil {
		h.logger.Error("executeToolCall: tool=%s failed: %v", call.Function.Name, err)
		result = &tools.Result{
			Success: false,
			Error:   "The scheduling system encountered an error, please try again",
		}
	}

	data, err := json.Marshal(result)
	if err != nil {
		h.logger.Error("executeToolCall: failed to marshal result for tool=%s: %v", call.Function.Name, err)
		return `{"success": false, "error": "internal error"}`
	}
	return string(data)
}

// respondGreeting отвечает локально синтезированным приветствием
// в формате Chat Completions API
func (h *Handler) respondGreeting(w http.ResponseWriter, model string) {
	now := h.timeProvider.Now()
	greeting := conversation.Greeting(h.businessName)
	h.logger.Info("POST /chat/completions - Responding with greeting")

	resp := &openaiclient.ChatResponse{
		ID:      fmt.Sprintf("chatcmpl-%d", now.Unix()),
		Object:  "chat.completion",
		Created: now.Unix(),
		Model:   model,
		Choices: []openaiclient.Choice{
			{
				Index: 0,
				Message: openaiclient.ChatMessage{
					Role:    openaiclient.RoleAssistant,
					Content: ptr.Ptr(greeting),
				},
				FinishReason: "stop",
			},
		},
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
