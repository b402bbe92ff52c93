package call_events

import (
	"net/http"

	"github.com/m04kA/SMC-VoiceScheduler/internal/api/handlers"
)

const msgInvalidRequestBody = "invalid request body"

// Handler webhook-события телефонной платформы.
// Звонками управляет сама платформа (режим Custom LLM); события здесь
// только логируются для наблюдаемости
type Handler struct {
	personaName  string
	businessName string
	model        string
	logger       Logger
}

func NewHandler(personaName, businessName, model string, logger Logger) *Handler {
	return &Handler{
		personaName:  personaName,
		businessName: businessName,
		model:        model,
		logger:       logger,
	}
}

// HandleEvent POST /telnyx/call-control
func (h *Handler) HandleEvent(w http.ResponseWriter, r *http.Request) {
	var event CallControlEvent
	if err := handlers.DecodeJSON(r, &event); err != nil {
		h.logger.Error("POST /telnyx/call-control - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	eventType := event.Data.EventType
	if eventType == "" {
		eventType = "unknown"
	}
	payload := event.Data.Payload

	h.logger.Info("POST /telnyx/call-control - Event: %s | Call ID: %s", eventType, payload.CallControlID)

	switch eventType {
	case EventCallInitiated:
		h.logger.Info("New %s call: %s -> %s", payload.Direction, payload.From, payload.To)
	case EventCallAnswered:
		h.logger.Info("Call answered: %s", payload.CallControlID)
	case EventCallHangup:
		h.logger.Info("Call ended: %s | Cause: %s | Source: %s",
			payload.CallControlID, payload.HangupCause, payload.HangupSource)
	case EventMachineDetectionEnded:
		h.logger.Info("Machine detection: %s", payload.Result)
	case EventAIStarted, EventAIReady:
		h.logger.Info("AI assistant activated for call: %s", payload.CallControlID)
	case EventAIEnded:
		h.logger.Info("AI assistant ended: %s | Reason: %s", payload.CallControlID, payload.Reason)
	case EventAIError:
		h.logger.Error("AI assistant error: %s - %s", payload.ErrorCode, payload.ErrorMessage)
	}

	handlers.RespondJSON(w, http.StatusOK, EventAck{
		Received:  true,
		EventType: eventType,
	})
}

// HandleStatus GET /telnyx/status
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, StatusResponse{
		Status:  "ready",
		Service: "AI Appointment Scheduler",
		Endpoints: map[string]string{
			"call_control":     "/telnyx/call-control",
			"chat_completions": "/v1/chat/completions",
		},
		Configuration: map[string]string{
			"persona":  h.personaName,
			"business": h.businessName,
			"model":    h.model,
		},
	})
}
