package call_events

// Типы событий call control, обрабатываемые отдельно
const (
	EventCallInitiated           = "call.initiated"
	EventCallAnswered            = "call.answered"
	EventCallHangup              = "call.hangup"
	EventMachineDetectionEnded   = "call.machine.detection.ended"
	EventAIStarted               = "call.ai.started"
	EventAIReady                 = "call.ai.ready"
	EventAIEnded                 = "call.ai.ended"
	EventAIError                 = "call.ai.error"
)

// CallControlEvent входящее webhook-событие телефонной платформы
type CallControlEvent struct {
	Data CallControlData `json:"data"`
}

// CallControlData содержимое события
type CallControlData struct {
	EventType string             `json:"event_type"`
	Payload   CallControlPayload `json:"payload"`
}

// CallControlPayload полезная нагрузка события звонка
type CallControlPayload struct {
	CallControlID string `json:"call_control_id"`
	CallLegID     string `json:"call_leg_id"`
	From          string `json:"from"`
	To            string `json:"to"`
	Direction     string `json:"direction"`
	HangupCause   string `json:"hangup_cause"`
	HangupSource  string `json:"hangup_source"`
	Result        string `json:"result"`
	Reason        string `json:"reason"`
	ErrorCode     string `json:"error_code"`
	ErrorMessage  string `json:"error_message"`
}

// EventAck подтверждение приема события
type EventAck struct {
	Received  bool   `json:"received"`
	EventType string `json:"event_type"`
}

// StatusResponse ответ endpoint'а статуса интеграции
type StatusResponse struct {
	Status        string            `json:"status"`
	Service       string            `json:"service"`
	Endpoints     map[string]string `json:"endpoints"`
	Configuration map[string]string `json:"configuration"`
}
