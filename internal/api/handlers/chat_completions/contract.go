package chat_completions

import (
	"context"
	"encoding/json"
	"time"

	"github.com/m04kA/SMC-VoiceScheduler/internal/integrations/openaiclient"
	"github.com/m04kA/SMC-VoiceScheduler/internal/service/tools"
)

// ChatCompleter интерфейс клиента Chat Completions API
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req *openaiclient.ChatRequest) (*openaiclient.ChatResponse, error)
	Model() string
}

// ToolExecutor интерфейс сервиса выполнения инструментов
type ToolExecutor interface {
	Execute(ctx context.Context, toolName string, arguments json.RawMessage) (*tools.Result, error)
}

// PersonaProvider интерфейс сервиса persona
type PersonaProvider interface {
	SystemPrompt(name, businessName string, businessInfo map[string]string) (string, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальная реализация провайдера времени
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
