package execute_tool

import (
	"context"
	"encoding/json"

	"github.com/m04kA/SMC-VoiceScheduler/internal/service/tools"
)

// ToolExecutor интерфейс сервиса выполнения инструментов
type ToolExecutor interface {
	Execute(ctx context.Context, toolName string, arguments json.RawMessage) (*tools.Result, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
