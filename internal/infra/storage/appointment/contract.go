package appointment

import (
	"context"

	"github.com/m04kA/SMC-VoiceScheduler/pkg/txmanager"
)

// DBExecutor интерфейс для выполнения запросов (*sql.DB или обёртка)
type DBExecutor = txmanager.Executor

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}
