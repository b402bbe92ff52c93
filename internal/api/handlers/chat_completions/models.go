package chat_completions

import "github.com/m04kA/SMC-VoiceScheduler/internal/integrations/openaiclient"

// ChatCompletionRequest входящий запрос от голосовой платформы.
// Формат совпадает с Chat Completions API: платформа выступает
// клиентом OpenAI-совместимого сервера
type ChatCompletionRequest struct {
	Model       string                     `json:"model"`
	Messages    []openaiclient.ChatMessage `json:"messages"`
	Temperature *float64                   `json:"temperature,omitempty"`
	MaxTokens   *int                       `json:"max_tokens,omitempty"`
}
