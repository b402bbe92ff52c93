// Package conversation классифицирует состояние диалога голосового агента
// по перечисленным репликам, без разбора текста сообщений.
package conversation

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-VoiceScheduler/internal/integrations/openaiclient"
)

// State стадия диалога, определяющая обращение с приветствием
type State int

const (
	// StateNoUserTurns клиент еще не говорил: отвечаем только приветствием
	StateNoUserTurns State = iota

	// StateFirstUserTurn первая реплика клиента без предшествующих ответов
	// агента: приветствие добавляется перед ответом модели
	StateFirstUserTurn

	// StateOngoing диалог уже идет, приветствие не нужно
	StateOngoing
)

func (s State) String() string {
	switch s {
	case StateNoUserTurns:
		return "no_user_turns"
	case StateFirstUserTurn:
		return "first_user_turn"
	case StateOngoing:
		return "ongoing"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Classify определяет стадию диалога по истории сообщений.
// Считаются только реплики: пользовательские с непустым текстом
// и любые ответы ассистента. Системные сообщения не учитываются
func Classify(messages []openaiclient.ChatMessage) State {
	userTurns := 0
	assistantTurns := 0

	for _, msg := range messages {
		switch msg.Role {
		case openaiclient.RoleUser:
			if strings.TrimSpace(msg.ContentOrEmpty()) != "" {
				userTurns++
			}
		case openaiclient.RoleAssistant:
			assistantTurns++
		}
	}

	switch {
	case userTurns == 0:
		return StateNoUserTurns
	case userTurns == 1 && assistantTurns == 0:
		return StateFirstUserTurn
	default:
		return StateOngoing
	}
}

// Greeting собирает текст приветствия для звонящего
func Greeting(businessName string) string {
	return fmt.Sprintf(
		"Hello! Thank you for calling %s. This is Jordan, your appointment scheduling assistant. How may I help you today?",
		businessName,
	)
}

// GreetingPrefix приветствие для склейки с первым ответом модели
func GreetingPrefix(businessName string) string {
	return fmt.Sprintf(
		"Hello! Thank you for calling %s. This is Jordan, your appointment scheduling assistant. ",
		businessName,
	)
}
