package openaiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VoiceScheduler/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreateChatCompletion(t *testing.T) {
	var gotPath, gotAuth string
	var gotReq ChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		_ = json.NewEncoder(w).Encode(ChatResponse{
			ID:    "chatcmpl-1",
			Model: "gpt-4o-mini",
			Choices: []Choice{{
				Message:      ChatMessage{Role: RoleAssistant, Content: ptr.Ptr("Hello!")},
				FinishReason: "stop",
			}},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk-test", "gpt-4o-mini", 5*time.Second, nopLogger{})

	resp, err := client.CreateChatCompletion(context.Background(), &ChatRequest{
		Messages: []ChatMessage{{Role: RoleUser, Content: ptr.Ptr("Hi")}},
	})
	require.NoError(t, err)

	assert.Equal(t, "/v1/chat/completions", gotPath)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	// Модель подставляется из конфигурации при пустом поле
	assert.Equal(t, "gpt-4o-mini", gotReq.Model)
	assert.Equal(t, "Hello!", resp.FirstMessage().ContentOrEmpty())
}

func TestCreateChatCompletion_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(ChatResponse{ID: "chatcmpl-1"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk-test", "gpt-4o-mini", 5*time.Second, nopLogger{})

	_, err := client.CreateChatCompletion(context.Background(), &ChatRequest{})
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestCreateChatCompletion_APIStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk-test", "gpt-4o-mini", 5*time.Second, nopLogger{})

	_, err := client.CreateChatCompletion(context.Background(), &ChatRequest{})
	assert.ErrorIs(t, err, ErrAPIStatus)
}

func TestCreateChatCompletion_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "sk-test", "gpt-4o-mini", 20*time.Millisecond, nopLogger{})

	_, err := client.CreateChatCompletion(context.Background(), &ChatRequest{})
	assert.ErrorIs(t, err, ErrTimeout)
}
