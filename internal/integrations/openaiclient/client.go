package openaiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент Chat Completions API (OpenAI или совместимый бэкенд)
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL, apiKey, model string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Model возвращает сконфигурированную модель
func (c *Client) Model() string {
	return c.model
}

// CreateChatCompletion выполняет запрос к Chat Completions API
// Если в запросе не указана модель, подставляется модель из конфигурации
func (c *Client) CreateChatCompletion(ctx context.Context, chatReq *ChatRequest) (*ChatResponse, error) {
	if chatReq.Model == "" {
		chatReq.Model = c.model
	}

	body, err := json.Marshal(chatReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		var netErr interface{ Timeout() bool }
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		c.log.Error("openai: api returned status %d: %s", resp.StatusCode, string(respBody))
		return nil, fmt.Errorf("%w: status %d: %s", ErrAPIStatus, resp.StatusCode, string(respBody))
	}

	var chatResp ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("%w: response has no choices", ErrInvalidResponse)
	}

	c.log.Info("openai: completion ok, model=%s, tokens=%d", chatResp.Model, chatResp.Usage.TotalTokens)
	return &chatResp, nil
}
