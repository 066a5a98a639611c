package ai

import (
	"context"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterClient — клиент OpenRouter; протокол совместим с OpenAI,
// поэтому используем go-openai с подменённым BaseURL.
type OpenRouterClient struct {
	client *openai.Client
}

// refererTransport проставляет заголовки, по которым OpenRouter
// атрибутирует приложение
type refererTransport struct {
	appName string
	base    http.RoundTripper
}

func (t *refererTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// контракт RoundTripper: исходный запрос не трогаем
	clone := req.Clone(req.Context())
	clone.Header.Set("HTTP-Referer", t.appName)
	clone.Header.Set("X-Title", t.appName)
	return t.base.RoundTrip(clone)
}

func NewOpenRouterClient(apiKey, appName string) *OpenRouterClient {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = openRouterBaseURL
	cfg.HTTPClient = &http.Client{
		Timeout: 120 * time.Second,
		Transport: &refererTransport{
			appName: appName,
			base:    http.DefaultTransport,
		},
	}
	return &OpenRouterClient{
		client: openai.NewClientWithConfig(cfg),
	}
}

func (c *OpenRouterClient) Complete(ctx context.Context, turns []Turn, model string) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(turns))
	for _, t := range turns {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    t.Role,
			Content: t.Content,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    model,
		Messages: messages,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
