package ai

import (
	"context"

	"github.com/Vovarama1992/tzbot/internal/user"
)

// Turn — одна реплика контекста для модели
type Turn struct {
	Role    string
	Content string
}

// Client — один блокирующий запрос к OpenRouter
type Client interface {
	Complete(ctx context.Context, turns []Turn, model string) (string, error)
}

// Service — ответ модели на новое сообщение пользователя.
// Сервис сам подтягивает окно истории из БД и сохраняет оба новых
// сообщения после успешного ответа.
type Service interface {
	Reply(ctx context.Context, u *user.User, userText string) (string, error)
}
