package history

import (
	"context"
	"time"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	ModelName string    `json:"model_name"`
	CreatedAt time.Time `json:"created_at"`
}

// Repo — работа с БД
type Repo interface {
	Add(ctx context.Context, userID int64, role, content, modelName string) (*Message, error)
	// Window возвращает не больше limit последних сообщений пары
	// (пользователь, модель) в хронологическом порядке.
	Window(ctx context.Context, userID int64, modelName string, limit int) ([]*Message, error)
}

// Service — бизнес-операции
type Service interface {
	Add(ctx context.Context, userID int64, role, content, modelName string) (*Message, error)
	Window(ctx context.Context, userID int64, modelName string, limit int) ([]*Message, error)
}
