package user

import (
	"context"
	"time"
)

type User struct {
	ID           int64     `json:"id"`
	TgID         int64     `json:"tg_id"`
	ModelName    string    `json:"model_name"`
	HasAccess    bool      `json:"has_access"`
	StarsBalance int64     `json:"stars_balance"`
	CreatedAt    time.Time `json:"created_at"`
}

// Repo — работа с БД
type Repo interface {
	// GetOrCreate возвращает пользователя по tg_id, создавая запись
	// при первом обращении. Конкурентное первое обращение даёт одну запись.
	GetOrCreate(ctx context.Context, tgID int64, defaultModel string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	UpdateModel(ctx context.Context, id int64, modelName string) (*User, error)
	GrantAccess(ctx context.Context, id int64) (*User, error)
	AddStars(ctx context.Context, id int64, amount int64) (*User, error)
	SpendStars(ctx context.Context, id int64, amount int64) (*User, error)
}

// Service — бизнес-операции
type Service interface {
	GetOrCreate(ctx context.Context, tgID int64, defaultModel string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	UpdateModel(ctx context.Context, id int64, modelName string) (*User, error)
	GrantAccess(ctx context.Context, id int64) (*User, error)
	AddStars(ctx context.Context, id int64, amount int64) (*User, error)
	SpendStars(ctx context.Context, id int64, amount int64) (*User, error)
}
