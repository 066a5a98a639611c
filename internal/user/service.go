package user

import (
	"context"
	"fmt"
)

type service struct {
	repo Repo
}

func NewService(repo Repo) Service {
	return &service{repo: repo}
}

func (s *service) GetOrCreate(ctx context.Context, tgID int64, defaultModel string) (*User, error) {
	return s.repo.GetOrCreate(ctx, tgID, defaultModel)
}

func (s *service) GetByID(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) UpdateModel(ctx context.Context, id int64, modelName string) (*User, error) {
	return s.repo.UpdateModel(ctx, id, modelName)
}

func (s *service) GrantAccess(ctx context.Context, id int64) (*User, error) {
	return s.repo.GrantAccess(ctx, id)
}

func (s *service) AddStars(ctx context.Context, id int64, amount int64) (*User, error) {
	if amount < 0 {
		return nil, fmt.Errorf("add stars: negative amount %d", amount)
	}
	if amount == 0 {
		// начисление нуля — легальный no-op
		return s.repo.GetByID(ctx, id)
	}
	return s.repo.AddStars(ctx, id, amount)
}

func (s *service) SpendStars(ctx context.Context, id int64, amount int64) (*User, error) {
	if amount < 0 {
		return nil, fmt.Errorf("spend stars: negative amount %d", amount)
	}
	if amount == 0 {
		return s.repo.GetByID(ctx, id)
	}
	return s.repo.SpendStars(ctx, id, amount)
}
