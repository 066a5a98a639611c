package history

import "context"

type service struct {
	repo Repo
}

func NewService(repo Repo) Service {
	return &service{repo: repo}
}

func (s *service) Add(ctx context.Context, userID int64, role, content, modelName string) (*Message, error) {
	return s.repo.Add(ctx, userID, role, content, modelName)
}

func (s *service) Window(ctx context.Context, userID int64, modelName string, limit int) ([]*Message, error) {
	if limit <= 0 {
		return nil, nil
	}
	return s.repo.Window(ctx, userID, modelName, limit)
}
