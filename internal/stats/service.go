package stats

import (
	"context"

	"github.com/Vovarama1992/tzbot/internal/payments"
)

type service struct {
	repo Repo
}

func NewService(repo Repo) Service {
	return &service{repo: repo}
}

func (s *service) Totals(ctx context.Context) (*Totals, error) {
	return s.repo.Totals(ctx)
}

func (s *service) RecentTransactions(ctx context.Context, limit int) ([]*payments.Transaction, error) {
	if limit <= 0 {
		return nil, nil
	}
	return s.repo.RecentTransactions(ctx, limit)
}
