package stats

import (
	"context"

	"github.com/Vovarama1992/tzbot/internal/payments"
)

type Totals struct {
	Users        int64 `json:"users"`
	StarsBalance int64 `json:"stars_balance"`
	Transactions int64 `json:"transactions"`
}

// Repo — работа с БД
type Repo interface {
	Totals(ctx context.Context) (*Totals, error)
	RecentTransactions(ctx context.Context, limit int) ([]*payments.Transaction, error)
}

// Service — бизнес-операции (только чтение)
type Service interface {
	Totals(ctx context.Context) (*Totals, error)
	RecentTransactions(ctx context.Context, limit int) ([]*payments.Transaction, error)
}
