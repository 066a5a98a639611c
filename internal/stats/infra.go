package stats

import (
	"context"
	"database/sql"

	"github.com/Vovarama1992/tzbot/internal/payments"
)

type infra struct {
	db *sql.DB
}

func NewInfra(db *sql.DB) Repo {
	return &infra{db: db}
}

func (i *infra) Totals(ctx context.Context) (*Totals, error) {
	// агрегация на каждый вызов: админ-команды редкие, кэш не нужен
	row := i.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COALESCE(SUM(stars_balance), 0) FROM users),
			(SELECT COUNT(*) FROM stars_transactions)
	`)

	var t Totals
	if err := row.Scan(&t.Users, &t.StarsBalance, &t.Transactions); err != nil {
		return nil, err
	}
	return &t, nil
}

func (i *infra) RecentTransactions(ctx context.Context, limit int) ([]*payments.Transaction, error) {
	rows, err := i.db.QueryContext(ctx, `
		SELECT id, user_id, product_id, stars_amount, payload, currency, charge_id, created_at
		FROM stars_transactions
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*payments.Transaction
	for rows.Next() {
		var tx payments.Transaction
		if err := rows.Scan(
			&tx.ID,
			&tx.UserID,
			&tx.ProductID,
			&tx.StarsAmount,
			&tx.Payload,
			&tx.Currency,
			&tx.ChargeID,
			&tx.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, &tx)
	}
	return out, rows.Err()
}
