package payments

import (
	"context"
	"database/sql"
)

type infra struct {
	db *sql.DB
}

func NewInfra(db *sql.DB) Repo {
	return &infra{db: db}
}

func (i *infra) Apply(ctx context.Context, rec *Transaction) (Result, error) {
	tx, err := i.db.BeginTx(ctx, nil)
	if err != nil {
		return Result{}, err
	}
	defer tx.Rollback()

	// ON CONFLICT DO NOTHING + RETURNING: дубль charge_id не вставляет
	// строку и не возвращает id — это штатный исход, не ошибка
	row := tx.QueryRowContext(ctx, `
		INSERT INTO stars_transactions (user_id, product_id, stars_amount, payload, currency, charge_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (charge_id) DO NOTHING
		RETURNING id, created_at
	`,
		rec.UserID,
		rec.ProductID,
		rec.StarsAmount,
		rec.Payload,
		rec.Currency,
		rec.ChargeID,
	)

	err = row.Scan(&rec.ID, &rec.CreatedAt)
	if err == sql.ErrNoRows {
		// начисление уже закоммичено победителем вставки
		var balance int64
		if err := tx.QueryRowContext(ctx, `
			SELECT stars_balance FROM users WHERE id = $1
		`, rec.UserID).Scan(&balance); err != nil {
			return Result{}, err
		}
		return Result{Applied: false, Balance: balance}, tx.Commit()
	}
	if err != nil {
		return Result{}, err
	}

	// грант и начисление в той же транзакции, что и леджер:
	// сбой любого шага откатывает оба, ретрай колбэка начислит заново
	var balance int64
	if err := tx.QueryRowContext(ctx, `
		UPDATE users
		SET has_access = TRUE, stars_balance = stars_balance + $1
		WHERE id = $2
		RETURNING stars_balance
	`, rec.StarsAmount, rec.UserID).Scan(&balance); err != nil {
		return Result{}, err
	}

	return Result{Applied: true, Balance: balance}, tx.Commit()
}
