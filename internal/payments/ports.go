package payments

import (
	"context"
	"time"
)

type Transaction struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	ProductID   string    `json:"product_id"`
	StarsAmount int64     `json:"stars_amount"`
	Payload     string    `json:"payload"`
	Currency    string    `json:"currency"`
	ChargeID    string    `json:"charge_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// Result — исход применения платежа.
// Applied=false значит, что charge_id уже был учтён и баланс не менялся.
type Result struct {
	Applied bool
	Balance int64
}

// Repo — работа с БД
type Repo interface {
	// Apply проводит платёж в одной транзакции: вставка в леджер
	// (уникальность по charge_id) служит эксклюзивным затвором, выдача
	// доступа и начисление коммитятся вместе с ней либо откатываются
	// вместе с ней. Дубль charge_id не меняет ничего и возвращает
	// текущий баланс.
	Apply(ctx context.Context, tx *Transaction) (Result, error)
}

// Service — бизнес-операции
type Service interface {
	// Apply проводит платёж ровно один раз на charge_id.
	Apply(ctx context.Context, userID int64, chargeID, productID string, amount int64, payload, currency string) (Result, error)
}
