package user

import (
	"context"
	"database/sql"

	"github.com/Vovarama1992/tzbot/internal/errs"
)

const userColumns = `id, tg_id, model_name, has_access, stars_balance, created_at`

type infra struct {
	db *sql.DB
}

func NewInfra(db *sql.DB) Repo {
	return &infra{db: db}
}

func scanUser(row *sql.Row) (*User, error) {
	var u User
	err := row.Scan(
		&u.ID,
		&u.TgID,
		&u.ModelName,
		&u.HasAccess,
		&u.StarsBalance,
		&u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (i *infra) GetOrCreate(ctx context.Context, tgID int64, defaultModel string) (*User, error) {
	// уникальный индекс по tg_id — гонка двух первых обращений
	// даёт одну вставку, проигравший уходит на SELECT
	row := i.db.QueryRowContext(ctx, `
		INSERT INTO users (tg_id, model_name)
		VALUES ($1, $2)
		ON CONFLICT (tg_id) DO NOTHING
		RETURNING `+userColumns+`
	`, tgID, defaultModel)

	u, err := scanUser(row)
	if err == nil {
		return u, nil
	}
	if err != sql.ErrNoRows {
		return nil, err
	}

	row = i.db.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE tg_id = $1
	`, tgID)
	return scanUser(row)
}

func (i *infra) GetByID(ctx context.Context, id int64) (*User, error) {
	row := i.db.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id)

	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, errs.ErrNotFound
	}
	return u, err
}

func (i *infra) UpdateModel(ctx context.Context, id int64, modelName string) (*User, error) {
	row := i.db.QueryRowContext(ctx, `
		UPDATE users
		SET model_name = $1
		WHERE id = $2
		RETURNING `+userColumns+`
	`, modelName, id)

	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, errs.ErrNotFound
	}
	return u, err
}

func (i *infra) GrantAccess(ctx context.Context, id int64) (*User, error) {
	// повторная выдача доступа — no-op, has_access обратно не сбрасывается
	row := i.db.QueryRowContext(ctx, `
		UPDATE users
		SET has_access = TRUE
		WHERE id = $1
		RETURNING `+userColumns+`
	`, id)

	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, errs.ErrNotFound
	}
	return u, err
}

func (i *infra) AddStars(ctx context.Context, id int64, amount int64) (*User, error) {
	row := i.db.QueryRowContext(ctx, `
		UPDATE users
		SET stars_balance = stars_balance + $1
		WHERE id = $2
		RETURNING `+userColumns+`
	`, amount, id)

	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, errs.ErrNotFound
	}
	return u, err
}

func (i *infra) SpendStars(ctx context.Context, id int64, amount int64) (*User, error) {
	// списание атомарное: условие по балансу в WHERE,
	// при нехватке звёзд строка не меняется
	row := i.db.QueryRowContext(ctx, `
		UPDATE users
		SET stars_balance = stars_balance - $1
		WHERE id = $2 AND stars_balance >= $1
		RETURNING `+userColumns+`
	`, amount, id)

	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, errs.ErrInsufficientBalance
	}
	return u, err
}
