package history

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

func (i *infra) Add(ctx context.Context, userID int64, role, content, modelName string) (*Message, error) {
	row := i.db.QueryRowContext(ctx, `
		INSERT INTO messages (user_id, role, content, model_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, userID, role, content, modelName)

	msg := Message{
		UserID:    userID,
		Role:      role,
		Content:   content,
		ModelName: modelName,
	}
	if err := row.Scan(&msg.ID, &msg.CreatedAt); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (i *infra) Window(ctx context.Context, userID int64, modelName string, limit int) ([]*Message, error) {
	// свежие limit строк берём обратным сканом по индексу,
	// наружу отдаём в хронологическом порядке
	rows, err := i.db.QueryContext(ctx, `
		SELECT id, user_id, role, content, model_name, created_at
		FROM messages
		WHERE user_id = $1 AND model_name = $2
		ORDER BY created_at DESC, id DESC
		LIMIT $3
	`, userID, modelName, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(
			&m.ID,
			&m.UserID,
			&m.Role,
			&m.Content,
			&m.ModelName,
			&m.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
		out[l], out[r] = out[r], out[l]
	}
	return out, nil
}
