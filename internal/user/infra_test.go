package user

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/Vovarama1992/tzbot/internal/errs"
)

var userCols = []string{"id", "tg_id", "model_name", "has_access", "stars_balance", "created_at"}

func TestInfra_GetOrCreate_InsertWins(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	r := NewInfra(db)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(int64(42), "meta-llama/llama-3.3-70b-instruct:free").
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(1, 42, "meta-llama/llama-3.3-70b-instruct:free", false, 0, now))

	u, err := r.GetOrCreate(ctx, 42, "meta-llama/llama-3.3-70b-instruct:free")
	require.NoError(t, err)
	require.Equal(t, int64(1), u.ID)
	require.Equal(t, int64(42), u.TgID)
	require.False(t, u.HasAccess)
	require.Zero(t, u.StarsBalance)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInfra_GetOrCreate_ConflictFallsBackToSelect(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	r := NewInfra(db)
	ctx := context.Background()
	now := time.Now()

	// ON CONFLICT DO NOTHING не возвращает строку — проигравший
	// конкурентную вставку уходит на SELECT
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(int64(42), "m").
		WillReturnRows(sqlmock.NewRows(userCols))
	mock.ExpectQuery(`SELECT .+ FROM users`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(7, 42, "m", true, 15, now))

	u, err := r.GetOrCreate(ctx, 42, "m")
	require.NoError(t, err)
	require.Equal(t, int64(7), u.ID)
	require.True(t, u.HasAccess)
	require.Equal(t, int64(15), u.StarsBalance)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInfra_GrantAccess_ReturnsUpdatedRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	r := NewInfra(db)
	now := time.Now()

	mock.ExpectQuery(`UPDATE users`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(7, 42, "m", true, 0, now))

	u, err := r.GrantAccess(context.Background(), 7)
	require.NoError(t, err)
	require.True(t, u.HasAccess)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInfra_SpendStars_Insufficient(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	r := NewInfra(db)

	// условие по балансу в WHERE не прошло — строк нет
	mock.ExpectQuery(`UPDATE users`).
		WithArgs(int64(10), int64(7)).
		WillReturnRows(sqlmock.NewRows(userCols))

	_, err = r.SpendStars(context.Background(), 7, 10)
	require.ErrorIs(t, err, errs.ErrInsufficientBalance)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInfra_SpendStars_OK(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	r := NewInfra(db)
	now := time.Now()

	mock.ExpectQuery(`UPDATE users`).
		WithArgs(int64(3), int64(7)).
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(7, 42, "m", true, 2, now))

	u, err := r.SpendStars(context.Background(), 7, 3)
	require.NoError(t, err)
	require.Equal(t, int64(2), u.StarsBalance)
	require.NoError(t, mock.ExpectationsWereMet())
}
