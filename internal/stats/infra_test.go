package stats

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestInfra_Totals(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	r := NewInfra(db)

	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows([]string{"users", "stars", "txs"}).
			AddRow(3, 45, 4))

	totals, err := r.Totals(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(3), totals.Users)
	require.Equal(t, int64(45), totals.StarsBalance)
	require.Equal(t, int64(4), totals.Transactions)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInfra_RecentTransactions_NewestFirst(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	r := NewInfra(db)
	base := time.Now()
	cols := []string{"id", "user_id", "product_id", "stars_amount", "payload", "currency", "charge_id", "created_at"}

	mock.ExpectQuery(`SELECT .+ FROM stars_transactions`).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(2, 1, "access", 25, "stars-access", "XTR", "chg-2", base).
			AddRow(1, 1, "access", 10, "stars-access", "XTR", "chg-1", base.Add(-time.Hour)))

	txs, err := r.RecentTransactions(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	require.Equal(t, "chg-2", txs[0].ChargeID)
	require.Equal(t, "chg-1", txs[1].ChargeID)
	require.NoError(t, mock.ExpectationsWereMet())
}
