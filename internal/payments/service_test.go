package payments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeRepo — транзакционная семантика Apply в памяти: сбой не оставляет
// следов, дубль charge_id возвращает текущий баланс без изменений
type fakeRepo struct {
	seen    map[string]*Transaction
	balance int64

	applyErrs []error
}

var _ Repo = (*fakeRepo)(nil)

func (f *fakeRepo) Apply(_ context.Context, rec *Transaction) (Result, error) {
	if len(f.applyErrs) > 0 {
		err := f.applyErrs[0]
		f.applyErrs = f.applyErrs[1:]
		if err != nil {
			return Result{}, err
		}
	}
	if f.seen == nil {
		f.seen = map[string]*Transaction{}
	}
	if _, dup := f.seen[rec.ChargeID]; dup {
		return Result{Applied: false, Balance: f.balance}, nil
	}
	rec.ID = int64(len(f.seen) + 1)
	rec.CreatedAt = time.Now()
	cpy := *rec
	f.seen[rec.ChargeID] = &cpy
	f.balance += rec.StarsAmount
	return Result{Applied: true, Balance: f.balance}, nil
}

func TestService_Apply_CreditsOnce(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	res, err := svc.Apply(ctx, 1, "chg-1", "access", 10, "stars-access", "XTR")
	require.NoError(t, err)
	require.True(t, res.Applied)
	require.Equal(t, int64(10), res.Balance)

	// повторная доставка того же колбэка
	res, err = svc.Apply(ctx, 1, "chg-1", "access", 10, "stars-access", "XTR")
	require.NoError(t, err)
	require.False(t, res.Applied)
	require.Equal(t, int64(10), res.Balance)

	require.Len(t, repo.seen, 1)
	require.Equal(t, int64(10), repo.seen["chg-1"].StarsAmount)
}

func TestService_Apply_DistinctChargesAccumulate(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Apply(ctx, 1, "chg-1", "access", 10, "stars-access", "XTR")
	require.NoError(t, err)

	res, err := svc.Apply(ctx, 1, "chg-2", "access", 25, "stars-access", "XTR")
	require.NoError(t, err)
	require.True(t, res.Applied)
	require.Equal(t, int64(35), res.Balance)
	require.Len(t, repo.seen, 2)
}

func TestService_Apply_FailedAttemptRetriesCleanly(t *testing.T) {
	repo := &fakeRepo{applyErrs: []error{errors.New("db down")}}
	svc := NewService(repo)
	ctx := context.Background()

	// первый заход падает, не оставив ни записи, ни начисления
	_, err := svc.Apply(ctx, 1, "chg-1", "access", 10, "stars-access", "XTR")
	require.Error(t, err)
	require.Empty(t, repo.seen)
	require.Zero(t, repo.balance)

	// ретрай того же charge_id начисляет ровно один раз
	res, err := svc.Apply(ctx, 1, "chg-1", "access", 10, "stars-access", "XTR")
	require.NoError(t, err)
	require.True(t, res.Applied)
	require.Equal(t, int64(10), res.Balance)
	require.Len(t, repo.seen, 1)
}

func TestService_Apply_RejectsNegativeAmount(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	_, err := svc.Apply(context.Background(), 1, "chg-1", "access", -10, "stars-access", "XTR")
	require.Error(t, err)
	require.Empty(t, repo.seen)
}
