package payments

import (
	"context"
	"fmt"
	"log"
)

type service struct {
	repo Repo
}

func NewService(repo Repo) Service {
	return &service{repo: repo}
}

func (s *service) Apply(
	ctx context.Context,
	userID int64,
	chargeID string,
	productID string,
	amount int64,
	payload string,
	currency string,
) (Result, error) {

	if amount < 0 {
		return Result{}, fmt.Errorf("apply payment: negative amount %d", amount)
	}

	rec := &Transaction{
		UserID:      userID,
		ProductID:   productID,
		StarsAmount: amount,
		Payload:     payload,
		Currency:    currency,
		ChargeID:    chargeID,
	}

	res, err := s.repo.Apply(ctx, rec)
	if err != nil {
		return Result{}, fmt.Errorf("apply payment: %w", err)
	}

	if !res.Applied {
		// ретрай платёжного колбэка: баланс уже начислен победителем
		log.Printf("[payments] duplicate charge_id=%s user=%d", chargeID, userID)
		return res, nil
	}

	log.Printf("[payments] applied charge_id=%s user=%d amount=%d balance=%d",
		chargeID, userID, amount, res.Balance)

	return res, nil
}
