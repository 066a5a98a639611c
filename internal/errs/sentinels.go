// Package errs contains sentinel errors shared across layers.
package errs

import "errors"

var (
	// ErrNotFound — запись не найдена.
	ErrNotFound = errors.New("not found")

	// ErrInsufficientBalance — на балансе меньше звёзд, чем списывается.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrUpstream — модель не ответила (ошибка OpenRouter или пустой ответ).
	ErrUpstream = errors.New("upstream failure")
)
