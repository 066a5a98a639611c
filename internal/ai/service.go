package ai

import (
	"context"
	"fmt"
	"log"

	"github.com/Vovarama1992/tzbot/internal/errs"
	"github.com/Vovarama1992/tzbot/internal/history"
	"github.com/Vovarama1992/tzbot/internal/user"
)

const emptyReplyFallback = "Нет ответа от модели"

type service struct {
	client  Client
	history history.Service
	window  int
}

func NewService(client Client, historySvc history.Service, window int) Service {
	return &service{
		client:  client,
		history: historySvc,
		window:  window,
	}
}

func (s *service) Reply(ctx context.Context, u *user.User, userText string) (string, error) {
	// окно читается до обеих записей: новое сообщение пользователя
	// не попадает в собственный контекст
	rows, err := s.history.Window(ctx, u.ID, u.ModelName, s.window)
	if err != nil {
		return "", fmt.Errorf("load history: %w", err)
	}

	turns := make([]Turn, 0, len(rows)+1)
	for _, row := range rows {
		turns = append(turns, Turn{Role: row.Role, Content: row.Content})
	}
	turns = append(turns, Turn{Role: history.RoleUser, Content: userText})

	reply, err := s.client.Complete(ctx, turns, u.ModelName)
	if err != nil {
		// история не трогается — неудачный запрос не оставляет следов
		log.Printf("[ai] completion fail user=%d model=%s: %v", u.ID, u.ModelName, err)
		return "", fmt.Errorf("%w: %v", errs.ErrUpstream, err)
	}
	if reply == "" {
		reply = emptyReplyFallback
	}

	if _, err := s.history.Add(ctx, u.ID, history.RoleUser, userText, u.ModelName); err != nil {
		return "", fmt.Errorf("save user turn: %w", err)
	}
	if _, err := s.history.Add(ctx, u.ID, history.RoleAssistant, reply, u.ModelName); err != nil {
		return "", fmt.Errorf("save assistant turn: %w", err)
	}

	return reply, nil
}
