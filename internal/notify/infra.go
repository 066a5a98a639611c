package notify

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Infra struct {
	bot      *tgbotapi.BotAPI
	adminIDs []int64
}

func NewInfra(adminIDs []int64) *Infra {
	return &Infra{adminIDs: adminIDs}
}

// SetBot — позволяет передать бота ПОСЛЕ того, как он инициализировался
func (i *Infra) SetBot(bot *tgbotapi.BotAPI) {
	i.bot = bot
}

func (i *Infra) Notify(ctx context.Context, err error, details string) error {
	if i.bot == nil || len(i.adminIDs) == 0 {
		log.Printf("[notify] skipped (no bot or admins): %v / %s", err, details)
		return nil
	}

	text := fmt.Sprintf(
		"❗ Ошибка в боте\n\nОшибка: %v\n\nДетали: %s",
		err,
		details,
	)

	for _, adminID := range i.adminIDs {
		msg := tgbotapi.NewMessage(adminID, text)
		if _, sendErr := i.bot.Send(msg); sendErr != nil {
			log.Printf("[notify] send fail admin=%d: %v", adminID, sendErr)
			return sendErr
		}
	}

	return nil
}
