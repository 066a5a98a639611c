package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Vovarama1992/tzbot/internal/errs"
)

// текст для отправки в ии
func (app *BotApp) handleText(ctx context.Context, msg *tgbotapi.Message, tgID int64) {
	chatID := msg.Chat.ID

	u, err := app.UserService.GetOrCreate(ctx, tgID, app.cfg.DefaultModel)
	if err != nil {
		log.Printf("[text] get_or_create fail tgID=%d: %v", tgID, err)
		app.reply(chatID, "⚠️ Ошибка, попробуй ещё раз.")
		return
	}

	if !u.HasAccess {
		app.reply(chatID, fmt.Sprintf("Нужна оплата. Используй /pay (%d⭐).", app.cfg.PayAmount))
		return
	}

	log.Printf("[text] start tgID=%d model=%s", tgID, u.ModelName)

	reply, err := app.AiService.Reply(ctx, u, msg.Text)
	if err != nil {
		log.Printf("[text] ai reply fail tgID=%d: %v", tgID, err)

		if errors.Is(err, errs.ErrUpstream) {
			app.reply(chatID, "⚠️ Модель сейчас недоступна, попробуй позже.")
		} else {
			app.ErrorNotify.Notify(ctx, err,
				fmt.Sprintf("Ошибка ответа пользователю %d, текст: %q", tgID, msg.Text))
			app.reply(chatID, "⚠️ Ошибка при обработке запроса.")
		}
		return
	}

	app.reply(chatID, reply)
	log.Printf("[text] done tgID=%d", tgID)
}
