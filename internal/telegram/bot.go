package telegram

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
)

// Run — главный цикл получения апдейтов.
// Каждый апдейт обрабатывается в своей горутине: события разных
// пользователей независимы, а события одного пользователя сериализует БД
// (уникальный charge_id и атомарные UPDATE по одной строке).
func (app *BotApp) Run() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := app.bot.GetUpdatesChan(u)
	log.Printf("[bot_loop] started username=@%s", app.bot.Self.UserName)

	for update := range updates {
		go app.dispatchUpdate(context.Background(), update)
	}
}

func (app *BotApp) dispatchUpdate(ctx context.Context, update tgbotapi.Update) {
	traceID := uuid.NewString()

	switch {
	case update.PreCheckoutQuery != nil:
		app.handlePreCheckout(update.PreCheckoutQuery)

	case update.Message != nil && update.Message.From != nil:
		msg := update.Message
		tgID := msg.From.ID

		log.Printf("[bot_touch] trace=%s fromTG=%d updateID=%d", traceID, tgID, update.UpdateID)

		switch {
		case msg.SuccessfulPayment != nil:
			app.handleSuccessfulPayment(ctx, msg, tgID)

		case msg.IsCommand():
			app.handleCommand(ctx, msg, tgID)

		case msg.Text != "":
			app.handleText(ctx, msg, tgID)
		}
	}
}

func (app *BotApp) handlePreCheckout(query *tgbotapi.PreCheckoutQuery) {
	// пречекаут подтверждаем всегда, дедупликация — на successful_payment
	_, err := app.bot.Request(tgbotapi.PreCheckoutConfig{
		PreCheckoutQueryID: query.ID,
		OK:                 true,
	})
	if err != nil {
		log.Printf("[bot_loop] pre_checkout answer fail id=%s: %v", query.ID, err)
	}
}

func (app *BotApp) reply(chatID int64, text string) {
	if _, err := app.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("[bot_loop] send fail chat=%d: %v", chatID, err)
	}
}
