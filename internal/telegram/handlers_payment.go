package telegram

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// handleSuccessfulPayment — единственная точка, где платёж превращается
// в начисление. Телеграм может доставить колбэк повторно: дубли отсекает
// леджер по charge_id, а не хэндлер.
func (app *BotApp) handleSuccessfulPayment(ctx context.Context, msg *tgbotapi.Message, tgID int64) {
	u, err := app.UserService.GetOrCreate(ctx, tgID, app.cfg.DefaultModel)
	if err != nil {
		log.Printf("[payment] get_or_create fail tgID=%d: %v", tgID, err)
		app.reply(msg.Chat.ID, "⚠️ Ошибка, попробуй ещё раз.")
		return
	}

	payment := msg.SuccessfulPayment
	payload := payment.InvoicePayload

	if payment.Currency != currencyStars || payload != invoicePayloadAccess {
		// незнакомый payload: доступ всё равно включаем, но леджер
		// не получает запись с чужим product_id
		log.Printf("[payment] unrecognized payload tgID=%d currency=%s payload=%q",
			tgID, payment.Currency, payload)

		if _, err := app.UserService.GrantAccess(ctx, u.ID); err != nil {
			log.Printf("[payment] degraded grant fail tgID=%d: %v", tgID, err)
			app.ErrorNotify.Notify(ctx, err,
				fmt.Sprintf("Не удалось включить доступ после оплаты, пользователь %d", tgID))
			app.reply(msg.Chat.ID, "⚠️ Ошибка, попробуй ещё раз.")
			return
		}

		app.reply(msg.Chat.ID, "Оплата прошла.")
		return
	}

	res, err := app.PaymentService.Apply(
		ctx,
		u.ID,
		payment.TelegramPaymentChargeID,
		productIDAccess,
		int64(payment.TotalAmount),
		payload,
		payment.Currency,
	)
	if err != nil {
		log.Printf("[payment] apply fail tgID=%d charge=%s: %v",
			tgID, payment.TelegramPaymentChargeID, err)
		app.ErrorNotify.Notify(ctx, err,
			fmt.Sprintf("Не удалось провести платёж %s пользователя %d",
				payment.TelegramPaymentChargeID, tgID))
		app.reply(msg.Chat.ID, "⚠️ Ошибка, попробуй ещё раз.")
		return
	}

	if !res.Applied {
		app.reply(msg.Chat.ID, fmt.Sprintf(
			"Этот платёж уже учтён. Баланс: %d⭐.", res.Balance))
		return
	}

	app.reply(msg.Chat.ID, fmt.Sprintf(
		"Оплата прошла. Доступ активирован. Начислено %d⭐.", payment.TotalAmount))
}
