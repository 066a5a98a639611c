package telegram

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	productIDAccess      = "access"
	invoicePayloadAccess = "stars-access"
	currencyStars        = "XTR"
)

func (app *BotApp) handleCommand(ctx context.Context, msg *tgbotapi.Message, tgID int64) {
	switch msg.Command() {
	case "start":
		app.handleStart(ctx, msg, tgID)
	case "help":
		app.handleHelp(msg)
	case "llama":
		app.handleModelSwitch(ctx, msg, tgID, app.cfg.DefaultModel, "Llama")
	case "gpt":
		app.handleModelSwitch(ctx, msg, tgID, app.cfg.FallbackModel, "GPT")
	case "gemini":
		app.handleModelSwitch(ctx, msg, tgID, app.cfg.GeminiModel, "Gemini")
	case "pay":
		app.handlePay(ctx, msg, tgID)
	case "paytest":
		app.handlePayTest(ctx, msg, tgID)
	case "admin_stats":
		app.handleAdminStats(ctx, msg, tgID)
	case "admin_tx":
		app.handleAdminTx(ctx, msg, tgID)
	}
}

// старт команда
func (app *BotApp) handleStart(ctx context.Context, msg *tgbotapi.Message, tgID int64) {
	u, err := app.UserService.GetOrCreate(ctx, tgID, app.cfg.DefaultModel)
	if err != nil {
		log.Printf("[start] get_or_create fail tgID=%d: %v", tgID, err)
		app.reply(msg.Chat.ID, "⚠️ Ошибка, попробуй ещё раз.")
		return
	}

	if u.HasAccess {
		app.reply(msg.Chat.ID, fmt.Sprintf(
			"Привет. Доступ уже активирован. Текущая модель: %s.", u.ModelName))
		return
	}

	app.reply(msg.Chat.ID, fmt.Sprintf(
		"Привет. Я бот с OpenRouter. Текущая модель: %s. Доступ: не оплачен. Оплата через /pay за %d⭐.",
		u.ModelName, app.cfg.PayAmount))
}

// помощь команда
func (app *BotApp) handleHelp(msg *tgbotapi.Message) {
	app.reply(msg.Chat.ID,
		"Доступные команды: /pay, /paytest, /llama, /gpt, /gemini. После оплаты пиши текст и получишь ответ.")
}

// выбор ии модели
func (app *BotApp) handleModelSwitch(
	ctx context.Context,
	msg *tgbotapi.Message,
	tgID int64,
	modelName string,
	title string,
) {
	u, err := app.UserService.GetOrCreate(ctx, tgID, app.cfg.DefaultModel)
	if err != nil {
		log.Printf("[model] get_or_create fail tgID=%d: %v", tgID, err)
		app.reply(msg.Chat.ID, "⚠️ Ошибка, попробуй ещё раз.")
		return
	}

	if _, err := app.UserService.UpdateModel(ctx, u.ID, modelName); err != nil {
		log.Printf("[model] update fail tgID=%d model=%s: %v", tgID, modelName, err)
		app.reply(msg.Chat.ID, "⚠️ Не удалось переключить модель.")
		return
	}

	app.reply(msg.Chat.ID, fmt.Sprintf("Модель переключена на %s.", title))
}

// блок оплаты
func (app *BotApp) handlePay(ctx context.Context, msg *tgbotapi.Message, tgID int64) {
	u, err := app.UserService.GetOrCreate(ctx, tgID, app.cfg.DefaultModel)
	if err != nil {
		log.Printf("[pay] get_or_create fail tgID=%d: %v", tgID, err)
		app.reply(msg.Chat.ID, "⚠️ Ошибка, попробуй ещё раз.")
		return
	}

	if u.HasAccess {
		app.reply(msg.Chat.ID, fmt.Sprintf(
			"Доступ уже активирован. Текущая модель: %s.", u.ModelName))
		return
	}

	invoice := tgbotapi.NewInvoice(
		msg.Chat.ID,
		"Доступ к боту",
		"Оплата доступа к чат-боту (платёж Stars)",
		invoicePayloadAccess,
		"", // Stars: токен провайдера пустой
		"",
		currencyStars,
		[]tgbotapi.LabeledPrice{
			{Label: "Доступ к боту", Amount: int(app.cfg.PayAmount)},
		},
	)

	if _, err := app.bot.Send(invoice); err != nil {
		log.Printf("[pay] send invoice fail tgID=%d: %v", tgID, err)
		app.reply(msg.Chat.ID, "⚠️ Не удалось выставить счёт.")
	}
}

func (app *BotApp) handlePayTest(ctx context.Context, msg *tgbotapi.Message, tgID int64) {
	u, err := app.UserService.GetOrCreate(ctx, tgID, app.cfg.DefaultModel)
	if err != nil {
		log.Printf("[paytest] get_or_create fail tgID=%d: %v", tgID, err)
		app.reply(msg.Chat.ID, "⚠️ Ошибка, попробуй ещё раз.")
		return
	}

	if _, err := app.UserService.GrantAccess(ctx, u.ID); err != nil {
		log.Printf("[paytest] grant fail tgID=%d: %v", tgID, err)
		app.reply(msg.Chat.ID, "⚠️ Не удалось активировать доступ.")
		return
	}

	app.reply(msg.Chat.ID, "Тестовая активация: доступ включен без списания.")
}
