package telegram

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Vovarama1992/tzbot/internal/ai"
	"github.com/Vovarama1992/tzbot/internal/config"
	"github.com/Vovarama1992/tzbot/internal/notify"
	"github.com/Vovarama1992/tzbot/internal/payments"
	"github.com/Vovarama1992/tzbot/internal/stats"
	"github.com/Vovarama1992/tzbot/internal/user"
)

type BotApp struct {
	cfg config.Settings
	bot *tgbotapi.BotAPI

	UserService    user.Service
	PaymentService payments.Service
	StatsService   stats.Service
	AiService      ai.Service
	ErrorNotify    notify.Notificator
}

func NewBotApp(
	cfg config.Settings,
	userSvc user.Service,
	paymentSvc payments.Service,
	statsSvc stats.Service,
	aiSvc ai.Service,
	errorNotify notify.Notificator,
) *BotApp {
	return &BotApp{
		cfg:            cfg,
		UserService:    userSvc,
		PaymentService: paymentSvc,
		StatsService:   statsSvc,
		AiService:      aiSvc,
		ErrorNotify:    errorNotify,
	}
}

func (app *BotApp) InitBot() error {
	bot, err := tgbotapi.NewBotAPI(app.cfg.BotToken)
	if err != nil {
		return fmt.Errorf("init bot: %w", err)
	}
	app.bot = bot
	log.Printf("[bot_app] authorized as @%s", bot.Self.UserName)
	return nil
}

func (app *BotApp) GetBot() *tgbotapi.BotAPI {
	return app.bot
}
