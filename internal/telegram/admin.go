package telegram

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/dustin/go-humanize"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const adminTxLimit = 10

// админ команды блок

func (app *BotApp) handleAdminStats(ctx context.Context, msg *tgbotapi.Message, tgID int64) {
	if !app.cfg.IsAdmin(tgID) {
		return
	}

	totals, err := app.StatsService.Totals(ctx)
	if err != nil {
		log.Printf("[admin_stats] fail tgID=%d: %v", tgID, err)
		app.reply(msg.Chat.ID, "⚠️ Не удалось собрать статистику.")
		return
	}

	app.reply(msg.Chat.ID, fmt.Sprintf(
		"Пользователи: %d\nБаланс суммарно: %d⭐\nТранзакций: %d",
		totals.Users, totals.StarsBalance, totals.Transactions))
}

func (app *BotApp) handleAdminTx(ctx context.Context, msg *tgbotapi.Message, tgID int64) {
	if !app.cfg.IsAdmin(tgID) {
		return
	}

	txs, err := app.StatsService.RecentTransactions(ctx, adminTxLimit)
	if err != nil {
		log.Printf("[admin_tx] fail tgID=%d: %v", tgID, err)
		app.reply(msg.Chat.ID, "⚠️ Не удалось получить транзакции.")
		return
	}

	if len(txs) == 0 {
		app.reply(msg.Chat.ID, "Транзакций нет.")
		return
	}

	lines := make([]string, 0, len(txs))
	for _, tx := range txs {
		lines = append(lines, fmt.Sprintf(
			"%s user=%d product=%s amount=%d payload=%s",
			humanize.Time(tx.CreatedAt),
			tx.UserID,
			tx.ProductID,
			tx.StarsAmount,
			tx.Payload,
		))
	}

	app.reply(msg.Chat.ID, strings.Join(lines, "\n"))
}
