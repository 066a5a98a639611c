package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Settings — конфигурация процесса, читается один раз в main
// и передаётся в конструкторы явно.
type Settings struct {
	AppName string

	BotToken      string
	OpenRouterKey string
	DatabaseURL   string

	PayAmount int64

	DefaultModel  string
	FallbackModel string
	GeminiModel   string

	HistoryWindow int

	AdminIDs      []int64
	AdminAPIToken string

	Port string
}

const (
	defaultAppName       = "tzbot"
	defaultPayAmount     = 10
	defaultHistoryWindow = 5

	defaultModel  = "meta-llama/llama-3.3-70b-instruct:free"
	fallbackModel = "openai/gpt-oss-20b:free"
	geminiModel   = "google/gemini-flash-1.5-8b:free"
)

func Load() (Settings, error) {
	s := Settings{
		AppName:       defaultAppName,
		BotToken:      os.Getenv("BOT_TOKEN"),
		OpenRouterKey: os.Getenv("OPENROUTER_API_KEY"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		PayAmount:     defaultPayAmount,
		DefaultModel:  defaultModel,
		FallbackModel: fallbackModel,
		GeminiModel:   geminiModel,
		HistoryWindow: defaultHistoryWindow,
		AdminAPIToken: os.Getenv("ADMIN_API_TOKEN"),
		Port:          os.Getenv("PORT"),
	}

	if s.BotToken == "" {
		return Settings{}, fmt.Errorf("BOT_TOKEN is not set")
	}
	if s.DatabaseURL == "" {
		return Settings{}, fmt.Errorf("DATABASE_URL is not set")
	}
	if s.Port == "" {
		s.Port = "8080"
	}

	if raw := os.Getenv("PAY_AMOUNT_STARS"); raw != "" {
		amount, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || amount <= 0 {
			return Settings{}, fmt.Errorf("bad PAY_AMOUNT_STARS: %q", raw)
		}
		s.PayAmount = amount
	}

	// ADMIN_IDS="123,456" — нечисловые куски молча пропускаем,
	// как делал исходный парсер
	for _, part := range strings.Split(os.Getenv("ADMIN_IDS"), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		s.AdminIDs = append(s.AdminIDs, id)
	}

	return s, nil
}

// IsAdmin — проверка телеграм-id по списку админов
func (s Settings) IsAdmin(tgID int64) bool {
	for _, id := range s.AdminIDs {
		if id == tgID {
			return true
		}
	}
	return false
}
