package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/tzbot/internal/ai"
	"github.com/Vovarama1992/tzbot/internal/config"
	"github.com/Vovarama1992/tzbot/internal/delivery"
	"github.com/Vovarama1992/tzbot/internal/history"
	"github.com/Vovarama1992/tzbot/internal/migrate"
	"github.com/Vovarama1992/tzbot/internal/notify"
	"github.com/Vovarama1992/tzbot/internal/payments"
	"github.com/Vovarama1992/tzbot/internal/stats"
	"github.com/Vovarama1992/tzbot/internal/telegram"
	"github.com/Vovarama1992/tzbot/internal/user"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV / DB INIT
	// =========================================================================

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("db ping failed: %v", err)
	}
	defer db.Close()

	if err := migrate.Up(context.Background(), db); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// REPOSITORIES
	// =========================================================================

	userRepo := user.NewInfra(db)
	historyRepo := history.NewInfra(db)
	paymentRepo := payments.NewInfra(db)
	statsRepo := stats.NewInfra(db)

	// =========================================================================
	// ERROR NOTIFICATION
	// =========================================================================

	errInfra := notify.NewInfra(cfg.AdminIDs)
	errService := notify.NewService(errInfra)

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	userService := user.NewService(userRepo)
	historyService := history.NewService(historyRepo)
	paymentService := payments.NewService(paymentRepo)
	statsService := stats.NewService(statsRepo)

	openRouterClient := ai.NewOpenRouterClient(cfg.OpenRouterKey, cfg.AppName)
	aiService := ai.NewService(openRouterClient, historyService, cfg.HistoryWindow)

	// =========================================================================
	// TELEGRAM BOT
	// =========================================================================

	botApp := telegram.NewBotApp(
		cfg,
		userService,
		paymentService,
		statsService,
		aiService,
		errService,
	)

	if err := botApp.InitBot(); err != nil {
		log.Fatalf("failed to init telegram bot: %v", err)
	}

	errInfra.SetBot(botApp.GetBot())

	go botApp.Run()

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	statsHandler := delivery.NewStatsHandler(statsService, zl)
	delivery.RegisterRoutes(r, statsHandler, cfg.AdminAPIToken)

	r.With(httputil.RecoverMiddleware).Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("pong"))
	})

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + cfg.Port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr,
		Service: cfg.AppName,
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
