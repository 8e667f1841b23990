// Package main contains the entrypoint for the polling Telegram bot.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/joho/godotenv"

	"github.com/romyhermawan96/asvarabot/internal/bot"
	"github.com/romyhermawan96/asvarabot/internal/config"
	"github.com/romyhermawan96/asvarabot/internal/extract"
	"github.com/romyhermawan96/asvarabot/internal/journal"
	"github.com/romyhermawan96/asvarabot/internal/logger"
	"github.com/romyhermawan96/asvarabot/internal/openai"
	"github.com/romyhermawan96/asvarabot/internal/telegram"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx)
	stop()
	os.Exit(exitCode)
}

// run initializes all components (config, logger, completion client,
// extractor, journal, telegram bot), starts long polling, and returns an
// exit code (0 for success, 1 for failure).
func run(ctx context.Context) int {
	// .env is optional; real environment variables take precedence
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	log := logger.NewLogger(cfg.Log.Level, cfg.Log.JSON)
	log.Info("Logger initialized", "level", cfg.Log.Level, "json", cfg.Log.JSON)

	if cfg.Telegram.Token == "" {
		log.Error("Telegram token is required in polling mode (set BOT_TELEGRAM_TOKEN)")
		return 1
	}

	aiClient, err := openai.NewClient(cfg.OpenAI, log)
	if err != nil {
		log.Error("Failed to create completion client", "error", err)
		return 1
	}

	extractor := extract.NewExtractor(aiClient, log)
	jrnl := journal.New(cfg.Journal.Path, log)
	app := bot.New(extractor, jrnl, cfg, log)

	botOpts := []tgbot.Option{
		tgbot.WithMiddlewares(logger.Middleware(log)),
		tgbot.WithDefaultHandler(app.HandleMessage),
		tgbot.WithHTTPClient(cfg.Telegram.PollTimeout, &http.Client{
			Timeout: cfg.Telegram.PollTimeout + 10*time.Second,
		}),
	}
	tg, err := telegram.NewBot(cfg.Telegram.Token, log, botOpts...)
	if err != nil {
		log.Error("Failed to create Telegram bot", "error", err)
		return 1
	}

	me, err := tg.GetMe(ctx)
	if err != nil {
		log.Error("Failed to get bot info", "error", err)
		return 1
	}
	log.Info("Retrieved bot info", "bot_id", me.ID, "bot_username", me.Username)

	log.Info("Starting bot...", "model", cfg.OpenAI.Model, "journal_path", cfg.Journal.Path)
	app.Run(ctx, tg) // blocks until context is cancelled

	log.Info("Bot stopped gracefully.")
	return 0
}
