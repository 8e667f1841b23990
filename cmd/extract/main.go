// Package main contains the one-shot entrypoint: it runs the
// extract-save-notify sequence once for a message given as command-line
// arguments.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

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
	os.Exit(run(context.Background()))
}

func run(ctx context.Context) int {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s <message text>\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "Runs survey-field extraction once on the given message.")
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		return 2
	}
	message := strings.Join(flag.Args(), " ")

	// .env is optional; real environment variables take precedence
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	log := logger.NewLogger(cfg.Log.Level, cfg.Log.JSON)

	aiClient, err := openai.NewClient(cfg.OpenAI, log)
	if err != nil {
		log.Error("Failed to create completion client", "error", err)
		return 1
	}

	extractor := extract.NewExtractor(aiClient, log)

	record, ok := extractor.Extract(ctx, message)
	if !ok {
		// Non-fatal by design: the failure has been logged, surface it on
		// the console and exit cleanly.
		fmt.Println("Ekstraksi gagal: tidak ada jadwal yang dapat dibaca dari pesan.")
		return 0
	}

	fmt.Println("JADWAL SURVEY:")
	fmt.Println("- Phone Number :", record.PhoneNumber)
	fmt.Println("- Date         :", record.Date)
	fmt.Println("- Time         :", record.Time)
	fmt.Println("- Name         :", record.Name)

	jrnl := journal.New(cfg.Journal.Path, log)
	if err := jrnl.Append(record, ""); err != nil {
		log.Error("failed to journal result", "error", err)
	}

	notify(ctx, cfg, record, log)

	return 0
}

// notify sends the confirmation to the configured chat. Skipped with a
// warning when the token or chat id is absent; delivery failures are logged,
// never escalated.
func notify(ctx context.Context, cfg *config.Config, record *extract.Record, log *slog.Logger) {
	if cfg.Telegram.Token == "" {
		log.Warn("telegram token not set, skipping notification")
		return
	}
	if cfg.Telegram.ChatID == 0 {
		log.Warn("telegram chat id not set, skipping notification")
		return
	}

	tg, err := telegram.NewBot(cfg.Telegram.Token, log, tgbot.WithSkipGetMe())
	if err != nil {
		log.Error("failed to create telegram client for notification", "error", err)
		return
	}

	if err := telegram.SendHTML(ctx, tg, cfg.Telegram.ChatID, bot.FormatConfirmation(record), cfg.Telegram.SendTimeout); err != nil {
		log.Error("failed to send notification", "error", err)
		return
	}

	log.Info("notification sent", "chat_id", cfg.Telegram.ChatID)
}
