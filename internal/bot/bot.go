// Package bot implements the polling driver: it receives Telegram message
// updates, runs the extraction pipeline on each, journals the result, and
// replies to the sender.
package bot

import (
	"context"
	"html"
	"log/slog"
	"strings"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/romyhermawan96/asvarabot/internal/config"
	"github.com/romyhermawan96/asvarabot/internal/extract"
	"github.com/romyhermawan96/asvarabot/internal/journal"
	"github.com/romyhermawan96/asvarabot/internal/telegram"
)

// Bot ties the extraction pipeline and the journal to incoming Telegram
// updates. Register HandleMessage as the default handler of the tgbot
// instance passed to Run.
type Bot struct {
	extractor   *extract.Extractor
	journal     *journal.Journal
	sendTimeout time.Duration
	messages    config.MessagesConfig
	log         *slog.Logger
}

// New creates the polling driver.
func New(extractor *extract.Extractor, jrnl *journal.Journal, cfg *config.Config, log *slog.Logger) *Bot {
	return &Bot{
		extractor:   extractor,
		journal:     jrnl,
		sendTimeout: cfg.Telegram.SendTimeout,
		messages:    cfg.Telegram.Messages,
		log:         log.With("component", "bot"),
	}
}

// Run starts long polling and blocks until the context is cancelled.
func (b *Bot) Run(ctx context.Context, tg *tgbot.Bot) {
	tg.Start(ctx)
}

// HandleMessage processes one incoming update. Updates without text and
// command messages (leading '/') are skipped. Every failure past that point
// is logged and answered with the failure reply; nothing stops the poll
// loop.
func (b *Bot) HandleMessage(ctx context.Context, tg *tgbot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	text := update.Message.Text
	chatID := update.Message.Chat.ID

	// Command messages are ignored
	if strings.HasPrefix(text, "/") {
		return
	}

	record, ok := b.extractor.Extract(ctx, text)
	if !ok {
		b.reply(ctx, tg, chatID, b.messages.ExtractFailed)
		return
	}

	// A journal write failure must not block the confirmation
	if err := b.journal.Append(record, text); err != nil {
		b.log.ErrorContext(ctx, "failed to journal result", "error", err, "chat_id", chatID)
	}

	b.reply(ctx, tg, chatID, FormatConfirmation(record))
}

func (b *Bot) reply(ctx context.Context, tg *tgbot.Bot, chatID int64, text string) {
	if err := telegram.SendHTML(ctx, tg, chatID, text, b.sendTimeout); err != nil {
		b.log.ErrorContext(ctx, "failed to send reply", "error", err, "chat_id", chatID)
	}
}

// FormatConfirmation renders the HTML confirmation sent back to the sender.
// Field values come from model output and are escaped for parse_mode=HTML.
func FormatConfirmation(record *extract.Record) string {
	var sb strings.Builder

	sb.WriteString("✅ <b>Jadwal survey berhasil dicatat!</b>\n\n")
	sb.WriteString("<b>JADWAL SURVEY:</b>\n")
	sb.WriteString("📱 Nomor HP : " + html.EscapeString(record.PhoneNumber) + "\n")
	sb.WriteString("📅 Tanggal : " + html.EscapeString(record.Date) + "\n")
	sb.WriteString("🕒 Jam : " + html.EscapeString(record.Time) + "\n")
	sb.WriteString("👤 Nama : " + html.EscapeString(record.Name))

	return sb.String()
}
