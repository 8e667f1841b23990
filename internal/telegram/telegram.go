// Package telegram wraps the Telegram Bot API client used by both the
// polling bot and the one-shot notifier.
package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewBot creates a go-telegram/bot instance with the given options.
func NewBot(token string, log *slog.Logger, opts ...tgbot.Option) (*tgbot.Bot, error) {
	b, err := tgbot.New(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	log.Debug("telegram bot client created")

	return b, nil
}

// SendHTML delivers one HTML-formatted message within the given timeout.
// Delivery failures are returned to the caller, which logs them; they are
// never retried.
func SendHTML(ctx context.Context, b *tgbot.Bot, chatID int64, text string, timeout time.Duration) error {
	sendCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	_, err := b.SendMessage(sendCtx, &tgbot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}
