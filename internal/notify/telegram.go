// Package notify pushes short "new submission" pings to an admin Telegram
// chat. Like email dispatch it is best effort and never blocks a request.
package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/nruhp/newskprinter/internal/config"
	"github.com/nruhp/newskprinter/internal/storage"
)

type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger *zap.Logger
}

// NewTelegram builds the notifier. Missing token or chat ID disables it.
func NewTelegram(cfg config.TelegramConfig, logger *zap.Logger) (*Telegram, error) {
	n := &Telegram{chatID: cfg.ChatID, logger: logger}

	if cfg.Token == "" || cfg.ChatID == 0 {
		return n, nil
	}

	bot, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	n.bot = bot
	return n, nil
}

func (n *Telegram) NotifyNewQuote(quote storage.Quote) {
	if n.bot == nil {
		n.logger.Warn("Telegram notifications disabled - no token or chat ID configured")
		return
	}

	text := fmt.Sprintf(
		"📦 New quote request #%d\n"+
			"Type: %s\n"+
			"Quantity: %d units\n"+
			"From: %s (%s)\n"+
			"Phone: %s",
		quote.ID, quote.BoxType, quote.Quantity,
		quote.Name, quote.Email, quote.Phone,
	)

	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("Failed to send quote notification to Telegram",
			zap.Int64("quote_id", quote.ID),
			zap.Error(err))
	}
}

func (n *Telegram) NotifyNewContact(contact storage.Contact) {
	if n.bot == nil {
		n.logger.Warn("Telegram notifications disabled - no token or chat ID configured")
		return
	}

	text := fmt.Sprintf(
		"📬 New contact message #%d\n"+
			"Subject: %s\n"+
			"From: %s (%s)",
		contact.ID, contact.Subject, contact.Name, contact.Email,
	)

	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("Failed to send contact notification to Telegram",
			zap.Int64("contact_id", contact.ID),
			zap.Error(err))
	}
}
