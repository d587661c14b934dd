// Package bot delivers eve reminders through a Telegram bot.
package bot

import (
	"context"
	"ecoalerta/internal/reminder"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender is the part of the Telegram client the notifier needs
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Notifier sends reminders to one Telegram chat
type Notifier struct {
	sender Sender
	chatID int64
	logger *slog.Logger
}

// NewNotifier connects to the Telegram bot API with the given token
func NewNotifier(token string, chatID int64, logger *slog.Logger) (*Notifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}

	n := NewNotifierWithSender(api, chatID, logger)
	n.logger.Info("Telegram notifier ready", "bot", api.Self.UserName, "chat_id", chatID)
	return n, nil
}

// NewNotifierWithSender creates a notifier around an existing client
func NewNotifierWithSender(sender Sender, chatID int64, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{
		sender: sender,
		chatID: chatID,
		logger: logger.With("component", "telegram"),
	}
}

// NotifyEve sends the reminder as a Markdown message
func (n *Notifier) NotifyEve(ctx context.Context, r reminder.Reminder) error {
	return n.sendMessage(FormatReminder(r))
}

func (n *Notifier) sendMessage(text string) error {
	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.sender.Send(msg); err != nil {
		n.logger.Error("Failed to send message",
			"chat_id", n.chatID,
			"error", err,
		)
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

var _ reminder.Notifier = (*Notifier)(nil)
