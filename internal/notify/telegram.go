// Package notify pings the photographer on Telegram when someone leaves a
// message through the contact form. Purely outbound; the bot never reads
// updates.
package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/models"
)

// Notifier sends a notification about a new contact-form message. A nil
// *TelegramNotifier is a valid no-op implementation.
type Notifier interface {
	ContactReceived(contact *models.Contact)
}

type TelegramNotifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
	logger *zap.Logger
}

// NewTelegramNotifier creates the notifier, or (nil, nil) when notifications
// are disabled in config.
func NewTelegramNotifier(cfg *config.Config, logger *zap.Logger) (*TelegramNotifier, error) {
	if !cfg.Notify.Enabled || cfg.Notify.TelegramBotToken == "" {
		logger.Info("Telegram notifications are disabled (notify.enabled=false or token is empty)")
		return nil, nil
	}

	botAPI, err := tgbotapi.NewBotAPI(cfg.Notify.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot API: %w", err)
	}

	logger.Info("Telegram bot authorized", zap.String("username", botAPI.Self.UserName))

	return &TelegramNotifier{
		api:    botAPI,
		chatID: cfg.Notify.TelegramChatID,
		logger: logger,
	}, nil
}

// ContactReceived sends the notification. Delivery failures are logged and
// swallowed; the contact-form submission already succeeded.
func (n *TelegramNotifier) ContactReceived(contact *models.Contact) {
	if n == nil {
		return
	}

	text := fmt.Sprintf("📩 Nova mensagem de contato\n\nNome: %s", contact.Name)
	if contact.Email.Valid && contact.Email.String != "" {
		text += fmt.Sprintf("\nE-mail: %s", contact.Email.String)
	}
	if contact.Phone.Valid && contact.Phone.String != "" {
		text += fmt.Sprintf("\nTelefone: %s", contact.Phone.String)
	}
	text += fmt.Sprintf("\n\n%s", contact.Message)

	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.api.Send(msg); err != nil {
		n.logger.Error("Failed to send Telegram notification", zap.Error(err))
		return
	}
	n.logger.Info("Contact notification delivered", zap.Int64("contact_id", contact.ID))
}
