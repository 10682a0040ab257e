// internal/infra/telegram/client.go
package telegram

import (
	"fmt"
	"net/http"
	"time"

	"homework_status_bot/internal/domain/failure"

	"gopkg.in/telebot.v3"
)

// NewBot creates a send-only bot. It runs offline, so no getMe call is made
// at startup and a Telegram outage cannot stop the process from starting.
// apiURL may be empty to use the public Bot API.
func NewBot(token, apiURL string, timeout time.Duration) (*telebot.Bot, error) {
	b, err := telebot.NewBot(telebot.Settings{
		URL:     apiURL,
		Token:   token,
		Offline: true,
		Client:  &http.Client{Timeout: timeout},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return b, nil
}

// TelebotAdapter implements the Client interface using the gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot *telebot.Bot
}

func NewTelebotAdapter(b *telebot.Bot) *TelebotAdapter {
	return &TelebotAdapter{bot: b}
}

// SendMessage sends a text message to the specified chat. Errors are delivery errors.
func (tba *TelebotAdapter) SendMessage(recipientChatID int64, text string, options *telebot.SendOptions) error {
	if options == nil {
		options = &telebot.SendOptions{}
	}

	recipient := telebot.ChatID(recipientChatID) // private chat, group or channel
	if _, err := tba.bot.Send(recipient, text, options); err != nil {
		return failure.Wrap(failure.KindDelivery, err, fmt.Sprintf("cannot send message to chat %d", recipientChatID))
	}
	return nil
}
