package telegram

import "gopkg.in/telebot.v3"

// Client sends text messages to a Telegram chat.
// A failed send is reported as a delivery error; callers decide whether to log or journal it.
type Client interface {
	SendMessage(recipientChatID int64, text string, options *telebot.SendOptions) error
}
