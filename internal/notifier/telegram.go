package notifier

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/huha-yy/ai-news-bot/internal/digest"
	"github.com/huha-yy/ai-news-bot/internal/model"
)

// Telegram delivers the plain digest to one chat through the bot API.
type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegram(bot *tgbotapi.BotAPI, chatID int64) *Telegram {
	return &Telegram{bot: bot, chatID: chatID}
}

func (t *Telegram) Name() string { return "telegram" }

func (t *Telegram) Push(_ context.Context, d *digest.Digest) error {
	msg := tgbotapi.NewMessage(t.chatID, d.Plain)
	msg.DisableWebPagePreview = true

	if _, err := t.bot.Send(msg); err != nil {
		return &model.DeliveryError{Channel: t.Name(), Err: err}
	}

	return nil
}
