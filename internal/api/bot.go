package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"cube-scanner/internal/domain/port"
)

const msgHeader = "🧩 Кубик решён"

// sender — часть BotAPI, которая нужна уведомителю
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Notifier отправляет решение в Telegram-чат
type Notifier struct {
	api    sender
	chatID int64
}

// NewNotifier авторизует бота и создаёт уведомитель для чата
func NewNotifier(token string, chatID int64) (*Notifier, error) {
	if token == "" {
		return nil, errors.New("telegram token is empty")
	}
	if chatID == 0 {
		return nil, errors.New("telegram chat id is empty")
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	return &Notifier{api: api, chatID: chatID}, nil
}

// Notify отправляет текст решения
func (n *Notifier) Notify(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(n.chatID, fmt.Sprintf("%s\n\n%s", msgHeader, text))
	msg.DisableWebPagePreview = true
	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	return nil
}

// Проверка реализации интерфейса
var _ port.Notifier = (*Notifier)(nil)
