package port

import "context"

// Transport канал передачи решения на внешнее устройство
type Transport interface {
	// Send отправляет байты и закрывает соединение
	Send(ctx context.Context, payload []byte) error
}

// Notifier сообщает пользователю результат
type Notifier interface {
	Notify(ctx context.Context, text string) error
}
