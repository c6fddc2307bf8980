package transport

import (
	"context"
	"fmt"
	"net"
	"time"

	"cube-scanner/internal/domain/port"
)

// TCP отправляет решение на устройство по TCP (например, ESP в режиме точки доступа).
type TCP struct {
	Addr    string
	Timeout time.Duration
}

// NewTCP создаёт транспорт для адреса host:port
func NewTCP(addr string, timeout time.Duration) *TCP {
	return &TCP{Addr: addr, Timeout: timeout}
}

// Send подключается, пишет payload и закрывает соединение
func (t *TCP) Send(ctx context.Context, payload []byte) error {
	dialer := net.Dialer{Timeout: t.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", t.Addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", t.Addr, err)
	}
	defer conn.Close()

	if t.Timeout > 0 {
		_ = conn.SetWriteDeadline(time.Now().Add(t.Timeout))
	}
	if _, err := conn.Write(payload); err != nil {
		return fmt.Errorf("write %s: %w", t.Addr, err)
	}
	return nil
}

// Проверка реализации интерфейса
var _ port.Transport = (*TCP)(nil)
