//go:build linux
// +build linux

package transport

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sys/unix"

	"cube-scanner/internal/domain/port"
)

// Bluetooth отправляет решение по RFCOMM.
type Bluetooth struct {
	Addr    string
	Channel uint8
	Timeout time.Duration
}

// NewBluetooth создаёт транспорт для адреса устройства и канала
func NewBluetooth(addr string, channel uint8, timeout time.Duration) (*Bluetooth, error) {
	if _, err := parseBDAddr(addr); err != nil {
		return nil, err
	}
	return &Bluetooth{Addr: addr, Channel: channel, Timeout: timeout}, nil
}

// Send подключается к устройству, пишет payload и закрывает сокет
func (b *Bluetooth) Send(ctx context.Context, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	addr, err := parseBDAddr(b.Addr)
	if err != nil {
		return err
	}

	fd, err := unix.Socket(unix.AF_BLUETOOTH, unix.SOCK_STREAM, unix.BTPROTO_RFCOMM)
	if err != nil {
		return fmt.Errorf("rfcomm socket: %w", err)
	}
	defer unix.Close(fd)

	if b.Timeout > 0 {
		tv := unix.NsecToTimeval(b.Timeout.Nanoseconds())
		_ = unix.SetsockoptTimeval(fd, unix.SOL_SOCKET, unix.SO_SNDTIMEO, &tv)
	}

	// в sockaddr_rc адрес хранится в обратном порядке байт
	sa := &unix.SockaddrRFCOMM{Channel: b.Channel}
	for i := range addr {
		sa.Addr[i] = addr[len(addr)-1-i]
	}

	if err := unix.Connect(fd, sa); err != nil {
		return fmt.Errorf("rfcomm connect %s: %w", b.Addr, err)
	}
	if _, err := unix.Write(fd, payload); err != nil {
		return fmt.Errorf("rfcomm write %s: %w", b.Addr, err)
	}
	return nil
}

// Проверка реализации интерфейса
var _ port.Transport = (*Bluetooth)(nil)
