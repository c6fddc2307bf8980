//go:build !linux
// +build !linux

package transport

import (
	"context"
	"errors"
	"time"

	"cube-scanner/internal/domain/port"
)

// Bluetooth — заглушка: RFCOMM поддерживается только в Linux.
type Bluetooth struct {
	Addr    string
	Channel uint8
	Timeout time.Duration
}

func NewBluetooth(addr string, channel uint8, timeout time.Duration) (*Bluetooth, error) {
	if _, err := parseBDAddr(addr); err != nil {
		return nil, err
	}
	return &Bluetooth{Addr: addr, Channel: channel, Timeout: timeout}, nil
}

func (b *Bluetooth) Send(ctx context.Context, payload []byte) error {
	return errors.New("bluetooth transport is supported on linux only")
}

// Проверка реализации интерфейса
var _ port.Transport = (*Bluetooth)(nil)
