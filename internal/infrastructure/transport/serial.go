package transport

import (
	"context"
	"fmt"

	"go.bug.st/serial"

	"cube-scanner/internal/domain/port"
)

// OpenPortFunc открывает последовательный порт
type OpenPortFunc func(name string, mode *serial.Mode) (serial.Port, error)

// Serial отправляет решение в последовательный порт (Arduino и т.п.).
// Порт открывается на каждую отправку и сразу закрывается.
type Serial struct {
	Port     string
	BaudRate int
	open     OpenPortFunc
}

// NewSerial создаёт транспорт для порта и скорости
func NewSerial(portName string, baudRate int) *Serial {
	return &Serial{Port: portName, BaudRate: baudRate, open: serial.Open}
}

// Send пишет payload в порт
func (s *Serial) Send(ctx context.Context, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	mode := &serial.Mode{
		BaudRate: s.BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	p, err := s.open(s.Port, mode)
	if err != nil {
		return fmt.Errorf("open serial port %s: %w", s.Port, err)
	}
	defer p.Close()

	if _, err := p.Write(payload); err != nil {
		return fmt.Errorf("write serial port %s: %w", s.Port, err)
	}
	return nil
}

// Проверка реализации интерфейса
var _ port.Transport = (*Serial)(nil)
