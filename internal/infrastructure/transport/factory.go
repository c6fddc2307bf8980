package transport

import (
	"fmt"
	"strings"
	"time"

	"cube-scanner/internal/domain/port"
)

// Виды транспорта
const (
	KindSerial    = "serial"
	KindTCP       = "tcp"
	KindBluetooth = "bluetooth"
)

// Options описывает подключение к внешнему устройству
type Options struct {
	Kind       string
	SerialPort string
	SerialBaud int
	TCPAddr    string
	BTAddr     string
	BTChannel  uint8
	Timeout    time.Duration
}

// New создаёт транспорт по виду
func New(opts Options) (port.Transport, error) {
	switch strings.ToLower(opts.Kind) {
	case KindSerial, "":
		if opts.SerialPort == "" {
			return nil, fmt.Errorf("serial port is not set")
		}
		return NewSerial(opts.SerialPort, opts.SerialBaud), nil
	case KindTCP:
		if opts.TCPAddr == "" {
			return nil, fmt.Errorf("tcp address is not set")
		}
		return NewTCP(opts.TCPAddr, opts.Timeout), nil
	case KindBluetooth, "bt":
		return NewBluetooth(opts.BTAddr, opts.BTChannel, opts.Timeout)
	}
	return nil, fmt.Errorf("unknown transport %q", opts.Kind)
}
