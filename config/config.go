package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config настройки сканера
type Config struct {
	CameraDevice int    `env:"CAMERA_DEVICE" envDefault:"0"`
	FrameWidth   int    `env:"FRAME_WIDTH"   envDefault:"640"`
	FrameHeight  int    `env:"FRAME_HEIGHT"  envDefault:"480"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"cube-scanner.db"`
	SolverCmd    string `env:"SOLVER_CMD"    envDefault:"kociemba"`
	ColorMetric  string `env:"COLOR_METRIC"  envDefault:"euclidean"`
	Locale       string `env:"LOCALE"`
	Autoscan     bool   `env:"AUTOSCAN"`
	Normalize    bool   `env:"NORMALIZE"`

	Remote   Remote   `envPrefix:"REMOTE_"`
	Telegram Telegram `envPrefix:"TELEGRAM_"`
}

// Remote настройки отправки решения на внешнее устройство
type Remote struct {
	Enabled    bool          `env:"ENABLED"`
	Transport  string        `env:"TRANSPORT"   envDefault:"serial"`
	SerialPort string        `env:"SERIAL_PORT" envDefault:"/dev/ttyUSB0"`
	SerialBaud int           `env:"SERIAL_BAUD" envDefault:"115200"`
	TCPAddr    string        `env:"TCP_ADDR"    envDefault:"192.168.4.1:50001"`
	BTAddr     string        `env:"BT_ADDR"     envDefault:"00:1f:e1:dd:08:3d"`
	BTChannel  uint8         `env:"BT_CHANNEL"  envDefault:"3"`
	Timeout    time.Duration `env:"TIMEOUT"     envDefault:"2s"`
}

// Telegram настройки уведомлений; пустой токен отключает их
type Telegram struct {
	Token  string `env:"TOKEN"`
	ChatID int64  `env:"CHAT_ID"`
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}
