package port

import (
	"context"
	"image"

	"cube-scanner/internal/domain/entity"
)

// Camera источник кадров фиксированного разрешения
type Camera interface {
	// Read читает следующий кадр
	Read(ctx context.Context) (image.Image, error)

	Close() error
}

// Display окно вывода и источник нажатий
type Display interface {
	// Show рисует кадр с наложением
	Show(frame image.Image, overlay entity.Overlay) error

	// PollEvent ждёт нажатие с коротким таймаутом; задаёт темп цикла
	PollEvent() entity.Event

	Close() error
}
