//go:build !gocv
// +build !gocv

package vision

import (
	"errors"
	"image"

	"cube-scanner/internal/domain/entity"
	"cube-scanner/internal/domain/port"
)

// WindowDisplay — заглушка окна (без OpenCV)
type WindowDisplay struct{}

// NewWindowDisplay возвращает ошибку, если сборка без тега gocv.
func NewWindowDisplay(title string) (*WindowDisplay, error) {
	_ = title
	return nil, errors.New("gocv build tag is not enabled")
}

func (d *WindowDisplay) Show(frame image.Image, overlay entity.Overlay) error {
	_, _ = frame, overlay
	return errors.New("gocv build tag is not enabled")
}

func (d *WindowDisplay) PollEvent() entity.Event {
	return entity.EventQuit
}

func (d *WindowDisplay) Close() error {
	return nil
}

// Проверка реализации интерфейса
var _ port.Display = (*WindowDisplay)(nil)
