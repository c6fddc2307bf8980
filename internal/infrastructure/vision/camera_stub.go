//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"fmt"
	"image"

	"cube-scanner/internal/domain/entity"
	"cube-scanner/internal/domain/port"
)

// Camera — заглушка веб-камеры (без OpenCV)
type Camera struct{}

// OpenCamera возвращает ошибку, если сборка без тега gocv.
func OpenCamera(device, width, height int) (*Camera, error) {
	_, _, _ = device, width, height
	return nil, fmt.Errorf("%w: gocv build tag is not enabled", entity.ErrCameraUnavailable)
}

// Read возвращает ошибку, если сборка без тега gocv.
func (c *Camera) Read(ctx context.Context) (image.Image, error) {
	_ = ctx
	return nil, entity.ErrCameraUnavailable
}

func (c *Camera) Close() error {
	return nil
}

// Проверка реализации интерфейса
var _ port.Camera = (*Camera)(nil)
