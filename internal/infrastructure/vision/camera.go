//go:build gocv
// +build gocv

package vision

import (
	"context"
	"errors"
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"cube-scanner/internal/domain/entity"
	"cube-scanner/internal/domain/port"
)

// Camera — веб-камера через OpenCV
type Camera struct {
	capture *gocv.VideoCapture
	frame   gocv.Mat
}

// OpenCamera открывает устройство и выставляет разрешение кадра.
func OpenCamera(device, width, height int) (*Camera, error) {
	capture, err := gocv.VideoCaptureDevice(device)
	if err != nil {
		return nil, fmt.Errorf("%w: device %d: %v", entity.ErrCameraUnavailable, device, err)
	}
	if !capture.IsOpened() {
		capture.Close()
		return nil, fmt.Errorf("%w: device %d is not opened", entity.ErrCameraUnavailable, device)
	}

	capture.Set(gocv.VideoCaptureFrameWidth, float64(width))
	capture.Set(gocv.VideoCaptureFrameHeight, float64(height))

	return &Camera{capture: capture, frame: gocv.NewMat()}, nil
}

// Read читает следующий кадр
func (c *Camera) Read(ctx context.Context) (image.Image, error) {
	_ = ctx
	if ok := c.capture.Read(&c.frame); !ok || c.frame.Empty() {
		return nil, errors.New("failed to read frame")
	}
	return c.frame.ToImage()
}

// Close освобождает устройство
func (c *Camera) Close() error {
	c.frame.Close()
	return c.capture.Close()
}

// Проверка реализации интерфейса
var _ port.Camera = (*Camera)(nil)
