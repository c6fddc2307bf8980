//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"errors"
	"image"

	"cube-scanner/internal/domain/entity"
	"cube-scanner/internal/domain/port"
)

type GoCVDetector struct {
	Filter        SquareFilter
	BlurSize      int
	CannyLow      float32
	CannyHigh     float32
	DilateSize    int
	ApproxEpsilon float64
}

// NewGoCVDetector создаёт детектор-заглушку (без OpenCV).
func NewGoCVDetector() *GoCVDetector {
	return &GoCVDetector{
		Filter:        DefaultSquareFilter(),
		BlurSize:      3,
		CannyLow:      30,
		CannyHigh:     60,
		DilateSize:    9,
		ApproxEpsilon: approxEpsilonRatio,
	}
}

// Detect возвращает ошибку, если сборка без тега gocv.
func (d *GoCVDetector) Detect(ctx context.Context, frame image.Image) ([]entity.Region, error) {
	_ = ctx
	_ = frame
	return nil, errors.New("gocv build tag is not enabled")
}

// Проверка реализации интерфейса
var _ port.GridDetector = (*GoCVDetector)(nil)
