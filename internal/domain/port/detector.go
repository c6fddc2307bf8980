package port

import (
	"context"
	"image"

	"cube-scanner/internal/domain/entity"
)

// GridDetector интерфейс детектора сетки наклеек
type GridDetector interface {
	// Detect возвращает 9 областей построчно или nil, если сетки на кадре нет
	Detect(ctx context.Context, frame image.Image) ([]entity.Region, error)
}

// ColorSampler интерфейс снятия цвета с области кадра
type ColorSampler interface {
	// Sample возвращает средний цвет области
	Sample(frame image.Image, region entity.Region) entity.Color
}
