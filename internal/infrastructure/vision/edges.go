package vision

import (
	"context"
	"image"
	"image/color"
	"math"

	"cube-scanner/internal/domain/entity"
	"cube-scanner/internal/domain/port"
)

// EdgeDetector — детектор сетки без OpenCV: градиент Собеля, порог и
// расширение границ, затем поиск квадратов на бинарной карте.
type EdgeDetector struct {
	Filter        SquareFilter
	EdgeThreshold float64
	DilateSize    int
}

// NewEdgeDetector создаёт детектор с порогами, близкими к Canny(30, 60).
func NewEdgeDetector() *EdgeDetector {
	return &EdgeDetector{
		Filter:        DefaultSquareFilter(),
		EdgeThreshold: 60,
		DilateSize:    9,
	}
}

// Detect ищет на кадре сетку 3x3 и возвращает наклейки построчно.
func (d *EdgeDetector) Detect(ctx context.Context, frame image.Image) ([]entity.Region, error) {
	_ = ctx
	edges := dilate(sobel(toGray(frame), d.EdgeThreshold), d.DilateSize)
	return ClusterGrid(ExtractCandidates(edges, d.Filter)), nil
}

func toGray(img image.Image) *image.Gray {
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			gray.Set(x, y, color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)))
		}
	}
	return gray
}

// sobel возвращает бинарную карту пикселей с модулем градиента выше порога.
func sobel(gray *image.Gray, threshold float64) *image.Gray {
	b := gray.Bounds()
	out := image.NewGray(b)
	at := func(x, y int) float64 { return float64(gray.GrayAt(x, y).Y) }

	for y := 1; y < b.Dy()-1; y++ {
		for x := 1; x < b.Dx()-1; x++ {
			gx := at(x+1, y-1) + 2*at(x+1, y) + at(x+1, y+1) -
				at(x-1, y-1) - 2*at(x-1, y) - at(x-1, y+1)
			gy := at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1) -
				at(x-1, y-1) - 2*at(x, y-1) - at(x+1, y-1)
			if math.Hypot(gx, gy) > threshold {
				out.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return out
}

// dilate расширяет передний план квадратным ядром size x size.
func dilate(bin *image.Gray, size int) *image.Gray {
	if size <= 1 {
		return bin
	}
	b := bin.Bounds()
	r := size / 2

	// раздельно по строкам и столбцам
	rows := image.NewGray(b)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			if bin.GrayAt(x, y).Y == 0 {
				continue
			}
			for dx := maxInt(0, x-r); dx <= minInt(b.Dx()-1, x+r); dx++ {
				rows.SetGray(dx, y, color.Gray{Y: 255})
			}
		}
	}

	out := image.NewGray(b)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			if rows.GrayAt(x, y).Y == 0 {
				continue
			}
			for dy := maxInt(0, y-r); dy <= minInt(b.Dy()-1, y+r); dy++ {
				out.SetGray(x, dy, color.Gray{Y: 255})
			}
		}
	}
	return out
}

// Проверка реализации интерфейса
var _ port.GridDetector = (*EdgeDetector)(nil)
