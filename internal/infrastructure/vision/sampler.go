package vision

import (
	"image"
	"image/color"
	"math"

	"gonum.org/v1/gonum/stat"

	"cube-scanner/internal/domain/entity"
	"cube-scanner/internal/domain/port"
)

// Sampler снимает средний цвет с уменьшенной области наклейки.
// Отступы убирают края контура и тени.
type Sampler struct {
	InsetX int
	InsetY int
}

// NewSampler создаёт сэмплер с отступами по умолчанию.
func NewSampler() *Sampler {
	return &Sampler{InsetX: 14, InsetY: 7}
}

// Sample возвращает средний цвет области. Если после отступов область
// вырождается, берётся пиксель в центре.
func (s *Sampler) Sample(frame image.Image, region entity.Region) entity.Color {
	x0, x1 := region.X+s.InsetX, region.X+region.Width-s.InsetX
	y0, y1 := region.Y+s.InsetY, region.Y+region.Height-s.InsetY
	roi := image.Rectangle{Min: image.Pt(x0, y0), Max: image.Pt(x1, y1)}.Intersect(frame.Bounds())

	if x1 <= x0 || y1 <= y0 || roi.Empty() {
		cx, cy := region.Center()
		return toColor(frame.At(int(cx), int(cy)))
	}

	n := roi.Dx() * roi.Dy()
	rs := make([]float64, 0, n)
	gs := make([]float64, 0, n)
	bs := make([]float64, 0, n)
	for y := roi.Min.Y; y < roi.Max.Y; y++ {
		for x := roi.Min.X; x < roi.Max.X; x++ {
			c := color.RGBAModel.Convert(frame.At(x, y)).(color.RGBA)
			rs = append(rs, float64(c.R))
			gs = append(gs, float64(c.G))
			bs = append(bs, float64(c.B))
		}
	}

	return entity.Color{
		R: channel(stat.Mean(rs, nil)),
		G: channel(stat.Mean(gs, nil)),
		B: channel(stat.Mean(bs, nil)),
	}
}

func toColor(c color.Color) entity.Color {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return entity.Color{R: rgba.R, G: rgba.G, B: rgba.B}
}

func channel(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}

// Проверка реализации интерфейса
var _ port.ColorSampler = (*Sampler)(nil)
