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

type GoCVDetector struct {
	Filter        SquareFilter
	BlurSize      int
	CannyLow      float32
	CannyHigh     float32
	DilateSize    int
	ApproxEpsilon float64
}

// NewGoCVDetector создаёт детектор сетки наклеек.
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

// Detect ищет на кадре сетку 3x3 и возвращает наклейки построчно.
func (d *GoCVDetector) Detect(ctx context.Context, frame image.Image) ([]entity.Region, error) {
	_ = ctx
	mat, err := gocv.ImageToMatRGB(frame)
	if err != nil {
		return nil, fmt.Errorf("convert frame: %w", err)
	}
	defer mat.Close()

	if mat.Empty() {
		return nil, errors.New("empty frame")
	}

	edges := d.edgeFrame(mat)
	defer edges.Close()

	return ClusterGrid(d.candidates(edges)), nil
}

// edgeFrame строит бинарную карту границ: серый, размытие, Canny и
// расширение, чтобы сомкнуть границы наклеек.
func (d *GoCVDetector) edgeFrame(mat gocv.Mat) gocv.Mat {
	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(mat, &gray, gocv.ColorBGRToGray)

	blur := gocv.NewMat()
	defer blur.Close()
	gocv.Blur(gray, &blur, image.Pt(d.BlurSize, d.BlurSize))

	canny := gocv.NewMat()
	defer canny.Close()
	gocv.Canny(blur, &canny, d.CannyLow, d.CannyHigh)

	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(d.DilateSize, d.DilateSize))
	defer kernel.Close()

	dilated := gocv.NewMat()
	gocv.Dilate(canny, &dilated, kernel)
	return dilated
}

// candidates возвращает прямоугольники контуров, прошедших фильтр.
func (d *GoCVDetector) candidates(edges gocv.Mat) []entity.Region {
	contours := gocv.FindContours(edges, gocv.RetrievalTree, gocv.ChainApproxSimple)
	defer contours.Close()

	out := make([]entity.Region, 0, contours.Size())
	for i := 0; i < contours.Size(); i++ {
		c := contours.At(i)
		perimeter := gocv.ArcLength(c, true)
		approx := gocv.ApproxPolyDP(c, d.ApproxEpsilon*perimeter, true)
		vertices := approx.Size()
		rect := gocv.BoundingRect(approx)
		approx.Close()

		box := entity.Region{
			X:      rect.Min.X,
			Y:      rect.Min.Y,
			Width:  rect.Dx(),
			Height: rect.Dy(),
		}
		if d.Filter.Accept(vertices, box, gocv.ContourArea(c)) {
			out = append(out, box)
		}
	}
	return out
}

// Проверка реализации интерфейса
var _ port.GridDetector = (*GoCVDetector)(nil)
