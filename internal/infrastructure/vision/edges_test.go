package vision

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/require"

	"cube-scanner/internal/domain/entity"
)

// colorFrame рисует на чёрном фоне девять цветных наклеек 50x50 с шагом 60.
func colorFrame(colors [9]color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 640, 480))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{A: 255}), image.Point{}, draw.Src)
	for i, c := range colors {
		x := 200 + (i%3)*60
		y := 100 + (i/3)*60
		draw.Draw(img, image.Rect(x, y, x+50, y+50), image.NewUniform(c), image.Point{}, draw.Src)
	}
	return img
}

func TestEdgeDetector_FindsColoredGrid(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	frame := colorFrame([9]color.RGBA{red, blue, white, white, red, blue, blue, white, red})

	regions, err := NewEdgeDetector().Detect(context.Background(), frame)
	require.NoError(t, err)
	require.Len(t, regions, 9)

	for row := 0; row < 3; row++ {
		for col := 1; col < 3; col++ {
			require.Less(t, regions[row*3+col-1].X, regions[row*3+col].X)
		}
		if row > 0 {
			require.Less(t, regions[(row-1)*3].Y, regions[row*3].Y)
		}
	}

	// цвет, снятый с каждой найденной области, совпадает с нарисованным
	sampler := &Sampler{InsetX: 4, InsetY: 4}
	got := sampler.Sample(frame, regions[1])
	require.Equal(t, entity.Color{B: 255}, got)
}

func TestEdgeDetector_EmptyFrame(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 320, 240))
	regions, err := NewEdgeDetector().Detect(context.Background(), frame)
	require.NoError(t, err)
	require.Nil(t, regions)
}
