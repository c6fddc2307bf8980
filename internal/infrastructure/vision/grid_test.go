package vision

import (
	"image"
	"image/color"
	"image/draw"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"cube-scanner/internal/domain/entity"
)

const (
	testSide  = 40
	testPitch = 50
)

// gridRegions возвращает 9 квадратов сетки построчно.
func gridRegions(originX, originY int) []entity.Region {
	out := make([]entity.Region, 0, 9)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out = append(out, entity.Region{
				X:      originX + col*testPitch,
				Y:      originY + row*testPitch,
				Width:  testSide,
				Height: testSide,
			})
		}
	}
	return out
}

func binaryFrame(regions ...entity.Region) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, 640, 480))
	white := image.NewUniform(color.Gray{Y: 255})
	for _, r := range regions {
		draw.Draw(img, image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height), white, image.Point{}, draw.Src)
	}
	return img
}

func TestClusterGrid_PerfectGridRowMajor(t *testing.T) {
	want := gridRegions(200, 100)

	shuffled := append([]entity.Region(nil), want...)
	rand.New(rand.NewSource(7)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	got := ClusterGrid(shuffled)
	require.Equal(t, want, got)
}

func TestClusterGrid_FewerThanNine(t *testing.T) {
	require.Nil(t, ClusterGrid(gridRegions(200, 100)[:8]))
}

func TestClusterGrid_NoCenterWithNineNeighbors(t *testing.T) {
	regions := gridRegions(200, 100)[1:]
	regions = append(regions, entity.Region{X: 560, Y: 400, Width: testSide, Height: testSide})
	require.Len(t, regions, 9)
	require.Nil(t, ClusterGrid(regions))
}

func TestClusterGrid_TwoCentersAreAmbiguous(t *testing.T) {
	// сетка 3x4: у двух средних наклеек по девять соседей
	var regions []entity.Region
	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			regions = append(regions, entity.Region{
				X: 100 + col*testPitch, Y: 100 + row*testPitch, Width: testSide, Height: testSide,
			})
		}
	}
	require.Nil(t, ClusterGrid(regions))
}

func TestExtractCandidates_SyntheticGrid(t *testing.T) {
	want := gridRegions(200, 100)
	candidates := ExtractCandidates(binaryFrame(want...), DefaultSquareFilter())
	require.Len(t, candidates, 9)

	got := ClusterGrid(candidates)
	require.Equal(t, want, got)
}

func TestExtractCandidates_RejectsNonSquares(t *testing.T) {
	img := binaryFrame(
		entity.Region{X: 10, Y: 10, Width: 80, Height: 40},  // вытянутый
		entity.Region{X: 200, Y: 10, Width: 20, Height: 20}, // слишком мелкий
		entity.Region{X: 300, Y: 10, Width: 70, Height: 70}, // слишком крупный
	)

	// треугольник шириной 40
	for y := 0; y < 40; y++ {
		for x := 0; x <= y; x++ {
			img.SetGray(400+x, 200+y, color.Gray{Y: 255})
		}
	}

	require.Empty(t, ExtractCandidates(img, DefaultSquareFilter()))
}

func TestExtractCandidates_HoleInsideOutline(t *testing.T) {
	img := binaryFrame(entity.Region{X: 100, Y: 100, Width: 50, Height: 50})
	black := image.NewUniform(color.Gray{})
	draw.Draw(img, image.Rect(104, 104, 146, 146), black, image.Point{}, draw.Src)

	got := ExtractCandidates(img, DefaultSquareFilter())
	require.Equal(t, []entity.Region{{X: 104, Y: 104, Width: 42, Height: 42}}, got)
}

func TestSquareFilter_Accept(t *testing.T) {
	f := DefaultSquareFilter()
	box := entity.Region{Width: 40, Height: 40}

	require.True(t, f.Accept(4, box, 1600))
	require.False(t, f.Accept(5, box, 1600))
	require.False(t, f.Accept(4, box, 600))
	require.False(t, f.Accept(4, entity.Region{Width: 40, Height: 60}, 2400))
	require.False(t, f.Accept(4, entity.Region{Width: 40}, 0))
}

func TestApproxVertices_Square(t *testing.T) {
	square := []point{{0, 0}, {40, 0}, {40, 40}, {0, 40}}
	require.Equal(t, 4, approxVertices(square))
	require.Equal(t, 3, approxVertices([]point{{0, 0}, {40, 0}, {0, 40}}))
}
