package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPaletteClassify_RepresentativesMapToThemselves(t *testing.T) {
	for _, distance := range []DistanceFunc{EuclideanDistance, CIEDE2000Distance} {
		p := DefaultPalette().WithDistance(distance)
		for _, e := range p.Entries() {
			got := p.Classify(e.Color)
			require.Equal(t, e, got)
		}
	}
}

func TestPaletteClassify_NearestColor(t *testing.T) {
	p := DefaultPalette()
	require.Equal(t, Red, p.Classify(Color{R: 200, G: 30, B: 20}).Name)
	require.Equal(t, Orange, p.Classify(Color{R: 240, G: 150, B: 10}).Name)
	require.Equal(t, White, p.Classify(Color{R: 230, G: 235, B: 240}).Name)
}

func TestPaletteClassify_TieKeepsPaletteOrder(t *testing.T) {
	same := Color{R: 10, G: 10, B: 10}
	colors := map[ColorName]Color{}
	for _, name := range PaletteOrder {
		colors[name] = same
	}
	p, err := NewPalette(colors, nil)
	require.NoError(t, err)
	require.Equal(t, Red, p.Classify(Color{}).Name)
}

func TestNewPalette_RequiresAllColors(t *testing.T) {
	_, err := NewPalette(map[ColorName]Color{Red: {R: 255}}, nil)
	require.Error(t, err)
}

func TestDistanceByName(t *testing.T) {
	_, err := DistanceByName("ciede2000")
	require.NoError(t, err)
	_, err = DistanceByName("manhattan")
	require.Error(t, err)
}

func TestColorNameNotation(t *testing.T) {
	letters := ""
	for _, name := range NotationOrder {
		l, ok := name.Notation()
		require.True(t, ok)
		letters += string(l)
	}
	require.Equal(t, "URFDLB", letters)
	require.False(t, ColorName("purple").Valid())
}
