package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cube-scanner/internal/domain/entity"
)

var (
	red    = entity.Color{R: 255}
	orange = entity.Color{R: 255, G: 165}
	blue   = entity.Color{B: 255}
)

func TestSmoother_ReturnsMajorityWhenFull(t *testing.T) {
	s := NewSmoother(4)

	for _, c := range []entity.Color{red, orange, red} {
		_, ok := s.Add(0, c)
		require.False(t, ok)
	}
	require.Equal(t, 3, s.Pending(0))

	winner, ok := s.Add(0, orange)
	require.True(t, ok)
	require.Equal(t, red, winner)
	require.Zero(t, s.Pending(0))
}

func TestSmoother_TileBuffersAreIndependent(t *testing.T) {
	s := NewSmoother(2)

	_, ok := s.Add(0, red)
	require.False(t, ok)
	_, ok = s.Add(1, blue)
	require.False(t, ok)

	winner, ok := s.Add(1, blue)
	require.True(t, ok)
	require.Equal(t, blue, winner)
	require.Equal(t, 1, s.Pending(0))
}

func TestMajority_TieGoesToEarliest(t *testing.T) {
	require.Equal(t, orange, majority([]entity.Color{orange, red, red, orange}))
	require.Equal(t, red, majority([]entity.Color{red, blue, orange, blue, red}))
	require.Equal(t, blue, majority([]entity.Color{red, blue, blue}))
}

func TestSmoother_Reset(t *testing.T) {
	s := NewSmoother(0)
	for i := 0; i < entity.StickersPerFace; i++ {
		s.Add(i, red)
	}
	s.Reset()
	for i := 0; i < entity.StickersPerFace; i++ {
		require.Zero(t, s.Pending(i))
	}
}
