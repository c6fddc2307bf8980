package entity

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/floats"
)

// Color — усреднённый цвет наклейки в пространстве RGB.
// Структура сравнима и используется как ключ map напрямую.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String возвращает цвет в виде (r,g,b)
func (c Color) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.R, c.G, c.B)
}

func (c Color) vector() []float64 {
	return []float64{float64(c.R), float64(c.G), float64(c.B)}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255.0, G: float64(c.G) / 255.0, B: float64(c.B) / 255.0}
}

// DistanceFunc считает расстояние между двумя цветами.
type DistanceFunc func(a, b Color) float64

// EuclideanDistance — евклидово расстояние в RGB.
func EuclideanDistance(a, b Color) float64 {
	return floats.Distance(a.vector(), b.vector(), 2)
}

// CIEDE2000Distance — перцептивное расстояние в пространстве Lab.
func CIEDE2000Distance(a, b Color) float64 {
	return a.colorful().DistanceCIEDE2000(b.colorful())
}

// DistanceByName возвращает метрику по имени из конфигурации.
func DistanceByName(name string) (DistanceFunc, error) {
	switch name {
	case "", "euclidean":
		return EuclideanDistance, nil
	case "ciede2000":
		return CIEDE2000Distance, nil
	default:
		return nil, fmt.Errorf("unknown color metric %q", name)
	}
}
