package vision

import (
	"sort"

	"cube-scanner/internal/domain/entity"
)

// gridSize — число наклеек в сетке грани
const gridSize = 9

// neighborRadius — смещение проб в долях размера наклейки
const neighborRadius = 1.5

// SquareFilter отбирает контуры, похожие на наклейку.
type SquareFilter struct {
	Vertices       int
	MinAspectRatio float64
	MaxAspectRatio float64
	MinWidth       int
	MaxWidth       int
	MinFillRatio   float64
}

// DefaultSquareFilter возвращает пороги для кадра 640x480.
func DefaultSquareFilter() SquareFilter {
	return SquareFilter{
		Vertices:       4,
		MinAspectRatio: 0.8,
		MaxAspectRatio: 1.2,
		MinWidth:       30,
		MaxWidth:       60,
		MinFillRatio:   0.4,
	}
}

// Accept проверяет аппроксимированный контур: число вершин, пропорции
// прямоугольника, ширину и заполненность.
func (f SquareFilter) Accept(vertices int, box entity.Region, area float64) bool {
	if vertices != f.Vertices || box.Width <= 0 || box.Height <= 0 {
		return false
	}

	ratio := box.AspectRatio()
	if ratio < f.MinAspectRatio || ratio > f.MaxAspectRatio {
		return false
	}
	if box.Width < f.MinWidth || box.Width > f.MaxWidth {
		return false
	}
	return area/float64(box.Area()) > f.MinFillRatio
}

// ClusterGrid ищет среди кандидатов сетку 3x3 и возвращает её построчно.
// Любая неоднозначность даёт nil: пока кубик двигают, это обычный случай.
func ClusterGrid(candidates []entity.Region) []entity.Region {
	if len(candidates) < gridSize {
		return nil
	}

	center := -1
	var grid []entity.Region
	for i, c := range candidates {
		neighbors := neighborSet(c, candidates)
		if len(neighbors) != gridSize {
			continue
		}
		if center >= 0 {
			// два кандидата в центр — сетка неоднозначна
			return nil
		}
		center = i
		grid = make([]entity.Region, 0, gridSize)
		for _, j := range neighbors {
			grid = append(grid, candidates[j])
		}
	}
	if center < 0 {
		return nil
	}

	return sortRowMajor(grid)
}

// neighborSet возвращает индексы кандидатов, в чьи прямоугольники попала
// хотя бы одна из девяти проб вокруг c (включая сам c).
func neighborSet(c entity.Region, candidates []entity.Region) []int {
	probes := probePoints(c)

	var out []int
	for j, other := range candidates {
		for _, p := range probes {
			if other.Contains(p[0], p[1]) {
				out = append(out, j)
				break
			}
		}
	}
	return out
}

func probePoints(c entity.Region) [gridSize][2]float64 {
	cx, cy := c.Center()
	dx := float64(c.Width) * neighborRadius
	dy := float64(c.Height) * neighborRadius

	var probes [gridSize][2]float64
	i := 0
	for _, oy := range []float64{-dy, 0, dy} {
		for _, ox := range []float64{-dx, 0, dx} {
			probes[i] = [2]float64{cx + ox, cy + oy}
			i++
		}
	}
	return probes
}

// sortRowMajor сортирует 9 областей: по Y на три ряда, внутри ряда по X.
func sortRowMajor(grid []entity.Region) []entity.Region {
	sort.SliceStable(grid, func(i, j int) bool { return grid[i].Y < grid[j].Y })
	for row := 0; row < 3; row++ {
		part := grid[row*3 : row*3+3]
		sort.SliceStable(part, func(i, j int) bool { return part[i].X < part[j].X })
	}
	return grid
}
