package vision

import (
	"image"
	"math"
	"sort"

	"cube-scanner/internal/domain/entity"
)

// binaryThreshold — пиксели ярче порога считаются передним планом
const binaryThreshold = 127

// approxEpsilonRatio — точность аппроксимации в долях периметра
const approxEpsilonRatio = 0.1

type point struct {
	x, y float64
}

// component — связная область бинарного изображения
type component struct {
	minX, minY, maxX, maxY int
	area                   int
	// крайние пиксели каждой строки, их выпуклой оболочки достаточно
	rowExtremes []point
}

// ExtractCandidates находит на бинарном изображении квадратные области.
// Рассматриваются связные области переднего плана и замкнутые «дыры» фона,
// каждая аппроксимируется многоугольником и проходит через фильтр.
func ExtractCandidates(bin *image.Gray, filter SquareFilter) []entity.Region {
	comps := components(bin, true)
	comps = append(comps, holes(bin)...)

	var out []entity.Region
	for _, c := range comps {
		box := entity.Region{
			X:      c.minX,
			Y:      c.minY,
			Width:  c.maxX - c.minX + 1,
			Height: c.maxY - c.minY + 1,
		}
		vertices := approxVertices(convexHull(c.rowExtremes))
		if filter.Accept(vertices, box, float64(c.area)) {
			out = append(out, box)
		}
	}
	return out
}

func isForeground(bin *image.Gray, x, y int) bool {
	return bin.GrayAt(x, y).Y > binaryThreshold
}

// components размечает 4-связные области нужного значения заливкой.
func components(bin *image.Gray, foreground bool) []component {
	b := bin.Bounds()
	w, h := b.Dx(), b.Dy()
	seen := make([]bool, w*h)

	var out []component
	queue := make([]image.Point, 0, 64)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if seen[y*w+x] || isForeground(bin, b.Min.X+x, b.Min.Y+y) != foreground {
				continue
			}

			comp := component{minX: x, minY: y, maxX: x, maxY: y}
			rows := map[int][2]int{}
			seen[y*w+x] = true
			queue = append(queue[:0], image.Pt(x, y))
			for len(queue) > 0 {
				p := queue[len(queue)-1]
				queue = queue[:len(queue)-1]

				comp.area++
				comp.minX = minInt(comp.minX, p.X)
				comp.maxX = maxInt(comp.maxX, p.X)
				comp.minY = minInt(comp.minY, p.Y)
				comp.maxY = maxInt(comp.maxY, p.Y)
				if r, ok := rows[p.Y]; ok {
					rows[p.Y] = [2]int{minInt(r[0], p.X), maxInt(r[1], p.X)}
				} else {
					rows[p.Y] = [2]int{p.X, p.X}
				}

				for _, n := range [4]image.Point{image.Pt(p.X+1, p.Y), image.Pt(p.X-1, p.Y), image.Pt(p.X, p.Y+1), image.Pt(p.X, p.Y-1)} {
					if n.X < 0 || n.Y < 0 || n.X >= w || n.Y >= h || seen[n.Y*w+n.X] {
						continue
					}
					if isForeground(bin, b.Min.X+n.X, b.Min.Y+n.Y) != foreground {
						continue
					}
					seen[n.Y*w+n.X] = true
					queue = append(queue, n)
				}
			}

			for ry, r := range rows {
				comp.rowExtremes = append(comp.rowExtremes,
					point{float64(r[0]), float64(ry)}, point{float64(r[1]), float64(ry)})
			}
			out = append(out, comp)
		}
	}
	return out
}

// holes возвращает области фона, не касающиеся края изображения.
func holes(bin *image.Gray) []component {
	b := bin.Bounds()
	var out []component
	for _, c := range components(bin, false) {
		if c.minX == 0 || c.minY == 0 || c.maxX == b.Dx()-1 || c.maxY == b.Dy()-1 {
			continue
		}
		out = append(out, c)
	}
	return out
}

// convexHull строит выпуклую оболочку (монотонная цепочка Эндрю) без
// коллинеарных точек.
func convexHull(pts []point) []point {
	if len(pts) < 3 {
		return pts
	}

	sorted := make([]point, len(pts))
	copy(sorted, pts)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].x != sorted[j].x {
			return sorted[i].x < sorted[j].x
		}
		return sorted[i].y < sorted[j].y
	})

	hull := make([]point, 0, 2*len(sorted))
	for _, p := range sorted {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(sorted) - 2; i >= 0; i-- {
		p := sorted[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull[:len(hull)-1]
}

func cross(o, a, b point) float64 {
	return (a.x-o.x)*(b.y-o.y) - (a.y-o.y)*(b.x-o.x)
}

// approxVertices считает вершины замкнутого многоугольника после
// упрощения Дугласа-Пейкера с точностью 0.1 периметра.
func approxVertices(poly []point) int {
	n := len(poly)
	if n < 3 {
		return n
	}

	var perimeter float64
	for i := range poly {
		perimeter += dist(poly[i], poly[(i+1)%n])
	}
	epsilon := approxEpsilonRatio * perimeter

	// замкнутую кривую режем по двум наиболее удалённым точкам
	a := farthest(poly, poly[0])
	b := farthest(poly, poly[a])
	if a == b {
		return 1
	}
	if a > b {
		a, b = b, a
	}

	first := poly[a : b+1]
	second := append(append([]point{}, poly[b:]...), poly[:a+1]...)
	return douglasPeucker(first, epsilon) + douglasPeucker(second, epsilon) - 2
}

// douglasPeucker возвращает число сохранённых точек незамкнутой цепочки,
// включая обе концевые.
func douglasPeucker(chain []point, epsilon float64) int {
	if len(chain) <= 2 {
		return len(chain)
	}

	start, end := chain[0], chain[len(chain)-1]
	idx, maxDist := 0, -1.0
	for i := 1; i < len(chain)-1; i++ {
		if d := segmentDistance(chain[i], start, end); d > maxDist {
			idx, maxDist = i, d
		}
	}
	if maxDist <= epsilon {
		return 2
	}
	return douglasPeucker(chain[:idx+1], epsilon) + douglasPeucker(chain[idx:], epsilon) - 1
}

func farthest(poly []point, from point) int {
	idx, best := 0, -1.0
	for i, p := range poly {
		if d := dist(p, from); d > best {
			idx, best = i, d
		}
	}
	return idx
}

func segmentDistance(p, a, b point) float64 {
	length := dist(a, b)
	if length == 0 {
		return dist(p, a)
	}
	return math.Abs(cross(a, b, p)) / length
}

func dist(a, b point) float64 {
	return math.Hypot(a.x-b.x, a.y-b.y)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
