package entity

// Region — ограничивающий прямоугольник кандидата в наклейки на одном кадре
type Region struct {
	X      int // координата X левого верхнего угла
	Y      int // координата Y левого верхнего угла
	Width  int // ширина в пикселях
	Height int // высота в пикселях
}

// Center возвращает координаты центра области
func (r Region) Center() (x, y float64) {
	return float64(r.X) + float64(r.Width)/2, float64(r.Y) + float64(r.Height)/2
}

// Area возвращает площадь прямоугольника
func (r Region) Area() int {
	return r.Width * r.Height
}

// Contains проверяет, что точка лежит строго внутри прямоугольника.
func (r Region) Contains(x, y float64) bool {
	return float64(r.X) < x && float64(r.Y) < y &&
		float64(r.X+r.Width) > x && float64(r.Y+r.Height) > y
}

// AspectRatio возвращает отношение ширины к высоте
func (r Region) AspectRatio() float64 {
	if r.Height == 0 {
		return 0
	}
	return float64(r.Width) / float64(r.Height)
}
