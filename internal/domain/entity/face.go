package entity

// StickersPerFace — число наклеек на грани
const StickersPerFace = 9

// CenterIndex — индекс центральной наклейки в построчном порядке
const CenterIndex = 4

// Face — девять цветов грани построчно, слева направо и сверху вниз.
// Используется и для текущего превью, и для зафиксированного снимка.
type Face [StickersPerFace]Color

// UniformFace возвращает грань, залитую одним цветом
func UniformFace(c Color) Face {
	var f Face
	for i := range f {
		f[i] = c
	}
	return f
}

// Center возвращает цвет центральной наклейки
func (f Face) Center() Color {
	return f[CenterIndex]
}
